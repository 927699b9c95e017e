package eureca_building

// Reference units and bounds for material and construction physical
// properties. Materials outside these ranges are rejected at construction
// time with a PropertyOutsideBoundariesError.

var units = map[string]string{
	"length":             "m",
	"conductivity":       "W/(m K)",
	"specific_heat":      "J/(kg K)",
	"density":            "kg/m3",
	"thermal_resistance": "(m2 K)/W",
	"absorptance":        "-",
	"U_value":            "W/(m2 K)",
	"fraction":           "-",
}

var material_limits = map[string][2]float64{
	"thickness":          {0.0, 1.0},
	"conductivity":       {0.005, 400.0},
	"specific_heat":      {100.0, 5000.0},
	"density":            {1.0, 20000.0},
	"thermal_resistance": {0.0001, 10.0},
	"absorptance":        {0.0, 1.0},
}

var window_limits = map[string][2]float64{
	"U_value":  {0.1, 7.0},
	"fraction": {0.0, 1.0},
}
