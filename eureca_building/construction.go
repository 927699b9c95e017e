package eureca_building

import (
	"math"
	"math/cmplx"
)

// Construction type tag. It selects the surface film resistances applied on
// the two faces of the layer stack.
type ConstructionType string

const (
	ConstructionExtWall     ConstructionType = "ExtWall"
	ConstructionRoof        ConstructionType = "Roof"
	ConstructionGroundFloor ConstructionType = "GroundFloor"
	ConstructionIntWall     ConstructionType = "IntWall"
	ConstructionIntCeiling  ConstructionType = "IntCeiling"
	ConstructionIntFloor    ConstructionType = "IntFloor"
)

/*
Surface film resistances, (m2 K)/W.

Internal/external film coefficients follow ISO 6946 depending on the heat
flow direction; the external coefficient 25 W/(m2 K) splits into a radiative
part alphaStr = 5 and a convective part alphaKonA = 20 used by the VDI 6007
couplings.
*/
func film_resistances(construction_type ConstructionType) (r_si, r_se float64) {
	switch construction_type {
	case ConstructionExtWall:
		return 1.0 / 7.7, 1.0 / 25.0
	case ConstructionRoof:
		return 1.0 / 10.0, 1.0 / 25.0
	case ConstructionGroundFloor:
		return 0.17, 0.04
	case ConstructionIntWall:
		return 0.13, 0.13
	case ConstructionIntCeiling:
		return 0.10, 0.10
	case ConstructionIntFloor:
		return 0.17, 0.17
	default:
		panic("invalid construction type")
	}
}

// Maximum depth of the layer stack, from either face, contributing to the
// effective areal heat capacity (ISO 13786 simplified method).
const effective_capacity_depth = 0.10 // m

// Reference period for the VDI 6007 wall reduction, d (VDI 6007-1).
const t_bt_days = 7.0

/*
Construction is an ordered stack of Material/AirGapMaterial layers reduced to
an equivalent resistance network.

Layers are listed from the outside to the inside face; the stack is owned
exclusively by the construction. All derived parameters are computed once at
construction time:

	u_value      overall heat transfer coefficient including film resistances, W/(m2 K)
	u_value_net  layers-only heat transfer coefficient, W/(m2 K)
	k_int/k_est  areal heat capacity attributed to the internal/external face,
	             J/(m2 K), used by the ISO 13790 effective mass area
	r1/c1        single-layer-equivalent impedance of the stack at the VDI 6007
	             reference period, per unit area
*/
type Construction struct {
	Name string
	Type ConstructionType

	layers []Layer

	_r_si            float64
	_r_se            float64
	_u_value         float64
	_u_value_net     float64
	_k_int           float64
	_k_est           float64
	_ext_absorptance float64

	_thermal_resistances []float64 // per layer, (m2 K)/W
	_thermal_capacities  []float64 // per layer, J/(m2 K)

	_r1 float64 // VDI 6007 equivalent resistance per unit area, (m2 K)/W
	_c1 float64 // VDI 6007 equivalent capacity per unit area, J/(m2 K)
}

/*
NewConstruction builds the equivalent network of an ordered layer stack.

Args:

	name: name
	construction_type: one of the ConstructionType tags
	layers: ordered layer stack, outside to inside, at least one layer

Returns:

	the construction, or a WrongConstructionTypeError if the stack is empty
	or its total resistance is not a positive finite number.
*/
func NewConstruction(name string, construction_type ConstructionType, layers []Layer) (*Construction, error) {
	switch construction_type {
	case ConstructionExtWall, ConstructionRoof, ConstructionGroundFloor,
		ConstructionIntWall, ConstructionIntCeiling, ConstructionIntFloor:
	default:
		return nil, &WrongConstructionTypeError{
			Construction: name,
			Detail:       "unknown construction type: " + string(construction_type),
		}
	}
	if len(layers) == 0 {
		return nil, &WrongConstructionTypeError{Construction: name, Detail: "empty layer stack"}
	}

	c := &Construction{
		Name:   name,
		Type:   construction_type,
		layers: append([]Layer(nil), layers...),
	}
	c._r_si, c._r_se = film_resistances(construction_type)

	total_resistance := 0.0
	c._thermal_resistances = make([]float64, len(layers))
	c._thermal_capacities = make([]float64, len(layers))
	for i, layer := range layers {
		c._thermal_resistances[i] = layer.ThermalResistance()
		c._thermal_capacities[i] = layer.ThermalCapacity()
		total_resistance += layer.ThermalResistance()
	}
	if !(total_resistance > 0) || math.IsInf(total_resistance, 0) {
		return nil, &WrongConstructionTypeError{
			Construction: name,
			Detail:       "total thermal resistance of the layer stack is not positive",
		}
	}

	c._u_value_net = 1.0 / total_resistance
	c._u_value = 1.0 / (c._r_si + c._r_se + total_resistance)
	c._k_est = effective_capacity(layers, false)
	c._k_int = effective_capacity(layers, true)

	// Outermost opaque layer sets the short-wave absorptance of the stack.
	c._ext_absorptance = 0.6
	if mat, ok := layers[0].(*Material); ok {
		c._ext_absorptance = mat.Absorptance()
	}

	c._r1, c._c1 = vdi6007_layer_reduction(c._thermal_resistances, c._thermal_capacities, true)

	return c, nil
}

/*
effective_capacity sums the areal heat capacities of the layers within
effective_capacity_depth of one face of the stack, pro-rating the layer that
crosses the depth limit (ISO 13786 simplified effective thickness).

Args:

	layers: layer stack, outside to inside
	from_inside: true for k_int (zone-facing side), false for k_est
*/
func effective_capacity(layers []Layer, from_inside bool) float64 {
	n := len(layers)
	capacity := 0.0
	depth := 0.0
	for i := 0; i < n; i++ {
		layer := layers[i]
		if from_inside {
			layer = layers[n-1-i]
		}
		thick := layer.Thickness()
		if depth+thick <= effective_capacity_depth {
			capacity += layer.ThermalCapacity()
		} else if thick > 0 {
			capacity += layer.ThermalCapacity() * (effective_capacity_depth - depth) / thick
			break
		}
		depth += thick
		if depth >= effective_capacity_depth {
			break
		}
	}
	return capacity
}

/*
vdi6007_layer_reduction reduces a layered wall to a single (R1, C1) pair per
unit area by evaluating the stack's chain (transmission) matrix at the
VDI 6007 reference period.

Each homogeneous layer of resistance R and capacity C contributes the complex
two-port matrix

	| cosh(a)        R sinh(a)/a |        a = (1+j) sqrt(omega R C / 2)
	| a sinh(a)/R    cosh(a)     |

and the stack matrix is the ordered product, outside face first. The
equivalent elements are taken from the zone-facing series branch of the
T-network: R1 = Re{(A22-1)/A21}, C1 from its capacitive reactance
(VDI 6007-1, layer reduction for asymmetrically loaded walls; the symmetric
variant averages the two faces).

Args:

	resistances: per-layer resistance, (m2 K)/W, outside to inside
	capacities: per-layer areal capacity, J/(m2 K), outside to inside
	asim: true for asymmetric loading (the zone drives one face)

Returns:

	R1 per unit area, (m2 K)/W, and C1 per unit area, J/(m2 K)
*/
func vdi6007_layer_reduction(resistances, capacities []float64, asim bool) (float64, float64) {
	omega := 2.0 * math.Pi / (86400.0 * t_bt_days)

	// Chain matrix product, outside face first.
	a11 := complex(1, 0)
	a12 := complex(0, 0)
	a21 := complex(0, 0)
	a22 := complex(1, 0)
	for i := range resistances {
		r := resistances[i]
		c := capacities[i]

		var l11, l12, l21, l22 complex128
		if c <= 0 {
			// Massless layer: pure series resistance.
			l11, l12, l21, l22 = 1, complex(r, 0), 0, 1
		} else {
			x := math.Sqrt(omega * r * c / 2.0)
			a := complex(x, x)
			sinh := cmplx.Sinh(a)
			l11 = cmplx.Cosh(a)
			l12 = complex(r, 0) * sinh / a
			l21 = a * sinh / complex(r, 0)
			l22 = l11
		}

		a11, a12, a21, a22 =
			a11*l11+a12*l21,
			a11*l12+a12*l22,
			a21*l11+a22*l21,
			a21*l12+a22*l22
	}

	if a21 == 0 {
		// Stack with no thermal mass at all: pure resistance, no capacity.
		total := 0.0
		for _, r := range resistances {
			total += r
		}
		return total / 2.0, 0.0
	}

	zone_side := (a22 - 1) / a21
	z := zone_side
	if !asim {
		z = (zone_side + (a11-1)/a21) / 2
	}

	r1 := real(z)
	c1 := -1.0 / (omega * imag(z))
	return r1, c1
}

/*
VDI6007SurfaceParams returns the surface-level equivalent impedance of the
construction for a given surface area.

Args:

	area: surface area, m2
	asim: true for asymmetric loading

Returns:

	R1 in K/W and C1 in J/K
*/
func (self *Construction) VDI6007SurfaceParams(area float64, asim bool) (float64, float64) {
	r1, c1 := self._r1, self._c1
	if !asim {
		r1, c1 = vdi6007_layer_reduction(self._thermal_resistances, self._thermal_capacities, false)
	}
	return r1 / area, c1 * area
}

// UValue returns the overall heat transfer coefficient including the surface
// film resistances, W/(m2 K).
func (self *Construction) UValue() float64 { return self._u_value }

// UValueNet returns the layers-only heat transfer coefficient, W/(m2 K).
func (self *Construction) UValueNet() float64 { return self._u_value_net }

// KInt returns the areal heat capacity attributed to the internal face, J/(m2 K).
func (self *Construction) KInt() float64 { return self._k_int }

// KEst returns the areal heat capacity attributed to the external face, J/(m2 K).
func (self *Construction) KEst() float64 { return self._k_est }

// ExtAbsorptance returns the short-wave absorptance of the outside face.
func (self *Construction) ExtAbsorptance() float64 { return self._ext_absorptance }

// RSi returns the internal surface film resistance, (m2 K)/W.
func (self *Construction) RSi() float64 { return self._r_si }

// RSe returns the external surface film resistance, (m2 K)/W.
func (self *Construction) RSe() float64 { return self._r_se }

// ThermalResistances returns the per-layer resistances, outside to inside.
func (self *Construction) ThermalResistances() []float64 { return self._thermal_resistances }

// TotalThermalResistance returns the layers-only resistance, (m2 K)/W.
func (self *Construction) TotalThermalResistance() float64 {
	total := 0.0
	for _, r := range self._thermal_resistances {
		total += r
	}
	return total
}

// RadHeatTransCoefExt returns the radiative part of the external film
// coefficient, W/(m2 K) (alphaStr in the VDI 6007 network).
func (self *Construction) RadHeatTransCoefExt() float64 { return 5.0 }

// ConvHeatTransCoefExt returns the convective part of the external film
// coefficient, W/(m2 K).
func (self *Construction) ConvHeatTransCoefExt() float64 {
	return 1.0/self._r_se - self.RadHeatTransCoefExt()
}
