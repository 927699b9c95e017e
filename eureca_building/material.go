package eureca_building

import "math"

/*
Material models a single opaque layer of a construction.

Properties are validated against the reference bounds in material_limits at
construction time and on every set_* call; the derived thermal resistance and
capacity are recomputed after each successful change.
*/
type Material struct {
	Name string

	_thick       float64 // Thickness, m
	_cond        float64 // Conductivity, W/(m K)
	_spec_heat   float64 // Specific heat, J/(kg K)
	_dens        float64 // Density, kg/m3
	_absorptance float64 // Short-wave absorptance, -

	_resistance float64 // Thermal resistance, (m2 K)/W
	_capacity   float64 // Areal thermal capacity, J/(m2 K)
}

/*
NewMaterial creates and validates a material.

Args:

	name: name
	thick: thickness, m
	cond: conductivity, W/(m K)
	spec_heat: specific heat, J/(kg K)
	dens: density, kg/m3

Returns:

	the material, or a PropertyOutsideBoundariesError on the first property
	that violates the reference bounds.
*/
func NewMaterial(name string, thick, cond, spec_heat, dens float64) (*Material, error) {
	m := &Material{Name: name, _absorptance: 0.6}
	if err := m.SetThickness(thick); err != nil {
		return nil, err
	}
	if err := m.SetConductivity(cond); err != nil {
		return nil, err
	}
	if err := m.SetSpecificHeat(spec_heat); err != nil {
		return nil, err
	}
	if err := m.SetDensity(dens); err != nil {
		return nil, err
	}
	return m, nil
}

func (self *Material) check(prop, unit string, value float64) error {
	lim := material_limits[prop]
	if math.IsNaN(value) || value < lim[0] || value > lim[1] {
		return &PropertyOutsideBoundariesError{
			Object:   self.Name,
			Property: prop,
			Unit:     units[unit],
			Limits:   lim,
			Value:    value,
		}
	}
	return nil
}

func (self *Material) SetThickness(value float64) error {
	if err := self.check("thickness", "length", value); err != nil {
		return err
	}
	self._thick = value
	self.calc_params()
	return nil
}

func (self *Material) SetConductivity(value float64) error {
	if err := self.check("conductivity", "conductivity", value); err != nil {
		return err
	}
	self._cond = value
	self.calc_params()
	return nil
}

func (self *Material) SetSpecificHeat(value float64) error {
	if err := self.check("specific_heat", "specific_heat", value); err != nil {
		return err
	}
	self._spec_heat = value
	self.calc_params()
	return nil
}

func (self *Material) SetDensity(value float64) error {
	if err := self.check("density", "density", value); err != nil {
		return err
	}
	self._dens = value
	self.calc_params()
	return nil
}

func (self *Material) SetAbsorptance(value float64) error {
	if err := self.check("absorptance", "absorptance", value); err != nil {
		return err
	}
	self._absorptance = value
	return nil
}

// Derived parameters. Conductivity and specific heat may still be zero during
// construction; the resistance is finalized once all properties are set.
func (self *Material) calc_params() {
	if self._cond > 0 {
		self._resistance = self._thick / self._cond
	}
	self._capacity = self._thick * self._dens * self._spec_heat
}

func (self *Material) Thickness() float64    { return self._thick }
func (self *Material) Conductivity() float64 { return self._cond }
func (self *Material) SpecificHeat() float64 { return self._spec_heat }
func (self *Material) Density() float64      { return self._dens }
func (self *Material) Absorptance() float64  { return self._absorptance }

// ThermalResistance returns thickness/conductivity, (m2 K)/W.
func (self *Material) ThermalResistance() float64 { return self._resistance }

// ThermalCapacity returns thickness*density*specific_heat, J/(m2 K).
func (self *Material) ThermalCapacity() float64 { return self._capacity }

/*
AirGapMaterial models a still-air cavity layer: a fixed thermal resistance
with no thermal capacity.
*/
type AirGapMaterial struct {
	Name string

	_thick      float64 // Thickness, m
	_resistance float64 // Thermal resistance, (m2 K)/W
}

/*
NewAirGapMaterial creates and validates an air gap layer.

Args:

	name: name
	thick: thickness, m
	resistance: thermal resistance, (m2 K)/W
*/
func NewAirGapMaterial(name string, thick, resistance float64) (*AirGapMaterial, error) {
	m := &AirGapMaterial{Name: name}
	if err := m.SetThickness(thick); err != nil {
		return nil, err
	}
	if err := m.SetResistance(resistance); err != nil {
		return nil, err
	}
	return m, nil
}

func (self *AirGapMaterial) SetThickness(value float64) error {
	lim := material_limits["thickness"]
	if math.IsNaN(value) || value < lim[0] || value > lim[1] {
		return &PropertyOutsideBoundariesError{
			Object:   self.Name,
			Property: "thickness",
			Unit:     units["length"],
			Limits:   lim,
			Value:    value,
		}
	}
	self._thick = value
	return nil
}

func (self *AirGapMaterial) SetResistance(value float64) error {
	lim := material_limits["thermal_resistance"]
	if math.IsNaN(value) || value < lim[0] || value > lim[1] {
		return &PropertyOutsideBoundariesError{
			Object:   self.Name,
			Property: "thermal_resistance",
			Unit:     units["thermal_resistance"],
			Limits:   lim,
			Value:    value,
		}
	}
	self._resistance = value
	return nil
}

func (self *AirGapMaterial) Thickness() float64         { return self._thick }
func (self *AirGapMaterial) ThermalResistance() float64 { return self._resistance }

// ThermalCapacity of an air gap is zero.
func (self *AirGapMaterial) ThermalCapacity() float64 { return 0.0 }

// Layer is the common contract of Material and AirGapMaterial inside a
// construction stack.
type Layer interface {
	Thickness() float64
	ThermalResistance() float64
	ThermalCapacity() float64
}
