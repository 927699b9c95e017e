package eureca_building

import (
	"log"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Angle-of-incidence grid and transmission modifiers used to build the solar
// heat gain profile of a glazing from its normal-incidence value. Typical
// double-glazing incidence-angle curve; the diffuse component is evaluated at
// the conventional 70 degree angle.
var (
	shgc_profile_angles    = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	shgc_profile_modifiers = []float64{1.00, 1.00, 0.99, 0.98, 0.96, 0.92, 0.85, 0.72, 0.45, 0.00}
)

// Angle of incidence at which the diffuse solar heat gain is evaluated, deg.
const diffuse_shgc_angle = 70.0

/*
SimpleWindow models a glazed element with an equivalent U-value and an
angle-of-incidence dependent solar heat gain profile.

All fractional factors are validated in [0, 1]. The conduction resistance of
the glass alone (Rl_w) and the internal film resistance (Ri_w) feed the
VDI 6007 couplings.
*/
type SimpleWindow struct {
	Name string

	_u_value               float64 // W/(m2 K)
	_solar_heat_gain_coef  float64 // normal incidence, -
	_visible_transmittance float64 // -
	_frame_factor          float64 // frame fraction of the window area, -
	_shading_coef_int      float64 // -
	_shading_coef_ext      float64 // -

	_ri_w float64 // internal film resistance, (m2 K)/W
	_re_w float64 // external film resistance, (m2 K)/W
	_rl_w float64 // glass-only conduction resistance, (m2 K)/W

	shgc_profile interp.PiecewiseLinear
}

/*
NewSimpleWindow creates and validates a window.

Args:

	name: name
	u_value: overall heat transfer coefficient, W/(m2 K)
	solar_heat_gain_coef: solar heat gain coefficient at normal incidence, -
	visible_transmittance: -
	frame_factor: fraction of the window area occupied by the frame, -
	shading_coef_int: internal shading coefficient, -
	shading_coef_ext: external shading coefficient, -

Returns:

	the window, or a PropertyOutsideBoundariesError on the first violated
	bound.
*/
func NewSimpleWindow(
	name string,
	u_value float64,
	solar_heat_gain_coef float64,
	visible_transmittance float64,
	frame_factor float64,
	shading_coef_int float64,
	shading_coef_ext float64,
) (*SimpleWindow, error) {
	w := &SimpleWindow{Name: name}

	lim := window_limits["U_value"]
	if math.IsNaN(u_value) || u_value < lim[0] || u_value > lim[1] {
		return nil, &PropertyOutsideBoundariesError{
			Object: name, Property: "U_value", Unit: units["U_value"], Limits: lim, Value: u_value,
		}
	}
	w._u_value = u_value

	fractions := []struct {
		prop  string
		value float64
		field *float64
	}{
		{"solar_heat_gain_coef", solar_heat_gain_coef, &w._solar_heat_gain_coef},
		{"visible_transmittance", visible_transmittance, &w._visible_transmittance},
		{"frame_factor", frame_factor, &w._frame_factor},
		{"shading_coef_int", shading_coef_int, &w._shading_coef_int},
		{"shading_coef_ext", shading_coef_ext, &w._shading_coef_ext},
	}
	flim := window_limits["fraction"]
	for _, f := range fractions {
		if math.IsNaN(f.value) || f.value < flim[0] || f.value > flim[1] {
			return nil, &PropertyOutsideBoundariesError{
				Object: name, Property: f.prop, Unit: units["fraction"], Limits: flim, Value: f.value,
			}
		}
		*f.field = f.value
	}

	// Film resistances of a vertical glazed element. The glass-only
	// resistance can go negative for very poor glazings; it is floored to
	// keep the VDI network finite.
	w._ri_w = 0.13
	w._re_w = 0.04
	w._rl_w = 1.0/u_value - w._ri_w - w._re_w
	if w._rl_w < 1e-4 {
		log.Printf("Window %s, glass-only resistance floored to 1e-4 (U %g)", name, u_value)
		w._rl_w = 1e-4
	}

	shgc := make([]float64, len(shgc_profile_angles))
	for i, mod := range shgc_profile_modifiers {
		shgc[i] = solar_heat_gain_coef * mod
	}
	if err := w.shgc_profile.Fit(shgc_profile_angles, shgc); err != nil {
		return nil, err
	}

	return w, nil
}

/*
SolarHeatGainCoef interpolates the solar heat gain coefficient at the given
angle of incidence.

Args:

	angle_of_incidence: deg, clamped to [0, 90]

Returns:

	solar heat gain coefficient, -
*/
func (self *SimpleWindow) SolarHeatGainCoef(angle_of_incidence float64) float64 {
	if math.IsNaN(angle_of_incidence) {
		return 0.0
	}
	aoi := math.Min(math.Max(angle_of_incidence, 0.0), 90.0)
	return self.shgc_profile.Predict(aoi)
}

// SolarHeatGainCoefDiffuse returns the profile evaluated at the conventional
// diffuse-radiation incidence angle.
func (self *SimpleWindow) SolarHeatGainCoefDiffuse() float64 {
	return self.shgc_profile.Predict(diffuse_shgc_angle)
}

func (self *SimpleWindow) UValue() float64               { return self._u_value }
func (self *SimpleWindow) VisibleTransmittance() float64 { return self._visible_transmittance }
func (self *SimpleWindow) FrameFactor() float64          { return self._frame_factor }
func (self *SimpleWindow) ShadingCoefInt() float64       { return self._shading_coef_int }
func (self *SimpleWindow) ShadingCoefExt() float64       { return self._shading_coef_ext }

// RiW returns the internal film resistance, (m2 K)/W.
func (self *SimpleWindow) RiW() float64 { return self._ri_w }

// RlW returns the glass-only conduction resistance, (m2 K)/W.
func (self *SimpleWindow) RlW() float64 { return self._rl_w }
