package eureca_building

import (
	"log"
	"math"
)

// Surface type tags.
const (
	SurfaceTypeExtWall     = "ExtWall"
	SurfaceTypeGroundFloor = "GroundFloor"
	SurfaceTypeRoof        = "Roof"
	SurfaceTypeIntWall     = "IntWall"
	SurfaceTypeIntCeiling  = "IntCeiling"
	SurfaceTypeIntFloor    = "IntFloor"
)

var external_surface_types = []string{SurfaceTypeExtWall, SurfaceTypeGroundFloor, SurfaceTypeRoof}
var internal_surface_types = []string{SurfaceTypeIntWall, SurfaceTypeIntCeiling, SurfaceTypeIntFloor}

// SubdivisionsSolarCalc sets the discretization of the sky vault used to
// index the weather irradiance tables.
type SubdivisionsSolarCalc struct {
	AzimuthSubdivisions int
	HeightSubdivisions  int
}

// Default sky discretization, matching the weather preprocessing defaults.
var default_subdivisions = SubdivisionsSolarCalc{AzimuthSubdivisions: 8, HeightSubdivisions: 3}

// One-shot warnings for unreasonably fine sky discretizations.
var (
	warned_azimuth_subdivisions = false
	warned_height_subdivisions  = false
)

/*
Surface models one polygonal boundary of a thermal zone.

The vertex polygon is validated (>= 3 finite 3D vertices, coplanar within
tolerance) and fully reduced at construction time: area (floored to 1e-10 for
degenerate polygons so downstream reciprocals stay defined), outward normal,
height (tilt) and azimuth angles, the snapped solar bucket used for weather
irradiance lookup, the sky view factor, and the opaque/glazed split from the
window-to-wall ratio.

The construction and window are shared references; the surface does not own
them.
*/
type Surface struct {
	Name string

	_vertices []Vertex
	_area     float64
	_normal   Vertex

	_height  float64 // tilt angle from the vertical axis, deg (0 up, 180 down)
	_azimuth float64 // deg, 0 south, positive eastwards negative westwards

	_azimuth_subdivisions int
	_height_subdivisions  int
	_height_round         int
	_azimuth_round        int
	_sky_view_factor      float64

	_wwr         float64
	_opaque_area float64
	_glazed_area float64

	_surface_type string

	construction *Construction
	window       *SimpleWindow
}

/*
NewSurface creates the surface and computes its derived geometry.

Args:

	name: name
	vertices: ordered polygon vertices, m; at least 3, coplanar
	wwr: window to wall ratio in [0, 0.999)
	subdivisions: sky discretization; nil for the defaults (8 azimuth, 3 height)
	surface_type: ExtWall, GroundFloor or Roof; empty string infers it from
	    the tilt (<40 deg Roof, >150 deg GroundFloor, else ExtWall)
	construction: shared Construction reference, may be nil
	window: shared SimpleWindow reference, may be nil

Returns:

	the surface, or a typed geometry/validation error.
*/
func NewSurface(
	name string,
	vertices []Vertex,
	wwr float64,
	subdivisions *SubdivisionsSolarCalc,
	surface_type string,
	construction *Construction,
	window *SimpleWindow,
) (*Surface, error) {
	if len(vertices) < 3 {
		return nil, &SurfaceWrongNumberOfVerticesError{Surface: name, Vertices: len(vertices)}
	}
	for i, v := range vertices {
		for _, comp := range v {
			if math.IsNaN(comp) || math.IsInf(comp, 0) {
				return nil, &Non3ComponentsVertexError{Surface: name, Index: i}
			}
		}
	}
	if !check_coplanarity(vertices) {
		return nil, &NonPlanarSurfaceError{Surface: name}
	}

	s := &Surface{
		Name:         name,
		_vertices:    append([]Vertex(nil), vertices...),
		construction: construction,
		window:       window,
	}

	area := polygon_area(s._vertices)
	if area < 0 {
		return nil, &NegativeSurfaceAreaError{Surface: name, Area: area}
	}
	if area == 0 {
		// Degenerate polygon tolerance, not a validity claim.
		area = 1e-10
	}
	s._area = area
	s._normal = normal_versor(s._vertices)
	s.set_azimuth_and_zenith()

	if err := s.SetWindowToWallRatio(wwr); err != nil {
		return nil, err
	}

	sub := default_subdivisions
	if subdivisions != nil {
		sub = *subdivisions
	}
	if err := s.set_subdivisions(sub); err != nil {
		return nil, err
	}

	if surface_type == "" {
		s.set_auto_surface_type()
	} else {
		if err := s.SetSurfaceType(surface_type); err != nil {
			return nil, err
		}
	}

	return s, nil
}

/*
set_azimuth_and_zenith maps the outward normal to the height (tilt) and
azimuth angles, deg.

Horizontal surfaces are special-cased so the azimuth arctangent never hits an
undefined quotient: normal (0,0,1) gives height 0 and azimuth 0; (0,0,-1)
gives height 180 and azimuth 0.
*/
func (self *Surface) set_azimuth_and_zenith() {
	n := self._normal
	switch {
	case n[2] == 1:
		self._height = 0
		self._azimuth = 0
	case n[2] == -1:
		self._height = 180
		self._azimuth = 0
	default:
		self._height = 90 - degrees(math.Atan(n[2]/math.Sqrt(n[0]*n[0]+n[1]*n[1])))
		if n[1] == 0 {
			if n[0] > 0 {
				self._azimuth = -90
			} else {
				self._azimuth = 90
			}
		} else if n[1] < 0 {
			self._azimuth = degrees(math.Atan(n[0] / n[1]))
		} else {
			if n[0] < 0 {
				self._azimuth = 180 + degrees(math.Atan(n[0]/n[1]))
			} else {
				self._azimuth = -180 + degrees(math.Atan(n[0]/n[1]))
			}
		}
	}
}

/*
SetWindowToWallRatio re-validates the window-to-wall ratio and recomputes the
opaque/glazed split.

Returns a PropertyOutsideBoundariesError outside [0, 0.999).
*/
func (self *Surface) SetWindowToWallRatio(wwr float64) error {
	if math.IsNaN(wwr) || wwr < 0.0 || wwr >= 0.999 {
		return &PropertyOutsideBoundariesError{
			Object:   self.Name,
			Property: "window_to_wall_ratio",
			Unit:     units["fraction"],
			Limits:   [2]float64{0.0, 0.999},
			Value:    wwr,
		}
	}
	self._wwr = wwr
	self._opaque_area = (1 - wwr) * self._area
	self._glazed_area = wwr * self._area
	return nil
}

func (self *Surface) set_subdivisions(sub SubdivisionsSolarCalc) error {
	if sub.AzimuthSubdivisions < 1 || sub.AzimuthSubdivisions > 100 {
		return &PropertyOutsideBoundariesError{
			Object: self.Name, Property: "azimuth_subdivisions",
			Limits: [2]float64{1, 100}, Value: float64(sub.AzimuthSubdivisions),
		}
	}
	if sub.HeightSubdivisions < 1 || sub.HeightSubdivisions > 50 {
		return &PropertyOutsideBoundariesError{
			Object: self.Name, Property: "height_subdivisions",
			Limits: [2]float64{1, 50}, Value: float64(sub.HeightSubdivisions),
		}
	}
	if sub.AzimuthSubdivisions > 16 && !warned_azimuth_subdivisions {
		log.Printf("For one or more surfaces azimuth_subdivisions is high: %d. The calculation time can be long", sub.AzimuthSubdivisions)
		warned_azimuth_subdivisions = true
	}
	if sub.HeightSubdivisions > 6 && !warned_height_subdivisions {
		log.Printf("For one or more surfaces height_subdivisions is high: %d. The calculation time can be long", sub.HeightSubdivisions)
		warned_height_subdivisions = true
	}
	self._azimuth_subdivisions = sub.AzimuthSubdivisions
	self._height_subdivisions = sub.HeightSubdivisions
	self.set_azimuth_and_zenith_solar_radiation()
	return nil
}

/*
set_azimuth_and_zenith_solar_radiation snaps the height and azimuth angles to
the centers of their enclosing sky buckets.

Bucket widths are 90/height_subdivisions over [0, 90] and
360/azimuth_subdivisions over [-180, 180). The snapped pair indexes the
weather per-orientation irradiance table. Downward-facing surfaces
(height >= 150) collapse to the (0, 0) bucket; an azimuth snapped to +180
wraps to -180.
*/
func (self *Surface) set_azimuth_and_zenith_solar_radiation() {
	delta_h := 90.0 / (2.0 * float64(self._height_subdivisions))
	self._height_round = 0
	found := false
	for x := -delta_h; x < 90.0+delta_h; x += 2 * delta_h {
		if self._height >= x && self._height < x+2*delta_h {
			self._height_round = int(math.Round(x + delta_h))
			found = true
			break
		}
	}
	if !found && self._height >= 90.0-delta_h && self._height < 150.0 {
		self._height_round = 90
	}
	self._sky_view_factor = (1 + math.Cos(radians(float64(self._height_round)))) / 2

	delta_a := 360.0 / (2.0 * float64(self._azimuth_subdivisions))
	self._azimuth_round = 0
	for y := -180.0 - delta_a; y < 180.0+delta_a; y += 2 * delta_a {
		if self._azimuth >= y && self._azimuth < y+2*delta_a {
			self._azimuth_round = int(math.Round(y + delta_a))
			break
		}
	}
	if self._azimuth_round == 180 {
		self._azimuth_round = -180
	}
	if self._height_round == 0 {
		self._azimuth_round = 0
	}
}

// set_auto_surface_type infers the surface type from the tilt angle.
func (self *Surface) set_auto_surface_type() {
	switch {
	case self._height < 40:
		self._surface_type = SurfaceTypeRoof
	case self._height > 150:
		self._surface_type = SurfaceTypeGroundFloor
	default:
		self._surface_type = SurfaceTypeExtWall
	}
}

// SetSurfaceType validates an explicit external surface type tag.
func (self *Surface) SetSurfaceType(value string) error {
	switch value {
	case SurfaceTypeExtWall, SurfaceTypeGroundFloor, SurfaceTypeRoof:
		self._surface_type = value
		return nil
	default:
		return &InvalidSurfaceTypeError{Surface: self.Name, Type: value, Allowed: external_surface_types}
	}
}

/*
ExternalRadiativeCoefficient returns the long-wave radiative heat transfer
coefficient of the external face, W/(m2 K) (ISO 13790, 5 W/(m2 K) scaled by
the surface emissivity).
*/
func (self *Surface) ExternalRadiativeCoefficient() float64 {
	return 5.0 * get_eps()
}

func (self *Surface) Area() float64          { return self._area }
func (self *Surface) OpaqueArea() float64    { return self._opaque_area }
func (self *Surface) GlazedArea() float64    { return self._glazed_area }
func (self *Surface) Height() float64        { return self._height }
func (self *Surface) Azimuth() float64       { return self._azimuth }
func (self *Surface) HeightRound() int       { return self._height_round }
func (self *Surface) AzimuthRound() int      { return self._azimuth_round }
func (self *Surface) SkyViewFactor() float64 { return self._sky_view_factor }
func (self *Surface) SurfaceType() string    { return self._surface_type }
func (self *Surface) Normal() Vertex         { return self._normal }

func (self *Surface) Construction() *Construction { return self.construction }
func (self *Surface) Window() *SimpleWindow       { return self.window }

// MaxHeight returns the highest vertex z coordinate, m.
func (self *Surface) MaxHeight() float64 {
	hmax := math.Inf(-1)
	for _, v := range self._vertices {
		hmax = math.Max(hmax, v[2])
	}
	return hmax
}

// MinHeight returns the lowest vertex z coordinate, m.
func (self *Surface) MinHeight() float64 {
	hmin := math.Inf(1)
	for _, v := range self._vertices {
		hmin = math.Min(hmin, v[2])
	}
	return hmin
}

/*
SurfaceInternalMass degenerates the geometry to a bare area with an internal
surface type, used for internal thermal mass with no solar exposure.
*/
type SurfaceInternalMass struct {
	Name string

	_area         float64
	_surface_type string

	construction *Construction
}

/*
NewSurfaceInternalMass creates an internal mass surface.

Args:

	name: name
	area: m2; zero is floored to 1e-10, negative is a typed error
	surface_type: IntWall, IntCeiling or IntFloor; empty defaults to IntWall
	    with a logged warning
	construction: shared Construction reference, may be nil
*/
func NewSurfaceInternalMass(name string, area float64, surface_type string, construction *Construction) (*SurfaceInternalMass, error) {
	if math.IsNaN(area) || area < 0 {
		return nil, &NegativeSurfaceAreaError{Surface: name, Area: area}
	}
	if area == 0 {
		area = 1e-10
	}
	if surface_type == "" {
		log.Printf("SurfaceInternalMass %s, surface_type not set: IntWall will be assigned", name)
		surface_type = SurfaceTypeIntWall
	}
	switch surface_type {
	case SurfaceTypeIntWall, SurfaceTypeIntCeiling, SurfaceTypeIntFloor:
	default:
		return nil, &InvalidSurfaceTypeError{Surface: name, Type: surface_type, Allowed: internal_surface_types}
	}
	return &SurfaceInternalMass{
		Name:          name,
		_area:         area,
		_surface_type: surface_type,
		construction:  construction,
	}, nil
}

func (self *SurfaceInternalMass) Area() float64               { return self._area }
func (self *SurfaceInternalMass) OpaqueArea() float64         { return self._area }
func (self *SurfaceInternalMass) GlazedArea() float64         { return 0.0 }
func (self *SurfaceInternalMass) SurfaceType() string         { return self._surface_type }
func (self *SurfaceInternalMass) Construction() *Construction { return self.construction }
func (self *SurfaceInternalMass) Window() *SimpleWindow       { return nil }

// ZoneSurface is the contract ThermalZone needs from both Surface and
// SurfaceInternalMass.
type ZoneSurface interface {
	Area() float64
	OpaqueArea() float64
	GlazedArea() float64
	SurfaceType() string
	Construction() *Construction
	Window() *SimpleWindow
}

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// surface name accessor shared by the two surface kinds.
func surface_name(s ZoneSurface) string {
	switch v := s.(type) {
	case *Surface:
		return v.Name
	case *SurfaceInternalMass:
		return v.Name
	default:
		return ""
	}
}
