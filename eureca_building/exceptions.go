package eureca_building

import "fmt"

// Typed errors for model validation. Constructors and set_* methods return
// these at object-construction time; the solve paths assume a validated model
// and let IEEE NaN/Inf propagate instead of re-checking.

// PropertyOutsideBoundariesError is returned when a bounded physical property
// (material, window or surface) is set outside its allowed range.
type PropertyOutsideBoundariesError struct {
	Object   string     // name of the object (material, window, surface)
	Property string     // name of the property
	Unit     string     // unit of the property
	Limits   [2]float64 // allowed [lower, upper] range
	Value    float64    // the offending value
}

func (e *PropertyOutsideBoundariesError) Error() string {
	return fmt.Sprintf(
		"%s, property %s outside boundaries [%g, %g] %s: %g",
		e.Object, e.Property, e.Limits[0], e.Limits[1], e.Unit, e.Value,
	)
}

// WrongConstructionTypeError is returned for an unknown construction type tag
// or a layer stack that cannot form a valid resistance network.
type WrongConstructionTypeError struct {
	Construction string
	Detail       string
}

func (e *WrongConstructionTypeError) Error() string {
	return fmt.Sprintf("construction %s: %s", e.Construction, e.Detail)
}

// Surface geometry errors. Each malformation gets its own type so callers can
// distinguish wrong vertex arity from non-3D vertices from non-planar sets.

type SurfaceWrongNumberOfVerticesError struct {
	Surface  string
	Vertices int
}

func (e *SurfaceWrongNumberOfVerticesError) Error() string {
	return fmt.Sprintf("surface %s: number of vertices lower than 3: %d", e.Surface, e.Vertices)
}

type Non3ComponentsVertexError struct {
	Surface string
	Index   int
}

func (e *Non3ComponentsVertexError) Error() string {
	return fmt.Sprintf("surface %s: vertex %d is not a finite 3D point", e.Surface, e.Index)
}

type NonPlanarSurfaceError struct {
	Surface string
}

func (e *NonPlanarSurfaceError) Error() string {
	return fmt.Sprintf("surface %s: non planar points", e.Surface)
}

type NegativeSurfaceAreaError struct {
	Surface string
	Area    float64
}

func (e *NegativeSurfaceAreaError) Error() string {
	return fmt.Sprintf("surface %s: negative surface area: %g", e.Surface, e.Area)
}

type InvalidSurfaceTypeError struct {
	Surface string
	Type    string
	Allowed []string
}

func (e *InvalidSurfaceTypeError) Error() string {
	return fmt.Sprintf("surface %s: surface_type must be chosen from %v: %q", e.Surface, e.Allowed, e.Type)
}

// Schedule errors.

type InvalidScheduleTypeError struct {
	Schedule string
	Type     string
}

func (e *InvalidScheduleTypeError) Error() string {
	return fmt.Sprintf("schedule %s: invalid schedule type: %q", e.Schedule, e.Type)
}

type ScheduleOutsideBoundaryConditionError struct {
	Schedule string
	Limit    float64
	Value    float64
	Upper    bool
}

func (e *ScheduleOutsideBoundaryConditionError) Error() string {
	side := "below the lower"
	if e.Upper {
		side = "above the upper"
	}
	return fmt.Sprintf("schedule %s: value %g is %s limit %g", e.Schedule, e.Value, side, e.Limit)
}

type ScheduleLengthMismatchError struct {
	Schedule string
	Length   int
	Expected int
}

func (e *ScheduleLengthMismatchError) Error() string {
	return fmt.Sprintf(
		"schedule %s: length %d does not match the configured number of time steps per year %d",
		e.Schedule, e.Length, e.Expected,
	)
}

// Internal load errors.

type InvalidHeatGainUnitError struct {
	Load    string
	Unit    string
	Allowed []string
}

func (e *InvalidHeatGainUnitError) Error() string {
	return fmt.Sprintf("internal heat gain %s: unit must be chosen from %v: %q", e.Load, e.Allowed, e.Unit)
}

type ConvectiveRadiantFractionError struct {
	Load       string
	Radiant    float64
	Convective float64
}

func (e *ConvectiveRadiantFractionError) Error() string {
	return fmt.Sprintf(
		"internal heat gain %s: radiant/convective fraction sum not 1: %g + %g",
		e.Load, e.Radiant, e.Convective,
	)
}

type AreaNotProvidedError struct {
	Load string
}

func (e *AreaNotProvidedError) Error() string {
	return fmt.Sprintf("internal heat gain %s: specific load but area not provided", e.Load)
}

// MissingPropertyError signals a surface used in a zone calculation without
// the construction or window the calculation needs.
type MissingPropertyError struct {
	Zone     string
	Surface  string
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("thermal zone %s: surface %s %s not specified", e.Zone, e.Surface, e.Property)
}

// ZoneNotReadyError is returned when a solve or load calculation is requested
// on a zone whose parameter build has not run yet.
type ZoneNotReadyError struct {
	Zone      string
	Operation string
	State     ZoneState
}

func (e *ZoneNotReadyError) Error() string {
	return fmt.Sprintf("thermal zone %s: %s requested in state %s", e.Zone, e.Operation, e.State)
}
