package eureca_building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference_wall builds the masonry wall used as the U-value benchmark:
// plaster, hollow brick, air gap, insulation, plaster (outside to inside).
func reference_wall(t *testing.T) *Construction {
	t.Helper()
	plaster_out, err := NewMaterial("plaster out", 0.01, 1.0, 800, 2000)
	require.NoError(t, err)
	brick, err := NewMaterial("hollow brick", 0.15, 1.4, 800, 2000)
	require.NoError(t, err)
	gap, err := NewAirGapMaterial("air gap", 0.02, 0.5)
	require.NoError(t, err)
	insulation, err := NewMaterial("insulation", 0.01, 0.03, 1000, 30)
	require.NoError(t, err)
	plaster_in, err := NewMaterial("plaster in", 0.01, 1.0, 800, 2000)
	require.NoError(t, err)

	c, err := NewConstruction("reference wall", ConstructionExtWall,
		[]Layer{plaster_out, brick, gap, insulation, plaster_in})
	require.NoError(t, err)
	return c
}

func TestConstruction_ReferenceWallUValues(t *testing.T) {
	c := reference_wall(t)

	assert.InDelta(t, 0.884684616, c.UValue(), 1e-5, "gross U-value with film resistances")
	assert.InDelta(t, 1.041150223, c.UValueNet(), 1e-5, "net U-value, layers only")
}

func TestConstruction_FilmResistancesPerType(t *testing.T) {
	brick, err := NewMaterial("brick", 0.15, 1.4, 800, 2000)
	require.NoError(t, err)

	wall, err := NewConstruction("as wall", ConstructionExtWall, []Layer{brick})
	require.NoError(t, err)
	roof, err := NewConstruction("as roof", ConstructionRoof, []Layer{brick})
	require.NoError(t, err)
	ground, err := NewConstruction("as ground", ConstructionGroundFloor, []Layer{brick})
	require.NoError(t, err)

	// same layers, same net value; the gross one changes with the films
	assert.Equal(t, wall.UValueNet(), roof.UValueNet())
	assert.NotEqual(t, wall.UValue(), roof.UValue())
	assert.NotEqual(t, wall.UValue(), ground.UValue())

	r := brick.ThermalResistance()
	assert.InDelta(t, 1/(1/7.7+r+1/25.0), wall.UValue(), 1e-12)
	assert.InDelta(t, 1/(0.17+r+0.04), ground.UValue(), 1e-12)
}

func TestConstruction_EffectiveCapacities(t *testing.T) {
	c := reference_wall(t)

	// plaster (inside) and insulation both within 0.10 m of the inner face:
	// 0.01*2000*800 + 0.01*30*1000, plus the pro-rata share of the brick
	// beyond the air gap up to the 0.10 m depth
	assert.Greater(t, c.KInt(), 0.0)
	assert.Greater(t, c.KEst(), c.KInt(), "the outside face sees the brick mass first")
}

func TestConstruction_InvalidStacks(t *testing.T) {
	_, err := NewConstruction("empty", ConstructionExtWall, nil)
	var wrong *WrongConstructionTypeError
	require.ErrorAs(t, err, &wrong)

	brick, err := NewMaterial("brick", 0.15, 1.4, 800, 2000)
	require.NoError(t, err)
	_, err = NewConstruction("bad type", ConstructionType("Skylight"), []Layer{brick})
	require.ErrorAs(t, err, &wrong)
}

func TestConstruction_VDI6007ReductionMassless(t *testing.T) {
	gap, err := NewAirGapMaterial("air gap", 0.02, 0.5)
	require.NoError(t, err)
	c, err := NewConstruction("massless", ConstructionExtWall, []Layer{gap})
	require.NoError(t, err)

	r1, c1 := c.VDI6007SurfaceParams(1.0, true)
	assert.InDelta(t, 0.25, r1, 1e-12, "a massless stack reduces to half the series resistance")
	assert.Equal(t, 0.0, c1)
}

func TestConstruction_VDI6007ReductionBounds(t *testing.T) {
	c := reference_wall(t)

	area := 12.0
	r1, c1 := c.VDI6007SurfaceParams(area, true)
	assert.Greater(t, r1, 0.0)
	assert.Less(t, r1, c.TotalThermalResistance()/area, "the reduced resistance stays below the series one")
	assert.Greater(t, c1, 0.0)

	// scaling: R1 divides by area, C1 multiplies
	r1_unit, c1_unit := c.VDI6007SurfaceParams(1.0, true)
	assert.InDelta(t, r1_unit/area, r1, 1e-12)
	assert.InDelta(t, c1_unit*area, c1, 1e-6)
}

func TestConstruction_ExtAbsorptanceFromOutermostLayer(t *testing.T) {
	dark, err := NewMaterial("dark plaster", 0.01, 1.0, 800, 2000)
	require.NoError(t, err)
	require.NoError(t, dark.SetAbsorptance(0.9))
	brick, err := NewMaterial("brick", 0.15, 1.4, 800, 2000)
	require.NoError(t, err)

	c, err := NewConstruction("dark wall", ConstructionExtWall, []Layer{dark, brick})
	require.NoError(t, err)
	assert.Equal(t, 0.9, c.ExtAbsorptance())

	gap, err := NewAirGapMaterial("gap", 0.02, 0.5)
	require.NoError(t, err)
	c2, err := NewConstruction("gap outside", ConstructionExtWall, []Layer{gap, brick})
	require.NoError(t, err)
	assert.Equal(t, 0.6, c2.ExtAbsorptance(), "non-material outer layer falls back to the default")
}
