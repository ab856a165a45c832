package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debateformat-migrate/internal/diagnostic"
	"debateformat-migrate/internal/match"
)

func customPeriod(ref string) *Period {
	desc := "Custom " + ref

	return &Period{OriginalRef: ref, Description: &desc, Origin: "test"}
}

func TestRegistryAssignsUniqueRefs(t *testing.T) {
	reg := NewRegistry()

	var diags diagnostic.Diagnostics

	refs := []string{"x", "x", "x1", "normal", "warning", "x"}
	want := []string{"x", "x1", "x11", "normal1", "warning1", "x2"}

	for i, ref := range refs {
		p := customPeriod(ref)
		require.NoError(t, reg.Add(p, &diags))
		assert.Equal(t, want[i], p.ConvertedRef, "period %d", i)
	}

	assert.Equal(t, 6, reg.Len())
	assert.Len(t, reg.Custom(), 6)
	assert.Len(t, diags.WithCode(diagnostic.CodePeriodRenamed), 5)

	p, ok := reg.Lookup("normal1")
	require.True(t, ok)
	assert.Equal(t, "normal", p.OriginalRef)

	_, ok = reg.Lookup("normal")
	assert.False(t, ok, "built-in refs are reserved, never assigned")
}

func TestRegistryBuiltInPeriods(t *testing.T) {
	reg := NewRegistry()

	var diags diagnostic.Diagnostics

	a := &Period{OriginalRef: "speaking", Preset: match.PresetNormal}
	b := &Period{OriginalRef: "speaking", Preset: match.PresetNormal}
	c := customPeriod("speaking")

	require.NoError(t, reg.Add(a, &diags))
	require.NoError(t, reg.Add(b, &diags))
	require.NoError(t, reg.Add(c, &diags))

	assert.Equal(t, "normal", a.ConvertedRef)
	assert.Equal(t, "normal", b.ConvertedRef)
	assert.Equal(t, "speaking", c.ConvertedRef, "built-in matches do not claim their local ref")

	assert.Equal(t, []*Period{a, b, c}, reg.Periods())
	assert.Equal(t, []*Period{c}, reg.Custom())
	assert.Len(t, diags.WithCode(diagnostic.CodePeriodMatchesPreset), 2)
}

func TestRegistryBuiltInWithoutRef(t *testing.T) {
	reg := NewRegistry()

	p := &Period{Preset: match.PresetOvertime}
	require.NoError(t, reg.Add(p, nil))
	assert.Equal(t, "overtime", p.ConvertedRef)
}

func TestRegistryRejectsCustomWithoutRef(t *testing.T) {
	reg := NewRegistry()

	err := reg.Add(customPeriod(""), nil)
	require.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Zero(t, reg.Len())
}
