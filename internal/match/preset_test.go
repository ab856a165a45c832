package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		sig  Signature
		want Preset
	}{
		{
			name: "no colour, no pois",
			sig:  Signature{},
			want: PresetNormal,
		},
		{
			name: "pure black",
			sig:  Signature{BackgroundColor: strPtr("#000000")},
			want: PresetNormal,
		},
		{
			name: "translucent black",
			sig:  Signature{BackgroundColor: strPtr("#ff000000")},
			want: PresetNormal,
		},
		{
			name: "stay sentinel",
			sig:  Signature{BackgroundColor: strPtr("#stay")},
			want: PresetNormal,
		},
		{
			name: "no colour but pois allowed",
			sig:  Signature{POIsAllowed: true},
			want: PresetNone,
		},
		{
			name: "pois allowed green",
			sig:  Signature{BackgroundColor: strPtr(ColorPOIsAllowed), POIsAllowed: true},
			want: PresetPOIsAllowed,
		},
		{
			name: "green without pois",
			sig:  Signature{BackgroundColor: strPtr(ColorPOIsAllowed)},
			want: PresetNone,
		},
		{
			name: "warning amber",
			sig:  Signature{BackgroundColor: strPtr(ColorWarning)},
			want: PresetWarning,
		},
		{
			name: "amber with pois",
			sig:  Signature{BackgroundColor: strPtr(ColorWarning), POIsAllowed: true},
			want: PresetNone,
		},
		{
			name: "overtime red",
			sig:  Signature{BackgroundColor: strPtr(ColorOvertime)},
			want: PresetOvertime,
		},
		{
			name: "description disqualifies",
			sig:  Signature{Description: "Overtime", BackgroundColor: strPtr(ColorOvertime)},
			want: PresetNone,
		},
		{
			name: "description disqualifies normal",
			sig:  Signature{Description: "Speaking"},
			want: PresetNone,
		},
		{
			name: "colour comparison is case sensitive",
			sig:  Signature{BackgroundColor: strPtr("#77FF0000")},
			want: PresetNone,
		},
		{
			name: "other colour",
			sig:  Signature{BackgroundColor: strPtr("#7733aaff")},
			want: PresetNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sig))
		})
	}
}

func TestPresetRefs(t *testing.T) {
	assert.Equal(t, []string{"normal", "pois-allowed", "warning", "overtime"}, BuiltInRefs())

	assert.Equal(t, "", PresetNone.Ref())
	assert.False(t, PresetNone.IsBuiltIn())
	assert.True(t, PresetOvertime.IsBuiltIn())
	assert.Equal(t, "Preset(9)", Preset(9).String())

	p, ok := PresetByRef("warning")
	assert.True(t, ok)
	assert.Equal(t, PresetWarning, p)

	_, ok = PresetByRef("none")
	assert.False(t, ok)
}
