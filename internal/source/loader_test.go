package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `<?xml version="1.0" encoding="UTF-8"?>
<debateformat name="Test format" schemaversion="1.1">
  <info>
    <region>Australia</region>
    <region>New Zealand</region>
    <level>University</level>
    <usedat>Easters</usedat>
    <desc>Three on three.</desc>
  </info>
  <resource ref="#all">
    <period ref="normal" poisallowed="false"/>
    <bell time="finish" number="2" nextperiod="overtime"/>
    <period ref="overtime" bgcolor="#77ff0000"/>
  </resource>
  <resource ref="pois">
    <period ref="pois" bgcolor="#7700ff00" poisallowed="true"/>
  </resource>
  <preptime-controlled length="15:00" firstperiod="choose">
    <period ref="choose" desc="Choose motion" bgcolor="#7733aaff"/>
    <bell time="5:00" number="1" pauseonbell="true"/>
  </preptime-controlled>
  <speechtype ref="substantive" length="8:00" firstperiod="normal">
    <include resource="pois"/>
    <bell time="1:00" number="1" nextperiod="pois"/>
    <bell time="7:00" nextperiod="#stay"/>
  </speechtype>
  <speechtype ref="reply" length="4:00"/>
  <speeches>
    <speech name="1st Affirmative" type="substantive"/>
    <speech name="Affirmative reply" type="reply"/>
  </speeches>
</debateformat>
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(fullDocument))
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.NotNil(t, doc.Name)
	assert.Equal(t, "Test format", *doc.Name)
	assert.Equal(t, "1.1", *doc.SchemaVersion)

	require.NotNil(t, doc.Info)
	assert.Equal(t, []string{"Australia", "New Zealand"}, doc.Info.Regions)
	assert.Equal(t, []string{"University"}, doc.Info.Levels)
	assert.Equal(t, []string{"Easters"}, doc.Info.UsedAt)
	require.NotNil(t, doc.Info.Description)
	assert.Equal(t, "Three on three.", *doc.Info.Description)

	require.Len(t, doc.Resources, 2)
	all := doc.Resources[0]
	assert.Equal(t, AllResourceRef, all.Ref)
	require.Len(t, all.Periods, 2)
	assert.Equal(t, "normal", all.Periods[0].Ref)
	assert.Nil(t, all.Periods[0].BackgroundColor)
	assert.Equal(t, "overtime", all.Periods[1].Ref)
	require.Len(t, all.Bells, 1)
	assert.Equal(t, "overtime", *all.Bells[0].NextPeriod)
	assert.Nil(t, all.Bells[0].PauseOnBell)

	assert.Nil(t, doc.PrepTime)
	require.NotNil(t, doc.PrepTimeControlled)
	assert.Equal(t, "15:00", *doc.PrepTimeControlled.Length)
	assert.Equal(t, "choose", *doc.PrepTimeControlled.FirstPeriod)
	require.Len(t, doc.PrepTimeControlled.Bells, 1)
	assert.Equal(t, "true", *doc.PrepTimeControlled.Bells[0].PauseOnBell)

	require.Len(t, doc.SpeechTypes, 2)
	sub := doc.SpeechTypes[0]
	assert.Equal(t, "substantive", sub.Ref)
	assert.Equal(t, "8:00", *sub.Length)
	assert.Equal(t, "normal", *sub.FirstPeriod)
	assert.Equal(t, []string{"pois"}, sub.IncludeRefs())
	require.Len(t, sub.Bells, 2)

	reply := doc.SpeechTypes[1]
	assert.Nil(t, reply.FirstPeriod)
	assert.Empty(t, reply.IncludeRefs())

	require.NotNil(t, doc.Speeches)
	require.Len(t, doc.Speeches.Speeches, 2)
	assert.Equal(t, "1st Affirmative", *doc.Speeches.Speeches[0].Name)
	assert.Equal(t, "reply", *doc.Speeches.Speeches[1].Type)
}

func TestParseMinimal(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<debateformat schemaversion="1.0"/>`))
	require.NoError(t, err)

	assert.Nil(t, doc.Name)
	assert.Nil(t, doc.Info)
	assert.Nil(t, doc.Speeches)
	assert.Empty(t, doc.Resources)
	assert.Empty(t, doc.SpeechTypes)
}

func TestParseIncompatible(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "wrong root element",
			input:   `<debate-format schema-version="2.0"/>`,
			wantMsg: "root element is <debate-format>",
		},
		{
			name:    "missing version",
			input:   `<debateformat name="x"/>`,
			wantMsg: "no schema version declared",
		},
		{
			name:    "unsupported version",
			input:   `<debateformat schemaversion="2.0"/>`,
			wantMsg: `schema version "2.0"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrIncompatible)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`<debateformat schemaversion="1.0">`))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformed)
	assert.NotErrorIs(t, err, ErrIncompatible)
}

func TestParseLegacyEncoding(t *testing.T) {
	// "D\xe9bat" is "Débat" in ISO-8859-1.
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<debateformat name=\"D\xe9bat\" schemaversion=\"1.0\"/>"

	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, doc.Name)
	assert.Equal(t, "Débat", *doc.Name)
}

func TestParseUnknownEncoding(t *testing.T) {
	input := `<?xml version="1.0" encoding="x-no-such-charset"?><debateformat schemaversion="1.0"/>`

	_, err := Parse(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "format.xml")
	require.NoError(t, os.WriteFile(path, []byte(fullDocument), 0o600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.SpeechTypes, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read debate format")

	old := filepath.Join(t.TempDir(), "old.xml")
	require.NoError(t, os.WriteFile(old, []byte(`<debateformat schemaversion="2.0"/>`), 0o600))

	_, err = LoadFile(old)
	require.ErrorIs(t, err, ErrIncompatible)
	assert.Contains(t, err.Error(), old)
}

func TestPOIsAllowedValue(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		raw     *string
		want    bool
		wantErr bool
	}{
		{name: "absent", raw: nil, want: false},
		{name: "true", raw: str("true"), want: true},
		{name: "false", raw: str("false"), want: false},
		{name: "garbage", raw: str("yes"), wantErr: true},
		{name: "capitalised", raw: str("True"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Period{Ref: "p", POIsAllowed: tt.raw}
			got, err := p.POIsAllowedValue()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidValue)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSymbolicNone(t *testing.T) {
	str := func(s string) *string { return &s }

	assert.True(t, IsSymbolicNone(nil))
	assert.True(t, IsSymbolicNone(str("")))
	assert.True(t, IsSymbolicNone(str(StayRef)))
	assert.False(t, IsSymbolicNone(str("normal")))
}
