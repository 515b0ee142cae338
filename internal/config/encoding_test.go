package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncodingClosedSet(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  Encoding
	}{
		{"win1250", Win1250},
		{"win1251", Win1251},
		{"win1252", Win1252},
	} {
		enc, ok := ParseEncoding(tc.value)
		require.True(t, ok, tc.value)
		assert.Equal(t, tc.want, enc)
		assert.Equal(t, tc.value, enc.String())
	}
}

func TestParseEncodingRejectsUnknown(t *testing.T) {
	_, ok := ParseEncoding("utf8")
	assert.False(t, ok)

	comment := ""
	_, err := parseEncodingSetting("utf8", "/tmp/openmw.cfg", &comment)
	var bad *BadEncodingError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "utf8", bad.Value)
}

func TestEncodingSettingLine(t *testing.T) {
	comment := "# cyrillic content\n"
	es, err := parseEncodingSetting("win1251", "/tmp/openmw.cfg", &comment)
	require.NoError(t, err)
	assert.Equal(t, "encoding=win1251", es.Line())
	assert.Equal(t, "# cyrillic content\n", es.Meta().Comment)
	assert.Empty(t, comment)
}
