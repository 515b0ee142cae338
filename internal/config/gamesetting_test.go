package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGS(t *testing.T, value string) *GameSetting {
	t.Helper()
	comment := ""
	gs, err := parseGameSetting(value, "/tmp/openmw.cfg", &comment)
	require.NoError(t, err)
	return gs
}

func TestGameSettingColor(t *testing.T) {
	gs := parseGS(t, "iFoo,128,64,255")
	assert.Equal(t, GameColor, gs.ValueKind())
	r, g, b, ok := gs.Color()
	require.True(t, ok)
	assert.Equal(t, uint8(128), r)
	assert.Equal(t, uint8(64), g)
	assert.Equal(t, uint8(255), b)
	assert.Equal(t, "128,64,255", gs.Value())
}

func TestGameSettingFloat(t *testing.T) {
	gs := parseGS(t, "fBar,1.5")
	assert.Equal(t, GameFloat, gs.ValueKind())
	f, ok := gs.Float()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)
}

func TestGameSettingInt(t *testing.T) {
	gs := parseGS(t, "iBaz,7")
	assert.Equal(t, GameInt, gs.ValueKind())
	i, ok := gs.Int()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)
}

func TestGameSettingStringKeepsEmbeddedCommas(t *testing.T) {
	gs := parseGS(t, "sQux,hi,there")
	assert.Equal(t, GameString, gs.ValueKind())
	s, ok := gs.Text()
	require.True(t, ok)
	assert.Equal(t, "hi,there", s)
}

func TestGameSettingFourNumbersIsString(t *testing.T) {
	// Only exactly three 8-bit components make a color.
	gs := parseGS(t, "x,1,2,3,4")
	assert.Equal(t, GameString, gs.ValueKind())
	assert.Equal(t, "1,2,3,4", gs.Value())
}

func TestGameSettingNumberWithoutDotIsInt(t *testing.T) {
	gs := parseGS(t, "iCount,1000000")
	assert.Equal(t, GameInt, gs.ValueKind())
}

func TestGameSettingNoCommaFails(t *testing.T) {
	comment := ""
	_, err := parseGameSetting("justakey", "/etc/openmw/openmw.cfg", &comment)
	var invalid *InvalidGameSettingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "justakey", invalid.Value)
	assert.Equal(t, "/etc/openmw/openmw.cfg", invalid.ConfigPath)
}

func TestGameSettingLinePreservesRawText(t *testing.T) {
	// Spaces around color components parse but must re-emit as written.
	gs := parseGS(t, "iFoo, 128, 64, 255")
	assert.Equal(t, GameColor, gs.ValueKind())
	assert.Equal(t, "fallback=iFoo, 128, 64, 255", gs.Line())
}

func TestGameSettingEqualityByKeyAndKind(t *testing.T) {
	intSetting := parseGS(t, "key,7")
	floatSetting := parseGS(t, "key,7.0")
	sameInt := parseGS(t, "key,99")

	assert.True(t, intSetting.Equal(sameInt))
	// Same key, different inferred kinds: never equal.
	assert.False(t, intSetting.Equal(floatSetting))
	assert.False(t, intSetting.Equal(nil))
}

func TestGameSettingCommentConsumedOnce(t *testing.T) {
	comment := "# tuning\n\n"
	gs, err := parseGameSetting("fJump,1.25", "/tmp/openmw.cfg", &comment)
	require.NoError(t, err)
	assert.Equal(t, "# tuning\n\n", gs.Meta().Comment)
	assert.Empty(t, comment)
}
