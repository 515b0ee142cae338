package config

import (
	"strconv"
	"strings"
)

// GameValueKind is the inferred type of a fallback= value.
type GameValueKind int

const (
	GameColor GameValueKind = iota
	GameFloat
	GameInt
	GameString
)

func (k GameValueKind) String() string {
	switch k {
	case GameColor:
		return "color"
	case GameFloat:
		return "float"
	case GameInt:
		return "int"
	default:
		return "string"
	}
}

// GameSetting is a fallback=key,value game tunable. The value type is
// inferred from the literal text: three comma-separated 8-bit integers make
// a color, a dotted number a float, a plain number an int, anything else a
// string (verbatim, embedded commas included). The raw text is kept so an
// unmutated setting re-emits byte-identically.
type GameSetting struct {
	meta      SettingMeta
	key       string
	raw       string
	valueKind GameValueKind
	color     [3]uint8
	float     float64
	int       int64
	str       string
}

func parseGameSetting(value, source string, comment *string) (*GameSetting, error) {
	key, rest, found := strings.Cut(value, ",")
	if !found {
		return nil, &InvalidGameSettingError{Value: value, ConfigPath: source}
	}
	g := &GameSetting{
		meta: SettingMeta{SourceConfig: source, Comment: takeComment(comment)},
		key:  key,
		raw:  rest,
	}
	g.classify()
	return g, nil
}

func (g *GameSetting) classify() {
	if c, ok := parseColor(g.raw); ok {
		g.valueKind, g.color = GameColor, c
		return
	}
	if strings.Contains(g.raw, ".") {
		if f, err := strconv.ParseFloat(g.raw, 64); err == nil {
			g.valueKind, g.float = GameFloat, f
			return
		}
	}
	if i, err := strconv.ParseInt(g.raw, 10, 64); err == nil {
		g.valueKind, g.int = GameInt, i
		return
	}
	g.valueKind, g.str = GameString, g.raw
}

// setRaw replaces the value text and re-infers the type.
func (g *GameSetting) setRaw(value string) {
	g.raw = value
	g.classify()
}

func parseColor(value string) ([3]uint8, bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return [3]uint8{}, false
	}
	var c [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return [3]uint8{}, false
		}
		c[i] = uint8(n)
	}
	return c, true
}

func (g *GameSetting) Kind() Kind         { return KindGameSetting }
func (g *GameSetting) Meta() *SettingMeta { return &g.meta }
func (g *GameSetting) Line() string       { return "fallback=" + g.key + "," + g.raw }
func (g *GameSetting) sealed()            {}

func (g *GameSetting) Key() string              { return g.key }
func (g *GameSetting) ValueKind() GameValueKind { return g.valueKind }

// Value is the canonical text of the typed value.
func (g *GameSetting) Value() string {
	switch g.valueKind {
	case GameColor:
		return strconv.Itoa(int(g.color[0])) + "," + strconv.Itoa(int(g.color[1])) + "," + strconv.Itoa(int(g.color[2]))
	case GameFloat:
		return strconv.FormatFloat(g.float, 'f', -1, 64)
	case GameInt:
		return strconv.FormatInt(g.int, 10)
	default:
		return g.str
	}
}

// Color returns the r,g,b components when the value is a color.
func (g *GameSetting) Color() (r, gr, b uint8, ok bool) {
	if g.valueKind != GameColor {
		return 0, 0, 0, false
	}
	return g.color[0], g.color[1], g.color[2], true
}

func (g *GameSetting) Float() (float64, bool) {
	if g.valueKind != GameFloat {
		return 0, false
	}
	return g.float, true
}

func (g *GameSetting) Int() (int64, bool) {
	if g.valueKind != GameInt {
		return 0, false
	}
	return g.int, true
}

func (g *GameSetting) Text() (string, bool) {
	if g.valueKind != GameString {
		return "", false
	}
	return g.str, true
}

// Equal reports setting identity: same key and same inferred value kind.
// Two settings of different kinds are never equal, even with equal keys.
func (g *GameSetting) Equal(other *GameSetting) bool {
	return other != nil && g.key == other.key && g.valueKind == other.valueKind
}
