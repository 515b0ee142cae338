package config

// Encoding is one of the code pages the engine accepts for legacy game data.
type Encoding int

const (
	Win1250 Encoding = iota
	Win1251
	Win1252
)

func (e Encoding) String() string {
	switch e {
	case Win1250:
		return "win1250"
	case Win1251:
		return "win1251"
	default:
		return "win1252"
	}
}

// ParseEncoding maps an encoding= value onto the closed set.
func ParseEncoding(value string) (Encoding, bool) {
	switch value {
	case "win1250":
		return Win1250, true
	case "win1251":
		return Win1251, true
	case "win1252":
		return Win1252, true
	default:
		return 0, false
	}
}

// EncodingSetting is the encoding= directive.
type EncodingSetting struct {
	meta  SettingMeta
	value Encoding
}

func parseEncodingSetting(value, source string, comment *string) (*EncodingSetting, error) {
	enc, ok := ParseEncoding(value)
	if !ok {
		return nil, &BadEncodingError{Value: value, ConfigPath: source}
	}
	return &EncodingSetting{
		meta:  SettingMeta{SourceConfig: source, Comment: takeComment(comment)},
		value: enc,
	}, nil
}

func (e *EncodingSetting) Kind() Kind         { return KindEncoding }
func (e *EncodingSetting) Meta() *SettingMeta { return &e.meta }
func (e *EncodingSetting) Line() string       { return "encoding=" + e.value.String() }
func (e *EncodingSetting) sealed()            {}

func (e *EncodingSetting) Value() Encoding { return e.value }
