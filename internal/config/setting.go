package config

import "path/filepath"

// SettingMeta carries the provenance every setting keeps: the config file
// that defined it and the verbatim comment/blank-line block that preceded
// it, newline-terminated, captured exactly once.
type SettingMeta struct {
	SourceConfig string
	Comment      string
}

// Kind discriminates the recognized directive categories.
type Kind int

const (
	KindData Kind = iota
	KindUserData
	KindDataLocal
	KindResources
	KindSubConfig
	KindContent
	KindArchive
	KindGroundcover
	KindGameSetting
	KindEncoding
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "data directory"
	case KindUserData:
		return "user-data directory"
	case KindDataLocal:
		return "data-local directory"
	case KindResources:
		return "resources directory"
	case KindSubConfig:
		return "sub-configuration"
	case KindContent:
		return "content file"
	case KindArchive:
		return "fallback-archive"
	case KindGroundcover:
		return "groundcover file"
	case KindGameSetting:
		return "game setting"
	case KindEncoding:
		return "encoding"
	default:
		return "setting"
	}
}

// Setting is the closed union of directive records. Only this package adds
// variants; consumers dispatch with a type switch over the concrete types.
type Setting interface {
	Kind() Kind
	Meta() *SettingMeta
	// Line is the key=value text the setting re-emits, without its comment
	// block and without a trailing newline.
	Line() string

	sealed()
}

// takeComment moves the pending comment block out of the accumulator,
// leaving it empty. Each block is attached to exactly one setting.
func takeComment(comment *string) string {
	s := *comment
	*comment = ""
	return s
}

// DirectorySetting is a directory-valued directive: data, resources,
// user-data, data-local, or a config sub-configuration reference. It keeps
// the raw unresolved text for rewriting alongside the absolute path derived
// once at construction.
type DirectorySetting struct {
	meta     SettingMeta
	kind     Kind
	key      string
	original string
	parsed   string
}

func newDirectorySetting(kind Kind, key, value, source string, comment *string, r *Resolver) *DirectorySetting {
	return &DirectorySetting{
		meta:     SettingMeta{SourceConfig: source, Comment: takeComment(comment)},
		kind:     kind,
		key:      key,
		original: value,
		parsed:   r.Resolve(value, filepath.Dir(source)),
	}
}

func (d *DirectorySetting) Kind() Kind         { return d.kind }
func (d *DirectorySetting) Meta() *SettingMeta { return &d.meta }
func (d *DirectorySetting) Line() string       { return d.key + "=" + d.original }
func (d *DirectorySetting) sealed()            {}

// Original is the raw value text as written, unquoted and unresolved.
func (d *DirectorySetting) Original() string { return d.original }

// Parsed is the absolute, lexically normalized path.
func (d *DirectorySetting) Parsed() string { return d.parsed }

// FileSetting is a name-valued directive: content, fallback-archive or
// groundcover. Identity is the bare value.
type FileSetting struct {
	meta  SettingMeta
	kind  Kind
	key   string
	value string
}

func newFileSetting(kind Kind, key, value, source string, comment *string) *FileSetting {
	return &FileSetting{
		meta:  SettingMeta{SourceConfig: source, Comment: takeComment(comment)},
		kind:  kind,
		key:   key,
		value: value,
	}
}

func (f *FileSetting) Kind() Kind         { return f.kind }
func (f *FileSetting) Meta() *SettingMeta { return &f.meta }
func (f *FileSetting) Line() string       { return f.key + "=" + f.value }
func (f *FileSetting) sealed()            {}

func (f *FileSetting) Value() string { return f.value }

// GenericSetting passes through any directive key the loader does not
// recognize. Never an error.
type GenericSetting struct {
	meta  SettingMeta
	key   string
	value string
}

func newGenericSetting(key, value, source string, comment *string) *GenericSetting {
	return &GenericSetting{
		meta:  SettingMeta{SourceConfig: source, Comment: takeComment(comment)},
		key:   key,
		value: value,
	}
}

func (g *GenericSetting) Kind() Kind         { return KindGeneric }
func (g *GenericSetting) Meta() *SettingMeta { return &g.meta }
func (g *GenericSetting) Line() string       { return g.key + "=" + g.value }
func (g *GenericSetting) sealed()            {}

func (g *GenericSetting) Key() string   { return g.key }
func (g *GenericSetting) Value() string { return g.value }
