package config

import (
	"path/filepath"
	"strings"
)

const (
	userDataToken   = "?userdata?"
	userConfigToken = "?userconfig?"
)

// DirProviders supplies the platform default directories substituted for
// the ?userdata? and ?userconfig? path tokens. Both funcs must be non-nil.
type DirProviders struct {
	UserConfig func() string
	UserData   func() string
}

// Resolver normalizes raw directive values into absolute paths. Resolution
// is purely lexical: it never stats the filesystem or follows symlinks.
type Resolver struct {
	dirs DirProviders
}

func NewResolver(dirs DirProviders) *Resolver {
	return &Resolver{dirs: dirs}
}

// Resolve turns a raw value into an absolute path. baseDir is the directory
// of the file that declared the value and anchors relative paths.
func (r *Resolver) Resolve(value, baseDir string) string {
	value = Unquote(value)

	if rest, ok := strings.CutPrefix(value, userDataToken); ok {
		value = filepath.Join(r.dirs.UserData(), strings.TrimLeft(rest, `/\`))
	} else if rest, ok := strings.CutPrefix(value, userConfigToken); ok {
		value = filepath.Join(r.dirs.UserConfig(), strings.TrimLeft(rest, `/\`))
	}

	value = normalizeSeparators(value)

	if !filepath.IsAbs(value) {
		value = filepath.Join(baseDir, value)
	}
	return filepath.Clean(value)
}

// Unquote strips a leading double quote and copies up to the closing one.
// Inside quotes, '&' escapes the following character, which is copied
// literally. A missing closing quote truncates at end of string; that is
// accepted, not an error. Values not starting with '"' pass through.
func Unquote(value string) string {
	if !strings.HasPrefix(value, `"`) {
		return value
	}
	var b strings.Builder
	rest := value[1:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '&':
			i++
			if i < len(rest) {
				b.WriteByte(rest[i])
			}
		case '"':
			return b.String()
		default:
			b.WriteByte(rest[i])
		}
	}
	return b.String()
}

// normalizeSeparators rewrites both slash styles to the host separator, so
// configs written on either platform resolve the same way.
func normalizeSeparators(p string) string {
	sep := string(filepath.Separator)
	p = strings.ReplaceAll(p, "/", sep)
	return strings.ReplaceAll(p, `\`, sep)
}
