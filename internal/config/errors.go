package config

import "fmt"

// NotFoundError reports that no openmw.cfg exists at the requested path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("an %s does not exist at: %s", ConfigFileName, e.Path)
}

// NotFileOrDirectoryError reports a path that is neither a regular file nor
// a directory, or could not be classified at all.
type NotFileOrDirectoryError struct {
	Path string
}

func (e *NotFileOrDirectoryError) Error() string {
	return fmt.Sprintf("unable to determine whether %s is a file or directory, refusing to read", e.Path)
}

// InvalidLineError reports a non-comment line with no '=' separator.
type InvalidLineError struct {
	Line       string
	ConfigPath string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %q in %s: expected key=value", e.Line, e.ConfigPath)
}

// InvalidGameSettingError reports a fallback= value with no comma.
type InvalidGameSettingError struct {
	Value      string
	ConfigPath string
}

func (e *InvalidGameSettingError) Error() string {
	return fmt.Sprintf("invalid fallback setting %q in %s", e.Value, e.ConfigPath)
}

// BadEncodingError reports an encoding= value outside the supported set.
type BadEncodingError struct {
	Value      string
	ConfigPath string
}

func (e *BadEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding %q in %s", e.Value, e.ConfigPath)
}

// DuplicateEntryError reports a content, archive or groundcover name that
// appeared twice across the chain. First and Second are the config files of
// the two occurrences.
type DuplicateEntryError struct {
	Kind   Kind
	Name   string
	First  string
	Second string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%s %q declared twice: first by %s, again by %s",
		e.Kind, e.Name, e.First, e.Second)
}

// AlreadyDefinedError reports an Add* call for a name already present.
type AlreadyDefinedError struct {
	Kind   Kind
	Name   string
	Source string
}

func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("cannot add %s %q: already defined by %s", e.Kind, e.Name, e.Source)
}
