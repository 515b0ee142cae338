package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Trailer is the fixed marker appended to every rewritten file.
const Trailer = "# openmw-cfg: format 1"

const writeProbeName = ".openmw_cfg_write_test"

// RenderFile reconstructs the textual content of one file in the chain:
// every setting that file contributed, in stored order, each preceded by
// its captured comment block, followed by the file's trailing comments and
// the version trailer. Settings never mutated through the API reproduce
// their original bytes.
func (c *Configuration) RenderFile(source string) string {
	var b strings.Builder
	for _, s := range c.settings {
		if s.Meta().SourceConfig != source {
			continue
		}
		b.WriteString(s.Meta().Comment)
		b.WriteString(s.Line())
		b.WriteByte('\n')
	}
	b.WriteString(c.trailing[source])
	b.WriteString(Trailer)
	b.WriteByte('\n')
	return b.String()
}

// Save rewrites the user configuration file, the only file of the chain
// that is unambiguously safe to edit.
func (c *Configuration) Save() error {
	return c.SaveTo(c.UserConfigFile())
}

// SaveSubConfig rewrites the openmw.cfg of the given sub-configuration
// directory, which must already be part of the loaded chain.
func (c *Configuration) SaveSubConfig(dir string) error {
	target := filepath.Clean(dir)
	for _, sub := range c.directorySettings(KindSubConfig) {
		if sub.parsed == target {
			return c.SaveTo(filepath.Join(sub.parsed, ConfigFileName))
		}
	}
	return fmt.Errorf("%s is not a sub-configuration of %s", dir, c.rootConfig)
}

// SaveTo writes the settings attributed to path back to that path. The
// target directory must exist and be writable; writability is probed with
// a throwaway file before anything is truncated.
func (c *Configuration) SaveTo(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("target %s is not a directory", dir)
	}
	if !canWriteDir(dir) {
		return fmt.Errorf("directory %s is not writable", dir)
	}
	if err := os.WriteFile(path, []byte(c.RenderFile(path)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// UserConfigWritable reports whether the user configuration's directory
// accepts writes.
func (c *Configuration) UserConfigWritable() bool {
	return canWriteDir(filepath.Dir(c.UserConfigFile()))
}

func canWriteDir(dir string) bool {
	probe := filepath.Join(dir, writeProbeName)
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
