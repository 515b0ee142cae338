package config

import (
	"path/filepath"
	"slices"
)

// Configuration is the resolved chain: one flat sequence of settings in the
// exact order they were encountered. Position encodes override priority:
// later entries win for singleton categories and game-setting keys, while
// data directories and content files keep their load order. Not safe for
// concurrent use.
type Configuration struct {
	rootConfig string
	settings   []Setting
	// trailing holds the comment block after the last directive of each
	// file, keyed by config file path, for lossless rewriting.
	trailing map[string]string
	resolver *Resolver
}

func newConfiguration(root string, r *Resolver) *Configuration {
	return &Configuration{
		rootConfig: root,
		trailing:   make(map[string]string),
		resolver:   r,
	}
}

func (c *Configuration) append(s Setting) {
	c.settings = append(c.settings, s)
}

// RootConfig is the path of the file the chain was opened from.
func (c *Configuration) RootConfig() string { return c.rootConfig }

// Settings is the full ordered sequence. Callers must not mutate it.
func (c *Configuration) Settings() []Setting { return c.settings }

// UserConfigFile is the last (highest-priority) file of the chain, the
// only one that is safe to treat as "the" editable configuration. With no
// sub-configurations it is the root file itself.
func (c *Configuration) UserConfigFile() string {
	subs := c.directorySettings(KindSubConfig)
	if len(subs) == 0 {
		return c.rootConfig
	}
	return filepath.Join(subs[len(subs)-1].parsed, ConfigFileName)
}

// SubConfigs lists the sub-configuration directories in traversal order.
func (c *Configuration) SubConfigs() []*DirectorySetting {
	return c.directorySettings(KindSubConfig)
}

// DataDirectorySettings lists the raw data= entries in load order.
func (c *Configuration) DataDirectorySettings() []*DirectorySetting {
	return c.directorySettings(KindData)
}

// DataDirectories is the effective load order the engine consumes: the two
// directories derived from resources first, then every data= entry, then
// data-local last so it overrides everything.
func (c *Configuration) DataDirectories() []string {
	var out []string
	if res := c.Resources(); res != nil {
		out = append(out, filepath.Join(res.parsed, "vfs"), filepath.Join(res.parsed, "vfs-mw"))
	}
	for _, d := range c.directorySettings(KindData) {
		out = append(out, d.parsed)
	}
	if dl := c.DataLocal(); dl != nil {
		out = append(out, dl.parsed)
	}
	return out
}

// ContentFiles lists content= names in load order.
func (c *Configuration) ContentFiles() []string { return c.fileValues(KindContent) }

// FallbackArchives lists fallback-archive= names in load order.
func (c *Configuration) FallbackArchives() []string { return c.fileValues(KindArchive) }

// Groundcover lists groundcover= names in load order.
func (c *Configuration) Groundcover() []string { return c.fileValues(KindGroundcover) }

// Resources is the effective resources directory, or nil if never set.
func (c *Configuration) Resources() *DirectorySetting { return c.lastDirectory(KindResources) }

// UserData is the effective user-data directory, or nil if never set.
func (c *Configuration) UserData() *DirectorySetting { return c.lastDirectory(KindUserData) }

// DataLocal is the effective data-local directory, or nil if never set.
func (c *Configuration) DataLocal() *DirectorySetting { return c.lastDirectory(KindDataLocal) }

// Encoding is the effective encoding entry, or nil if never set.
func (c *Configuration) Encoding() *EncodingSetting {
	for i := len(c.settings) - 1; i >= 0; i-- {
		if es, ok := c.settings[i].(*EncodingSetting); ok {
			return es
		}
	}
	return nil
}

// GameSettings lists every fallback= entry in load order, duplicates
// included.
func (c *Configuration) GameSettings() []*GameSetting {
	var out []*GameSetting
	for _, s := range c.settings {
		if gs, ok := s.(*GameSetting); ok {
			out = append(out, gs)
		}
	}
	return out
}

// GameSetting is the effective entry for key: the last one loaded.
func (c *Configuration) GameSetting(key string) *GameSetting {
	for i := len(c.settings) - 1; i >= 0; i-- {
		if gs, ok := c.settings[i].(*GameSetting); ok && gs.key == key {
			return gs
		}
	}
	return nil
}

// EffectiveGameSettings deduplicates by key, keeping the last entry for
// each, and returns the survivors in their original order.
func (c *Configuration) EffectiveGameSettings() []*GameSetting {
	seen := make(map[string]bool)
	var out []*GameSetting
	for i := len(c.settings) - 1; i >= 0; i-- {
		gs, ok := c.settings[i].(*GameSetting)
		if !ok || seen[gs.key] {
			continue
		}
		seen[gs.key] = true
		out = append(out, gs)
	}
	slices.Reverse(out)
	return out
}

// GenericSettings lists the unrecognized pass-through entries in load order.
func (c *Configuration) GenericSettings() []*GenericSetting {
	var out []*GenericSetting
	for _, s := range c.settings {
		if gs, ok := s.(*GenericSetting); ok {
			out = append(out, gs)
		}
	}
	return out
}

// Generic is the effective value of an unrecognized key.
func (c *Configuration) Generic(key string) (string, bool) {
	for i := len(c.settings) - 1; i >= 0; i-- {
		if gs, ok := c.settings[i].(*GenericSetting); ok && gs.key == key {
			return gs.value, true
		}
	}
	return "", false
}

// AddContentFile appends a content entry attributed to the user config.
// Fails if the name is present anywhere in the chain.
func (c *Configuration) AddContentFile(name string) error { return c.addFile(KindContent, "content", name) }

// AddFallbackArchive appends an archive entry attributed to the user config.
func (c *Configuration) AddFallbackArchive(name string) error {
	return c.addFile(KindArchive, "fallback-archive", name)
}

// AddGroundcover appends a groundcover entry attributed to the user config.
func (c *Configuration) AddGroundcover(name string) error {
	return c.addFile(KindGroundcover, "groundcover", name)
}

func (c *Configuration) addFile(kind Kind, key, name string) error {
	if existing := c.findFile(kind, name); existing != nil {
		return &AlreadyDefinedError{Kind: kind, Name: name, Source: existing.meta.SourceConfig}
	}
	c.append(&FileSetting{
		meta:  SettingMeta{SourceConfig: c.UserConfigFile()},
		kind:  kind,
		key:   key,
		value: name,
	})
	return nil
}

// RemoveContentFile removes the named content entry, reporting whether it
// existed.
func (c *Configuration) RemoveContentFile(name string) bool { return c.removeFile(KindContent, name) }

// RemoveFallbackArchive removes the named archive entry.
func (c *Configuration) RemoveFallbackArchive(name string) bool { return c.removeFile(KindArchive, name) }

// RemoveGroundcover removes the named groundcover entry.
func (c *Configuration) RemoveGroundcover(name string) bool { return c.removeFile(KindGroundcover, name) }

func (c *Configuration) removeFile(kind Kind, name string) bool {
	return c.ClearMatching(func(s Setting) bool {
		fs, ok := s.(*FileSetting)
		return ok && fs.kind == kind && fs.value == name
	}) > 0
}

// SetContentFiles replaces the whole content list.
func (c *Configuration) SetContentFiles(names []string) error {
	return c.replaceFiles(KindContent, "content", names)
}

// SetFallbackArchives replaces the whole archive list.
func (c *Configuration) SetFallbackArchives(names []string) error {
	return c.replaceFiles(KindArchive, "fallback-archive", names)
}

func (c *Configuration) replaceFiles(kind Kind, key string, names []string) error {
	c.clearKinds(kind)
	for _, n := range names {
		if err := c.addFile(kind, key, n); err != nil {
			return err
		}
	}
	return nil
}

// SetDataLocal sets the effective data-local directory: the existing entry
// is rewritten in place (comment and source preserved), otherwise a new one
// is appended to the user config.
func (c *Configuration) SetDataLocal(value string) { c.setDirectory(KindDataLocal, "data-local", value) }

// SetResources sets the effective resources directory.
func (c *Configuration) SetResources(value string) { c.setDirectory(KindResources, "resources", value) }

// SetUserData sets the effective user-data directory.
func (c *Configuration) SetUserData(value string) { c.setDirectory(KindUserData, "user-data", value) }

func (c *Configuration) setDirectory(kind Kind, key, value string) {
	for i, s := range c.settings {
		ds, ok := s.(*DirectorySetting)
		if !ok || ds.kind != kind {
			continue
		}
		c.settings[i] = &DirectorySetting{
			meta:     ds.meta,
			kind:     kind,
			key:      ds.key,
			original: value,
			parsed:   c.resolver.Resolve(value, filepath.Dir(ds.meta.SourceConfig)),
		}
		return
	}
	source := c.UserConfigFile()
	c.append(&DirectorySetting{
		meta:     SettingMeta{SourceConfig: source},
		kind:     kind,
		key:      key,
		original: value,
		parsed:   c.resolver.Resolve(value, filepath.Dir(source)),
	})
}

// AddDataDirectory appends a data= entry attributed to the user config.
func (c *Configuration) AddDataDirectory(value string) {
	source := c.UserConfigFile()
	c.append(&DirectorySetting{
		meta:     SettingMeta{SourceConfig: source},
		kind:     KindData,
		key:      "data",
		original: value,
		parsed:   c.resolver.Resolve(value, filepath.Dir(source)),
	})
}

// SetGameSetting sets the effective value for key, rewriting the last
// existing entry in place or appending a new one. The value type is
// re-inferred from the text.
func (c *Configuration) SetGameSetting(key, value string) {
	for i := len(c.settings) - 1; i >= 0; i-- {
		gs, ok := c.settings[i].(*GameSetting)
		if !ok || gs.key != key {
			continue
		}
		updated := *gs
		updated.setRaw(value)
		c.settings[i] = &updated
		return
	}
	gs := &GameSetting{
		meta: SettingMeta{SourceConfig: c.UserConfigFile()},
		key:  key,
		raw:  value,
	}
	gs.classify()
	c.append(gs)
}

// RemoveGameSetting removes every entry for key.
func (c *Configuration) RemoveGameSetting(key string) bool {
	return c.ClearMatching(func(s Setting) bool {
		gs, ok := s.(*GameSetting)
		return ok && gs.key == key
	}) > 0
}

// SetEncoding sets the effective encoding, overwriting the existing entry
// in place if one exists.
func (c *Configuration) SetEncoding(enc Encoding) {
	for i, s := range c.settings {
		if es, ok := s.(*EncodingSetting); ok {
			c.settings[i] = &EncodingSetting{meta: es.meta, value: enc}
			return
		}
	}
	c.append(&EncodingSetting{
		meta:  SettingMeta{SourceConfig: c.UserConfigFile()},
		value: enc,
	})
}

// replaceEncoding swaps the singleton encoding entry for a freshly parsed
// one during loading.
func (c *Configuration) replaceEncoding(es *EncodingSetting) {
	for i, s := range c.settings {
		if _, ok := s.(*EncodingSetting); ok {
			c.settings[i] = es
			return
		}
	}
	c.append(es)
}

// ClearCategory removes every setting of the given kind, returning how many
// were dropped.
func (c *Configuration) ClearCategory(kind Kind) int { return c.clearKinds(kind) }

// ClearMatching removes every setting the predicate selects, preserving the
// order of the rest.
func (c *Configuration) ClearMatching(match func(Setting) bool) int {
	kept := c.settings[:0]
	removed := 0
	for _, s := range c.settings {
		if match(s) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	c.settings = kept
	return removed
}

func (c *Configuration) clearKinds(kinds ...Kind) int {
	return c.ClearMatching(func(s Setting) bool {
		return slices.Contains(kinds, s.Kind())
	})
}

func (c *Configuration) findFile(kind Kind, value string) *FileSetting {
	for _, s := range c.settings {
		if fs, ok := s.(*FileSetting); ok && fs.kind == kind && fs.value == value {
			return fs
		}
	}
	return nil
}

func (c *Configuration) fileValues(kind Kind) []string {
	var out []string
	for _, s := range c.settings {
		if fs, ok := s.(*FileSetting); ok && fs.kind == kind {
			out = append(out, fs.value)
		}
	}
	return out
}

func (c *Configuration) directorySettings(kind Kind) []*DirectorySetting {
	var out []*DirectorySetting
	for _, s := range c.settings {
		if ds, ok := s.(*DirectorySetting); ok && ds.kind == kind {
			out = append(out, ds)
		}
	}
	return out
}

// lastDirectory is the reverse-scan singleton lookup: the entry from the
// most specific (last loaded) file wins.
func (c *Configuration) lastDirectory(kind Kind) *DirectorySetting {
	for i := len(c.settings) - 1; i >= 0; i-- {
		if ds, ok := c.settings[i].(*DirectorySetting); ok && ds.kind == kind {
			return ds
		}
	}
	return nil
}

// EffectiveLines renders the flattened composite view the engine consumes:
// absolute paths, singletons collapsed, game settings deduplicated. Not
// suitable for rewriting a file; use RenderFile for that.
func (c *Configuration) EffectiveLines() []string {
	var out []string
	if res := c.Resources(); res != nil {
		out = append(out, "resources="+res.parsed)
	}
	if ud := c.UserData(); ud != nil {
		out = append(out, "user-data="+ud.parsed)
	}
	if dl := c.DataLocal(); dl != nil {
		out = append(out, "data-local="+dl.parsed)
	}
	if enc := c.Encoding(); enc != nil {
		out = append(out, "encoding="+enc.value.String())
	}
	for _, a := range c.FallbackArchives() {
		out = append(out, "fallback-archive="+a)
	}
	for _, d := range c.DataDirectories() {
		out = append(out, "data="+d)
	}
	for _, g := range c.Groundcover() {
		out = append(out, "groundcover="+g)
	}
	for _, f := range c.ContentFiles() {
		out = append(out, "content="+f)
	}
	for _, gs := range c.EffectiveGameSettings() {
		out = append(out, "fallback="+gs.key+","+gs.Value())
	}
	return out
}
