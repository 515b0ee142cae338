package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ConfigFileName is the fixed name every file in a chain must have.
const ConfigFileName = "openmw.cfg"

// Load resolves the whole configuration chain rooted at path, which may be
// an openmw.cfg file or a directory containing one. Any structural error
// aborts the load; no partial configuration is returned.
func Load(path string, resolver *Resolver) (*Configuration, error) {
	root, err := resolveConfigFile(path)
	if err != nil {
		return nil, err
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	l := &loader{
		resolver: resolver,
		cfg:      newConfiguration(root, resolver),
		visited:  make(map[string]bool),
	}
	if err := l.loadFile(root); err != nil {
		return nil, err
	}

	// The effective data-local directory is created eagerly so the engine
	// can write into it on first run.
	if dl := l.cfg.DataLocal(); dl != nil {
		if err := os.MkdirAll(dl.Parsed(), 0o755); err != nil {
			log.Warn().Err(err).Str("dir", dl.Parsed()).Msg("failed to create data-local directory")
		}
	}
	return l.cfg, nil
}

// resolveConfigFile maps a file-or-directory argument onto the config file
// to read.
func resolveConfigFile(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: path}
		}
		return "", &NotFileOrDirectoryError{Path: path}
	}
	switch {
	case info.Mode().IsRegular():
		return path, nil
	case info.IsDir():
		candidate := filepath.Join(path, ConfigFileName)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			return candidate, nil
		}
		return "", &NotFoundError{Path: candidate}
	default:
		return "", &NotFileOrDirectoryError{Path: path}
	}
}

type queuedSubConfig struct {
	value   string
	comment string
}

type loader struct {
	resolver *Resolver
	cfg      *Configuration
	visited  map[string]bool
}

// loadFile reads one config file, appending its settings in declaration
// order, then recurses into its config= references depth-first. path is
// absolute.
func (l *loader) loadFile(path string) error {
	l.visited[path] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	// Pending comment block, consumed destructively by the next setting.
	var comment string
	var queued []queuedSubConfig

	for _, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			comment += line + "\n"
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return &InvalidLineError{Line: line, ConfigPath: path}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "data":
			l.cfg.append(newDirectorySetting(KindData, key, value, path, &comment, l.resolver))
		case "resources":
			l.cfg.append(newDirectorySetting(KindResources, key, value, path, &comment, l.resolver))
		case "user-data", "userdata":
			l.cfg.append(newDirectorySetting(KindUserData, key, value, path, &comment, l.resolver))
		case "data-local":
			l.cfg.append(newDirectorySetting(KindDataLocal, key, value, path, &comment, l.resolver))
		case "content":
			if err := l.appendFile(KindContent, key, value, path, &comment); err != nil {
				return err
			}
		case "fallback-archive":
			if err := l.appendFile(KindArchive, key, value, path, &comment); err != nil {
				return err
			}
		case "groundcover":
			if err := l.appendFile(KindGroundcover, key, value, path, &comment); err != nil {
				return err
			}
		case "fallback":
			gs, err := parseGameSetting(value, path, &comment)
			if err != nil {
				return err
			}
			l.cfg.append(gs)
		case "encoding":
			es, err := parseEncodingSetting(value, path, &comment)
			if err != nil {
				return err
			}
			l.cfg.replaceEncoding(es)
		case "config":
			// Deferred: sub-configurations load after the current file is
			// fully consumed, in declaration order.
			queued = append(queued, queuedSubConfig{value: value, comment: takeComment(&comment)})
		case "replace":
			l.replaceCategory(value, path)
			comment = ""
		default:
			log.Warn().Str("config", path).Str("key", key).Msg("unrecognized configuration pair, passing through")
			l.cfg.append(newGenericSetting(key, value, path, &comment))
		}
	}

	// Comments after the last directive belong to this file, not to the
	// first setting of the next one in the chain.
	if comment != "" {
		l.cfg.trailing[path] = comment
	}

	for _, sub := range queued {
		if err := l.loadSubConfig(sub, path); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) appendFile(kind Kind, key, value, path string, comment *string) error {
	if existing := l.cfg.findFile(kind, value); existing != nil {
		return &DuplicateEntryError{Kind: kind, Name: value, First: existing.meta.SourceConfig, Second: path}
	}
	l.cfg.append(newFileSetting(kind, key, value, path, comment))
	return nil
}

// loadSubConfig resolves one queued config= reference. A directory with no
// openmw.cfg is skipped silently; a directory already on the chain is
// skipped to break reference cycles.
func (l *loader) loadSubConfig(sub queuedSubConfig, declaredBy string) error {
	dir := l.resolver.Resolve(sub.value, filepath.Dir(declaredBy))
	candidate := filepath.Join(dir, ConfigFileName)
	if abs, err := filepath.Abs(candidate); err == nil {
		candidate = abs
	}

	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		log.Debug().Str("dir", dir).Msg("config reference has no " + ConfigFileName + ", skipping")
		return nil
	}
	if l.visited[candidate] {
		log.Debug().Str("config", candidate).Msg("config reference already loaded, breaking cycle")
		return nil
	}

	comment := sub.comment
	l.cfg.append(&DirectorySetting{
		meta:     SettingMeta{SourceConfig: declaredBy, Comment: comment},
		kind:     KindSubConfig,
		key:      "config",
		original: sub.value,
		parsed:   dir,
	})
	return l.loadFile(candidate)
}

// replaceCategory discards everything accumulated so far in the named
// category, across the whole chain loaded up to this point.
func (l *loader) replaceCategory(category, path string) {
	switch strings.ToLower(category) {
	case "content":
		l.cfg.clearKinds(KindContent)
	case "data":
		l.cfg.clearKinds(KindData)
	case "fallback":
		l.cfg.clearKinds(KindGameSetting)
	case "fallback-archives":
		l.cfg.clearKinds(KindArchive)
	case "data-local":
		l.cfg.clearKinds(KindDataLocal)
	case "resources":
		l.cfg.clearKinds(KindResources)
	case "user-data", "userdata":
		l.cfg.clearKinds(KindUserData)
	case "config":
		l.cfg.clearKinds(KindContent, KindData, KindGameSetting, KindArchive,
			KindDataLocal, KindResources, KindUserData)
	default:
		log.Warn().Str("config", path).Str("category", category).Msg("unrecognized replace category")
	}
}
