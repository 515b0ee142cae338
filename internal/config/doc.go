// Package config resolves a chain of openmw.cfg files into one ordered,
// typed, in-memory configuration, and can rewrite any single file of that
// chain back to disk losslessly.
//
// # Chain loading
//
// Load starts from a root openmw.cfg (or the directory containing one) and
// reads it line by line. Blank lines and #-comments are buffered and attached
// verbatim to the next directive, so they survive a rewrite. Every other line
// is a key=value pair dispatched on its key:
//
//   - data, resources, user-data, data-local: directory settings, resolved
//     to absolute paths relative to the declaring file
//   - content, fallback-archive, groundcover: file lists whose names must be
//     unique across the whole chain
//   - fallback: typed game settings (color, float, int or string, inferred
//     from the literal value)
//   - encoding: one of the supported code pages
//   - config: a reference to another directory whose openmw.cfg is loaded
//     depth-first, in declaration order, after the current file
//   - replace: discards everything accumulated so far in the named category
//
// Unrecognized keys are carried through opaquely as generic settings.
//
// # Ordering
//
// The model is one flat ordered sequence of settings. Position encodes
// priority: later entries override earlier ones for singleton categories
// (user-data, data-local, resources, encoding) and for game settings keyed
// by name, while data directories and content files accumulate in load
// order. Both views are derived from the same sequence.
//
// # Rewriting
//
// RenderFile filters the sequence to the settings one file contributed and
// re-emits each as its comment block followed by the original key=value
// text. A file whose settings were never mutated reproduces byte-for-byte,
// apart from the version trailer appended at the end.
//
// # Path syntax
//
// Directory values may be double-quoted, with '&' escaping the next
// character inside quotes, and may start with the ?userdata? or
// ?userconfig? tokens, which expand to the platform default directories
// supplied by the Resolver. Resolution is purely lexical: '.' and '..'
// components collapse without consulting the filesystem.
package config
