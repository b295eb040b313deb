// Package embedded supplies exercise source trees to the workspace
// initializer. FSExtractor copies an exercises tree out of any fs.FS; the
// default tree and its info.toml catalog are compiled into the binary.
package embedded
