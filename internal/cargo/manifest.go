// Package cargo renders the Cargo.toml manifest of an exercise workspace.
package cargo

import (
	"bytes"

	"github.com/fbkclanna/rustlings/internal/exercise"
)

// FileName is the manifest file created at the workspace root.
const FileName = "Cargo.toml"

// SourceExt is the extension of every exercise source file.
const SourceExt = "rs"

const packageTrailer = `]

[package]
name = "rustlings"
edition = "2021"
publish = false
`

// Manifest returns the Cargo.toml content declaring one bin target per
// exercise, in input order. Names and dirs are copied verbatim, so callers
// must pass descriptors accepted by exercise.Validate.
func Manifest(infos []exercise.Info) []byte {
	var buf bytes.Buffer
	buf.Grow(1 << 13)
	buf.WriteString("bin = [\n")
	for _, info := range infos {
		buf.WriteString(`  { name = "`)
		buf.WriteString(info.Name)
		buf.WriteString(`", path = "`)
		buf.WriteString(BinPath(info))
		buf.WriteString("\" },\n")
	}
	buf.WriteString(packageTrailer)
	return buf.Bytes()
}

// BinPath returns the slash-separated source path of an exercise relative to
// the workspace root, e.g. exercises/topicA/ex2.rs.
func BinPath(info exercise.Info) string {
	p := "exercises/"
	if info.HasDir() {
		p += info.Dir + "/"
	}
	return p + info.Name + "." + SourceExt
}
