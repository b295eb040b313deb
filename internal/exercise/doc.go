// Package exercise defines the exercise descriptor consumed by the workspace
// initializer and loads exercise catalogs from TOML, YAML or JSONC files.
// Descriptors are validated before they reach any generated file, since
// names and directories are embedded verbatim in Cargo.toml.
package exercise
