// Package workspace creates a new exercise workspace on disk. Init performs
// the pre-flight collision checks, creates the rustlings directory, and then
// writes the exercises tree, Cargo.toml and the auxiliary files in a fixed
// order. Every path is rooted at an explicit base directory; the process
// working directory is never changed.
package workspace
