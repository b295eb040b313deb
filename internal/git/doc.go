// Package git runs the handful of git commands used to put a freshly
// created workspace under version control.
package git
