// Package filesystem provides types.FS implementations: the real OS
// filesystem for production use and an afero-backed one for tests.
package filesystem
