// Package fileops implements the shared filesystem primitives the directive
// handlers are built on: bounded copy (byte or symlink-tree), guarded
// removal, and removal with empty-ancestor pruning.
//
// Every operation validates its resolved paths against the trusted roots
// before the first mutation, so a rejected operation never leaves a partial
// write behind.
package fileops
