// Package paths holds the pure path logic of plugset: the destination
// resolver that reconciles the legacy and modern Android project layouts,
// the extension classification it branches on, and the containment guard
// that every filesystem mutation is gated through.
package paths
