// Package handlers maps each directive kind to its install/uninstall
// behavior pair and exposes the dispatch table the orchestration layer
// drives. All required-attribute checks happen here, before any filesystem
// access, so a misconfigured directive fails with a configuration error
// rather than a filesystem one.
package handlers
