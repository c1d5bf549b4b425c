// Package driver defines the pluggable automation-backend contract and the
// registry that binds capability descriptors to backend implementations.
//
// Backends come from two places: Go types registered in-process at compile
// time (viant/x type entries indexed by their registered name), and shared
// objects loaded on first reference from a configurable libraries directory
// via the plugin package. Registration failures never surface as errors to
// the registering caller – they are delivered to failure listeners so a
// misconfigured backend cannot halt the server.
package driver
