// Package dispatch resolves protocol command identifiers to executable
// handlers. The registry is filled once during server setup; afterwards any
// number of in-flight requests may create handlers concurrently. Unknown
// commands still dispatch – they resolve to a fallback handler that fails
// with an UnsupportedCommandError when executed.
package dispatch
