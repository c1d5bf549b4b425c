// Package stats defines primitives for reporting and aggregating dispatch
// activity on a running server.  It abstracts away the delivery mechanism so
// that callers can consume counter updates in a uniform way, whether they
// poll snapshots or subscribe to change callbacks.
package stats
