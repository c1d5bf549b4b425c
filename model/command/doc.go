// Package command defines the closed enumeration of protocol command
// identifiers understood by the dispatch layer.
package command
