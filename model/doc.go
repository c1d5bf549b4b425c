// Package model contains the in-memory representation of the protocol
// vocabulary shared across the code base.
//
// The `command` sub-package holds the closed command-identifier enumeration;
// `types` holds the handler execution contract, the request parameter maps
// and the error taxonomy.  The root model package simply aggregates those
// building blocks so that they can be referenced from other parts of the
// code base with a single import.
package model
