// Package types holds the contracts shared between the dispatch layer and
// command handler implementations: the Handler/Constructor execution
// contract, the two request parameter maps and the error taxonomy.
//
// The package deliberately has no dependency on the session store or driver
// registry so that handler packages and the dispatch layer can both depend
// on it without cycles.
package types
