package domain

import "errors"

var (
	// ErrNotFound is returned by read paths when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrMalformedRecord marks an attribute bag that lacks a usable name or
	// typeURI, or carries only the generic individual marker as its type.
	// Such records are dropped per-record; they never abort a batch.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingEndpoint is a configuration failure: the SPARQL endpoint
	// address was not supplied. Reported distinctly from connectivity errors.
	ErrMissingEndpoint = errors.New("sparql endpoint not configured")
)
