// Package bundle composes token documents according to a resolver
// document.
//
// Each named set merges its sources in order; file sources load through
// a [Source], set references splice in the referenced set, and inline
// objects merge directly. The composed sets then merge in resolution
// order into a single token document, ready for resolution.
package bundle
