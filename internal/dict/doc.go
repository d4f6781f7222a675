// Package dict implements MetaDictionary, the validated registry of the
// definitions that make up one metadata scheme.
//
// # Build
//
// A dictionary is built exactly once, by New, from a complete list of
// definitions. The build normalizes every identification, rejects any two
// definitions that share a normalized AUID or a symbol, records class
// membership and keeps the declaration order. If anything collides the
// build returns an error and no dictionary.
//
// # Lookups
//
// After New returns, a dictionary never changes and may be read from any
// number of goroutines without locking. Lookups never fail: a missing key
// is reported through the boolean result.
//
//	d, err := dict.New("http://www.smpte-ra.org/reg/335/2012", defs)
//	if err != nil {
//	    return err
//	}
//	if def, ok := d.DefinitionByUL(key); ok {
//	    // decode the triplet value according to def
//	}
//
// # Collections
//
// Collection groups dictionaries of different schemes, typically a baseline
// and its extensions, and resolves identifiers across all of them.
package dict
