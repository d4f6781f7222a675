// Package dictcache stores compiled dictionary snapshots.
//
// A snapshot is a short header followed by a zstd-compressed CBOR document
// holding the scheme URI, the description and every definition in
// declaration order. Reading a snapshot rebuilds the dictionary through
// dict.New, so a snapshot is validated exactly like an interchange document.
package dictcache
