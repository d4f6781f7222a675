// Package definition models the elements of a SMPTE metadata dictionary:
// classes, properties and the type definitions properties refer to.
//
// The set of definition kinds is closed. Code that needs per-kind behavior
// implements Visitor, which has one method per kind, so adding a kind breaks
// every consumer at compile time instead of falling through a default case.
//
// Definitions are plain data. Serialization, decoding plans and validation
// live in visitors owned by other packages.
package definition
