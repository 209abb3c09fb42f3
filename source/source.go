// Package source provides the raw bit sources that back the generator
// implementations.
package source

// Source is a raw source of uniformly distributed 64-bit values.
//
// A Source is not safe for concurrent use unless its constructor
// states otherwise.
type Source interface {
	// Uint64 draws the next raw 64-bit value from the source.
	Uint64() (uint64, error)
}
