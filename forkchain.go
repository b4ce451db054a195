// Package forkchain maintains append-only, tamper-evident sequences of
// Blocks. Every Block is cryptographically bound to its predecessor by a
// content hash, chains can be validated exhaustively for structural
// corruption, and new chains can be branched from any point of an existing
// one and compared back against it to find the point of divergence.
//
// Forkchain is an in-memory, single-writer building block: it defines no
// networking, consensus, or storage. Embedding systems supply those around
// the chain and must serialize mutating access to any one Chain themselves.
package forkchain

import (
	"github.com/renproject/forkchain/block"
	"github.com/renproject/forkchain/chain"
)

type (
	Index      = block.Index
	Timestamp  = block.Timestamp
	Hash       = block.Hash
	Field      = block.Field
	Payload    = block.Payload
	Block      = block.Block
	Blocks     = block.Blocks
	Chain      = chain.Chain
	Clock      = chain.Clock
	Options    = chain.Options
	Kind       = chain.Kind
	Violation  = chain.Violation
	Violations = chain.Violations
)

// GenesisPreviousHash is the fixed sentinel stored as the PreviousHash of
// every genesis Block.
const GenesisPreviousHash = block.GenesisPreviousHash

// ErrClockRegression is returned by Append when the Clock does not strictly
// advance past the latest Block.
var ErrClockRegression = chain.ErrClockRegression

// New returns a Chain containing exactly one genesis Block.
func New(opts Options) *Chain {
	return chain.New(opts)
}

// DefaultOptions returns the default options for a Chain.
func DefaultOptions() Options {
	return chain.DefaultOptions()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return chain.SystemClock()
}
