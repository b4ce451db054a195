package chain

import (
	"fmt"

	"github.com/renproject/forkchain/block"
)

// Kind enumerates the structural defects that Validate can detect.
type Kind uint8

const (
	// Invalid defines an invalid Kind that should not be used.
	Invalid Kind = iota
	// IndexDiscontinuity defines the Kind reported when a Block is not
	// stored at the position that its Index claims.
	IndexDiscontinuity
	// BrokenLink defines the Kind reported when a Block's PreviousHash does
	// not match the Hash of its predecessor.
	BrokenLink
	// DigestMismatch defines the Kind reported when a Block's stored Hash
	// does not match the digest recomputed from its fields.
	DigestMismatch
	// TimestampBackdated defines the Kind reported when a Block's Timestamp
	// does not strictly exceed the Timestamp of its predecessor.
	TimestampBackdated
)

// String implements the `fmt.Stringer` interface for the Kind type.
func (kind Kind) String() string {
	switch kind {
	case IndexDiscontinuity:
		return "index-discontinuity"
	case BrokenLink:
		return "broken-link"
	case DigestMismatch:
		return "digest-mismatch"
	case TimestampBackdated:
		return "timestamp-backdated"
	default:
		panic(fmt.Errorf("invariant violation: unexpected kind=%d", uint8(kind)))
	}
}

// A Violation is one structural defect found by Validate: the invariant
// that was violated, and the Index of the offending Block.
type Violation struct {
	Kind  Kind
	Index block.Index
}

// String implements the `fmt.Stringer` interface for the Violation type.
func (violation Violation) String() string {
	return fmt.Sprintf("%v at block %d", violation.Kind, violation.Index)
}

// Violations defines a wrapper type around the []Violation type.
type Violations []Violation

// Validate walks the Chain from Index 1 to the tail and checks every Block
// against its predecessor: Index continuity, hash linkage, digest
// recomputation, and strict Timestamp monotonicity, in that order. The walk
// is exhaustive: all four checks run at every position regardless of
// earlier findings, so the result lists every defect in the Chain, ordered
// by Index. The genesis Block has no predecessor and is not checked.
// Validation is purely observational: it never mutates or repairs the
// Chain, and it reports findings as data so that callers decide how to
// react.
func (chain *Chain) Validate() Violations {
	violations := Violations{}
	for i := 1; i < len(chain.blocks); i++ {
		current := chain.blocks[i]
		previous := chain.blocks[i-1]
		if current.Index != block.Index(i) {
			violations = append(violations, Violation{Kind: IndexDiscontinuity, Index: block.Index(i)})
		}
		if !current.PreviousHash.Equal(previous.Hash) {
			violations = append(violations, Violation{Kind: BrokenLink, Index: block.Index(i)})
		}
		if !current.Hash.Equal(current.Digest()) {
			violations = append(violations, Violation{Kind: DigestMismatch, Index: block.Index(i)})
		}
		if previous.Timestamp >= current.Timestamp {
			violations = append(violations, Violation{Kind: TimestampBackdated, Index: block.Index(i)})
		}
	}
	if len(violations) > 0 {
		chain.opts.Logger.Warnf("validation found %d violations", len(violations))
	}
	return violations
}

// IsValid returns true if, and only if, Validate finds no Violations.
func (chain *Chain) IsValid() bool {
	return len(chain.Validate()) == 0
}
