// Package block defines the Block type: one immutable, self-hashing record
// in a chain. A Block commits to its predecessor through its PreviousHash,
// and to its own content through a digest computed at construction time, so
// any retroactive modification is detectable by recomputing the digest.
package block

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// Index is the position of a Block within its chain. The genesis Block is
// always at Index 0.
type Index int64

// Timestamp is the creation time of a Block, in nanoseconds since the Unix
// epoch. Consecutive Blocks in a well-formed chain have strictly increasing
// Timestamps.
type Timestamp int64

// Hash is the hex-encoded output of the 256-bit SHA3 hashing function. Hash
// values are the only values suitable for cross-chain linkage comparisons or
// external persistence keys.
type Hash string

// GenesisPreviousHash is the fixed sentinel stored as the PreviousHash of
// every genesis Block. A genesis Block has no predecessor, so its
// PreviousHash is not a digest.
const GenesisPreviousHash = Hash("Liberate my madness...")

// Equal compares one Hash with another.
func (hash Hash) Equal(other Hash) bool {
	return hash == other
}

// String implements the `fmt.Stringer` interface for the Hash type.
func (hash Hash) String() string {
	return string(hash)
}

// Blocks defines a wrapper type around the []Block type.
type Blocks []Block

// A Block is one record in an append-only chain. Its Hash is computed from
// all of its other fields when it is constructed, and every subsequent Block
// stores that Hash as its PreviousHash, linking the chain together.
//
// Fields are exported so that embedding systems can read them directly, but
// a Block must never be modified after construction: a Block whose stored
// Hash no longer matches its recomputed Digest is corrupt.
type Block struct {
	Index        Index
	Timestamp    Timestamp
	Payload      Payload
	PreviousHash Hash
	Hash         Hash
}

// New constructs a Block and immediately computes its Hash from the given
// fields. Construction always succeeds for well-typed inputs.
func New(index Index, timestamp Timestamp, payload Payload, previousHash Hash) Block {
	if index < 0 {
		panic(fmt.Sprintf("pre-condition violation: negative index=%d", index))
	}
	block := Block{
		Index:        index,
		Timestamp:    timestamp,
		Payload:      payload,
		PreviousHash: previousHash,
	}
	block.Hash = block.Digest()
	return block
}

// Digest re-derives the Hash of the Block from its current field values. It
// feeds the decimal form of the Index, the decimal form of the Timestamp,
// the deterministic encoding of the Payload, and the PreviousHash, in that
// order, into a 256-bit SHA3 hash. The hashing function and the field order
// are part of the wire contract: the same inputs always reproduce the same
// output.
func (block Block) Digest() Hash {
	hash := sha3.New256()
	hash.Write([]byte(strconv.FormatInt(int64(block.Index), 10)))
	hash.Write([]byte(strconv.FormatInt(int64(block.Timestamp), 10)))
	hash.Write(block.Payload.Encode())
	hash.Write([]byte(block.PreviousHash))
	return Hash(hex.EncodeToString(hash.Sum(nil)))
}

// Equal compares one Block with another field-by-field. Comparing stored
// Hashes alone is not enough to detect divergence, so all fields are
// compared.
func (block Block) Equal(other Block) bool {
	return block.Index == other.Index &&
		block.Timestamp == other.Timestamp &&
		block.Payload.Equal(other.Payload) &&
		block.PreviousHash.Equal(other.PreviousHash) &&
		block.Hash.Equal(other.Hash)
}

// Clone returns a deep copy of the Block that shares no mutable state with
// the original.
func (block Block) Clone() Block {
	clone := block
	clone.Payload = block.Payload.Clone()
	return clone
}

// String implements the `fmt.Stringer` interface for the Block type.
func (block Block) String() string {
	return fmt.Sprintf("Block(Index=%d,Hash=%v,Payload=%v)", block.Index, block.Hash, block.Payload)
}
