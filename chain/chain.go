// Package chain defines the Chain type: an ordered, append-only sequence of
// Blocks rooted at a genesis Block. Chains grow one Block at a time and
// never shrink; branching happens by forking, which deep-copies the Chain
// instead of sharing it, so that two chains never share mutable state.
package chain

import (
	"fmt"
	"strings"

	"github.com/renproject/forkchain/block"
)

// GenesisPayload returns the fixed Payload stored in every genesis Block.
func GenesisPayload() block.Payload {
	return block.Payload{
		{Key: "author", Value: "Stefan Delic"},
		{Key: "message", Value: "Hello world."},
	}
}

// A Chain owns its Block sequence: the Block at Index i is stored at
// position i, and every Block after the genesis links to its predecessor by
// hash. A Chain must not be mutated concurrently; callers that share a Chain
// between goroutines must serialize Appends themselves, since the Chain
// holds no lock of its own.
type Chain struct {
	opts   Options
	blocks block.Blocks
}

// New returns a Chain containing exactly one genesis Block: Index 0, the
// current Clock reading, the fixed genesis Payload, and the genesis sentinel
// as its PreviousHash. This is the only way to create a Chain; an empty
// Chain, or one with an arbitrary genesis Block, is not constructible
// through the public contract.
func New(opts Options) *Chain {
	genesis := block.New(0, opts.Clock.Now(), GenesisPayload(), block.GenesisPreviousHash)
	return &Chain{
		opts:   opts,
		blocks: block.Blocks{genesis},
	}
}

// Append builds a Block holding the given Payload, links it to the latest
// Block, and appends it at the tail. It returns the appended Block, or
// ErrClockRegression when the Clock has not advanced strictly past the
// latest Block. The Chain is untouched on failure.
func (chain *Chain) Append(payload block.Payload) (block.Block, error) {
	latest := chain.blocks[len(chain.blocks)-1]
	now := chain.opts.Clock.Now()
	if now <= latest.Timestamp {
		return block.Block{}, fmt.Errorf("%w: now=%d is not after latest=%d", ErrClockRegression, now, latest.Timestamp)
	}
	appended := block.New(block.Index(len(chain.blocks)), now, payload, latest.Hash)
	chain.blocks = append(chain.blocks, appended)
	chain.opts.Logger.Debugf("appended %v", appended)
	return appended, nil
}

// Length returns the number of Blocks in the Chain, genesis included.
func (chain *Chain) Length() int {
	return len(chain.blocks)
}

// LatestBlock returns the Block at the tail of the Chain.
func (chain *Chain) LatestBlock() block.Block {
	return chain.blocks[len(chain.blocks)-1]
}

// Block returns the Block at the given Index.
func (chain *Chain) Block(index block.Index) (block.Block, bool) {
	if index < 0 || int(index) >= len(chain.blocks) {
		return block.Block{}, false
	}
	return chain.blocks[index], true
}

// Blocks returns the Blocks of the Chain, ordered by Index. The returned
// slice is the backing storage of the Chain and must be treated as
// read-only: writing through it corrupts the Chain, which Validate will
// then report.
func (chain *Chain) Blocks() block.Blocks {
	return chain.blocks
}

// ForkFull returns a new Chain that is a deep, independent copy of the whole
// Chain. The fork shares no mutable state with its parent: appending to
// either never affects the other.
func (chain *Chain) ForkFull() *Chain {
	return chain.fork(len(chain.blocks))
}

// ForkUpto returns a new Chain that is a deep, independent copy of the
// Blocks at indices [0, upto). Upto must be at least 1, because every Chain
// has a genesis Block, and at most the length of the Chain. Forking copies
// existing Blocks; it never creates new ones.
func (chain *Chain) ForkUpto(upto int) *Chain {
	if upto < 1 || upto > len(chain.blocks) {
		panic(fmt.Sprintf("pre-condition violation: upto=%d is out of range [1,%d]", upto, len(chain.blocks)))
	}
	return chain.fork(upto)
}

func (chain *Chain) fork(upto int) *Chain {
	blocks := make(block.Blocks, upto)
	for i := range blocks {
		blocks[i] = chain.blocks[i].Clone()
	}
	chain.opts.Logger.Debugf("forked %d/%d blocks", upto, len(chain.blocks))
	return &Chain{
		opts:   chain.opts,
		blocks: blocks,
	}
}

// CommonAncestor returns the longest shared prefix of the Chain and another
// Chain believed to have been forked from it, as a freshly copied Chain. The
// scan walks both chains in lockstep, starting after the genesis Block, and
// stops at the first Index where the Blocks differ by full value equality;
// when there is no divergence in the overlapping range, the whole
// overlapping prefix is returned. Neither Chain is mutated.
func (chain *Chain) CommonAncestor(other *Chain) *Chain {
	minLength := len(chain.blocks)
	if len(other.blocks) < minLength {
		minLength = len(other.blocks)
	}
	for i := 1; i < minLength; i++ {
		if !chain.blocks[i].Equal(other.blocks[i]) {
			return chain.fork(i)
		}
	}
	return chain.fork(minLength)
}

// String implements the `fmt.Stringer` interface for the Chain type.
func (chain *Chain) String() string {
	builder := strings.Builder{}
	builder.WriteString("Chain(")
	for i := range chain.blocks {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString(chain.blocks[i].String())
	}
	builder.WriteString(")")
	return builder.String()
}
