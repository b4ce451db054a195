// Package testutil provides randomized constructors and deterministic clocks
// for testing chains.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/renproject/forkchain/block"
	"github.com/renproject/forkchain/chain"
)

var r *rand.Rand

func init() {
	r = rand.New(rand.NewSource(time.Now().Unix()))
}

// RandomPayload returns a Payload with a random number of random key-value
// entries.
func RandomPayload() block.Payload {
	length := r.Intn(8)
	payload := make(block.Payload, 0, length)
	for i := 0; i < length; i++ {
		payload = append(payload, block.Field{
			Key:   fmt.Sprintf("key-%d-%d", i, r.Int63()),
			Value: fmt.Sprintf("value-%d", r.Int63()),
		})
	}
	return payload
}

// RandomTimestamp returns a positive Timestamp with room to grow before
// overflowing.
func RandomTimestamp() block.Timestamp {
	return block.Timestamp(r.Int63n(1<<50) + 1)
}

// A StepClock is a deterministic Clock that starts at a fixed Timestamp and
// advances by a fixed step after every reading. A zero step makes every
// reading equal, which is useful for forcing clock regressions.
type StepClock struct {
	now  block.Timestamp
	step block.Timestamp
}

// NewStepClock returns a StepClock that will return now on its first
// reading.
func NewStepClock(now, step block.Timestamp) *StepClock {
	return &StepClock{now: now, step: step}
}

// Now implements the `chain.Clock` interface for the StepClock type.
func (clock *StepClock) Now() block.Timestamp {
	now := clock.now
	clock.now += clock.step
	return now
}

// DefaultOptions returns chain options driven by a fresh StepClock, so that
// appends are deterministic and never regress.
func DefaultOptions() chain.Options {
	return chain.DefaultOptions().WithClock(NewStepClock(RandomTimestamp(), 1))
}

// RandomChain returns a valid Chain with the given number of Blocks
// appended after the genesis Block.
func RandomChain(appends int) *chain.Chain {
	randomChain := chain.New(DefaultOptions())
	for i := 0; i < appends; i++ {
		if _, err := randomChain.Append(RandomPayload()); err != nil {
			panic(fmt.Sprintf("cannot append block %d: %v", i, err))
		}
	}
	return randomChain
}
