package chain

import (
	"errors"
	"time"

	"github.com/renproject/forkchain/block"
)

// ErrClockRegression is returned by Append when the Clock does not strictly
// advance past the latest Block. The Chain is left untouched; silently
// appending a non-monotonic Block would create exactly the corruption that
// Validate exists to report.
var ErrClockRegression = errors.New("chain: clock regression")

// A Clock supplies the Timestamps stored in newly appended Blocks. Chains
// read their Clock on every Append, so injecting a deterministic Clock gives
// tests full control over Block ordering.
type Clock interface {
	Now() block.Timestamp
}

type systemClock struct{}

// SystemClock returns a Clock backed by the wall clock, in nanoseconds. The
// wall clock can be adjusted backwards by the operating system; Append
// guards against this with ErrClockRegression instead of corrupting the
// Chain.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() block.Timestamp {
	return block.Timestamp(time.Now().UnixNano())
}
