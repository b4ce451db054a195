// A terminal walkthrough of the forkchain library: grow a chain, fork it,
// diverge both branches, recover their common ancestor, and watch validation
// catch tampering. The core defines no command surface of its own; this
// binary is an embedding example.
package main

import (
	"errors"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"

	"github.com/renproject/forkchain/block"
	"github.com/renproject/forkchain/chain"
)

func main() {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Fork", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chain", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		pterm.Fatal.Printfln("rendering title: %v", err)
	}
	pterm.Print(title)

	opts := chain.DefaultOptions().WithLogLevel(logrus.WarnLevel)
	parent := chain.New(opts)

	pterm.DefaultSection.Println("Appending blocks")
	mustAppend(parent, block.Payload{{Key: "v", Value: "1"}})
	mustAppend(parent, block.Payload{{Key: "v", Value: "2"}})
	renderChain("parent", parent)
	pterm.Success.Printfln("parent is valid: %t", parent.IsValid())

	pterm.DefaultSection.Println("Forking and diverging")
	forked := parent.ForkFull()
	mustAppend(parent, block.Payload{{Key: "v", Value: "3"}})
	mustAppend(forked, block.Payload{{Key: "v", Value: "X"}})
	renderChain("parent", parent)
	renderChain("fork", forked)

	pterm.DefaultSection.Println("Finding the common ancestor")
	ancestor := parent.CommonAncestor(forked)
	renderChain("ancestor", ancestor)
	pterm.Info.Printfln("parent and fork diverge after block %d", ancestor.Length()-1)

	pterm.DefaultSection.Println("Tampering with the parent")
	parent.Blocks()[2].Payload[0].Value = "42"
	pterm.Info.Println("rewrote the payload of block 2")
	for _, violation := range parent.Validate() {
		pterm.Warning.Printfln("%v", violation)
	}
}

// mustAppend retries until the wall clock ticks past the latest block, which
// can take a few tries on coarse clocks.
func mustAppend(target *chain.Chain, payload block.Payload) {
	for {
		_, err := target.Append(payload)
		if err == nil {
			return
		}
		if !errors.Is(err, chain.ErrClockRegression) {
			pterm.Fatal.Printfln("appending %v: %v", payload, err)
		}
	}
}

func renderChain(name string, target *chain.Chain) {
	data := pterm.TableData{{"index", "timestamp", "hash", "payload"}}
	for _, b := range target.Blocks() {
		hash := string(b.Hash)
		if len(hash) > 12 {
			hash = hash[:12] + ".."
		}
		data = append(data, []string{
			strconv.FormatInt(int64(b.Index), 10),
			strconv.FormatInt(int64(b.Timestamp), 10),
			hash,
			b.Payload.String(),
		})
	}
	pterm.Info.Printfln("%s (length %d)", name, target.Length())
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Fatal.Printfln("rendering %s: %v", name, err)
	}
}
