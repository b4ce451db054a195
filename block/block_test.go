package block_test

import (
	"math/rand"
	"testing/quick"
	"time"

	"github.com/renproject/forkchain/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/forkchain/block"
)

var _ = Describe("Block", func() {
	rand.Seed(int64(time.Now().Nanosecond()))

	Context("when constructing blocks", func() {
		It("should compute the hash from the fields immediately", func() {
			loop := func() bool {
				newBlock := New(Index(rand.Int63()), testutil.RandomTimestamp(), testutil.RandomPayload(), GenesisPreviousHash)
				Expect(newBlock.Hash).To(Equal(newBlock.Digest()))
				return true
			}
			Expect(quick.Check(loop, nil)).To(Succeed())
		})

		It("should panic on a negative index", func() {
			Expect(func() { New(-1, 0, nil, GenesisPreviousHash) }).To(Panic())
		})
	})

	Context("when constructing two blocks from the same fields", func() {
		It("should produce equal hashes and equal blocks", func() {
			loop := func() bool {
				index := Index(rand.Int63())
				timestamp := testutil.RandomTimestamp()
				payload := testutil.RandomPayload()
				first := New(index, timestamp, payload, "prev")
				second := New(index, timestamp, payload.Clone(), "prev")
				Expect(first.Hash.Equal(second.Hash)).To(BeTrue())
				Expect(first.Equal(second)).To(BeTrue())
				return true
			}
			Expect(quick.Check(loop, nil)).To(Succeed())
		})
	})

	Context("when any field changes after construction", func() {
		It("should change the recomputed digest", func() {
			newBlock := New(3, 42, Payload{{Key: "v", Value: "1"}}, "prev")

			tampered := newBlock.Clone()
			tampered.Index = 4
			Expect(tampered.Digest()).ToNot(Equal(newBlock.Hash))

			tampered = newBlock.Clone()
			tampered.Timestamp = 43
			Expect(tampered.Digest()).ToNot(Equal(newBlock.Hash))

			tampered = newBlock.Clone()
			tampered.Payload[0].Value = "2"
			Expect(tampered.Digest()).ToNot(Equal(newBlock.Hash))

			tampered = newBlock.Clone()
			tampered.PreviousHash = "other"
			Expect(tampered.Digest()).ToNot(Equal(newBlock.Hash))
		})
	})

	Context("when comparing blocks", func() {
		It("should compare all fields, not only hashes", func() {
			newBlock := New(1, 42, Payload{{Key: "v", Value: "1"}}, "prev")
			other := newBlock.Clone()
			other.Timestamp = 43
			Expect(other.Hash.Equal(newBlock.Hash)).To(BeTrue())
			Expect(other.Equal(newBlock)).To(BeFalse())
		})
	})

	Context("when cloning blocks", func() {
		It("should share no mutable state with the original", func() {
			newBlock := New(1, 42, Payload{{Key: "v", Value: "1"}}, "prev")
			clone := newBlock.Clone()
			clone.Payload[0].Value = "2"
			Expect(newBlock.Payload[0].Value).To(Equal("1"))
		})
	})
})

var _ = Describe("Payload", func() {
	Context("when encoding payloads", func() {
		It("should encode members in payload order", func() {
			payload := Payload{{Key: "author", Value: "Stefan Delic"}, {Key: "message", Value: "Hello world."}}
			Expect(string(payload.Encode())).To(Equal(`{"author":"Stefan Delic","message":"Hello world."}`))
		})

		It("should encode the empty payload as an empty object", func() {
			Expect(string(Payload{}.Encode())).To(Equal("{}"))
			Expect(string(Payload(nil).Encode())).To(Equal("{}"))
		})

		It("should escape keys and values", func() {
			payload := Payload{{Key: `qu"ote`, Value: "line\nbreak"}}
			Expect(string(payload.Encode())).To(Equal(`{"qu\"ote":"line\nbreak"}`))
		})
	})

	Context("when comparing payloads", func() {
		It("should distinguish orderings", func() {
			forward := Payload{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
			backward := Payload{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}
			Expect(forward.Equal(backward)).To(BeFalse())
			Expect(string(forward.Encode())).ToNot(Equal(string(backward.Encode())))
		})
	})
})
