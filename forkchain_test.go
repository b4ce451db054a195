package forkchain_test

import (
	"github.com/renproject/forkchain/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/forkchain"
)

var _ = Describe("Forkchain", func() {
	Context("when a fork diverges from its parent", func() {
		It("should find the common ancestor at the divergence point", func() {
			parent := New(DefaultOptions().WithClock(testutil.NewStepClock(1, 1)))
			_, err := parent.Append(Payload{{Key: "v", Value: "1"}})
			Expect(err).ToNot(HaveOccurred())
			_, err = parent.Append(Payload{{Key: "v", Value: "2"}})
			Expect(err).ToNot(HaveOccurred())

			forked := parent.ForkFull()
			_, err = parent.Append(Payload{{Key: "v", Value: "3"}})
			Expect(err).ToNot(HaveOccurred())
			_, err = forked.Append(Payload{{Key: "v", Value: "X"}})
			Expect(err).ToNot(HaveOccurred())

			ancestor := parent.CommonAncestor(forked)
			Expect(ancestor.Length()).To(Equal(3))
			for i := 0; i < ancestor.Length(); i++ {
				Expect(ancestor.Blocks()[i].Equal(parent.Blocks()[i])).To(BeTrue())
			}
			Expect(ancestor.IsValid()).To(BeTrue())
			Expect(parent.IsValid()).To(BeTrue())
			Expect(forked.IsValid()).To(BeTrue())
		})
	})

	Context("when chains never share history", func() {
		It("should still validate independently", func() {
			first := testutil.RandomChain(3)
			second := testutil.RandomChain(3)
			Expect(first.IsValid()).To(BeTrue())
			Expect(second.IsValid()).To(BeTrue())
			Expect(first.LatestBlock().Equal(second.LatestBlock())).To(BeFalse())
		})
	})
})
