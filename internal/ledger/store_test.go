package ledger_test

import (
	"fmt"
	"orbital/internal/ledger"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	debrisRegistry = "0xDebrisRegistryContract123456789abcdef"
	powerGrid      = "0xPowerGridContract123456789abcdef456"
)

var _ = Describe("Store", func() {
	var (
		store *ledger.Store
		now   time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		store = ledger.NewStore(ledger.DefaultSeed(now))
	})

	pending := func(id string) ledger.Transaction {
		return ledger.Transaction{
			ID:     id,
			Type:   ledger.PowerTransfer,
			From:   "0xfrom",
			To:     "0xto",
			Status: ledger.StatusPending,
			Data: ledger.PowerTransferData{
				From:        "grid-a",
				To:          "grid-b",
				PowerAmount: "50kW",
			},
		}
	}

	Describe("Transactions", func() {
		It("should return the seeded transactions newest first", func() {
			txs := store.Transactions(ledger.TransactionFilter{})
			Expect(txs).To(HaveLen(2))
			Expect(txs[0].ID).To(Equal("0x1a2b3c4d5e6f7890"))
			Expect(txs[1].ID).To(Equal("0x2b3c4d5e6f789012"))
		})

		It("should apply the type filter", func() {
			txs := store.Transactions(ledger.TransactionFilter{Type: ledger.MaterialProcessing})
			Expect(txs).To(HaveLen(1))
			Expect(txs[0].Type).To(Equal(ledger.MaterialProcessing))
		})

		It("should match nothing for an unknown status", func() {
			txs := store.Transactions(ledger.TransactionFilter{Status: "lost"})
			Expect(txs).To(BeEmpty())
			Expect(txs).NotTo(BeNil())
		})
	})

	Describe("AppendTransaction", func() {
		It("should assign the next block height and insert at the head", func() {
			created, err := store.AppendTransaction(pending("0xnew"))
			Expect(err).NotTo(HaveOccurred())
			Expect(created.BlockHeight).To(Equal(uint64(1247894)))

			txs := store.Transactions(ledger.TransactionFilter{})
			Expect(txs).To(HaveLen(3))
			Expect(txs[0].ID).To(Equal("0xnew"))
		})

		It("should keep heights strictly increasing", func() {
			first, err := store.AppendTransaction(pending("0xa"))
			Expect(err).NotTo(HaveOccurred())
			second, err := store.AppendTransaction(pending("0xb"))
			Expect(err).NotTo(HaveOccurred())
			Expect(second.BlockHeight).To(Equal(first.BlockHeight + 1))
		})

		It("should reject a duplicate id", func() {
			_, err := store.AppendTransaction(pending("0x1a2b3c4d5e6f7890"))
			Expect(err).To(MatchError(ledger.ErrDuplicate))
			Expect(store.Transactions(ledger.TransactionFilter{})).To(HaveLen(2))
		})

		When("the store is empty", func() {
			BeforeEach(func() {
				store = ledger.NewStore(ledger.Seed{})
			})

			It("should start from the genesis height", func() {
				created, err := store.AppendTransaction(pending("0xfirst"))
				Expect(err).NotTo(HaveOccurred())
				Expect(created.BlockHeight).To(Equal(ledger.GenesisHeight))
			})
		})

		It("should hand out distinct heights to concurrent writers", func() {
			const writers = 20
			heights := make(chan uint64, writers)

			var wg sync.WaitGroup
			for i := range writers {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					created, err := store.AppendTransaction(pending(fmt.Sprintf("0x%02d", i)))
					Expect(err).NotTo(HaveOccurred())
					heights <- created.BlockHeight
				}(i)
			}
			wg.Wait()
			close(heights)

			seen := map[uint64]bool{}
			for h := range heights {
				Expect(seen).NotTo(HaveKey(h))
				seen[h] = true
			}
			Expect(seen).To(HaveLen(writers))
		})
	})

	Describe("ConfirmTransaction", func() {
		It("should confirm a pending transaction once", func() {
			_, err := store.AppendTransaction(pending("0xnew"))
			Expect(err).NotTo(HaveOccurred())

			Expect(store.ConfirmTransaction("0xnew")).To(BeTrue())
			Expect(store.ConfirmTransaction("0xnew")).To(BeFalse())

			tx, err := store.Transaction("0xnew")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Status).To(Equal(ledger.StatusConfirmed))
			Expect(tx.BlockHeight).To(Equal(uint64(1247894)))
		})

		It("should report false for an unknown id", func() {
			Expect(store.ConfirmTransaction("0xmissing")).To(BeFalse())
		})
	})

	Describe("Transaction", func() {
		It("should return ErrNotFound for an unknown id", func() {
			_, err := store.Transaction("0xmissing")
			Expect(err).To(MatchError(ledger.ErrNotFound))
		})
	})

	Describe("Blocks", func() {
		It("should return the seeded blocks newest first", func() {
			blocks := store.Blocks()
			Expect(blocks).To(HaveLen(3))
			Expect(blocks[0].Height).To(Equal(uint64(1247893)))
			Expect(blocks[2].Height).To(Equal(uint64(1247891)))
			Expect(store.LatestHeight()).To(Equal(uint64(1247893)))
		})

		It("should find a block by height", func() {
			block, err := store.Block(1247892)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Height).To(Equal(uint64(1247892)))
		})

		It("should return ErrNotFound for an unseeded height", func() {
			_, err := store.Block(42)
			Expect(err).To(MatchError(ledger.ErrNotFound))
		})

		It("should hand out copies", func() {
			blocks := store.Blocks()
			blocks[0].Transactions[0] = "0xtampered"

			block, err := store.Block(blocks[0].Height)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Transactions[0]).NotTo(Equal("0xtampered"))
		})
	})

	Describe("Contracts", func() {
		It("should return every contract without a type", func() {
			Expect(store.Contracts("")).To(HaveLen(4))
		})

		It("should filter by type", func() {
			contracts := store.Contracts(ledger.PowerGrid)
			Expect(contracts).To(HaveLen(1))
			Expect(contracts[0].Address).To(Equal(powerGrid))
		})
	})

	Describe("RecordInvocation", func() {
		var at time.Time

		BeforeEach(func() {
			at = now.Add(time.Hour)
		})

		It("should increment the counter by exactly one and stamp the activity", func() {
			before, err := store.Contract(debrisRegistry)
			Expect(err).NotTo(HaveOccurred())

			after, err := store.RecordInvocation(debrisRegistry, at)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.TotalTransactions).To(Equal(before.TotalTransactions + 1))
			Expect(after.LastActivity).To(Equal(at))
		})

		It("should not touch any contract for an unknown address", func() {
			before := store.Contracts("")

			_, err := store.RecordInvocation("0xnobody", at)
			Expect(err).To(MatchError(ledger.ErrNotFound))
			Expect(store.Contracts("")).To(Equal(before))
		})
	})
})
