package core_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"orbital/internal/core"
	"orbital/internal/core/fake"
	"orbital/internal/ledger"
	"orbital/internal/scheduler"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	debrisRegistry = "0xDebrisRegistryContract123456789abcdef"
	seededTxID     = "0x1a2b3c4d5e6f7890"
)

var _ = Describe("Ledger", func() {
	var (
		store         *ledger.Store
		fakeScheduler *fake.Scheduler
		fakePublisher *fake.EventPublisher
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context
		now           time.Time

		service *core.Ledger

		fakeErr error
	)

	BeforeEach(func() {
		now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { core.TimeNow = time.Now })

		store = ledger.NewStore(ledger.DefaultSeed(now.Add(-time.Hour)))
		fakeScheduler = new(fake.Scheduler)
		fakePublisher = new(fake.EventPublisher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		service = core.NewLedger(fakeLogger, store, fakeScheduler, fakePublisher, rand.New(rand.NewPCG(1, 2)))
	})

	Describe("ListTransactions", func() {
		var (
			query core.TransactionQuery
			page  core.TransactionPage
			err   error
		)

		BeforeEach(func() {
			query = core.TransactionQuery{}
		})

		JustBeforeEach(func() {
			page, err = service.ListTransactions(ctx, query)
		})

		It("should return every seeded transaction with network status", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Transactions).To(HaveLen(2))
			Expect(page.Total).To(Equal(2))
			Expect(page.Network.Network).To(Equal("OrbitalChain"))
			Expect(page.Network.LatestBlock).To(Equal(uint64(1247893)))
			Expect(page.Network.NetworkStatus).To(Equal("healthy"))
		})

		When("the type filter is set", func() {
			BeforeEach(func() {
				query.Type = ledger.DebrisCapture
			})

			It("should only return that type", func() {
				Expect(page.Transactions).To(HaveLen(1))
				Expect(page.Transactions[0].Type).To(Equal(ledger.DebrisCapture))
				Expect(page.Total).To(Equal(1))
			})
		})

		When("the limit truncates the result", func() {
			BeforeEach(func() {
				query.Limit = 1
			})

			It("should report the full filtered count", func() {
				Expect(page.Transactions).To(HaveLen(1))
				Expect(page.Total).To(Equal(2))
			})
		})
	})

	Describe("CreateTransaction", func() {
		var (
			newTx   core.NewTransaction
			created ledger.Transaction
			err     error
		)

		BeforeEach(func() {
			newTx = core.NewTransaction{
				Type: ledger.DebrisCapture,
				Data: ledger.DebrisCaptureData{
					Satellite: "SAT-007",
					Debris:    "DEBRIS-000042",
					Quantity:  "1.2kg",
				},
				From: "0xcollector",
				To:   "0xregistry",
			}
		})

		JustBeforeEach(func() {
			created, err = service.CreateTransaction(ctx, newTx)
		})

		When("the transaction is valid", func() {
			It("should append a pending transaction at the next height", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Status).To(Equal(ledger.StatusPending))
				Expect(created.BlockHeight).To(Equal(uint64(1247894)))
				Expect(created.GasUsed).To(BeNumerically(">=", 21000))
				Expect(created.GasUsed).To(BeNumerically("<", 71000))
				Expect(created.Timestamp).To(Equal(now))
				Expect(created.ID).To(HavePrefix("0x"))
				Expect(created.ID).To(HaveLen(18))
				Expect(created.Hash).To(HaveLen(66))
				Expect(created.Signature).To(HavePrefix("0xsignature"))

				stored, getErr := store.Transaction(created.ID)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(stored).To(Equal(created))
			})

			It("should schedule the confirmation", func() {
				Expect(fakeScheduler.ScheduleCallCount()).To(Equal(1))
				key, _ := fakeScheduler.ScheduleArgsForCall(0)
				Expect(key).To(Equal(created.ID))
			})

			It("should confirm the transaction when the scheduled action fires", func() {
				_, action := fakeScheduler.ScheduleArgsForCall(0)
				action()

				confirmed, getErr := service.GetTransaction(ctx, created.ID)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(confirmed.Status).To(Equal(ledger.StatusConfirmed))
				Expect(confirmed.BlockHeight).To(Equal(created.BlockHeight))
				Expect(confirmed.Hash).To(Equal(created.Hash))
				Expect(confirmed.GasUsed).To(Equal(created.GasUsed))

				Eventually(fakePublisher.PublishCallCount).Should(Equal(2))
			})

			It("should let Wait return only after the event is published", func() {
				release := make(chan struct{})
				fakePublisher.PublishCalls(func(context.Context, ledger.Event) error {
					<-release
					return nil
				})

				_, createErr := service.CreateTransaction(ctx, newTx)
				Expect(createErr).NotTo(HaveOccurred())

				waited := make(chan struct{})
				go func() {
					service.Wait()
					close(waited)
				}()

				Consistently(waited, "50ms").ShouldNot(BeClosed())
				close(release)
				Eventually(waited).Should(BeClosed())
			})

			It("should publish a created event", func() {
				Eventually(fakePublisher.PublishCallCount).Should(Equal(1))
				_, event := fakePublisher.PublishArgsForCall(0)
				Expect(event.Kind).To(Equal(ledger.EventTransactionCreated))
				Expect(event.ID).To(Equal(created.ID))
			})
		})

		When("publishing fails", func() {
			BeforeEach(func() {
				fakePublisher.PublishReturns(fakeErr)
			})

			It("should still create the transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Eventually(fakePublisher.PublishCallCount).Should(Equal(1))
			})
		})

		When("the data variant does not match the type", func() {
			BeforeEach(func() {
				newTx.Type = ledger.PowerTransfer
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeScheduler.ScheduleCallCount()).To(Equal(0))
			})
		})

		When("the type is unknown", func() {
			BeforeEach(func() {
				newTx.Type = "asteroid_mining"
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(err).To(MatchError(ledger.ErrUnknownType))
			})
		})

		When("a variant field is blank", func() {
			BeforeEach(func() {
				newTx.Data = ledger.DebrisCaptureData{Satellite: "SAT-007"}
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(err).To(MatchError(ledger.ErrInvalidData))
			})
		})
	})

	DescribeTable("CreateTransaction with a missing field",
		func(clear func(*core.NewTransaction)) {
			newTx := core.NewTransaction{
				Type: ledger.MaterialProcessing,
				Data: ledger.MaterialProcessingData{Satellite: "SAT-002", Material: "aluminium", Quantity: "4kg"},
				From: "0xprocessor",
				To:   "0xhub",
			}
			clear(&newTx)

			_, err := service.CreateTransaction(ctx, newTx)

			Expect(err).To(MatchError(core.ErrValidation))
			Expect(store.Transactions(ledger.TransactionFilter{})).To(HaveLen(2))
			Expect(fakeScheduler.ScheduleCallCount()).To(Equal(0))
			Expect(fakePublisher.PublishCallCount()).To(Equal(0))
		},
		Entry("type", func(tx *core.NewTransaction) { tx.Type = "" }),
		Entry("data", func(tx *core.NewTransaction) { tx.Data = nil }),
		Entry("from", func(tx *core.NewTransaction) { tx.From = "" }),
		Entry("to", func(tx *core.NewTransaction) { tx.To = "" }),
	)

	Describe("confirmation through the scheduler", func() {
		It("should read confirmed after the delay with nothing else changed", func() {
			confirmations := scheduler.New(fakeLogger, 20*time.Millisecond)
			DeferCleanup(confirmations.Stop)
			service = core.NewLedger(fakeLogger, store, confirmations, fakePublisher, rand.New(rand.NewPCG(3, 4)))

			created, err := service.CreateTransaction(ctx, core.NewTransaction{
				Type: ledger.PowerTransfer,
				Data: ledger.PowerTransferData{From: "SAT-010", To: "SAT-011", PowerAmount: "50kWh"},
				From: "0xgrid",
				To:   "0xconsumer",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(ledger.StatusPending))

			Eventually(func() ledger.TransactionStatus {
				tx, _ := service.GetTransaction(ctx, created.ID)
				return tx.Status
			}).Should(Equal(ledger.StatusConfirmed))

			confirmed, err := service.GetTransaction(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			created.Status = ledger.StatusConfirmed
			Expect(confirmed).To(Equal(created))
			Expect(confirmations.Pending()).To(BeZero())
		})
	})

	Describe("GetTransaction", func() {
		It("should return a seeded transaction", func() {
			tx, err := service.GetTransaction(ctx, seededTxID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Type).To(Equal(ledger.DebrisCapture))
		})

		It("should return ErrNotFound for an unknown id", func() {
			_, err := service.GetTransaction(ctx, "0xmissing")
			Expect(err).To(MatchError(core.ErrNotFound))
		})
	})

	Describe("ListBlocks", func() {
		It("should default to ten blocks and report chain info", func() {
			page, err := service.ListBlocks(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Blocks).To(HaveLen(3))
			Expect(page.Total).To(Equal(3))
			Expect(page.ChainInfo).To(Equal(core.ChainInfo{
				LatestBlock:     1247893,
				TotalBlocks:     3,
				AvgBlockTime:    "2.1s",
				NetworkHashRate: "1.2 TH/s",
			}))
		})

		It("should truncate to the limit", func() {
			page, err := service.ListBlocks(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Blocks).To(HaveLen(2))
			Expect(page.Blocks[0].Height).To(Equal(uint64(1247893)))
		})
	})

	Describe("GetBlock", func() {
		It("should return the block at that height", func() {
			block, err := service.GetBlock(ctx, 1247893)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Height).To(Equal(uint64(1247893)))
		})

		It("should return ErrNotFound for an unseeded height", func() {
			_, err := service.GetBlock(ctx, 1)
			Expect(err).To(MatchError(core.ErrNotFound))
		})
	})

	Describe("ListContracts", func() {
		It("should compute network info over every contract", func() {
			page, err := service.ListContracts(ctx, ledger.ManufacturingHub)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Contracts).To(HaveLen(1))
			Expect(page.Total).To(Equal(1))
			Expect(page.NetworkInfo).To(Equal(core.ContractNetworkInfo{
				TotalContracts:    4,
				ActiveContracts:   4,
				TotalTransactions: 2847 + 1456 + 892 + 234,
			}))
		})
	})

	Describe("GetContract", func() {
		It("should return ErrNotFound for an unknown address", func() {
			_, err := service.GetContract(ctx, "0xnobody")
			Expect(err).To(MatchError(core.ErrNotFound))
		})
	})

	Describe("InvokeContract", func() {
		var (
			inv     core.Invocation
			receipt core.ExecutionReceipt
			err     error
		)

		BeforeEach(func() {
			inv = core.Invocation{
				ContractAddress: debrisRegistry,
				FunctionName:    "captureDebris",
				Parameters:      []any{"DEBRIS-000001"},
			}
		})

		JustBeforeEach(func() {
			receipt, err = service.InvokeContract(ctx, inv)
		})

		When("the contract exists", func() {
			It("should return a pending receipt without a block number", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal(ledger.StatusPending))
				Expect(receipt.BlockNumber).To(BeNil())
				Expect(receipt.ContractAddress).To(Equal(debrisRegistry))
				Expect(receipt.Parameters).To(Equal([]any{"DEBRIS-000001"}))
				Expect(receipt.GasUsed).To(BeNumerically(">=", 21000))
				Expect(receipt.GasUsed).To(BeNumerically("<", 121000))
				Expect(strings.HasPrefix(receipt.TransactionHash, "0x")).To(BeTrue())
			})

			It("should increment the contract counter and stamp its activity", func() {
				contract, getErr := store.Contract(debrisRegistry)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(contract.TotalTransactions).To(Equal(2848))
				Expect(contract.LastActivity).To(Equal(now))
			})

			It("should publish a contract event keyed by address", func() {
				Eventually(fakePublisher.PublishCallCount).Should(Equal(1))
				_, event := fakePublisher.PublishArgsForCall(0)
				Expect(event.Kind).To(Equal(ledger.EventContractInvoked))
				Expect(event.Key()).To(Equal(debrisRegistry))
			})
		})

		When("no parameters are supplied", func() {
			BeforeEach(func() {
				inv.Parameters = nil
			})

			It("should echo an empty list", func() {
				Expect(receipt.Parameters).To(Equal([]any{}))
			})
		})

		When("the function is not in the ABI", func() {
			BeforeEach(func() {
				inv.FunctionName = "selfDestruct"
			})

			It("should still execute", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the contract is unknown", func() {
			BeforeEach(func() {
				inv.ContractAddress = "0xnobody"
			})

			It("should return ErrNotFound and leave every contract untouched", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
				for _, c := range store.Contracts("") {
					Expect(c.LastActivity).NotTo(Equal(now))
				}
				Expect(fakePublisher.PublishCallCount()).To(Equal(0))
			})
		})

		When("the function name is missing", func() {
			BeforeEach(func() {
				inv.FunctionName = ""
			})

			It("should still execute and count the call", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.FunctionName).To(BeEmpty())

				contract, getErr := store.Contract(debrisRegistry)
				Expect(getErr).NotTo(HaveOccurred())
				Expect(contract.TotalTransactions).To(Equal(2848))
			})
		})

		When("the contract address is missing", func() {
			BeforeEach(func() {
				inv.ContractAddress = ""
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
				Expect(err).NotTo(MatchError(core.ErrValidation))
				Expect(fakePublisher.PublishCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Analytics", func() {
		It("should derive contract figures from the store", func() {
			_, err := service.InvokeContract(ctx, core.Invocation{
				ContractAddress: debrisRegistry,
				FunctionName:    "registerDebris",
			})
			Expect(err).NotTo(HaveOccurred())

			analytics, err := service.Analytics(ctx, core.DefaultTimeframe)
			Expect(err).NotTo(HaveOccurred())
			Expect(analytics.Contracts.TotalDeployed).To(Equal(4))
			Expect(analytics.Contracts.TotalInteractions).To(Equal(2847 + 1456 + 892 + 234 + 1))
			Expect(analytics.Contracts.MostActive).To(Equal("Orbital Debris Registry"))
			Expect(analytics.Network.ActiveValidators).To(Equal(7))
			Expect(analytics.Validators).To(HaveLen(3))
			Expect(analytics.Transactions.Daily).To(HaveLen(7))
		})
	})
})
