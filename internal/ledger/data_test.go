package ledger_test

import (
	"encoding/json"
	"orbital/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeTransactionData", func() {
	var (
		txType ledger.TransactionType
		raw    json.RawMessage
		data   ledger.TransactionData
		err    error
	)

	JustBeforeEach(func() {
		data, err = ledger.DecodeTransactionData(txType, raw)
	})

	When("the payload matches the type", func() {
		BeforeEach(func() {
			txType = ledger.DebrisCapture
			raw = json.RawMessage(`{"satellite":"SAT-001","debris":"DEBRIS-001","quantity":"2.5kg"}`)
		})

		It("should decode the debris capture variant", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(ledger.DebrisCaptureData{
				Satellite: "SAT-001",
				Debris:    "DEBRIS-001",
				Quantity:  "2.5kg",
			}))
			Expect(data.Kind()).To(Equal(ledger.DebrisCapture))
		})
	})

	When("a variant field is missing", func() {
		BeforeEach(func() {
			txType = ledger.PowerTransfer
			raw = json.RawMessage(`{"from":"grid-a","to":"grid-b"}`)
		})

		It("should fail with ErrInvalidData", func() {
			Expect(err).To(MatchError(ledger.ErrInvalidData))
			Expect(err.Error()).To(ContainSubstring("powerAmount"))
		})
	})

	When("the payload is not an object", func() {
		BeforeEach(func() {
			txType = ledger.MaterialProcessing
			raw = json.RawMessage(`"steel"`)
		})

		It("should fail with ErrInvalidData", func() {
			Expect(err).To(MatchError(ledger.ErrInvalidData))
		})
	})

	When("the payload is empty", func() {
		BeforeEach(func() {
			txType = ledger.SatelliteServicing
			raw = nil
		})

		It("should fail with ErrInvalidData", func() {
			Expect(err).To(MatchError(ledger.ErrInvalidData))
		})
	})

	When("the type is unknown", func() {
		BeforeEach(func() {
			txType = "asteroid_mining"
			raw = json.RawMessage(`{}`)
		})

		It("should fail with ErrUnknownType", func() {
			Expect(err).To(MatchError(ledger.ErrUnknownType))
			Expect(data).To(BeNil())
		})
	})
})

var _ = Describe("Event", func() {
	It("should key contract invocations by contract address", func() {
		event := ledger.Event{Kind: ledger.EventContractInvoked, ID: "0xhash", Contract: "0xcontract"}
		Expect(event.Key()).To(Equal("0xcontract"))
	})

	It("should key transaction events by transaction id", func() {
		event := ledger.Event{Kind: ledger.EventTransactionConfirmed, ID: "0xtx"}
		Expect(event.Key()).To(Equal("0xtx"))
	})
})
