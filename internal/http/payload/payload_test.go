package payload_test

import (
	"net/http/httptest"
	"net/url"
	"orbital/internal/core"
	"orbital/internal/http/payload"
	"orbital/internal/ledger"
	"orbital/internal/telemetry"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		body string
		req  payload.CreateTransactionRequest
		err  error
	)

	JustBeforeEach(func() {
		r := httptest.NewRequest("POST", "/api/blockchain/transactions", strings.NewReader(body))
		err = payload.Decoder{}.DecodeJSONPayload(r, &req)
	})

	When("the body is complete", func() {
		BeforeEach(func() {
			body = `{"type":"debris_capture","data":{"satellite":"SAT-001","debris":"D-1","quantity":"1kg"},"from":"0xa","to":"0xb"}`
		})

		It("should decode it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Type).To(Equal("debris_capture"))
			Expect(req.From).To(Equal("0xa"))
		})
	})

	When("a required field is missing", func() {
		BeforeEach(func() {
			body = `{"type":"debris_capture","data":{},"from":"0xa"}`
		})

		It("should fail validation", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("to"))
		})
	})

	When("an unknown field is sent", func() {
		BeforeEach(func() {
			body = `{"type":"debris_capture","data":{},"from":"0xa","to":"0xb","fee":1}`
		})

		It("should reject the body as malformed", func() {
			Expect(err).To(MatchError(payload.ErrMalformedBody))
			Expect(err.Error()).To(ContainSubstring(`unknown field "fee"`))
		})
	})

	When("the body is not json", func() {
		BeforeEach(func() {
			body = `{"type":`
		})

		It("should reject the body as malformed", func() {
			Expect(err).To(MatchError(payload.ErrMalformedBody))
		})
	})

	When("the body parses but misses fields", func() {
		BeforeEach(func() {
			body = `{"type":"debris_capture"}`
		})

		It("should not call it malformed", func() {
			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(payload.ErrMalformedBody))
		})
	})

	When("the body is empty", func() {
		BeforeEach(func() {
			body = ""
		})

		It("should report an empty body", func() {
			Expect(err).To(MatchError(payload.ErrEmptyBody))
		})
	})
})

var _ = Describe("CreateTransactionRequest", func() {
	It("should decode the data variant named by the type", func() {
		req := payload.CreateTransactionRequest{
			Type: "satellite_servicing",
			Data: []byte(`{"satellite":"SAT-1","target":"SAT-2","service":"refuel"}`),
			From: "0xa",
			To:   "0xb",
		}

		newTx, err := req.ToNewTransaction()
		Expect(err).NotTo(HaveOccurred())
		Expect(newTx).To(Equal(core.NewTransaction{
			Type: ledger.SatelliteServicing,
			Data: ledger.SatelliteServicingData{Satellite: "SAT-1", Target: "SAT-2", Service: "refuel"},
			From: "0xa",
			To:   "0xb",
		}))
	})

	DescribeTable("should require every top level field",
		func(field string, clear func(*payload.CreateTransactionRequest)) {
			req := payload.CreateTransactionRequest{
				Type: "debris_capture",
				Data: []byte(`{"satellite":"SAT-1","debris":"D-1","quantity":"1kg"}`),
				From: "0xa",
				To:   "0xb",
			}
			Expect(req.Validate()).To(Succeed())

			clear(&req)
			err := req.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(field))
		},
		Entry("type", "type", func(r *payload.CreateTransactionRequest) { r.Type = "" }),
		Entry("data", "data", func(r *payload.CreateTransactionRequest) { r.Data = nil }),
		Entry("from", "from", func(r *payload.CreateTransactionRequest) { r.From = "" }),
		Entry("to", "to", func(r *payload.CreateTransactionRequest) { r.To = "" }),
	)

	It("should reject data that does not fit the type", func() {
		req := payload.CreateTransactionRequest{
			Type: "power_transfer",
			Data: []byte(`{"satellite":"SAT-1"}`),
			From: "0xa",
			To:   "0xb",
		}

		_, err := req.ToNewTransaction()
		Expect(err).To(MatchError(ledger.ErrInvalidData))
	})
})

var _ = Describe("TransactionsQuery", func() {
	It("should accept an empty query", func() {
		query := payload.NewTransactionsQuery(url.Values{})
		Expect(query.Validate()).To(Succeed())
		Expect(query.ToCore()).To(Equal(core.TransactionQuery{}))
	})

	It("should convert the filters", func() {
		query := payload.NewTransactionsQuery(url.Values{
			"type":   {"power_transfer"},
			"status": {"pending"},
			"limit":  {"5"},
		})
		Expect(query.Validate()).To(Succeed())
		Expect(query.ToCore()).To(Equal(core.TransactionQuery{
			Type:   ledger.PowerTransfer,
			Status: ledger.StatusPending,
			Limit:  5,
		}))
	})

	DescribeTable("should reject a bad limit",
		func(limit string) {
			query := payload.NewTransactionsQuery(url.Values{"limit": {limit}})
			Expect(query.Validate()).NotTo(Succeed())
		},
		Entry("zero", "0"),
		Entry("negative", "-3"),
		Entry("text", "ten"),
	)
})

var _ = Describe("BlocksQuery", func() {
	It("should expose the height when given", func() {
		query := payload.NewBlocksQuery(url.Values{"height": {"1247893"}})
		Expect(query.Validate()).To(Succeed())

		height, ok := query.HeightValue()
		Expect(ok).To(BeTrue())
		Expect(height).To(Equal(uint64(1247893)))
	})

	It("should report no height when absent", func() {
		_, ok := payload.NewBlocksQuery(url.Values{}).HeightValue()
		Expect(ok).To(BeFalse())
	})

	It("should reject a non numeric height", func() {
		query := payload.NewBlocksQuery(url.Values{"height": {"latest"}})
		Expect(query.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("DebrisQuery", func() {
	It("should leave defaults to the generator when nothing is given", func() {
		query := payload.NewDebrisQuery(url.Values{})
		Expect(query.Validate()).To(Succeed())
		Expect(query.ToTelemetry()).To(Equal(telemetry.DebrisQuery{}))
	})

	It("should complete a single altitude bound", func() {
		query := payload.NewDebrisQuery(url.Values{"limit": {"50"}, "altitudeMax": {"800"}})
		Expect(query.Validate()).To(Succeed())
		Expect(query.ToTelemetry()).To(Equal(telemetry.DebrisQuery{
			Limit:       50,
			AltitudeMin: telemetry.DefaultAltitudeMin,
			AltitudeMax: 800,
		}))
	})

	DescribeTable("should reject",
		func(values url.Values) {
			Expect(payload.NewDebrisQuery(values).Validate()).NotTo(Succeed())
		},
		Entry("a limit above the cap", url.Values{"limit": {"5000"}}),
		Entry("a negative altitude", url.Values{"altitudeMin": {"-10"}}),
		Entry("a non numeric altitude", url.Values{"altitudeMax": {"high"}}),
		Entry("a NaN altitude", url.Values{"altitudeMin": {"NaN"}}),
		Entry("an infinite altitude", url.Values{"altitudeMax": {"+Inf"}}),
	)
})

var _ = Describe("TLEQuery", func() {
	It("should collect repeated satellite ids", func() {
		query := payload.NewTLEQuery(url.Values{"satelliteId": {"25544", "43013"}})
		Expect(query.Validate()).To(Succeed())
		Expect(query.IDs()).To(Equal([]int{25544, 43013}))
	})

	It("should reject a non numeric id", func() {
		query := payload.NewTLEQuery(url.Values{"satelliteId": {"iss"}})
		Expect(query.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("ImageryQuery", func() {
	It("should convert coordinates and date", func() {
		query := payload.NewImageryQuery(url.Values{"lat": {"1.5"}, "lon": {"-100.75"}, "date": {"2024-01-01"}})
		Expect(query.Validate()).To(Succeed())

		converted := query.ToNASA()
		Expect(*converted.Lat).To(Equal(1.5))
		Expect(*converted.Lon).To(Equal(-100.75))
		Expect(converted.Date).To(Equal("2024-01-01"))
	})

	DescribeTable("should reject",
		func(values url.Values) {
			Expect(payload.NewImageryQuery(values).Validate()).NotTo(Succeed())
		},
		Entry("a latitude out of range", url.Values{"lat": {"91"}}),
		Entry("a longitude out of range", url.Values{"lon": {"-181"}}),
		Entry("a NaN latitude", url.Values{"lat": {"NaN"}}),
		Entry("a NaN longitude", url.Values{"lon": {"nan"}}),
		Entry("a malformed date", url.Values{"date": {"01/02/2024"}}),
	)
})
