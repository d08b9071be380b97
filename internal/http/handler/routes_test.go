package handler_test

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"orbital/internal/core"
	"orbital/internal/events"
	"orbital/internal/http/handler"
	"orbital/internal/http/payload"
	"orbital/internal/ledger"
	"orbital/internal/scheduler"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const powerGrid = "0xPowerGridContract123456789abcdef456"

var _ = Describe("ledger routes over the seeded store", func() {
	var (
		store *ledger.Store
		mux   *http.ServeMux
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		store = ledger.NewStore(ledger.DefaultSeed(time.Now().UTC().Add(-time.Hour)))
		confirmations := scheduler.New(logger, time.Hour)
		DeferCleanup(confirmations.Stop)

		svc := core.NewLedger(logger, store, confirmations, events.NopPublisher{}, rand.New(rand.NewPCG(5, 6)))
		DeferCleanup(svc.Wait)

		mux = http.NewServeMux()
		handler.NewLedgerHandler(logger, payload.Decoder{}, svc).Register(mux)
	})

	post := func(path, body string) (*httptest.ResponseRecorder, envelope) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("POST", path, strings.NewReader(body)))
		return w, decodeEnvelope(w)
	}

	counter := func(address string) int {
		contract, err := store.Contract(address)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		return contract.TotalTransactions
	}

	Describe("POST /api/blockchain/smart-contracts", func() {
		It("should execute a call without a function name and count it", func() {
			before := counter(powerGrid)

			w, env := post("/api/blockchain/smart-contracts", `{"contractAddress":"`+powerGrid+`","parameters":[]}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(env.Success).To(BeTrue())
			Expect(counter(powerGrid)).To(Equal(before + 1))
		})

		It("should answer 404 when the address is missing", func() {
			before := counter(powerGrid)

			w, env := post("/api/blockchain/smart-contracts", `{"functionName":"transferPower"}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(env.Success).To(BeFalse())
			Expect(counter(powerGrid)).To(Equal(before))
		})
	})

	Describe("POST /api/blockchain/transactions", func() {
		It("should name an unknown key as an invalid body", func() {
			w, env := post("/api/blockchain/transactions",
				`{"type":"debris_capture","data":{"satellite":"a","debris":"b","quantity":"c"},"from":"0xa","to":"0xb","memo":"x"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(env.Message).To(Equal("Invalid request body"))
			Expect(env.Error).To(ContainSubstring(`unknown field "memo"`))
			Expect(store.Transactions(ledger.TransactionFilter{})).To(HaveLen(2))
		})

		It("should report missing fields as such", func() {
			w, env := post("/api/blockchain/transactions", `{"type":"debris_capture","from":"0xa","to":"0xb"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(env.Message).To(Equal("Missing required fields"))
			Expect(store.Transactions(ledger.TransactionFilter{})).To(HaveLen(2))
		})
	})
})
