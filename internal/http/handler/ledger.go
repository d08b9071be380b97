package handler

import (
	"errors"
	"net/http"
	"orbital/internal/core"
	"orbital/internal/http/payload"
	"time"

	"go.uber.org/zap"
)

var (
	ListTransactions  = "GET /api/blockchain/transactions"
	CreateTransaction = "POST /api/blockchain/transactions"
	GetTransaction    = "GET /api/blockchain/transactions/{id}"
	ListBlocks        = "GET /api/blockchain/blocks"
	ListContracts     = "GET /api/blockchain/smart-contracts"
	InvokeContract    = "POST /api/blockchain/smart-contracts"
	GetAnalytics      = "GET /api/blockchain/analytics"
)

// TimeNow stamps responses that report when they were produced.
var TimeNow = time.Now

type LedgerHandler struct {
	responder
	requestValidator RequestValidator
	ledger           LedgerService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, ledgerService LedgerService) *LedgerHandler {
	return &LedgerHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		ledger:           ledgerService,
	}
}

func (h *LedgerHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.NewTransactionsQuery(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.badRequest(w, "Could not retrieve transactions", err, ListTransactions, requestId)
		return
	}

	page, err := h.ledger.ListTransactions(r.Context(), query.ToCore())
	if err != nil {
		h.fail(w, "Failed to fetch transactions", err, ListTransactions, requestId)
		return
	}

	h.respond(w, TransactionsResponse{
		Response:   Response{Success: true, Data: page.Transactions},
		Total:      page.Total,
		Blockchain: page.Network,
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	tx, err := h.ledger.GetTransaction(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, "Transaction not found", err, GetTransaction, requestId)
		return
	}

	h.ok(w, tx, requestId)
}

func (h *LedgerHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, decodeFailure(err), err, CreateTransaction, requestId)
		return
	}

	newTx, err := req.ToNewTransaction()
	if err != nil {
		h.badRequest(w, "Invalid transaction data", err, CreateTransaction, requestId)
		return
	}

	tx, err := h.ledger.CreateTransaction(r.Context(), newTx)
	if err != nil {
		h.fail(w, "Failed to create transaction", err, CreateTransaction, requestId)
		return
	}

	h.logs.Infow("transaction created",
		"id", tx.ID,
		"type", tx.Type,
		"handler", CreateTransaction,
		"request_id", requestId)

	h.respond(w, Response{
		Success: true,
		Data:    tx,
		Message: "Transaction submitted to blockchain",
	}, http.StatusOK, requestId)
}

// HandleListBlocks lists recent blocks, or returns the single block named by
// the height query parameter.
func (h *LedgerHandler) HandleListBlocks(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.NewBlocksQuery(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.badRequest(w, "Could not retrieve blocks", err, ListBlocks, requestId)
		return
	}

	if height, ok := query.HeightValue(); ok {
		block, err := h.ledger.GetBlock(r.Context(), height)
		if err != nil {
			h.fail(w, "Block not found", err, ListBlocks, requestId)
			return
		}
		h.ok(w, block, requestId)
		return
	}

	page, err := h.ledger.ListBlocks(r.Context(), query.LimitValue())
	if err != nil {
		h.fail(w, "Failed to fetch blocks", err, ListBlocks, requestId)
		return
	}

	h.respond(w, BlocksResponse{
		Response:  Response{Success: true, Data: page.Blocks},
		Total:     page.Total,
		ChainInfo: page.ChainInfo,
	}, http.StatusOK, requestId)
}

// HandleListContracts lists contracts, optionally by type, or returns the
// single contract named by the address query parameter.
func (h *LedgerHandler) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.NewContractsQuery(r.URL.Query())

	if query.Address != "" {
		contract, err := h.ledger.GetContract(r.Context(), query.Address)
		if err != nil {
			h.fail(w, "Contract not found", err, ListContracts, requestId)
			return
		}
		h.ok(w, contract, requestId)
		return
	}

	page, err := h.ledger.ListContracts(r.Context(), query.ContractType())
	if err != nil {
		h.fail(w, "Failed to fetch contracts", err, ListContracts, requestId)
		return
	}

	h.respond(w, ContractsResponse{
		Response:    Response{Success: true, Data: page.Contracts},
		Total:       page.Total,
		NetworkInfo: page.NetworkInfo,
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleInvokeContract(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.InvokeContractRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, decodeFailure(err), err, InvokeContract, requestId)
		return
	}

	receipt, err := h.ledger.InvokeContract(r.Context(), req.ToInvocation())
	if err != nil {
		h.fail(w, "Failed to execute contract function", err, InvokeContract, requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Data:    receipt,
		Message: "Smart contract function executed successfully",
	}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	timeframe := payload.AnalyticsTimeframe(r.URL.Query())

	analytics, err := h.ledger.Analytics(r.Context(), timeframe)
	if err != nil {
		h.fail(w, "Failed to fetch analytics", err, GetAnalytics, requestId)
		return
	}

	h.respond(w, AnalyticsResponse{
		Response:    Response{Success: true, Data: analytics},
		Timeframe:   timeframe,
		LastUpdated: TimeNow().UTC(),
	}, http.StatusOK, requestId)
}

// decodeFailure names why a body was refused: it could not be read as the
// route's json, or it was read but lacks fields.
func decodeFailure(err error) string {
	if errors.Is(err, payload.ErrMalformedBody) {
		return "Invalid request body"
	}
	return "Missing required fields"
}

// Register wires the ledger routes into mux.
func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(ListTransactions, h.HandleListTransactions)
	mux.HandleFunc(CreateTransaction, h.HandleCreateTransaction)
	mux.HandleFunc(GetTransaction, h.HandleGetTransaction)
	mux.HandleFunc(ListBlocks, h.HandleListBlocks)
	mux.HandleFunc(ListContracts, h.HandleListContracts)
	mux.HandleFunc(InvokeContract, h.HandleInvokeContract)
	mux.HandleFunc(GetAnalytics, h.HandleAnalytics)
}

var _ LedgerService = (*core.Ledger)(nil)
