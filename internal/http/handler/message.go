package handler

import (
	"orbital/internal/core"
	"time"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the envelope every endpoint answers with. Route specific
// fields are added by embedding it.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string `json:"error,omitempty"`   // error detail (if any)
	Message string `json:"message,omitempty"` // short message for humans
}

type TransactionsResponse struct {
	Response
	Total      int                `json:"total"`
	Blockchain core.NetworkStatus `json:"blockchain"`
}

type BlocksResponse struct {
	Response
	Total     int            `json:"total"`
	ChainInfo core.ChainInfo `json:"chainInfo"`
}

type ContractsResponse struct {
	Response
	Total       int                      `json:"total"`
	NetworkInfo core.ContractNetworkInfo `json:"networkInfo"`
}

type AnalyticsResponse struct {
	Response
	Timeframe   string    `json:"timeframe"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type DebrisResponse struct {
	Response
	TotalCount  int       `json:"totalCount"`
	LastUpdated time.Time `json:"lastUpdated"`
}
