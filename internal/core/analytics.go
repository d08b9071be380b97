package core

import (
	"context"
	"orbital/internal/ledger"
)

const DefaultTimeframe = "7d"

type NetworkAnalytics struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalBlocks       int     `json:"totalBlocks"`
	ActiveValidators  int     `json:"activeValidators"`
	NetworkHashRate   string  `json:"networkHashRate"`
	AvgBlockTime      string  `json:"avgBlockTime"`
	TPS               int     `json:"tps"`
	Uptime            float64 `json:"uptime"`
}

type DailyVolume struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Volume float64 `json:"volume"`
}

type TransactionAnalytics struct {
	Daily  []DailyVolume                  `json:"daily"`
	ByType map[ledger.TransactionType]int `json:"byType"`
}

type GasConsumption struct {
	Total   int `json:"total"`
	Average int `json:"average"`
}

type ContractAnalytics struct {
	TotalDeployed     int            `json:"totalDeployed"`
	TotalInteractions int            `json:"totalInteractions"`
	MostActive        string         `json:"mostActive"`
	GasConsumption    GasConsumption `json:"gasConsumption"`
}

type ValidatorAnalytics struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	BlocksProduced int     `json:"blocksProduced"`
	Uptime         float64 `json:"uptime"`
	Stake          string  `json:"stake"`
}

type SecurityAnalytics struct {
	ThreatLevel           string  `json:"threatLevel"`
	LastSecurityAudit     string  `json:"lastSecurityAudit"`
	EncryptionStandard    string  `json:"encryptionStandard"`
	ConsensusAlgorithm    string  `json:"consensusAlgorithm"`
	DecentralizationScore float64 `json:"decentralizationScore"`
}

type Analytics struct {
	Network      NetworkAnalytics     `json:"network"`
	Transactions TransactionAnalytics `json:"transactions"`
	Contracts    ContractAnalytics    `json:"contracts"`
	Validators   []ValidatorAnalytics `json:"validators"`
	Security     SecurityAnalytics    `json:"security"`
}

// Analytics returns the dashboard snapshot. Network, validator and security
// figures are fixed; contract figures come from the store. The timeframe is
// only echoed back by callers.
func (l *Ledger) Analytics(ctx context.Context, timeframe string) (Analytics, error) {
	contracts := l.store.Contracts("")

	contractStats := ContractAnalytics{
		TotalDeployed: len(contracts),
		GasConsumption: GasConsumption{
			Total:   12847593,
			Average: 35420,
		},
	}
	busiest := -1
	for _, c := range contracts {
		contractStats.TotalInteractions += c.TotalTransactions
		if c.TotalTransactions > busiest {
			busiest = c.TotalTransactions
			contractStats.MostActive = c.Name
		}
	}

	return Analytics{
		Network: NetworkAnalytics{
			TotalTransactions: 1247893,
			TotalBlocks:       1247893,
			ActiveValidators:  7,
			NetworkHashRate:   networkHash,
			AvgBlockTime:      avgBlockTime,
			TPS:               450,
			Uptime:            99.97,
		},
		Transactions: TransactionAnalytics{
			Daily: []DailyVolume{
				{Date: "2024-01-09", Count: 1247, Volume: 2.4},
				{Date: "2024-01-10", Count: 1356, Volume: 2.8},
				{Date: "2024-01-11", Count: 1489, Volume: 3.1},
				{Date: "2024-01-12", Count: 1623, Volume: 3.6},
				{Date: "2024-01-13", Count: 1734, Volume: 4.2},
				{Date: "2024-01-14", Count: 1845, Volume: 4.8},
				{Date: "2024-01-15", Count: 1967, Volume: 5.3},
			},
			ByType: map[ledger.TransactionType]int{
				ledger.DebrisCapture:      45,
				ledger.MaterialProcessing: 30,
				ledger.SatelliteServicing: 15,
				ledger.PowerTransfer:      10,
			},
		},
		Contracts: contractStats,
		Validators: []ValidatorAnalytics{
			{
				Name:           "OrbNet-Validator-1",
				Address:        "0xValidator1Address123456789abcdef",
				BlocksProduced: 178234,
				Uptime:         99.98,
				Stake:          "1000000 ORB",
			},
			{
				Name:           "OrbNet-Validator-2",
				Address:        "0xValidator2Address456789abcdef123",
				BlocksProduced: 178156,
				Uptime:         99.95,
				Stake:          "950000 ORB",
			},
			{
				Name:           "OrbNet-Validator-3",
				Address:        "0xValidator3Address789abcdef123456",
				BlocksProduced: 178089,
				Uptime:         99.97,
				Stake:          "900000 ORB",
			},
		},
		Security: SecurityAnalytics{
			ThreatLevel:           "low",
			LastSecurityAudit:     "2024-01-01",
			EncryptionStandard:    "AES-256",
			ConsensusAlgorithm:    "Proof of Stake",
			DecentralizationScore: 8.7,
		},
	}, nil
}
