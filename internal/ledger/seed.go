package ledger

import "time"

// GenesisHeight is the height assigned to the first transaction of an empty store.
const GenesisHeight uint64 = 1247894

const placeholderBytecode = "0x608060405234801561001057600080fd5b50..."

// Seed is the fixed sample data a store starts with.
type Seed struct {
	Transactions []Transaction
	Blocks       []Block
	Contracts    []SmartContract
}

// DefaultSeed returns the sample ledger with timestamps relative to now.
func DefaultSeed(now time.Time) Seed {
	return Seed{
		Transactions: seedTransactions(now),
		Blocks:       seedBlocks(now),
		Contracts:    seedContracts(now),
	}
}

func seedTransactions(now time.Time) []Transaction {
	return []Transaction{
		{
			ID:          "0x1a2b3c4d5e6f7890",
			Type:        DebrisCapture,
			Timestamp:   now,
			BlockHeight: 1247893,
			Hash:        "0x9f8e7d6c5b4a39281726354abc123def",
			From:        "0xSymbiont1Address",
			To:          "0xDebrisRegistryContract",
			Data: DebrisCaptureData{
				Satellite: "Symbiont-1",
				Debris:    "Debris-A47",
				Quantity:  "2.4 kg",
			},
			Status:    StatusConfirmed,
			GasUsed:   21000,
			Signature: "0xsignature123...",
		},
		{
			ID:          "0x2b3c4d5e6f789012",
			Type:        MaterialProcessing,
			Timestamp:   now.Add(-5 * time.Minute),
			BlockHeight: 1247892,
			Hash:        "0x8e7d6c5b4a392817263541def456789a",
			From:        "0xManufacturingHubAddress",
			To:          "0xMaterialRegistryContract",
			Data: MaterialProcessingData{
				Satellite: "Manufacturing Hub-1",
				Material:  "Aluminum Alloy",
				Quantity:  "12.4 kg",
			},
			Status:    StatusConfirmed,
			GasUsed:   35000,
			Signature: "0xsignature456...",
		},
	}
}

func seedBlocks(now time.Time) []Block {
	return []Block{
		{
			Height:       1247893,
			Hash:         "0x9f8e7d6c5b4a39281726354abc123def456789ab",
			Timestamp:    now,
			PreviousHash: "0x8e7d6c5b4a392817263541def456789abc123def",
			MerkleRoot:   "0x7d6c5b4a3928172635412fdef456789abc123def4",
			Transactions: []string{"0x1a2b3c4d5e6f7890", "0x2b3c4d5e6f789012", "0x3c4d5e6f78901234"},
			Validator:    "OrbNet-Validator-1",
			GasUsed:      156000,
			GasLimit:     8000000,
			Difficulty:   15000000000000,
			Nonce:        2847593,
			Size:         2048,
		},
		{
			Height:       1247892,
			Hash:         "0x8e7d6c5b4a392817263541def456789abc123def",
			Timestamp:    now.Add(-2 * time.Minute),
			PreviousHash: "0x7d6c5b4a3928172635412fdef456789abc123def4",
			MerkleRoot:   "0x6c5b4a3928172635412fdef456789abc123def456",
			Transactions: []string{"0x4d5e6f7890123456", "0x5e6f789012345678"},
			Validator:    "OrbNet-Validator-2",
			GasUsed:      98000,
			GasLimit:     8000000,
			Difficulty:   14800000000000,
			Nonce:        1847293,
			Size:         1536,
		},
		{
			Height:       1247891,
			Hash:         "0x7d6c5b4a3928172635412fdef456789abc123def4",
			Timestamp:    now.Add(-4 * time.Minute),
			PreviousHash: "0x6c5b4a3928172635412fdef456789abc123def456",
			MerkleRoot:   "0x5b4a3928172635412fdef456789abc123def45678",
			Transactions: []string{
				"0x6f78901234567890",
				"0x789012345678901a",
				"0x89012345678901ab",
				"0x9012345678901abc",
				"0xa012345678901bcd",
			},
			Validator:  "OrbNet-Validator-3",
			GasUsed:    234000,
			GasLimit:   8000000,
			Difficulty: 14600000000000,
			Nonce:      3847193,
			Size:       3072,
		},
	}
}

func seedContracts(now time.Time) []SmartContract {
	genesis := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	return []SmartContract{
		{
			Address:           "0xDebrisRegistryContract123456789abcdef",
			Name:              "Orbital Debris Registry",
			Type:              DebrisRegistry,
			DeployedAt:        genesis,
			Version:           "1.2.0",
			Status:            ContractActive,
			TotalTransactions: 2847,
			LastActivity:      now,
			ABI: []ABIFunction{
				{
					Name: "registerDebris",
					Type: "function",
					Inputs: []ABIParam{
						{Name: "debrisId", Type: "string"},
						{Name: "mass", Type: "uint256"},
						{Name: "position", Type: "string"},
					},
					Outputs: []ABIParam{},
				},
				{
					Name:    "captureDebris",
					Type:    "function",
					Inputs:  []ABIParam{{Name: "debrisId", Type: "string"}},
					Outputs: []ABIParam{},
				},
			},
			Bytecode: placeholderBytecode,
		},
		{
			Address:           "0xManufacturingHubContract789abcdef123456",
			Name:              "In-Space Manufacturing Hub",
			Type:              ManufacturingHub,
			DeployedAt:        genesis,
			Version:           "1.1.0",
			Status:            ContractActive,
			TotalTransactions: 1456,
			LastActivity:      now.Add(-5 * time.Minute),
			ABI: []ABIFunction{
				{
					Name: "processRawMaterial",
					Type: "function",
					Inputs: []ABIParam{
						{Name: "materialType", Type: "string"},
						{Name: "quantity", Type: "uint256"},
						{Name: "componentType", Type: "string"},
					},
					Outputs: []ABIParam{},
				},
			},
			Bytecode: placeholderBytecode,
		},
		{
			Address:           "0xSatelliteServiceContract456789abcdef123",
			Name:              "Satellite Life Extension Service",
			Type:              SatelliteService,
			DeployedAt:        genesis,
			Version:           "1.0.0",
			Status:            ContractActive,
			TotalTransactions: 892,
			LastActivity:      now.Add(-10 * time.Minute),
			ABI: []ABIFunction{
				{
					Name: "requestService",
					Type: "function",
					Inputs: []ABIParam{
						{Name: "satelliteId", Type: "string"},
						{Name: "serviceType", Type: "string"},
						{Name: "cost", Type: "uint256"},
					},
					Outputs: []ABIParam{},
				},
			},
			Bytecode: placeholderBytecode,
		},
		{
			Address:           "0xPowerGridContract123456789abcdef456",
			Name:              "Orbital Power Grid",
			Type:              PowerGrid,
			DeployedAt:        genesis.AddDate(0, 0, 14),
			Version:           "0.9.0-beta",
			Status:            ContractActive,
			TotalTransactions: 234,
			LastActivity:      now.Add(-3 * time.Minute),
			ABI: []ABIFunction{
				{
					Name: "transferPower",
					Type: "function",
					Inputs: []ABIParam{
						{Name: "recipient", Type: "address"},
						{Name: "powerAmount", Type: "uint256"},
						{Name: "duration", Type: "uint256"},
					},
					Outputs: []ABIParam{},
				},
			},
			Bytecode: placeholderBytecode,
		},
	}
}
