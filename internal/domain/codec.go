package domain

import (
	"encoding/json"
	"fmt"
)

// EncodeTransactions serializes the full collection as a JSON record array
func EncodeTransactions(transactions []Transaction) ([]byte, error) {
	if transactions == nil {
		transactions = []Transaction{}
	}
	return json.Marshal(transactions)
}

// DecodeTransactions parses a stored payload. Empty input means nothing was
// stored yet; any decoding failure is reported as ErrCorruptStore.
func DecodeTransactions(data []byte) ([]Transaction, error) {
	if len(data) == 0 {
		return []Transaction{}, nil
	}

	var transactions []Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if transactions == nil {
		transactions = []Transaction{}
	}
	return transactions, nil
}
