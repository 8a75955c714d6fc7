package domain_test

import (
	"testing"

	"github.com/finledger/finledger_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		txnType domain.TransactionType
		want    bool
	}{
		{name: "income is valid", txnType: domain.Income, want: true},
		{name: "expense is valid", txnType: domain.Expense, want: true},
		{name: "empty is invalid", txnType: domain.TransactionType(""), want: false},
		{name: "transfer is invalid", txnType: domain.TransactionType("transfer"), want: false},
		{name: "uppercase income is invalid", txnType: domain.TransactionType("INCOME"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txnType.IsValid())
		})
	}
}
