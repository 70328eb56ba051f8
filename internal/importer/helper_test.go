package importer_test

import (
	"testing"

	"github.com/pocket-ledger/backend/internal/types"
	"github.com/pocket-ledger/backend/internal/validate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) types.Date {
	date, err := validate.Date(s)
	require.Nil(t, err)
	return date
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	amount, err := validate.Amount(s)
	require.Nil(t, err)
	return amount
}
