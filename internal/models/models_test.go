package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusType(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusConfirm.Terminal())
	assert.True(t, StatusReject.Terminal())
	assert.False(t, StatusType("confirm").Valid())
	assert.False(t, StatusType("").Valid())
}

func TestKind(t *testing.T) {
	assert.True(t, KindDeposit.Valid())
	assert.True(t, KindWithdraw.Valid())
	assert.False(t, Kind("transfer").Valid())
	assert.Equal(t, "Transaction ID", KindDeposit.ExternalRefLabel())
	assert.Equal(t, "Withdraw Code", KindWithdraw.ExternalRefLabel())
}

func TestFormatDisplayTime(t *testing.T) {
	instant := time.Date(2024, 12, 31, 20, 5, 9, 0, time.UTC)

	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	assert.Equal(t, "January 1, 2025 at 2:05:09 AM", FormatDisplayTime(instant, loc))
	assert.Equal(t, "December 31, 2024 at 8:05:09 PM", FormatDisplayTime(instant, nil))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "rahim@x.com", NormalizeEmail("  Rahim@X.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"1500", true},
		{"500.05", true},
		{"1.500", true},
		{"9999999999999999.99", true},
		{"500.005", false},
		{"0.001", false},
		{"10000000000000000", false},
		{"0", false},
		{"-5", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestTransactionRequest_AmountIsJSONNumber(t *testing.T) {
	raw, err := json.Marshal(TransactionRequest{Amount: decimal.RequireFromString("1500.5")})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amount":1500.5`)

	var back TransactionRequest
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Amount.Equal(decimal.RequireFromString("1500.5")))
}
