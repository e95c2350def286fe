package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount limits follow the NUMERIC(18, 2) amount column.
const (
	AmountScale         = 2
	AmountIntegerDigits = 16
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// ValidAmount reports whether a fits the amount column without rounding.
func ValidAmount(a decimal.Decimal) bool {
	return a.IsPositive() && a.LessThan(maxAmount) && a.Equal(a.Truncate(AmountScale))
}

// TransactionRequest is a customer-initiated deposit or withdraw awaiting admin review.
type TransactionRequest struct {
	ID            uuid.UUID       `json:"id"`
	Kind          Kind            `json:"kind"`
	Customer      Contact         `json:"customer"`
	Admin         string          `json:"admin"`
	Amount        decimal.Decimal `json:"amount"`
	ExternalRef   string          `json:"externalRef"`
	ChannelName   string          `json:"channelName"`
	WalletNumber  string          `json:"walletNumber,omitempty"`
	Status        StatusType      `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	FormattedTime string          `json:"formattedTime"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdraw:
		return true
	}
	return false
}

// ExternalRefLabel is the customer-facing name of the external reference field.
func (k Kind) ExternalRefLabel() string {
	switch k {
	case KindDeposit:
		return "Transaction ID"
	case KindWithdraw:
		return "Withdraw Code"
	}
	return "Reference"
}

type StatusType string

const (
	StatusPending StatusType = "Pending"
	StatusConfirm StatusType = "Confirm"
	StatusReject  StatusType = "Reject"
)

func (s StatusType) Valid() bool {
	switch s {
	case StatusPending, StatusConfirm, StatusReject:
		return true
	}
	return false
}

// Terminal reports whether no further status change is defined from s.
func (s StatusType) Terminal() bool {
	switch s {
	case StatusConfirm, StatusReject:
		return true
	}
	return false
}
