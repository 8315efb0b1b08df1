package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementDeposit     MovementKind = "DEPOSIT"
	MovementWithdrawal  MovementKind = "WITHDRAWAL"
	MovementTransferOut MovementKind = "TRANSFER_OUT"
	MovementTransferIn  MovementKind = "TRANSFER_IN"
)

// Movement is an immutable record of one balance change on one account.
type Movement struct {
	ID                 string
	Timestamp          time.Time
	Kind               MovementKind
	Amount             decimal.Decimal
	Description        string
	CounterpartyNumber string
	TransferID         string
}

func NewMovement(kind MovementKind, amount decimal.Decimal, description string, at time.Time) Movement {
	return Movement{
		ID:          uuid.NewString(),
		Timestamp:   at.UTC(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}
}

// Signed returns the balance delta the movement stands for.
func (m Movement) Signed() decimal.Decimal {
	switch m.Kind {
	case MovementWithdrawal, MovementTransferOut:
		return m.Amount.Neg()
	default:
		return m.Amount
	}
}
