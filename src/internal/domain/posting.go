package domain

import "github.com/shopspring/decimal"

// Posting pairs a balance delta with the movement that records it. A batch of
// postings is committed by the ledger store as a single unit.
type Posting struct {
	AccountNumber string
	Delta         decimal.Decimal
	Movement      Movement
}

func NewPosting(accountNumber string, movement Movement) Posting {
	return Posting{
		AccountNumber: accountNumber,
		Delta:         movement.Signed(),
		Movement:      movement,
	}
}

type TransferResult struct {
	TransferID         string
	SourceBalance      decimal.Decimal
	DestinationBalance decimal.Decimal
}
