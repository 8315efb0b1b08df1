package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "ACTIVE"
	AccountStatusBlocked AccountStatus = "BLOCKED"
	AccountStatusClosed  AccountStatus = "CLOSED"
)

func ParseAccountStatus(raw string) (AccountStatus, error) {
	switch status := AccountStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case "":
		return AccountStatusActive, nil
	case AccountStatusActive, AccountStatusBlocked, AccountStatusClosed:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Account struct {
	Number     string
	HolderName string
	Balance    decimal.Decimal
	Status     AccountStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive reports whether the account accepts balance-affecting operations.
func (a Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
