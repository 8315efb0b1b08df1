package service_interfaces

import (
	"context"

	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerService interface {
	CreateAccount(ctx context.Context, number string, holderName string, initialBalance decimal.Decimal, status domain.AccountStatus) (domain.Account, error)
	GetAccount(ctx context.Context, number string) (domain.Account, error)
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, source string, destination string, amount decimal.Decimal) (domain.TransferResult, error)
	ListMovements(ctx context.Context, number string) ([]domain.Movement, error)
}
