package repo_interfaces

import (
	"context"

	"github.com/api-sage/virtual-teller/src/internal/domain"
)

type LedgerRepository interface {
	CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error)
	GetAccount(ctx context.Context, number string) (domain.Account, error)
	AppendMovement(ctx context.Context, number string, movement domain.Movement) error
	ListMovements(ctx context.Context, number string) ([]domain.Movement, error)
	ApplyPostings(ctx context.Context, postings ...domain.Posting) ([]domain.Account, error)
}
