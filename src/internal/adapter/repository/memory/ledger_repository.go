package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/api-sage/virtual-teller/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/virtual-teller/src/internal/domain"
)

// LedgerRepository keeps accounts and their movement histories for the
// lifetime of the process. Accounts are stored by value: callers always get
// snapshots and every write goes through the repository.
type LedgerRepository struct {
	mu        sync.RWMutex
	accounts  map[string]domain.Account
	movements map[string][]domain.Movement
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		accounts:  make(map[string]domain.Account),
		movements: make(map[string][]domain.Movement),
	}
}

func (r *LedgerRepository) CreateAccount(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Number]; exists {
		return domain.Account{}, domain.ErrAlreadyExists
	}

	r.accounts[account.Number] = account
	r.movements[account.Number] = []domain.Movement{}

	return account, nil
}

func (r *LedgerRepository) GetAccount(_ context.Context, number string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}

	return account, nil
}

func (r *LedgerRepository) AppendMovement(_ context.Context, number string, movement domain.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[number]; !ok {
		return domain.ErrNotFound
	}

	r.movements[number] = append(r.movements[number], movement)
	return nil
}

func (r *LedgerRepository) ListMovements(_ context.Context, number string) ([]domain.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history, ok := r.movements[number]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return slices.Clone(history), nil
}

// ApplyPostings commits every posting or none of them. Balances are staged
// first so a batch touching the same account twice nets out before the
// non-negative check.
func (r *LedgerRepository) ApplyPostings(_ context.Context, postings ...domain.Posting) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make(map[string]domain.Account, len(postings))
	for _, posting := range postings {
		account, ok := staged[posting.AccountNumber]
		if !ok {
			account, ok = r.accounts[posting.AccountNumber]
			if !ok {
				return nil, domain.ErrNotFound
			}
		}

		account.Balance = account.Balance.Add(posting.Delta)
		if posting.Movement.Timestamp.After(account.UpdatedAt) {
			account.UpdatedAt = posting.Movement.Timestamp
		}
		staged[posting.AccountNumber] = account
	}

	for _, account := range staged {
		if account.Balance.IsNegative() {
			return nil, domain.ErrInsufficientFunds
		}
	}

	for number, account := range staged {
		r.accounts[number] = account
	}

	committed := make([]domain.Account, 0, len(postings))
	for _, posting := range postings {
		r.movements[posting.AccountNumber] = append(r.movements[posting.AccountNumber], posting.Movement)
		committed = append(committed, r.accounts[posting.AccountNumber])
	}

	return committed, nil
}

var _ repo_interfaces.LedgerRepository = (*LedgerRepository)(nil)
