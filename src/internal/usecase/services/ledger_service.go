package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/api-sage/virtual-teller/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService enforces the business rules around balance changes. Every
// mutation runs with the locks of the accounts it touches held and commits
// through a single ApplyPostings call, so a failed operation changes nothing.
type LedgerService struct {
	ledgerRepo repo_interfaces.LedgerRepository
	locks      *accountLocks
	clock      func() time.Time
}

type LedgerServiceOption func(*LedgerService)

// WithClock overrides the time source used to stamp accounts and movements.
func WithClock(clock func() time.Time) LedgerServiceOption {
	return func(s *LedgerService) {
		s.clock = clock
	}
}

func NewLedgerService(ledgerRepo repo_interfaces.LedgerRepository, opts ...LedgerServiceOption) *LedgerService {
	s := &LedgerService{
		ledgerRepo: ledgerRepo,
		locks:      newAccountLocks(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LedgerService) CreateAccount(
	ctx context.Context,
	number string,
	holderName string,
	initialBalance decimal.Decimal,
	status domain.AccountStatus,
) (domain.Account, error) {
	if initialBalance.IsNegative() {
		return domain.Account{}, fmt.Errorf("create account %s: initial balance: %w", number, domain.ErrInvalidAmount)
	}

	parsedStatus, err := domain.ParseAccountStatus(string(status))
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account %s: %w", number, err)
	}

	now := s.clock().UTC()
	created, err := s.ledgerRepo.CreateAccount(ctx, domain.Account{
		Number:     number,
		HolderName: strings.TrimSpace(holderName),
		Balance:    initialBalance,
		Status:     parsedStatus,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account %s: %w", number, err)
	}

	return created, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	account, err := s.ledgerRepo.GetAccount(ctx, number)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account %s: %w", number, err)
	}
	return account, nil
}

func (s *LedgerService) ListMovements(ctx context.Context, number string) ([]domain.Movement, error) {
	history, err := s.ledgerRepo.ListMovements(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("list movements %s: %w", number, err)
	}
	return history, nil
}

func (s *LedgerService) Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := s.requireAccounts(ctx, number); err != nil {
		return decimal.Zero, fmt.Errorf("deposit to %s: %w", number, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("deposit to %s: %w", number, domain.ErrInvalidAmount)
	}

	release := s.locks.acquire(number)
	defer release()

	account, err := s.ledgerRepo.GetAccount(ctx, number)
	if err != nil {
		return decimal.Zero, fmt.Errorf("deposit to %s: %w", number, err)
	}
	if !account.IsActive() {
		return decimal.Zero, fmt.Errorf("deposit to %s: %w", number, domain.ErrAccountNotActive)
	}

	movement := domain.NewMovement(domain.MovementDeposit, amount, fmt.Sprintf("Deposit of %s", amount), s.clock())
	committed, err := s.ledgerRepo.ApplyPostings(ctx, domain.NewPosting(number, movement))
	if err != nil {
		return decimal.Zero, fmt.Errorf("deposit to %s: %w", number, err)
	}

	return committed[0].Balance, nil
}

func (s *LedgerService) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := s.requireAccounts(ctx, number); err != nil {
		return decimal.Zero, fmt.Errorf("withdraw from %s: %w", number, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("withdraw from %s: %w", number, domain.ErrInvalidAmount)
	}

	release := s.locks.acquire(number)
	defer release()

	account, err := s.ledgerRepo.GetAccount(ctx, number)
	if err != nil {
		return decimal.Zero, fmt.Errorf("withdraw from %s: %w", number, err)
	}
	if !account.IsActive() {
		return decimal.Zero, fmt.Errorf("withdraw from %s: %w", number, domain.ErrAccountNotActive)
	}
	if amount.GreaterThan(account.Balance) {
		return decimal.Zero, fmt.Errorf("withdraw from %s: %w", number, domain.ErrInsufficientFunds)
	}

	movement := domain.NewMovement(domain.MovementWithdrawal, amount, fmt.Sprintf("Withdrawal of %s", amount), s.clock())
	committed, err := s.ledgerRepo.ApplyPostings(ctx, domain.NewPosting(number, movement))
	if err != nil {
		return decimal.Zero, fmt.Errorf("withdraw from %s: %w", number, err)
	}

	return committed[0].Balance, nil
}

// Transfer moves amount from source to destination. A transfer to the same
// account goes through the same checks and records both movements.
func (s *LedgerService) Transfer(ctx context.Context, source string, destination string, amount decimal.Decimal) (domain.TransferResult, error) {
	if err := s.requireAccounts(ctx, source, destination); err != nil {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, err)
	}
	if !amount.IsPositive() {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, domain.ErrInvalidAmount)
	}

	release := s.locks.acquire(source, destination)
	defer release()

	sourceAccount, err := s.ledgerRepo.GetAccount(ctx, source)
	if err != nil {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, err)
	}
	destinationAccount, err := s.ledgerRepo.GetAccount(ctx, destination)
	if err != nil {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, err)
	}
	if !sourceAccount.IsActive() || !destinationAccount.IsActive() {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, domain.ErrAccountNotActive)
	}
	if amount.GreaterThan(sourceAccount.Balance) {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, domain.ErrInsufficientFunds)
	}

	transferID := uuid.NewString()
	now := s.clock()

	out := domain.NewMovement(domain.MovementTransferOut, amount, fmt.Sprintf("Transfer sent to %s", destination), now)
	out.CounterpartyNumber = destination
	out.TransferID = transferID

	in := domain.NewMovement(domain.MovementTransferIn, amount, fmt.Sprintf("Transfer received from %s", source), now)
	in.CounterpartyNumber = source
	in.TransferID = transferID

	committed, err := s.ledgerRepo.ApplyPostings(ctx, domain.NewPosting(source, out), domain.NewPosting(destination, in))
	if err != nil {
		return domain.TransferResult{}, fmt.Errorf("transfer %s to %s: %w", source, destination, err)
	}

	return domain.TransferResult{
		TransferID:         transferID,
		SourceBalance:      committed[0].Balance,
		DestinationBalance: committed[1].Balance,
	}, nil
}

// requireAccounts reports ErrNotFound for the first unknown number. Accounts
// are never removed, so a positive answer stays valid once locks are taken.
func (s *LedgerService) requireAccounts(ctx context.Context, numbers ...string) error {
	for _, number := range numbers {
		if _, err := s.ledgerRepo.GetAccount(ctx, number); err != nil {
			return err
		}
	}
	return nil
}

var _ service_interfaces.LedgerService = (*LedgerService)(nil)
