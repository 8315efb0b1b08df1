package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/shopspring/decimal"
)

func TestParseAccountStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.AccountStatus
	}{
		{raw: "", want: domain.AccountStatusActive},
		{raw: "active", want: domain.AccountStatusActive},
		{raw: " BLOCKED ", want: domain.AccountStatusBlocked},
		{raw: "Closed", want: domain.AccountStatusClosed},
	}

	for _, tc := range cases {
		got, err := domain.ParseAccountStatus(tc.raw)
		if err != nil {
			t.Fatalf("ParseAccountStatus(%q) unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAccountStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}

	if _, err := domain.ParseAccountStatus("FROZEN"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestAccountIsActive(t *testing.T) {
	if !(domain.Account{Status: domain.AccountStatusActive}).IsActive() {
		t.Fatal("expected ACTIVE account to be active")
	}
	for _, status := range []domain.AccountStatus{domain.AccountStatusBlocked, domain.AccountStatusClosed} {
		if (domain.Account{Status: status}).IsActive() {
			t.Fatalf("expected %s account to be inactive", status)
		}
	}
}

func TestNewMovement(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	amount := decimal.RequireFromString("150.25")

	first := domain.NewMovement(domain.MovementDeposit, amount, "Deposit of 150.25", at)
	second := domain.NewMovement(domain.MovementDeposit, amount, "Deposit of 150.25", at)

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected unique non-empty ids, got %q and %q", first.ID, second.ID)
	}
	if first.Timestamp.Location() != time.UTC || !first.Timestamp.Equal(at) {
		t.Fatalf("expected UTC timestamp equal to %v, got %v", at, first.Timestamp)
	}
	if !first.Amount.Equal(amount) {
		t.Fatalf("expected amount %s, got %s", amount, first.Amount)
	}
}

func TestPostingDeltaFollowsMovementKind(t *testing.T) {
	amount := decimal.NewFromInt(40)
	now := time.Now()

	cases := map[domain.MovementKind]decimal.Decimal{
		domain.MovementDeposit:     amount,
		domain.MovementTransferIn:  amount,
		domain.MovementWithdrawal:  amount.Neg(),
		domain.MovementTransferOut: amount.Neg(),
	}

	for kind, want := range cases {
		posting := domain.NewPosting("001", domain.NewMovement(kind, amount, string(kind), now))
		if !posting.Delta.Equal(want) {
			t.Fatalf("%s: expected delta %s, got %s", kind, want, posting.Delta)
		}
		if posting.AccountNumber != "001" {
			t.Fatalf("%s: expected account 001, got %s", kind, posting.AccountNumber)
		}
	}
}
