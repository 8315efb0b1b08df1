package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestClassifyUnwrapsLedgerErrors(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("withdraw from 001: %w", domain.ErrInsufficientFunds): http.StatusUnprocessableEntity,
		fmt.Errorf("deposit to 002: %w", domain.ErrNotFound):             http.StatusNotFound,
		fmt.Errorf("transfer: %w", domain.ErrAccountNotActive):           http.StatusConflict,
		domain.ErrAlreadyExists:                                          http.StatusConflict,
		domain.ErrInvalidAmount:                                          http.StatusBadRequest,
		errors.New("disk on fire"):                                       http.StatusInternalServerError,
	}

	for err, want := range cases {
		if got := classify(err).status; got != want {
			t.Fatalf("classify(%v) = %d, want %d", err, got, want)
		}
	}
}

func TestRecordOutcome(t *testing.T) {
	ok := ledgerOperationsTotal.WithLabelValues("deposit", "ok")
	failed := ledgerOperationsTotal.WithLabelValues("deposit", "insufficient_funds")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	recordOutcome("deposit", "")
	recordOutcome("deposit", "INSUFFICIENT_FUNDS")

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Fatalf("expected 1 ok outcome, got %v", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 1 {
		t.Fatalf("expected 1 failed outcome, got %v", got)
	}
}
