package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/shopspring/decimal"
)

const maxAccountNumberLength = 34

// Plain decimal with at most 15 integer digits and 2 fraction digits. The
// sign is left to the ledger, which owns the positivity rule.
var moneyPattern = regexp.MustCompile(`^-?[0-9]{1,15}(\.[0-9]{1,2})?$`)

type CreateAccountRequest struct {
	AccountNumber  string `json:"accountNumber"`
	HolderName     string `json:"holderName"`
	InitialBalance string `json:"initialBalance,omitempty"`
	Status         string `json:"status,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	errs = append(errs, validateAccountNumber("accountNumber", r.AccountNumber)...)

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}

	if strings.TrimSpace(r.InitialBalance) != "" {
		if err := validateAmount("initialBalance", r.InitialBalance); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Balance returns the requested opening balance, zero when omitted.
func (r CreateAccountRequest) Balance() (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.InitialBalance)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

type AccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	Balance       string `json:"balance"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: account.Number,
		HolderName:    account.HolderName,
		Balance:       FormatMoney(account.Balance),
		Status:        string(account.Status),
		CreatedAt:     account.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     account.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// AmountRequest is the body of deposit and withdrawal calls. Positivity is
// checked by the ledger so that an unknown account still reports not found.
type AmountRequest struct {
	Amount string `json:"amount"`
}

func (r AmountRequest) Validate() error {
	return validateAmount("amount", r.Amount)
}

func (r AmountRequest) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(r.Amount))
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

func FormatMoney(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func validateAccountNumber(field, value string) []string {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		return []string{field + " is required"}
	case len(trimmed) > maxAccountNumberLength:
		return []string{field + " must be at most 34 characters"}
	case strings.ContainsAny(trimmed, "/?# "):
		return []string{field + " contains invalid characters"}
	}
	return nil
}

func validateAmount(field, value string) error {
	amount := strings.TrimSpace(value)
	if amount == "" {
		return errors.New(field + " is required")
	}
	if !moneyPattern.MatchString(amount) {
		return errors.New(field + " must be a decimal with at most 15 integer digits and 2 decimal places")
	}
	return nil
}
