package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/adapter/http/models"
	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/api-sage/virtual-teller/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type AccountController struct {
	service service_interfaces.LedgerService
}

func NewAccountController(service service_interfaces.LedgerService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", c.createAccount)
		r.Route("/{number}", func(r chi.Router) {
			r.Get("/", c.getAccount)
			r.Post("/deposits", c.deposit)
			r.Post("/withdrawals", c.withdraw)
			r.Get("/movements", c.listMovements)
		})
	})
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	const operation = "create_account"
	start := time.Now()

	var req models.CreateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logError(r, err, nil)
		respondInvalid[models.AccountResponse](w, r, operation, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		respondInvalid[models.AccountResponse](w, r, operation, "validation failed", err, start)
		return
	}

	balance, err := req.Balance()
	if err != nil {
		respondInvalid[models.AccountResponse](w, r, operation, "validation failed", err, start)
		return
	}

	account, err := c.service.CreateAccount(
		r.Context(),
		strings.TrimSpace(req.AccountNumber),
		req.HolderName,
		balance,
		domain.AccountStatus(req.Status),
	)
	if err != nil {
		respondServiceError[models.AccountResponse](w, r, operation, err, start)
		return
	}

	respondOK(w, r, operation, http.StatusCreated, "Account created", models.NewAccountResponse(account), start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	const operation = "get_account"
	start := time.Now()
	logRequest(r, nil)

	account, err := c.service.GetAccount(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respondServiceError[models.AccountResponse](w, r, operation, err, start)
		return
	}

	respondOK(w, r, operation, http.StatusOK, "Account retrieved", models.NewAccountResponse(account), start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.applyAmount(w, r, "deposit", "Deposit successful", c.service.Deposit)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.applyAmount(w, r, "withdraw", "Withdrawal successful", c.service.Withdraw)
}

func (c *AccountController) applyAmount(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	message string,
	apply func(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error),
) {
	start := time.Now()
	number := chi.URLParam(r, "number")

	var req models.AmountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logError(r, err, nil)
		respondInvalid[models.BalanceResponse](w, r, operation, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		respondInvalid[models.BalanceResponse](w, r, operation, "validation failed", err, start)
		return
	}

	amount, err := req.Decimal()
	if err != nil {
		respondInvalid[models.BalanceResponse](w, r, operation, "validation failed", err, start)
		return
	}

	balance, err := apply(r.Context(), number, amount)
	if err != nil {
		respondServiceError[models.BalanceResponse](w, r, operation, err, start)
		return
	}

	respondOK(w, r, operation, http.StatusOK, message, models.BalanceResponse{
		AccountNumber: number,
		Amount:        models.FormatMoney(amount),
		Balance:       models.FormatMoney(balance),
	}, start)
}

func (c *AccountController) listMovements(w http.ResponseWriter, r *http.Request) {
	const operation = "list_movements"
	start := time.Now()
	logRequest(r, nil)

	movements, err := c.service.ListMovements(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respondServiceError[[]models.MovementResponse](w, r, operation, err, start)
		return
	}

	respondOK(w, r, operation, http.StatusOK, "Movements retrieved", models.NewMovementResponses(movements), start)
}
