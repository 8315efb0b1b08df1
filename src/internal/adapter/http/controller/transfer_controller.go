package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/adapter/http/models"
	"github.com/api-sage/virtual-teller/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type TransferController struct {
	service service_interfaces.LedgerService
}

func NewTransferController(service service_interfaces.LedgerService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(r chi.Router) {
	r.Post("/transfers", c.transfer)
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	const operation = "transfer"
	start := time.Now()

	var req models.TransferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logError(r, err, nil)
		respondInvalid[models.TransferResponse](w, r, operation, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		respondInvalid[models.TransferResponse](w, r, operation, "validation failed", err, start)
		return
	}

	amount, err := req.Decimal()
	if err != nil {
		respondInvalid[models.TransferResponse](w, r, operation, "validation failed", err, start)
		return
	}

	result, err := c.service.Transfer(
		r.Context(),
		strings.TrimSpace(req.SourceAccountNumber),
		strings.TrimSpace(req.DestinationAccountNumber),
		amount,
	)
	if err != nil {
		respondServiceError[models.TransferResponse](w, r, operation, err, start)
		return
	}

	respondOK(w, r, operation, http.StatusOK, "Transfer successful", models.NewTransferResponse(req, amount, result), start)
}
