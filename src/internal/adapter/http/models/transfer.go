package models

import (
	"errors"
	"strings"

	"github.com/api-sage/virtual-teller/src/internal/domain"
	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SourceAccountNumber      string `json:"sourceAccountNumber"`
	DestinationAccountNumber string `json:"destinationAccountNumber"`
	Amount                   string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	errs = append(errs, validateAccountNumber("sourceAccountNumber", r.SourceAccountNumber)...)
	errs = append(errs, validateAccountNumber("destinationAccountNumber", r.DestinationAccountNumber)...)
	if err := validateAmount("amount", r.Amount); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r TransferRequest) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(r.Amount))
}

type TransferResponse struct {
	TransferID               string `json:"transferId"`
	SourceAccountNumber      string `json:"sourceAccountNumber"`
	DestinationAccountNumber string `json:"destinationAccountNumber"`
	Amount                   string `json:"amount"`
	SourceBalance            string `json:"sourceBalance"`
	DestinationBalance       string `json:"destinationBalance"`
}

func NewTransferResponse(req TransferRequest, amount decimal.Decimal, result domain.TransferResult) TransferResponse {
	return TransferResponse{
		TransferID:               result.TransferID,
		SourceAccountNumber:      strings.TrimSpace(req.SourceAccountNumber),
		DestinationAccountNumber: strings.TrimSpace(req.DestinationAccountNumber),
		Amount:                   FormatMoney(amount),
		SourceBalance:            FormatMoney(result.SourceBalance),
		DestinationBalance:       FormatMoney(result.DestinationBalance),
	}
}
