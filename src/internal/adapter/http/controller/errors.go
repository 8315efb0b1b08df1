package controller

import (
	"errors"
	"net/http"

	"github.com/api-sage/virtual-teller/src/internal/domain"
)

type errorClass struct {
	status  int
	code    string
	message string
}

var errorClasses = []struct {
	target error
	class  errorClass
}{
	{domain.ErrNotFound, errorClass{http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found"}},
	{domain.ErrAlreadyExists, errorClass{http.StatusConflict, "ACCOUNT_EXISTS", "Account already exists"}},
	{domain.ErrInvalidAmount, errorClass{http.StatusBadRequest, "INVALID_AMOUNT", "Invalid amount"}},
	{domain.ErrInvalidStatus, errorClass{http.StatusBadRequest, "INVALID_STATUS", "Invalid account status"}},
	{domain.ErrInsufficientFunds, errorClass{http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", "Insufficient funds"}},
	{domain.ErrAccountNotActive, errorClass{http.StatusConflict, "ACCOUNT_NOT_ACTIVE", "Account is not active"}},
}

var internalError = errorClass{http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"}

func classify(err error) errorClass {
	for _, candidate := range errorClasses {
		if errors.Is(err, candidate.target) {
			return candidate.class
		}
	}
	return internalError
}
