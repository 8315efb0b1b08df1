package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/commons"
	"github.com/api-sage/virtual-teller/src/internal/logger"
)

func respondOK[T any](w http.ResponseWriter, r *http.Request, operation string, status int, message string, data T, start time.Time) {
	response := commons.SuccessResponse(message, data)
	writeJSON(w, status, response)
	recordOutcome(operation, "")
	logResponse(r, status, response, start)
}

func respondInvalid[T any](w http.ResponseWriter, r *http.Request, operation, message string, err error, start time.Time) {
	response := commons.ErrorResponse[T]("VALIDATION_FAILED", message, err.Error())
	writeJSON(w, http.StatusBadRequest, response)
	recordOutcome(operation, response.Code)
	logResponse(r, http.StatusBadRequest, response, start)
}

// respondServiceError maps a ledger error to its HTTP status. Internal errors
// are logged with detail but answered with a generic message.
func respondServiceError[T any](w http.ResponseWriter, r *http.Request, operation string, err error, start time.Time) {
	class := classify(err)
	logError(r, err, logger.Fields{"operation": operation, "status": class.status})

	var response commons.Response[T]
	if class.status == http.StatusInternalServerError {
		response = commons.ErrorResponse[T](class.code, class.message)
	} else {
		response = commons.ErrorResponse[T](class.code, class.message, err.Error())
	}

	writeJSON(w, class.status, response)
	recordOutcome(operation, class.code)
	logResponse(r, class.status, response, start)
}
