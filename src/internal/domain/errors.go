package domain

import "errors"

var ErrNotFound = errors.New("account not found")
var ErrAlreadyExists = errors.New("account already exists")
var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrAccountNotActive = errors.New("account is not active")
var ErrInvalidStatus = errors.New("status must be one of ACTIVE, BLOCKED, CLOSED")
