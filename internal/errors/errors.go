// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// Auth errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrForbidden           = errors.New("insufficient permissions")
)

// Validation errors
var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")
)

// Contract errors
var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrInvalidContractStatus = errors.New("invalid contract status value")
)

// Occupancy errors
var (
	ErrOccupancyNotFound      = errors.New("occupancy record not found")
	ErrInvalidOccupancyStatus = errors.New("invalid occupancy status value")
)

// Billing errors
var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceNumberTaken   = errors.New("invoice number is already taken")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status value")
)

// Settings errors
var (
	ErrSettingsNotFound     = errors.New("settings not found")
	ErrSettingsAlreadyExist = errors.New("settings already exist for this user, use PUT to update")
)

// Wallet errors
var (
	ErrTransactionNotFound = errors.New("wallet transaction not found")
	ErrTransactionSettled  = errors.New("wallet transaction is already settled")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrSettlementQueueFull = errors.New("settlement queue is full, please try again later")
)

// Service request errors
var (
	ErrServiceRequestNotFound      = errors.New("service request not found")
	ErrInvalidServiceRequestStatus = errors.New("invalid service request status value")
)
