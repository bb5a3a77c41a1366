package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
		{"ErrAccountInactive", ErrAccountInactive, "account is inactive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTransactionNotFound", ErrTransactionNotFound, "wallet transaction not found"},
		{"ErrTransactionSettled", ErrTransactionSettled, "wallet transaction is already settled"},
		{"ErrInsufficientBalance", ErrInsufficientBalance, "insufficient wallet balance"},
		{"ErrSettlementQueueFull", ErrSettlementQueueFull, "settlement queue is full, please try again later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrUserNotFound, ErrUserAlreadyExists, ErrInvalidCredentials,
		ErrAccountInactive, ErrUnauthorized, ErrInvalidToken,
		ErrInvalidRefreshToken, ErrForbidden,
		ErrContractNotFound, ErrOccupancyNotFound, ErrInvoiceNotFound,
		ErrSettingsNotFound, ErrSettingsAlreadyExist,
		ErrTransactionNotFound, ErrTransactionSettled, ErrInsufficientBalance,
		ErrServiceRequestNotFound,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "expected %v and %v to be distinct", a, b)
		}
	}
}

func TestErrorsWorkWithErrorsIs(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrInvoiceNotFound)
	assert.True(t, errors.Is(wrapped, ErrInvoiceNotFound))
}
