package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// objectIDRegex matches a 24-character lowercase hex MongoDB ObjectID
var objectIDRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)

// transactionIDRegex matches wallet transaction IDs: TX- followed by 8 uppercase alphanumerics
var transactionIDRegex = regexp.MustCompile(`^TX-[0-9A-Z]{8}$`)

// validateObjectID validates that a string is a valid MongoDB ObjectID hex
func validateObjectID(fl validator.FieldLevel) bool {
	return objectIDRegex.MatchString(fl.Field().String())
}

// validateTransactionID validates that a string is a valid wallet transaction ID
func validateTransactionID(fl validator.FieldLevel) bool {
	return transactionIDRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("objectid", validateObjectID)
		_ = v.RegisterValidation("txid", validateTransactionID)
	}
}
