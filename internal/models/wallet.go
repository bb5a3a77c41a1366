package models

import "time"

// TransactionType identifies the direction of a wallet transaction.
type TransactionType string

const (
	// TransactionTopUp adds funds to the wallet when it settles successfully.
	TransactionTopUp TransactionType = "Top-up"
	// TransactionPayment deducts funds from the wallet when it settles successfully.
	TransactionPayment TransactionType = "Payment"
)

// TransactionStatus represents the settlement state of a wallet transaction.
type TransactionStatus string

const (
	// StatusProcessing indicates the transaction is awaiting settlement.
	StatusProcessing TransactionStatus = "Processing"
	// StatusSuccess indicates the transaction settled and the balance was adjusted.
	StatusSuccess TransactionStatus = "Success"
	// StatusFailed indicates the transaction settled without a balance change.
	StatusFailed TransactionStatus = "Failed"
)

// Transaction is a wallet ledger entry embedded on the user document.
// Once status leaves Processing the entry is immutable.
type Transaction struct {
	ID        string            `json:"id" bson:"id" example:"TX-4F9A2C1B"`
	Type      TransactionType   `json:"type" bson:"type" example:"Top-up"`
	Amount    float64           `json:"amount" bson:"amount" example:"500"`
	Reference string            `json:"reference,omitempty" bson:"reference,omitempty" example:"GCash top-up"`
	Status    TransactionStatus `json:"status" bson:"status" example:"Processing"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	SettledAt *time.Time        `json:"settledAt,omitempty" bson:"settledAt,omitempty"`
}

// WalletResponse is the balance-plus-ledger view returned by the wallet endpoint.
type WalletResponse struct {
	Balance      float64       `json:"balance" example:"1500"`
	Transactions []Transaction `json:"transactions"`
}

// CreateTransactionRequest is the payload for appending a wallet transaction.
// The server generates the id, status, and timestamps.
type CreateTransactionRequest struct {
	Type      TransactionType `json:"type" binding:"required,oneof=Top-up Payment" example:"Top-up"`
	Amount    float64         `json:"amount" binding:"required,gt=0" example:"500"`
	Reference string          `json:"reference" binding:"omitempty,max=200" example:"GCash top-up"`
}

// SettleTransactionRequest is the payload for manually settling a Processing
// transaction. The balance delta is derived from the stored transaction; any
// client-supplied balance figure is ignored.
type SettleTransactionRequest struct {
	TransactionID string            `json:"transactionId" binding:"required,txid" example:"TX-4F9A2C1B"`
	Status        TransactionStatus `json:"status" binding:"required,oneof=Success Failed" example:"Success"`
}
