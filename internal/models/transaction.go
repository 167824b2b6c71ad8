package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense row owned by a user.
//
// Amount is stored signed, exactly as submitted: the front-end negates
// expenses before sending, so expense rows usually carry negative cents.
// Type stays authoritative for aggregation bucketing regardless of sign.
type Transaction struct {
	Base
	UserID uint            `gorm:"index;not null" json:"user_id"`
	Name   string          `gorm:"size:50;not null" json:"name"`
	Amount Cents           `gorm:"type:bigint;not null" json:"amount"`
	Date   time.Time       `gorm:"not null" json:"date"`
	Type   TransactionType `gorm:"size:10;not null" json:"type"`
}
