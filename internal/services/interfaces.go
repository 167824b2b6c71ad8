package services

import (
	"time"

	"ledgerly/internal/models"
)

// UserServicer defines the contract for credential and account logic.
type UserServicer interface {
	CreateUser(email, username, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// SessionServicer defines the contract for server-side session management.
type SessionServicer interface {
	Create(userID uint) (string, error)
	Resolve(token string) (uint, error)
	Destroy(token string) error
	PurgeExpired() error
}

// TransactionServicer defines the contract for transaction persistence.
type TransactionServicer interface {
	CreateTransaction(userID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error)
	GetUserTransactions(userID uint) ([]models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// Balance holds the derived income/expense totals for a user, in cents.
type Balance struct {
	TotalIncome  models.Cents `json:"total_income"`
	TotalExpense models.Cents `json:"total_expense"`
	NetBalance   models.Cents `json:"net_balance"`
}

// BalanceServicer defines the contract for balance aggregation.
type BalanceServicer interface {
	GetUserBalance(userID uint) (*Balance, error)
}
