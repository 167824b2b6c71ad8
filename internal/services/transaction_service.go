package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

// transactionService handles transaction persistence for a single owner.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction inserts a new income or expense row for a user.
func (s *transactionService) CreateTransaction(userID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
	if name == "" || len(name) > 50 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "name is required and must be at most 50 characters")
	}
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidType
	}
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID: userID,
		Name:   name,
		Amount: amount,
		Date:   date,
		Type:   txType,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return transaction, nil
}

// GetUserTransactions returns all of a user's transactions in insertion order.
func (s *transactionService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transactions, nil
}

// getByID fetches a single transaction scoped to its owner.
func (s *transactionService) getByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces the mutable fields of an owned transaction.
// ID and owner never change.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
	if name == "" || len(name) > 50 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "name is required and must be at most 50 characters")
	}
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidType
	}

	transaction, err := s.getByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	transaction.Name = name
	transaction.Amount = amount
	transaction.Date = date
	transaction.Type = txType

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return transaction, nil
}

// DeleteTransaction removes an owned transaction. Deleting an ID that does
// not exist (or was already deleted) fails with ErrTransactionNotFound.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.getByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return nil
}
