package services

import "ledgerly/internal/models"

// balanceService derives income/expense totals from the transaction store.
// Totals are recomputed on every call; nothing is cached.
type balanceService struct {
	transactions TransactionServicer
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(transactions TransactionServicer) BalanceServicer {
	return &balanceService{transactions: transactions}
}

// Summarize computes the totals for a transaction set. Type is authoritative
// for bucketing; amounts are summed exactly as stored, so expense rows
// written with negative amounts keep their sign and the net balance is
// simply income + expense. Integer cents keep the sums exact.
func Summarize(transactions []models.Transaction) Balance {
	var b Balance
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			b.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			b.TotalExpense += t.Amount
		}
	}
	b.NetBalance = b.TotalIncome + b.TotalExpense
	return b
}

// GetUserBalance fetches the user's transactions and summarizes them.
func (s *balanceService) GetUserBalance(userID uint) (*Balance, error) {
	transactions, err := s.transactions.GetUserTransactions(userID)
	if err != nil {
		return nil, err
	}
	balance := Summarize(transactions)
	return &balance, nil
}
