package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.Use(injectUserID(1))
	r.GET("/transactions", handler.List)
	r.POST("/transactions", handler.Create)
	r.PUT("/transactions/:id", handler.Update)
	r.DELETE("/transactions/:id", handler.Delete)
	return r
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("returns bare array of transactions", func(t *testing.T) {
		txSvc := &mockTransactionService{
			listFn: func(userID uint) ([]models.Transaction, error) {
				return []models.Transaction{
					{
						Base:   models.Base{ID: 1},
						UserID: userID,
						Name:   "Coffee",
						Amount: -500,
						Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
						Type:   models.TransactionTypeExpense,
					},
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		rows := parseJSONArray(t, rec)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		row := rows[0].(map[string]interface{})
		if row["name"] != "Coffee" {
			t.Errorf("expected name Coffee, got %v", row["name"])
		}
		if row["amount"] != -5.0 {
			t.Errorf("expected amount -5, got %v", row["amount"])
		}
		if row["type"] != "expense" {
			t.Errorf("expected type expense, got %v", row["type"])
		}
	})

	t.Run("returns empty array for no transactions", func(t *testing.T) {
		txSvc := &mockTransactionService{
			listFn: func(uint) ([]models.Transaction, error) {
				return []models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rows := parseJSONArray(t, rec); len(rows) != 0 {
			t.Errorf("expected empty array, got %v", rows)
		}
	})
}

func TestTransactionHandler_Create(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotAmount models.Cents
		var gotType models.TransactionType
		txSvc := &mockTransactionService{
			createFn: func(userID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
				gotAmount = amount
				gotType = txType
				return &models.Transaction{Base: models.Base{ID: 1}, UserID: userID, Name: name, Amount: amount, Date: date, Type: txType}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"name":"Coffee","amount":-5.00,"date":"2024-03-15","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Transaction added successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
		if gotAmount != -500 {
			t.Errorf("expected -500 cents, got %d", gotAmount)
		}
		if gotType != models.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", gotType)
		}
	})

	t.Run("accepts quoted decimal amounts", func(t *testing.T) {
		var gotAmount models.Cents
		txSvc := &mockTransactionService{
			createFn: func(userID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
				gotAmount = amount
				return &models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"name":"Salary","amount":"2500.00","date":"2024-03-01","type":"income"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotAmount != 250000 {
			t.Errorf("expected 250000 cents, got %d", gotAmount)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"name":"Coffee","amount":-5.00,"date":"2024-03-15","type":"transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 400 on unparseable amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"name":"Coffee","amount":"five bucks","date":"2024-03-15","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"name":"Coffee","amount":-5.00,"date":"not-a-date","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":-5.00,"date":"2024-03-15","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Update(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID uint
		txSvc := &mockTransactionService{
			updateFn: func(userID, transactionID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
				gotID = transactionID
				return &models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/42",
			`{"name":"Groceries","amount":-42.00,"date":"2024-04-01","type":"expense"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Transaction updated successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
		if gotID != 42 {
			t.Errorf("expected transaction ID 42, got %d", gotID)
		}
	})

	t.Run("returns 404 when transaction is missing", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateFn: func(_, _ uint, _ string, _ models.Cents, _ time.Time, _ models.TransactionType) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/999",
			`{"name":"Ghost","amount":1.00,"date":"2024-04-01","type":"income"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric path ID", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/abc",
			`{"name":"Groceries","amount":-42.00,"date":"2024-04-01","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID uint
		txSvc := &mockTransactionService{
			deleteFn: func(userID, transactionID uint) error {
				gotID = transactionID
				return nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Transaction deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
		if gotID != 7 {
			t.Errorf("expected transaction ID 7, got %d", gotID)
		}
	})

	t.Run("returns 404 when transaction is missing", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteFn: func(_, _ uint) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}
