package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/models"
	"ledgerly/internal/services"
	"ledgerly/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(email, username, password string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	attemptLoginFn   func(email, password string) (*models.User, error)
	verifyPasswordFn func(user *models.User, password string) bool
}

func (m *mockUserService) CreateUser(email, username, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, username, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

type mockSessionService struct {
	createFn  func(userID uint) (string, error)
	resolveFn func(token string) (uint, error)
	destroyFn func(token string) error
	purgeFn   func() error
}

func (m *mockSessionService) PurgeExpired() error {
	if m.purgeFn != nil {
		return m.purgeFn()
	}
	return nil
}

func (m *mockSessionService) Create(userID uint) (string, error) {
	if m.createFn != nil {
		return m.createFn(userID)
	}
	return "test-session-token", nil
}

func (m *mockSessionService) Resolve(token string) (uint, error) {
	if m.resolveFn != nil {
		return m.resolveFn(token)
	}
	return 1, nil
}

func (m *mockSessionService) Destroy(token string) error {
	if m.destroyFn != nil {
		return m.destroyFn(token)
	}
	return nil
}

type mockTransactionService struct {
	createFn func(userID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error)
	listFn   func(userID uint) ([]models.Transaction, error)
	updateFn func(userID, transactionID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error)
	deleteFn func(userID, transactionID uint) error
}

func (m *mockTransactionService) CreateTransaction(userID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(userID, name, amount, date, txType)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID uint, name string, amount models.Cents, date time.Time, txType models.TransactionType) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, transactionID, name, amount, date, txType)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, transactionID)
	}
	return nil
}

type mockBalanceService struct {
	getUserBalanceFn func(userID uint) (*services.Balance, error)
}

func (m *mockBalanceService) GetUserBalance(userID uint) (*services.Balance, error) {
	if m.getUserBalanceFn != nil {
		return m.getUserBalanceFn(userID)
	}
	return &services.Balance{}, nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doRequestWithCookie(r *gin.Engine, method, path, body, cookieName, cookieValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_token" {
			return c
		}
	}
	return nil
}
