package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	user := &entity.User{ID: "user-1", Name: "Awa", Email: "awa@example.com"}
	mockUseCase.On("Register", "Awa", "awa@example.com", "secret123").Return(user, "token-abc", nil)

	body, _ := json.Marshal(RegisterRequest{Name: "Awa", Email: "awa@example.com", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "token-abc", response.Token)
	assert.Equal(t, "user-1", response.User.ID)
	assert.NotContains(t, w.Body.String(), "password")
	mockUseCase.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	for name, body := range map[string]string{
		"missing name":   `{"email":"a@example.com","password":"secret123"}`,
		"bad email":      `{"name":"A","email":"nope","password":"secret123"}`,
		"short password": `{"name":"A","email":"a@example.com","password":"123"}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_EmailTaken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUseCase.On("Register", "Awa", "awa@example.com", "secret123").Return(nil, "", usecase.ErrEmailTaken)

	body := `{"name":"Awa","email":"awa@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "awa@example.com", "wrong").Return(nil, "", usecase.ErrInvalidCredentials)

	body := `{"email":"awa@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestMe(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/me", asUser("user-1", handler.Me))

	mockUseCase.On("GetUser", "user-1").Return(&entity.User{ID: "user-1", Email: "awa@example.com"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "awa@example.com")
}

func TestLogout(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/logout", asUser("user-1", handler.Logout))

	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mockUseCase.On("Logout", mock.Anything, "jti-user-1", expiresAt).Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLogout_StoreFailure(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/logout", asUser("user-1", handler.Logout))

	mockUseCase.On("Logout", mock.Anything, "jti-user-1", mock.Anything).Return(errors.New("redis down"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "redis")
}

func TestDeleteMe(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/me", asUser("user-1", handler.DeleteMe))

	mockUseCase.On("DeleteAccount", mock.Anything, "user-1", "jti-user-1", mock.Anything).Return(nil).Once()
	mockUseCase.On("DeleteAccount", mock.Anything, "user-1", "jti-user-1", mock.Anything).Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/me", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
