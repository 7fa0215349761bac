package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTemplates(t *testing.T) {
	mockUseCase := new(MockTemplateUseCase)
	handler := NewTemplateHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/templates", handler.List)
	router.GET("/template/:id", handler.Get)
	router.POST("/templates", handler.Create)

	landing := &entity.Template{ID: "tpl-1", Name: "Hero", Slug: "hero", Category: entity.TemplateCategoryLanding, Layout: json.RawMessage(`{"sections":[]}`)}
	mockUseCase.On("List", entity.TemplateCategoryLanding).Return([]*entity.Template{landing}, nil)
	mockUseCase.On("Get", "tpl-1").Return(landing, nil)
	mockUseCase.On("Get", "missing").Return(nil, usecase.ErrNotFound)
	mockUseCase.On("Create", mock.MatchedBy(func(tpl *entity.Template) bool {
		return tpl.Name == "Card" && tpl.Category == entity.TemplateCategorySocial && string(tpl.Layout) == `{"blocks":1}`
	})).Return(&entity.Template{ID: "tpl-2", Name: "Card"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/templates?category=landing", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"layout":{"sections":[]}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/template/tpl-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/template/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewBufferString(`{"name":"Card","category":"social","layout":{"blocks":1}}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestCreateTemplate_SlugTaken(t *testing.T) {
	mockUseCase := new(MockTemplateUseCase)
	handler := NewTemplateHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/templates", handler.Create)

	mockUseCase.On("Create", mock.Anything).Return(nil, fmt.Errorf("%w: %q", usecase.ErrSlugTaken, "hero"))

	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewBufferString(`{"name":"Hero","slug":"hero"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "template slug already exists")
}
