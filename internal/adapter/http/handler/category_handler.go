package handler

import (
	"net/http"

	"github.com/millbooks/millbooks/internal/adapter/http/dto"
	"github.com/millbooks/millbooks/internal/domain"
)

// CategoryHandler serves the static category table so consumers can render
// menus without hardcoding the ledger structure.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List lists all ledger categories and their domains.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(domain.Descriptors()))
}
