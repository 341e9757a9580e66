package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"namematch-backend/internal/models"
	"namematch-backend/internal/services"
)

// NameHandler handles candidate-name HTTP requests
type NameHandler struct {
	nameService *services.NameService
}

// NewNameHandler creates a new name handler
func NewNameHandler(nameService *services.NameService) *NameHandler {
	return &NameHandler{
		nameService: nameService,
	}
}

// List handles GET /api/v1/names?offset=&limit=&gender=&exclude=
func (h *NameHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	gender := models.Gender(q.Get("gender"))

	var excludeIDs []string
	if raw := q.Get("exclude"); raw != "" {
		excludeIDs = strings.Split(raw, ",")
	}

	page, err := h.nameService.List(r.Context(), offset, limit, gender, excludeIDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// Search handles GET /api/v1/names/search?q=&gender=&limit=
func (h *NameHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	gender := models.Gender(q.Get("gender"))

	names, err := h.nameService.Search(r.Context(), q.Get("q"), gender, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if names == nil {
		names = []*models.BabyName{}
	}

	respondJSON(w, http.StatusOK, names)
}
