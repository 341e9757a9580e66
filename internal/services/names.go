package services

import (
	"context"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NameStore is the storage surface for the baby-name catalog.
type NameStore interface {
	List(ctx context.Context, offset, limit int, gender models.Gender, excludeIDs []string) ([]*models.BabyName, error)
	Search(ctx context.Context, q string, gender models.Gender, limit int) ([]*models.BabyName, error)
}

// NameService serves the candidate-name queue
type NameService struct {
	names NameStore
}

// NewNameService creates a new name service
func NewNameService(names NameStore) *NameService {
	return &NameService{names: names}
}

// NamePage is one page of candidates. HasMore is approximated as "the page
// came back full"; a final page of exactly limit rows reads as more existing
// and costs one extra empty fetch.
type NamePage struct {
	Names   []*models.BabyName `json:"names"`
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
	HasMore bool               `json:"has_more"`
}

// List returns a page of names ordered by descending popularity
func (s *NameService) List(ctx context.Context, offset, limit int, gender models.Gender, excludeIDs []string) (*NamePage, error) {
	if gender != "" && !gender.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "unknown gender %q", gender)
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	names, err := s.names.List(ctx, offset, limit, gender, excludeIDs)
	if err != nil {
		return nil, err
	}

	return &NamePage{
		Names:   names,
		Offset:  offset,
		Limit:   limit,
		HasMore: len(names) == limit,
	}, nil
}

// Search returns names matching the query, most popular first
func (s *NameService) Search(ctx context.Context, q string, gender models.Gender, limit int) ([]*models.BabyName, error) {
	if q == "" {
		return nil, apperr.New(apperr.KindValidation, "search query is required")
	}
	if gender != "" && !gender.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "unknown gender %q", gender)
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return s.names.Search(ctx, q, gender, limit)
}
