package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/guttosm/courier-portal/internal/hsn"
	"github.com/guttosm/courier-portal/internal/metrics"
)

// ErrHSNCodeNotFound is returned when a code is not in the dataset.
var ErrHSNCodeNotFound = errors.New("hsn code not found")

// HSNSearcher defines the interface for HSN code lookups.
type HSNSearcher interface {
	Search(query string) ([]hsn.Entry, error)
	Lookup(code string) (hsn.Entry, error)
}

// HSNService serves searches from a lazily built index.
type HSNService struct {
	provider *hsn.Provider
}

// NewHSNService creates a new HSNService.
func NewHSNService(provider *hsn.Provider) *HSNService {
	return &HSNService{provider: provider}
}

// Search returns at most hsn.MaxResults entries matching every query term.
// Short queries return an empty list without touching the index, so they never
// trigger the first build. The only error is a failed index build.
func (s *HSNService) Search(query string) ([]hsn.Entry, error) {
	start := time.Now()

	if utf8.RuneCountInString(strings.TrimSpace(query)) < hsn.MinQueryLength {
		metrics.RecordHSNSearch(time.Since(start), 0, true)
		return []hsn.Entry{}, nil
	}

	ix, err := s.provider.Index()
	if err != nil {
		return nil, err
	}

	results := ix.Search(query)
	metrics.RecordHSNSearch(time.Since(start), len(results), false)
	return results, nil
}

// Lookup returns the entry for code. Dots and spaces in code are ignored.
func (s *HSNService) Lookup(code string) (hsn.Entry, error) {
	ix, err := s.provider.Index()
	if err != nil {
		return hsn.Entry{}, err
	}

	e, ok := ix.Lookup(code)
	if !ok {
		return hsn.Entry{}, ErrHSNCodeNotFound
	}
	return e, nil
}
