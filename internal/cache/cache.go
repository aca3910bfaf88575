package cache

import (
	"context"

	"github.com/umalmyha/fleetcases/internal/model"
)

// LookupCache keeps resolved reference data, catalogs are immutable once seeded
type LookupCache interface {
	FindCaseType(context.Context, string) (*model.CaseType, error)
	CacheCaseType(context.Context, *model.CaseType) error
	FindStatusCode(context.Context, int) (*model.StatusCode, error)
	CacheStatusCode(context.Context, *model.StatusCode) error
}

type noopLookupCache struct{}

// NewNoopLookupCache builds cache which never holds anything, used when redis is not configured
func NewNoopLookupCache() LookupCache {
	return &noopLookupCache{}
}

func (noopLookupCache) FindCaseType(context.Context, string) (*model.CaseType, error) {
	return nil, nil
}

func (noopLookupCache) CacheCaseType(context.Context, *model.CaseType) error {
	return nil
}

func (noopLookupCache) FindStatusCode(context.Context, int) (*model.StatusCode, error) {
	return nil, nil
}

func (noopLookupCache) CacheStatusCode(context.Context, *model.StatusCode) error {
	return nil
}
