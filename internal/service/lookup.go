package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/fleetcases/internal/cache"
	"github.com/umalmyha/fleetcases/internal/model"
	"github.com/umalmyha/fleetcases/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LookupService serves case type and status code catalogs
type LookupService interface {
	CaseTypes(context.Context) ([]*model.CaseType, error)
	StatusCodes(context.Context) ([]*model.StatusCode, error)
	CaseTypeByCode(context.Context, string) (*model.CaseType, error)
	StatusCodeByCode(context.Context, int) (*model.StatusCode, error)
	StatusCodeByID(context.Context, primitive.ObjectID) (*model.StatusCode, error)
	Seed(context.Context) (*model.SeedResult, error)
}

type lookupService struct {
	lookupRps   repository.LookupRepository
	lookupCache cache.LookupCache
}

// NewLookupService builds new LookupService, resolution by code goes through lookup cache
func NewLookupService(lookupRps repository.LookupRepository, lookupCache cache.LookupCache) LookupService {
	return &lookupService{lookupRps: lookupRps, lookupCache: lookupCache}
}

func (s *lookupService) CaseTypes(ctx context.Context) ([]*model.CaseType, error) {
	return s.lookupRps.FindAllCaseTypes(ctx)
}

func (s *lookupService) StatusCodes(ctx context.Context) ([]*model.StatusCode, error) {
	return s.lookupRps.FindAllStatusCodes(ctx)
}

// CaseTypeByCode returns nil if case type with provided code doesn't exist
func (s *lookupService) CaseTypeByCode(ctx context.Context, code string) (*model.CaseType, error) {
	ct, err := s.lookupCache.FindCaseType(ctx, code)
	if err != nil {
		logrus.Warnf("lookup cache: failed to read case type %s - %v", code, err)
	}

	if ct != nil {
		return ct, nil
	}

	ct, err = s.lookupRps.FindCaseTypeByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if ct != nil {
		if err := s.lookupCache.CacheCaseType(ctx, ct); err != nil {
			logrus.Warnf("lookup cache: failed to store case type %s - %v", code, err)
		}
	}
	return ct, nil
}

// StatusCodeByCode returns nil if status with provided code doesn't exist
func (s *lookupService) StatusCodeByCode(ctx context.Context, code int) (*model.StatusCode, error) {
	sc, err := s.lookupCache.FindStatusCode(ctx, code)
	if err != nil {
		logrus.Warnf("lookup cache: failed to read status code %d - %v", code, err)
	}

	if sc != nil {
		return sc, nil
	}

	sc, err = s.lookupRps.FindStatusCodeByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if sc != nil {
		if err := s.lookupCache.CacheStatusCode(ctx, sc); err != nil {
			logrus.Warnf("lookup cache: failed to store status code %d - %v", code, err)
		}
	}
	return sc, nil
}

func (s *lookupService) StatusCodeByID(ctx context.Context, id primitive.ObjectID) (*model.StatusCode, error) {
	return s.lookupRps.FindStatusCodeByID(ctx, id)
}

// Seed fills every catalog with default entries if the catalog is empty, non-empty catalogs are left untouched
func (s *lookupService) Seed(ctx context.Context) (*model.SeedResult, error) {
	res := &model.SeedResult{OK: true}
	now := time.Now().UTC()

	caseTypesCount, err := s.lookupRps.CountCaseTypes(ctx)
	if err != nil {
		return nil, err
	}

	if caseTypesCount == 0 {
		caseTypes := defaultCaseTypes(now)
		if err := s.lookupRps.CreateCaseTypes(ctx, caseTypes); err != nil {
			return nil, err
		}
		res.CaseTypes = len(caseTypes)
	}

	statusCodesCount, err := s.lookupRps.CountStatusCodes(ctx)
	if err != nil {
		return nil, err
	}

	if statusCodesCount == 0 {
		statusCodes := defaultStatusCodes(now)
		if err := s.lookupRps.CreateStatusCodes(ctx, statusCodes); err != nil {
			return nil, err
		}
		res.StatusCodes = len(statusCodes)
	}

	logrus.Infof("lookups seeded: %d case types, %d status codes", res.CaseTypes, res.StatusCodes)
	return res, nil
}

func defaultCaseTypes(at time.Time) []*model.CaseType {
	return []*model.CaseType{
		{Code: "ACCIDENT", Name: "Accident", CreatedAt: at, UpdatedAt: at},
		{Code: "DAMAGE", Name: "Damage", CreatedAt: at, UpdatedAt: at},
		{Code: "MAINTENANCE", Name: "Maintenance", CreatedAt: at, UpdatedAt: at},
	}
}

func defaultStatusCodes(at time.Time) []*model.StatusCode {
	describe := func(s string) *string { return &s }

	statusCodes := []*model.StatusCode{
		{Code: model.StatusCodeOpen, Name: "Açık", Description: describe("Yeni oluşturulan vaka")},
		{Code: 2, Name: "İnceleniyor", Description: describe("Vaka inceleme aşamasında")},
		{Code: 3, Name: "Tamamlandı", IsTerminal: true, Description: describe("Vaka başarıyla tamamlandı")},
	}

	for _, sc := range statusCodes {
		sc.CreatedAt = at
		sc.UpdatedAt = at
	}
	return statusCodes
}
