package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/fleetcases/internal/cache/mocks"
	"github.com/umalmyha/fleetcases/internal/model"
	rpsMocks "github.com/umalmyha/fleetcases/internal/repository/mocks"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type lookupServiceTestSuite struct {
	suite.Suite
	lookupSvc       LookupService
	lookupRpsMock   *rpsMocks.LookupRepository
	lookupCacheMock *cacheMocks.LookupCache
	ctx             context.Context
	done            *model.StatusCode
}

func (s *lookupServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.done = &model.StatusCode{ID: primitive.NewObjectID(), Code: 3, Name: "Tamamlandı", IsTerminal: true}
}

func (s *lookupServiceTestSuite) SetupTest() {
	t := s.T()
	s.lookupRpsMock = rpsMocks.NewLookupRepository(t)
	s.lookupCacheMock = cacheMocks.NewLookupCache(t)
	s.lookupSvc = NewLookupService(s.lookupRpsMock, s.lookupCacheMock)
}

func (s *lookupServiceTestSuite) TestStatusCodeFromCache() {
	s.lookupCacheMock.On("FindStatusCode", s.ctx, 3).Return(s.done, nil).Once()

	s.T().Log("status code must be found in cache")
	{
		sc, err := s.lookupSvc.StatusCodeByCode(s.ctx, 3)
		s.Require().NoError(err, "no error must be raised")
		s.Require().True(sc.IsTerminal)
		s.lookupRpsMock.AssertNotCalled(s.T(), "FindStatusCodeByCode", s.ctx, 3)
	}
}

func (s *lookupServiceTestSuite) TestStatusCodeCached() {
	s.lookupCacheMock.On("FindStatusCode", s.ctx, 3).Return(nil, nil).Once()
	s.lookupRpsMock.On("FindStatusCodeByCode", s.ctx, 3).Return(s.done, nil).Once()
	s.lookupCacheMock.On("CacheStatusCode", s.ctx, s.done).Return(nil).Once()

	s.T().Log("status code is not in cache, found in primary datasource and cached")
	{
		sc, err := s.lookupSvc.StatusCodeByCode(s.ctx, 3)
		s.Require().NoError(err)
		s.Require().Equal(s.done.ID, sc.ID)
	}
}

func (s *lookupServiceTestSuite) TestCaseTypeCacheFailure() {
	accident := &model.CaseType{ID: primitive.NewObjectID(), Code: "ACCIDENT", Name: "Accident"}

	s.lookupCacheMock.On("FindCaseType", s.ctx, "ACCIDENT").Return(nil, errors.New("redis is down")).Once()
	s.lookupRpsMock.On("FindCaseTypeByCode", s.ctx, "ACCIDENT").Return(accident, nil).Once()
	s.lookupCacheMock.On("CacheCaseType", s.ctx, accident).Return(errors.New("redis is down")).Once()

	s.T().Log("cache failures fall back to primary datasource")
	{
		ct, err := s.lookupSvc.CaseTypeByCode(s.ctx, "ACCIDENT")
		s.Require().NoError(err, "cache failure must not fail resolution")
		s.Require().Equal("ACCIDENT", ct.Code)
	}
}

func (s *lookupServiceTestSuite) TestUnknownStatusCodeNotCached() {
	s.lookupCacheMock.On("FindStatusCode", s.ctx, 42).Return(nil, nil).Once()
	s.lookupRpsMock.On("FindStatusCodeByCode", s.ctx, 42).Return(nil, nil).Once()

	s.T().Log("missing status code is not cached")
	{
		sc, err := s.lookupSvc.StatusCodeByCode(s.ctx, 42)
		s.Require().NoError(err)
		s.Require().Nil(sc)
		s.lookupCacheMock.AssertNotCalled(s.T(), "CacheStatusCode", mock.Anything, mock.Anything)
	}
}

func (s *lookupServiceTestSuite) TestSeedEmptyCatalogs() {
	s.lookupRpsMock.On("CountCaseTypes", s.ctx).Return(int64(0), nil).Once()
	s.lookupRpsMock.On("CreateCaseTypes", s.ctx, mock.MatchedBy(func(cts []*model.CaseType) bool {
		return len(cts) == 3 && cts[0].Code == "ACCIDENT"
	})).Return(nil).Once()
	s.lookupRpsMock.On("CountStatusCodes", s.ctx).Return(int64(0), nil).Once()
	s.lookupRpsMock.On("CreateStatusCodes", s.ctx, mock.MatchedBy(func(scs []*model.StatusCode) bool {
		terminal := 0
		for _, sc := range scs {
			if sc.IsTerminal {
				terminal++
			}
		}
		return len(scs) == 3 && scs[0].Code == model.StatusCodeOpen && terminal == 1
	})).Return(nil).Once()

	s.T().Log("both catalogs are empty and seeded")
	{
		res, err := s.lookupSvc.Seed(s.ctx)
		s.Require().NoError(err)
		s.Require().True(res.OK)
		s.Require().Equal(3, res.CaseTypes)
		s.Require().Equal(3, res.StatusCodes)
	}
}

func (s *lookupServiceTestSuite) TestSeedPartiallySeeded() {
	s.lookupRpsMock.On("CountCaseTypes", s.ctx).Return(int64(1), nil).Once()
	s.lookupRpsMock.On("CountStatusCodes", s.ctx).Return(int64(0), nil).Once()
	s.lookupRpsMock.On("CreateStatusCodes", s.ctx, mock.Anything).Return(nil).Once()

	s.T().Log("non-empty catalog is skipped entirely")
	{
		res, err := s.lookupSvc.Seed(s.ctx)
		s.Require().NoError(err)
		s.Require().Zero(res.CaseTypes)
		s.Require().Equal(3, res.StatusCodes)
		s.lookupRpsMock.AssertNotCalled(s.T(), "CreateCaseTypes", mock.Anything, mock.Anything)
	}
}

// start lookup service test suite
func TestLookupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(lookupServiceTestSuite))
}
