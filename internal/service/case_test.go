package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/fleetcases/internal/cache"
	apperrors "github.com/umalmyha/fleetcases/internal/errors"
	"github.com/umalmyha/fleetcases/internal/events"
	evtMocks "github.com/umalmyha/fleetcases/internal/events/mocks"
	"github.com/umalmyha/fleetcases/internal/model"
	"github.com/umalmyha/fleetcases/internal/repository"
	rpsMocks "github.com/umalmyha/fleetcases/internal/repository/mocks"
	"github.com/umalmyha/fleetcases/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type caseTestData struct {
	ctx      context.Context
	now      time.Time
	customer *model.Customer
	supplier *model.Supplier
	accident *model.CaseType
	open     *model.StatusCode
	review   *model.StatusCode
	done     *model.StatusCode
}

type caseServiceTestSuite struct {
	suite.Suite
	caseSvc             CaseService
	customerRpsMock     *rpsMocks.CustomerRepository
	supplierRpsMock     *rpsMocks.SupplierRepository
	caseRpsMock         *rpsMocks.CaseRepository
	eventRpsMock        *rpsMocks.CaseEventRepository
	surveyRpsMock       *rpsMocks.SurveyRepository
	notificationRpsMock *rpsMocks.NotificationRepository
	lookupRpsMock       *rpsMocks.LookupRepository
	publisherMock       *evtMocks.Publisher
	testData            *caseTestData
}

func (s *caseServiceTestSuite) SetupSuite() {
	s.testData = &caseTestData{
		ctx:      context.Background(),
		now:      time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC),
		customer: &model.Customer{ID: primitive.NewObjectID(), CustomerID: "CUST900"},
		supplier: &model.Supplier{ID: primitive.NewObjectID(), SupplierID: "SUP7"},
		accident: &model.CaseType{ID: primitive.NewObjectID(), Code: "ACCIDENT", Name: "Accident"},
		open:     &model.StatusCode{ID: primitive.NewObjectID(), Code: model.StatusCodeOpen, Name: "Açık"},
		review:   &model.StatusCode{ID: primitive.NewObjectID(), Code: 2, Name: "İnceleniyor"},
		done:     &model.StatusCode{ID: primitive.NewObjectID(), Code: 3, Name: "Tamamlandı", IsTerminal: true},
	}
}

func (s *caseServiceTestSuite) SetupTest() {
	s.buildService(AllowAnyTransition())
}

func (s *caseServiceTestSuite) buildService(policy TransitionPolicy) {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.supplierRpsMock = rpsMocks.NewSupplierRepository(t)
	s.caseRpsMock = rpsMocks.NewCaseRepository(t)
	s.eventRpsMock = rpsMocks.NewCaseEventRepository(t)
	s.surveyRpsMock = rpsMocks.NewSurveyRepository(t)
	s.notificationRpsMock = rpsMocks.NewNotificationRepository(t)
	s.lookupRpsMock = rpsMocks.NewLookupRepository(t)
	s.publisherMock = evtMocks.NewPublisher(t)

	rps := CaseRepositories{
		Customers:     s.customerRpsMock,
		Suppliers:     s.supplierRpsMock,
		Cases:         s.caseRpsMock,
		Events:        s.eventRpsMock,
		Surveys:       s.surveyRpsMock,
		Notifications: s.notificationRpsMock,
	}
	lookupSvc := NewLookupService(s.lookupRpsMock, cache.NewNoopLookupCache())

	svc := NewCaseService(rps, lookupSvc, transactor.NewSequentialTransactor(), policy, s.publisherMock)
	svc.(*caseService).timeSource = func() time.Time { return s.testData.now }
	s.caseSvc = svc
}

func (s *caseServiceTestSuite) storedCase(state *model.StatusCode) *model.Case {
	td := s.testData
	return &model.Case{
		ID:         primitive.NewObjectID(),
		CaseID:     5001,
		Customer:   td.customer.ID,
		CaseType:   td.accident.ID,
		CreateDate: td.now.Add(-time.Hour),
		LastState:  state.ID,
	}
}

func (s *caseServiceTestSuite) viewOf(c *model.Case, state *model.StatusCode) *model.CaseView {
	td := s.testData
	return &model.CaseView{
		ID:             c.ID,
		CaseID:         c.CaseID,
		Customer:       *td.customer,
		CaseType:       *td.accident,
		CreateDate:     c.CreateDate,
		LastState:      *state,
		CompletionDate: c.CompletionDate,
	}
}

//nolint:funlen // function contains a lot of inlined tests
func (s *caseServiceTestSuite) TestCreate() {
	td := s.testData
	ctx := td.ctx

	s.T().Log("missing required fields")
	{
		_, err := s.caseSvc.Create(ctx, NewCase{CaseID: 5001, CustomerID: "   ", CaseTypeCode: "ACCIDENT"})
		var validationErr *apperrors.ValidationErr
		s.Require().ErrorAs(err, &validationErr, "blank customer id must be rejected")
	}

	s.T().Log("unknown case type")
	{
		s.lookupRpsMock.On("FindCaseTypeByCode", ctx, "THEFT").Return(nil, nil).Once()

		_, err := s.caseSvc.Create(ctx, NewCase{CaseID: 5001, CustomerID: "CUST900", CaseTypeCode: "THEFT"})
		var refErr *apperrors.InvalidReferenceErr
		s.Require().ErrorAs(err, &refErr, "unknown case type must be invalid reference")
		s.Require().Equal("Invalid caseTypeCode", refErr.Error())
		s.caseRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
		s.customerRpsMock.AssertNotCalled(s.T(), "Ensure", mock.Anything, mock.Anything)
	}

	s.T().Log("open status is not seeded")
	{
		s.lookupRpsMock.On("FindCaseTypeByCode", ctx, "ACCIDENT").Return(td.accident, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, model.StatusCodeOpen).Return(nil, nil).Once()

		_, err := s.caseSvc.Create(ctx, NewCase{CaseID: 5001, CustomerID: "CUST900", CaseTypeCode: "ACCIDENT"})
		s.Require().Error(err, "case must not be created without open status")
	}

	s.T().Log("case is created in open status with timeline and notification")
	{
		supplierID := " SUP7 "
		var created *model.Case

		s.lookupRpsMock.On("FindCaseTypeByCode", ctx, "ACCIDENT").Return(td.accident, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, model.StatusCodeOpen).Return(td.open, nil).Once()
		s.customerRpsMock.On("Ensure", mock.Anything, "CUST900").Return(td.customer, nil).Once()
		s.supplierRpsMock.On("Upsert", mock.Anything, "SUP7").Return(td.supplier, nil).Once()
		s.caseRpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Case")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Case)
				created.ID = primitive.NewObjectID()
			}).
			Return(nil).Once()
		s.eventRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CaseEvent) bool {
			return e.Type == model.EventStatusChanged && e.FromStatus == nil && *e.ToStatus == td.open.ID
		})).Return(nil).Once()
		s.notificationRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.Message == "Case #5001 created" && n.Customer == td.customer.ID && !n.Read
		})).Return(nil).Once()
		s.caseRpsMock.On("FindViewByID", mock.Anything, mock.AnythingOfType("primitive.ObjectID")).
			Return(func(_ context.Context, id primitive.ObjectID) *model.CaseView {
				return s.viewOf(created, td.open)
			}, nil).Once()
		s.publisherMock.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			return e.Type == events.CaseCreated && e.CaseID == 5001 && e.CustomerID == "CUST900"
		})).Return().Once()

		view, err := s.caseSvc.Create(ctx, NewCase{CaseID: 5001, CustomerID: " CUST900 ", CaseTypeCode: "ACCIDENT", SupplierID: &supplierID})
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(model.StatusCodeOpen, view.LastState.Code)
		s.Require().Equal(td.now, created.CreateDate)
		s.Require().Equal(td.supplier.ID, *created.Supplier)
		s.Require().Nil(created.CompletionDate)
	}
}

func (s *caseServiceTestSuite) TestCreateDuplicate() {
	td := s.testData
	ctx := td.ctx

	s.lookupRpsMock.On("FindCaseTypeByCode", ctx, "ACCIDENT").Return(td.accident, nil).Once()
	s.lookupRpsMock.On("FindStatusCodeByCode", ctx, model.StatusCodeOpen).Return(td.open, nil).Once()
	s.customerRpsMock.On("Ensure", mock.Anything, "CUST900").Return(td.customer, nil).Once()
	s.caseRpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Case")).
		Return(mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}).Once()

	s.T().Log("duplicate case id is reported as duplicate key")
	{
		_, err := s.caseSvc.Create(ctx, NewCase{CaseID: 5001, CustomerID: "CUST900", CaseTypeCode: "ACCIDENT"})
		var dupErr *apperrors.DuplicateKeyErr
		s.Require().ErrorAs(err, &dupErr)
		s.eventRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
		s.publisherMock.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
	}
}

//nolint:funlen // function contains a lot of inlined tests
func (s *caseServiceTestSuite) TestChangeStatus() {
	td := s.testData
	ctx := td.ctx

	s.T().Log("malformed id")
	{
		_, err := s.caseSvc.ChangeStatus(ctx, "not-an-object-id", 3)
		var refErr *apperrors.InvalidReferenceErr
		s.Require().ErrorAs(err, &refErr)
	}

	s.T().Log("case not found")
	{
		id := primitive.NewObjectID()
		s.caseRpsMock.On("FindByID", ctx, id).Return(nil, nil).Once()

		_, err := s.caseSvc.ChangeStatus(ctx, id.Hex(), 3)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr)
	}

	s.T().Log("unknown status code")
	{
		c := s.storedCase(td.open)
		s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 42).Return(nil, nil).Once()

		_, err := s.caseSvc.ChangeStatus(ctx, c.ID.Hex(), 42)
		var refErr *apperrors.InvalidReferenceErr
		s.Require().ErrorAs(err, &refErr)
		s.Require().Equal("Invalid statusCode", refErr.Error())
	}

	s.T().Log("terminal status completes the case")
	{
		c := s.storedCase(td.open)
		s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 3).Return(td.done, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByID", ctx, td.open.ID).Return(td.open, nil).Once()
		s.caseRpsMock.On("SetState", mock.Anything, c.ID, td.done.ID, mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Equal(td.now)
		})).Return(nil).Once()
		s.eventRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CaseEvent) bool {
			return e.Type == model.EventStatusChanged && e.FromStatus != nil && *e.FromStatus == td.open.ID &&
				*e.ToStatus == td.done.ID && e.Case == c.ID
		})).Return(nil).Once()
		s.notificationRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.Message == "Case #5001 status changed to Tamamlandı" && n.Case == c.ID
		})).Return(nil).Once()
		completed := s.viewOf(c, td.done)
		completed.CompletionDate = &td.now
		s.caseRpsMock.On("FindViewByID", mock.Anything, c.ID).Return(completed, nil).Once()
		s.publisherMock.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			return e.Type == events.CaseStatusChanged && e.StatusCode != nil && *e.StatusCode == 3
		})).Return().Once()

		view, err := s.caseSvc.ChangeStatus(ctx, c.ID.Hex(), 3)
		s.Require().NoError(err, "no error must be raised")
		s.Require().NotNil(view.CompletionDate, "completion date must be set")
		s.Require().Equal(3, view.LastState.Code)
	}

	s.T().Log("non-terminal status keeps completion date untouched")
	{
		completedAt := td.now.Add(-30 * time.Minute)
		c := s.storedCase(td.done)
		c.CompletionDate = &completedAt

		s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 2).Return(td.review, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByID", ctx, td.done.ID).Return(td.done, nil).Once()
		s.caseRpsMock.On("SetState", mock.Anything, c.ID, td.review.ID, (*time.Time)(nil)).Return(nil).Once()
		s.eventRpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.CaseEvent")).Return(nil).Once()
		s.notificationRpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil).Once()
		s.caseRpsMock.On("FindViewByID", mock.Anything, c.ID).Return(s.viewOf(c, td.review), nil).Once()
		s.publisherMock.On("Publish", ctx, mock.AnythingOfType("events.Event")).Return().Once()

		view, err := s.caseSvc.ChangeStatus(ctx, c.ID.Hex(), 2)
		s.Require().NoError(err)
		s.Require().True(view.CompletionDate.Equal(completedAt))
	}

	s.T().Log("terminal re-entry resets completion date")
	{
		completedAt := td.now.Add(-48 * time.Hour)
		c := s.storedCase(td.done)
		c.CompletionDate = &completedAt

		s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 3).Return(td.done, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByID", ctx, td.done.ID).Return(td.done, nil).Once()
		s.caseRpsMock.On("SetState", mock.Anything, c.ID, td.done.ID, mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Equal(td.now)
		})).Return(nil).Once()
		s.eventRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CaseEvent) bool {
			return e.Case == c.ID && e.FromStatus != nil && *e.FromStatus == td.done.ID && e.ToStatus != nil && *e.ToStatus == td.done.ID
		})).Return(nil).Once()
		s.notificationRpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil).Once()
		reentered := s.viewOf(c, td.done)
		reentered.CompletionDate = &td.now
		s.caseRpsMock.On("FindViewByID", mock.Anything, c.ID).Return(reentered, nil).Once()
		s.publisherMock.On("Publish", ctx, mock.AnythingOfType("events.Event")).Return().Once()

		view, err := s.caseSvc.ChangeStatus(ctx, c.ID.Hex(), 3)
		s.Require().NoError(err)
		s.Require().True(view.CompletionDate.Equal(td.now), "completion date must be reset on re-entry")
	}

	s.T().Log("timeline write failure is returned and nothing is published")
	{
		c := s.storedCase(td.open)
		s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 2).Return(td.review, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByID", ctx, td.open.ID).Return(td.open, nil).Once()
		s.caseRpsMock.On("SetState", mock.Anything, c.ID, td.review.ID, (*time.Time)(nil)).Return(nil).Once()
		s.eventRpsMock.On("Create", mock.Anything, mock.AnythingOfType("*model.CaseEvent")).Return(errors.New("write failed")).Once()

		_, err := s.caseSvc.ChangeStatus(ctx, c.ID.Hex(), 2)
		s.Require().Error(err)
	}
}

func (s *caseServiceTestSuite) TestChangeStatusRejectedByPolicy() {
	td := s.testData
	ctx := td.ctx

	s.buildService(TransitionTable{1: {2}, 2: {3}})

	c := s.storedCase(td.open)
	s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
	s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 3).Return(td.done, nil).Once()
	s.lookupRpsMock.On("FindStatusCodeByID", ctx, td.open.ID).Return(td.open, nil).Once()

	s.T().Log("transition outside of the table is a business error")
	{
		_, err := s.caseSvc.ChangeStatus(ctx, c.ID.Hex(), 3)
		var businessErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &businessErr)
		s.caseRpsMock.AssertNotCalled(s.T(), "SetState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *caseServiceTestSuite) TestChangeSupplier() {
	td := s.testData
	ctx := td.ctx

	s.T().Log("supplier id is required")
	{
		_, err := s.caseSvc.ChangeSupplier(ctx, primitive.NewObjectID().Hex(), "  ")
		var validationErr *apperrors.ValidationErr
		s.Require().ErrorAs(err, &validationErr)
	}

	s.T().Log("supplier is reassigned without status change")
	{
		c := s.storedCase(td.review)
		s.caseRpsMock.On("FindByID", ctx, c.ID).Return(c, nil).Once()
		s.supplierRpsMock.On("Upsert", mock.Anything, "SUP7").Return(td.supplier, nil).Once()
		s.caseRpsMock.On("SetSupplier", mock.Anything, c.ID, td.supplier.ID).Return(nil).Once()
		s.eventRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CaseEvent) bool {
			return e.Type == model.EventServiceChanged && e.Note != nil && *e.Note == "Supplier changed to SUP7" && e.ToStatus == nil
		})).Return(nil).Once()
		s.notificationRpsMock.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.Message == "Case #5001 supplier changed"
		})).Return(nil).Once()
		s.caseRpsMock.On("FindViewByID", mock.Anything, c.ID).Return(s.viewOf(c, td.review), nil).Once()
		s.publisherMock.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			return e.Type == events.CaseSupplierChanged
		})).Return().Once()

		_, err := s.caseSvc.ChangeSupplier(ctx, c.ID.Hex(), "SUP7")
		s.Require().NoError(err)
		s.caseRpsMock.AssertNotCalled(s.T(), "SetState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *caseServiceTestSuite) TestDelete() {
	td := s.testData
	ctx := td.ctx

	s.T().Log("unknown case")
	{
		id := primitive.NewObjectID()
		s.caseRpsMock.On("FindViewByID", ctx, id).Return(nil, nil).Once()

		_, err := s.caseSvc.Delete(ctx, id.Hex())
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr)
	}

	s.T().Log("case is deleted together with related data")
	{
		c := s.storedCase(td.done)
		s.caseRpsMock.On("FindViewByID", ctx, c.ID).Return(s.viewOf(c, td.done), nil).Once()
		s.surveyRpsMock.On("DeleteByCase", mock.Anything, c.ID).Return(int64(1), nil).Once()
		s.notificationRpsMock.On("DeleteByCase", mock.Anything, c.ID).Return(int64(2), nil).Once()
		s.eventRpsMock.On("DeleteByCase", mock.Anything, c.ID).Return(int64(2), nil).Once()
		s.caseRpsMock.On("DeleteByID", mock.Anything, c.ID).Return(nil).Once()
		s.publisherMock.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			return e.Type == events.CaseDeleted
		})).Return().Once()

		res, err := s.caseSvc.Delete(ctx, c.ID.Hex())
		s.Require().NoError(err)
		s.Require().True(res.Success)
		s.Require().Equal("Case #5001 and all related data deleted successfully", res.Message)
	}
}

func (s *caseServiceTestSuite) TestGet() {
	td := s.testData
	ctx := td.ctx

	c := s.storedCase(td.open)
	s.caseRpsMock.On("FindViewByID", ctx, c.ID).Return(s.viewOf(c, td.open), nil).Once()
	s.eventRpsMock.On("FindViewsByCase", ctx, c.ID).Return([]*model.CaseEventView{
		{Case: c.ID, Type: model.EventStatusChanged, ToStatus: td.open},
	}, nil).Once()
	s.surveyRpsMock.On("FindByCase", ctx, c.ID).Return(nil, nil).Once()

	s.T().Log("detail holds case and timeline without survey")
	{
		detail, err := s.caseSvc.Get(ctx, c.ID.Hex())
		s.Require().NoError(err)
		s.Require().Equal(int64(5001), detail.Case.CaseID)
		s.Require().Len(detail.Timeline, 1)
		s.Require().Nil(detail.Survey)
	}
}

func (s *caseServiceTestSuite) TestList() {
	td := s.testData
	ctx := td.ctx

	s.T().Log("unknown customer has no cases")
	{
		s.customerRpsMock.On("FindByCustomerID", ctx, "NOBODY").Return(nil, nil).Once()

		cases, err := s.caseSvc.List(ctx, CaseQuery{CustomerID: "NOBODY"})
		s.Require().NoError(err)
		s.Require().NotNil(cases, "empty array must be returned, not nil")
		s.Require().Empty(cases)
		s.caseRpsMock.AssertNotCalled(s.T(), "FindViews", mock.Anything, mock.Anything)
	}

	s.T().Log("malformed status code filter")
	{
		_, err := s.caseSvc.List(ctx, CaseQuery{StatusCode: "open"})
		var refErr *apperrors.InvalidReferenceErr
		s.Require().ErrorAs(err, &refErr)
	}

	s.T().Log("known filters are applied, unknown case type is ignored")
	{
		s.customerRpsMock.On("FindByCustomerID", ctx, "CUST900").Return(td.customer, nil).Once()
		s.lookupRpsMock.On("FindCaseTypeByCode", ctx, "THEFT").Return(nil, nil).Once()
		s.lookupRpsMock.On("FindStatusCodeByCode", ctx, 3).Return(td.done, nil).Once()
		s.caseRpsMock.On("FindViews", ctx, repository.CaseFilter{
			Customer:  &td.customer.ID,
			LastState: &td.done.ID,
		}).Return([]*model.CaseView{}, nil).Once()

		_, err := s.caseSvc.List(ctx, CaseQuery{CustomerID: "CUST900", CaseTypeCode: "THEFT", StatusCode: "3"})
		s.Require().NoError(err)
	}
}

// start case service test suite
func TestCaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(caseServiceTestSuite))
}
