package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/fleetcases/internal/errors"
	"github.com/umalmyha/fleetcases/internal/model"
	rpsMocks "github.com/umalmyha/fleetcases/internal/repository/mocks"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type notificationServiceTestSuite struct {
	suite.Suite
	notificationSvc     NotificationService
	customerRpsMock     *rpsMocks.CustomerRepository
	notificationRpsMock *rpsMocks.NotificationRepository
	ctx                 context.Context
	customer            *model.Customer
}

func (s *notificationServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.customer = &model.Customer{ID: primitive.NewObjectID(), CustomerID: "CUST900"}
}

func (s *notificationServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.notificationRpsMock = rpsMocks.NewNotificationRepository(t)
	s.notificationSvc = NewNotificationService(s.customerRpsMock, s.notificationRpsMock)
}

func (s *notificationServiceTestSuite) TestList() {
	s.T().Log("customer id is required")
	{
		_, err := s.notificationSvc.List(s.ctx, " ")
		var validationErr *apperrors.ValidationErr
		s.Require().ErrorAs(err, &validationErr)
	}

	s.T().Log("unknown customer has empty inbox")
	{
		s.customerRpsMock.On("FindByCustomerID", s.ctx, "NOBODY").Return(nil, nil).Once()

		inbox, err := s.notificationSvc.List(s.ctx, "NOBODY")
		s.Require().NoError(err)
		s.Require().NotNil(inbox)
		s.Require().Empty(inbox)
	}

	s.T().Log("inbox is capped")
	{
		s.customerRpsMock.On("FindByCustomerID", s.ctx, "CUST900").Return(s.customer, nil).Once()
		s.notificationRpsMock.On("FindViewsByCustomer", s.ctx, s.customer.ID, int64(InboxLimit)).
			Return([]*model.NotificationView{{Message: "Case #5001 created"}}, nil).Once()

		inbox, err := s.notificationSvc.List(s.ctx, " CUST900 ")
		s.Require().NoError(err)
		s.Require().Len(inbox, 1)
	}
}

func (s *notificationServiceTestSuite) TestMarkRead() {
	id := primitive.NewObjectID()

	s.T().Log("missing notification")
	{
		s.notificationRpsMock.On("MarkRead", s.ctx, id).Return(nil, nil).Once()

		_, err := s.notificationSvc.MarkRead(s.ctx, id.Hex())
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr)
	}

	s.T().Log("marking read twice is harmless")
	{
		read := &model.Notification{ID: id, Read: true}
		s.notificationRpsMock.On("MarkRead", s.ctx, id).Return(read, nil).Twice()

		for i := 0; i < 2; i++ {
			n, err := s.notificationSvc.MarkRead(s.ctx, id.Hex())
			s.Require().NoError(err)
			s.Require().True(n.Read)
		}
	}

	s.T().Log("malformed id")
	{
		_, err := s.notificationSvc.MarkRead(s.ctx, "42")
		var refErr *apperrors.InvalidReferenceErr
		s.Require().ErrorAs(err, &refErr)
	}
}

func (s *notificationServiceTestSuite) TestMarkAllRead() {
	s.T().Log("unknown customer")
	{
		s.customerRpsMock.On("FindByCustomerID", s.ctx, "NOBODY").Return(nil, nil).Once()

		_, err := s.notificationSvc.MarkAllRead(s.ctx, "NOBODY")
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr)
		s.Require().Equal("Customer not found", notFoundErr.Error())
	}

	s.T().Log("all unread notifications are marked")
	{
		s.customerRpsMock.On("FindByCustomerID", s.ctx, "CUST900").Return(s.customer, nil).Once()
		s.notificationRpsMock.On("MarkAllRead", s.ctx, s.customer.ID).Return(int64(3), nil).Once()

		res, err := s.notificationSvc.MarkAllRead(s.ctx, "CUST900")
		s.Require().NoError(err)
		s.Require().True(res.Success)
		s.Require().EqualValues(3, res.Modified)
	}
}

// start notification service test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(notificationServiceTestSuite))
}
