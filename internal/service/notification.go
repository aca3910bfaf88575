package service

import (
	"context"
	"strings"

	apperrors "github.com/umalmyha/fleetcases/internal/errors"
	"github.com/umalmyha/fleetcases/internal/model"
	"github.com/umalmyha/fleetcases/internal/repository"
)

// InboxLimit is the maximum number of notifications returned for customer
const InboxLimit = 100

// NotificationService serves customer inbox
type NotificationService interface {
	List(context.Context, string) ([]*model.NotificationView, error)
	MarkRead(context.Context, string) (*model.Notification, error)
	MarkAllRead(context.Context, string) (*model.MarkAllReadResult, error)
}

type notificationService struct {
	customerRps     repository.CustomerRepository
	notificationRps repository.NotificationRepository
}

// NewNotificationService builds new NotificationService
func NewNotificationService(
	customerRps repository.CustomerRepository,
	notificationRps repository.NotificationRepository,
) NotificationService {
	return &notificationService{customerRps: customerRps, notificationRps: notificationRps}
}

func (s *notificationService) List(ctx context.Context, customerID string) ([]*model.NotificationView, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, apperrors.NewValidationErr("customerId", "customerId is required")
	}

	customer, err := s.customerRps.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return []*model.NotificationView{}, nil
	}
	return s.notificationRps.FindViewsByCustomer(ctx, customer.ID, InboxLimit)
}

// MarkRead is idempotent, already read notification is returned as is
func (s *notificationService) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	notificationID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	n, err := s.notificationRps.MarkRead(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if n == nil {
		return nil, apperrors.NewEntryNotFoundErr("Notification not found")
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, customerID string) (*model.MarkAllReadResult, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, apperrors.NewValidationErr("customerId", "customerId is required")
	}

	customer, err := s.customerRps.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, apperrors.NewEntryNotFoundErr("Customer not found")
	}

	modified, err := s.notificationRps.MarkAllRead(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	return &model.MarkAllReadResult{Success: true, Modified: modified}, nil
}
