package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/umalmyha/fleetcases/internal/errors"
	"github.com/umalmyha/fleetcases/internal/events"
	"github.com/umalmyha/fleetcases/internal/model"
	"github.com/umalmyha/fleetcases/internal/repository"
	"github.com/umalmyha/fleetcases/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewCase is input for case creation
type NewCase struct {
	CaseID       int64
	CustomerID   string
	CaseTypeCode string
	SupplierID   *string
}

// CaseQuery holds optional case listing filters as they come from the client
type CaseQuery struct {
	CustomerID   string
	CaseTypeCode string
	StatusCode   string
}

// CaseService drives case lifecycle, every mutation records timeline event and customer notification
type CaseService interface {
	List(context.Context, CaseQuery) ([]*model.CaseView, error)
	Get(context.Context, string) (*model.CaseDetail, error)
	Create(context.Context, NewCase) (*model.CaseView, error)
	ChangeStatus(context.Context, string, int) (*model.CaseView, error)
	ChangeSupplier(context.Context, string, string) (*model.CaseView, error)
	Delete(context.Context, string) (*model.CaseDeletion, error)
}

// CaseRepositories groups storage the case service writes to
type CaseRepositories struct {
	Customers     repository.CustomerRepository
	Suppliers     repository.SupplierRepository
	Cases         repository.CaseRepository
	Events        repository.CaseEventRepository
	Surveys       repository.SurveyRepository
	Notifications repository.NotificationRepository
}

type caseService struct {
	rps        CaseRepositories
	lookupSvc  LookupService
	tx         transactor.Transactor
	policy     TransitionPolicy
	publisher  events.Publisher
	timeSource func() time.Time
}

// NewCaseService builds new CaseService
func NewCaseService(
	rps CaseRepositories,
	lookupSvc LookupService,
	tx transactor.Transactor,
	policy TransitionPolicy,
	publisher events.Publisher,
) CaseService {
	return &caseService{
		rps:        rps,
		lookupSvc:  lookupSvc,
		tx:         tx,
		policy:     policy,
		publisher:  publisher,
		timeSource: func() time.Time { return time.Now().UTC() },
	}
}

func (s *caseService) List(ctx context.Context, q CaseQuery) ([]*model.CaseView, error) {
	var filter repository.CaseFilter

	if customerID := strings.TrimSpace(q.CustomerID); customerID != "" {
		customer, err := s.rps.Customers.FindByCustomerID(ctx, customerID)
		if err != nil {
			return nil, err
		}

		if customer == nil {
			return []*model.CaseView{}, nil
		}
		filter.Customer = &customer.ID
	}

	if q.CaseTypeCode != "" {
		ct, err := s.lookupSvc.CaseTypeByCode(ctx, q.CaseTypeCode)
		if err != nil {
			return nil, err
		}

		if ct != nil {
			filter.CaseType = &ct.ID
		}
	}

	if q.StatusCode != "" {
		code, err := strconv.Atoi(q.StatusCode)
		if err != nil {
			return nil, apperrors.NewInvalidReferenceErr("statusCode", "Invalid statusCode")
		}

		sc, err := s.lookupSvc.StatusCodeByCode(ctx, code)
		if err != nil {
			return nil, err
		}

		if sc != nil {
			filter.LastState = &sc.ID
		}
	}

	return s.rps.Cases.FindViews(ctx, filter)
}

func (s *caseService) Get(ctx context.Context, id string) (*model.CaseDetail, error) {
	caseID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	view, err := s.rps.Cases.FindViewByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if view == nil {
		return nil, apperrors.NewEntryNotFoundErr("Case not found")
	}

	timeline, err := s.rps.Events.FindViewsByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	survey, err := s.rps.Surveys.FindByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	return &model.CaseDetail{Case: view, Timeline: timeline, Survey: survey}, nil
}

func (s *caseService) Create(ctx context.Context, nc NewCase) (*model.CaseView, error) {
	customerID := strings.TrimSpace(nc.CustomerID)
	if nc.CaseID <= 0 || customerID == "" || nc.CaseTypeCode == "" {
		return nil, apperrors.NewValidationErr("caseId", "caseId, customerId, caseTypeCode are required")
	}

	ct, err := s.lookupSvc.CaseTypeByCode(ctx, nc.CaseTypeCode)
	if err != nil {
		return nil, err
	}

	if ct == nil {
		return nil, apperrors.NewInvalidReferenceErr("caseTypeCode", "Invalid caseTypeCode")
	}

	open, err := s.lookupSvc.StatusCodeByCode(ctx, model.StatusCodeOpen)
	if err != nil {
		return nil, err
	}

	if open == nil {
		return nil, fmt.Errorf("open status %d is not seeded", model.StatusCodeOpen)
	}

	now := s.timeSource()
	var view *model.CaseView

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		customer, err := s.rps.Customers.Ensure(ctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to resolve customer %s - %w", customerID, err)
		}

		c := &model.Case{
			CaseID:     nc.CaseID,
			Customer:   customer.ID,
			CaseType:   ct.ID,
			CreateDate: now,
			LastState:  open.ID,
		}

		if nc.SupplierID != nil {
			if supplierID := strings.TrimSpace(*nc.SupplierID); supplierID != "" {
				supplier, err := s.rps.Suppliers.Upsert(ctx, supplierID)
				if err != nil {
					return fmt.Errorf("failed to resolve supplier %s - %w", supplierID, err)
				}
				c.Supplier = &supplier.ID
			}
		}

		if err := s.rps.Cases.Create(ctx, c); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return apperrors.NewDuplicateKeyErr("caseId", fmt.Sprintf("Case #%d already exists", nc.CaseID))
			}
			return fmt.Errorf("failed to create case #%d - %w", nc.CaseID, err)
		}

		if err := s.record(ctx, c, &model.CaseEvent{
			Type:     model.EventStatusChanged,
			ToStatus: &open.ID,
		}, fmt.Sprintf("Case #%d created", c.CaseID), now); err != nil {
			return err
		}

		view, err = s.rps.Cases.FindViewByID(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.CaseCreated, view, fmt.Sprintf("Case #%d created", view.CaseID), now)
	return view, nil
}

func (s *caseService) ChangeStatus(ctx context.Context, id string, statusCode int) (*model.CaseView, error) {
	caseID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	c, err := s.rps.Cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr("Case not found")
	}

	next, err := s.lookupSvc.StatusCodeByCode(ctx, statusCode)
	if err != nil {
		return nil, err
	}

	if next == nil {
		return nil, apperrors.NewInvalidReferenceErr("statusCode", "Invalid statusCode")
	}

	prev, err := s.lookupSvc.StatusCodeByID(ctx, c.LastState)
	if err != nil {
		return nil, err
	}

	var prevCode int
	if prev != nil {
		prevCode = prev.Code
	}

	if !s.policy.Allowed(prevCode, next.Code) {
		return nil, apperrors.NewBusinessErr("statusCode", fmt.Sprintf("status transition %d -> %d is not allowed", prevCode, next.Code))
	}

	now := s.timeSource()
	from := c.LastState
	msg := fmt.Sprintf("Case #%d status changed to %s", c.CaseID, next.Name)
	var view *model.CaseView

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var completionDate *time.Time
		if next.IsTerminal {
			completionDate = &now
		}

		if err := s.rps.Cases.SetState(ctx, c.ID, next.ID, completionDate); err != nil {
			return fmt.Errorf("failed to update case #%d - %w", c.CaseID, err)
		}

		if err := s.record(ctx, c, &model.CaseEvent{
			Type:       model.EventStatusChanged,
			FromStatus: &from,
			ToStatus:   &next.ID,
		}, msg, now); err != nil {
			return err
		}

		view, err = s.rps.Cases.FindViewByID(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.CaseStatusChanged, view, msg, now)
	return view, nil
}

func (s *caseService) ChangeSupplier(ctx context.Context, id string, supplierID string) (*model.CaseView, error) {
	caseID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return nil, apperrors.NewValidationErr("supplierId", "supplierId is required")
	}

	c, err := s.rps.Cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr("Case not found")
	}

	now := s.timeSource()
	note := fmt.Sprintf("Supplier changed to %s", supplierID)
	msg := fmt.Sprintf("Case #%d supplier changed", c.CaseID)
	var view *model.CaseView

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		supplier, err := s.rps.Suppliers.Upsert(ctx, supplierID)
		if err != nil {
			return fmt.Errorf("failed to resolve supplier %s - %w", supplierID, err)
		}

		if err := s.rps.Cases.SetSupplier(ctx, c.ID, supplier.ID); err != nil {
			return fmt.Errorf("failed to update case #%d - %w", c.CaseID, err)
		}

		if err := s.record(ctx, c, &model.CaseEvent{
			Type: model.EventServiceChanged,
			Note: &note,
		}, msg, now); err != nil {
			return err
		}

		view, err = s.rps.Cases.FindViewByID(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.CaseSupplierChanged, view, msg, now)
	return view, nil
}

func (s *caseService) Delete(ctx context.Context, id string) (*model.CaseDeletion, error) {
	caseID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	view, err := s.rps.Cases.FindViewByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if view == nil {
		return nil, apperrors.NewEntryNotFoundErr("Case not found")
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.rps.Surveys.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("failed to delete surveys of case #%d - %w", view.CaseID, err)
		}

		if _, err := s.rps.Notifications.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("failed to delete notifications of case #%d - %w", view.CaseID, err)
		}

		if _, err := s.rps.Events.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("failed to delete timeline of case #%d - %w", view.CaseID, err)
		}

		if err := s.rps.Cases.DeleteByID(ctx, caseID); err != nil {
			return fmt.Errorf("failed to delete case #%d - %w", view.CaseID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Case #%d and all related data deleted successfully", view.CaseID)
	s.publish(ctx, events.CaseDeleted, view, msg, s.timeSource())

	return &model.CaseDeletion{Success: true, Message: msg}, nil
}

// record appends timeline event and customer notification for already persisted case state
func (s *caseService) record(ctx context.Context, c *model.Case, e *model.CaseEvent, msg string, at time.Time) error {
	e.Case = c.ID
	e.CreatedAt = at
	if err := s.rps.Events.Create(ctx, e); err != nil {
		return fmt.Errorf("failed to append timeline event of case #%d - %w", c.CaseID, err)
	}

	n := &model.Notification{
		Case:      c.ID,
		Customer:  c.Customer,
		Message:   msg,
		CreatedAt: at,
	}
	if err := s.rps.Notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to notify customer about case #%d - %w", c.CaseID, err)
	}
	return nil
}

func (s *caseService) publish(ctx context.Context, eventType string, view *model.CaseView, msg string, at time.Time) {
	if view == nil {
		return
	}

	statusCode := view.LastState.Code
	e := events.Event{
		Type:       eventType,
		CaseID:     view.CaseID,
		CustomerID: view.Customer.CustomerID,
		Message:    msg,
		StatusCode: &statusCode,
		CreatedAt:  at,
	}

	if view.Supplier != nil {
		e.SupplierID = &view.Supplier.SupplierID
	}
	s.publisher.Publish(ctx, e)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidReferenceErr("id", "Invalid id")
	}
	return oid, nil
}
