package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/umalmyha/fleetcases/internal/errors"
	"github.com/umalmyha/fleetcases/internal/model"
	"github.com/umalmyha/fleetcases/internal/repository"
)

// SurveyService accepts satisfaction surveys and reports on them
type SurveyService interface {
	Submit(context.Context, string, int, *string) (*model.Survey, error)
	List(context.Context, string) ([]*model.SurveyView, error)
	Stats(context.Context) (*model.SurveyStats, error)
}

type surveyService struct {
	customerRps repository.CustomerRepository
	caseRps     repository.CaseRepository
	surveyRps   repository.SurveyRepository
}

// NewSurveyService builds new SurveyService
func NewSurveyService(
	customerRps repository.CustomerRepository,
	caseRps repository.CaseRepository,
	surveyRps repository.SurveyRepository,
) SurveyService {
	return &surveyService{customerRps: customerRps, caseRps: caseRps, surveyRps: surveyRps}
}

// Submit creates case survey or replaces existing one, case status is not checked
func (s *surveyService) Submit(ctx context.Context, id string, rating int, comment *string) (*model.Survey, error) {
	caseID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	if rating < model.MinRating || rating > model.MaxRating {
		return nil, apperrors.NewValidationErr("rating", fmt.Sprintf("rating must be between %d and %d", model.MinRating, model.MaxRating))
	}

	c, err := s.caseRps.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr("Case not found")
	}

	return s.surveyRps.Upsert(ctx, &model.Survey{
		Case:      c.ID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})
}

// List returns surveys newest first, surveys of all customers are returned if customer id is empty
func (s *surveyService) List(ctx context.Context, customerID string) ([]*model.SurveyView, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return s.surveyRps.FindViews(ctx, nil)
	}

	customer, err := s.customerRps.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return []*model.SurveyView{}, nil
	}

	cases, err := s.caseRps.FindIDsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	if len(cases) == 0 {
		return []*model.SurveyView{}, nil
	}
	return s.surveyRps.FindViews(ctx, cases)
}

func (s *surveyService) Stats(ctx context.Context) (*model.SurveyStats, error) {
	return s.surveyRps.Stats(ctx)
}
