package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/fleetcases/internal/service"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type newCase struct {
	CaseID       int64   `json:"caseId" validate:"required,gt=0"`
	CustomerID   string  `json:"customerId" validate:"required"`
	CaseTypeCode string  `json:"caseTypeCode" validate:"required"`
	SupplierID   *string `json:"supplierId"`
}

type statusChange struct {
	ID         string `param:"id"`
	StatusCode *int   `json:"statusCode" validate:"required"`
}

type supplierChange struct {
	ID         string `param:"id"`
	SupplierID string `json:"supplierId" validate:"required"`
}

type newSurvey struct {
	ID      string  `param:"id"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type caseFilter struct {
	CustomerID   string `query:"customerId"`
	CaseTypeCode string `query:"caseTypeCode"`
	StatusCode   string `query:"statusCode"`
}

// CaseHTTPHandler is http handler for cases endpoint
type CaseHTTPHandler struct {
	caseSvc   service.CaseService
	surveySvc service.SurveyService
}

// NewCaseHTTPHandler builds new CaseHTTPHandler
func NewCaseHTTPHandler(caseSvc service.CaseService, surveySvc service.SurveyService) *CaseHTTPHandler {
	return &CaseHTTPHandler{caseSvc: caseSvc, surveySvc: surveySvc}
}

// GetAll lists cases
// @Summary     List cases
// @Description Returns cases newest first with references expanded, filters are optional
// @Tags        cases
// @Produce     json
// @Param       customerId   query    string  false "Customer business key"
// @Param       caseTypeCode query    string  false "Case type code"
// @Param       statusCode   query    integer false "Status code"
// @Success     200          {array}  model.CaseView
// @Failure     400          {object} errorResponse
// @Failure     500          {object} errorResponse
// @Router      /api/cases [get]
func (h *CaseHTTPHandler) GetAll(c echo.Context) error {
	var f caseFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cases, err := h.caseSvc.List(c.Request().Context(), service.CaseQuery{
		CustomerID:   f.CustomerID,
		CaseTypeCode: f.CaseTypeCode,
		StatusCode:   f.StatusCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Get gets case details
// @Summary     Case details
// @Description Returns case with its timeline and survey
// @Tags        cases
// @Produce     json
// @Param       id  path     string true "Case object id"
// @Success     200 {object} model.CaseDetail
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     500 {object} errorResponse
// @Router      /api/cases/{id} [get]
func (h *CaseHTTPHandler) Get(c echo.Context) error {
	detail, err := h.caseSvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Post creates new case
// @Summary     New case
// @Description Creates case in open status, records timeline event and notifies customer
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       newCase body     newCase true "Data for new case"
// @Success     201     {object} model.CaseView
// @Failure     400     {object} errorResponse
// @Failure     409     {object} errorResponse
// @Failure     500     {object} errorResponse
// @Router      /api/cases [post]
func (h *CaseHTTPHandler) Post(c echo.Context) error {
	var nc newCase
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	view, err := h.caseSvc.Create(c.Request().Context(), service.NewCase{
		CaseID:       nc.CaseID,
		CustomerID:   nc.CustomerID,
		CaseTypeCode: nc.CaseTypeCode,
		SupplierID:   nc.SupplierID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// PutStatus changes case status
// @Summary     Change case status
// @Description Moves case to provided status, terminal status completes the case
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       id           path     string       true "Case object id"
// @Param       statusChange body     statusChange true "Target status code"
// @Success     200          {object} model.CaseView
// @Failure     400          {object} errorResponse
// @Failure     404          {object} errorResponse
// @Failure     409          {object} errorResponse
// @Failure     500          {object} errorResponse
// @Router      /api/cases/{id}/status [put]
func (h *CaseHTTPHandler) PutStatus(c echo.Context) error {
	var sc statusChange
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&sc); err != nil {
		return err
	}

	view, err := h.caseSvc.ChangeStatus(c.Request().Context(), sc.ID, *sc.StatusCode)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// PutSupplier reassigns case supplier
// @Summary     Change case supplier
// @Description Assigns supplier to case, supplier is created on first reference
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       id             path     string         true "Case object id"
// @Param       supplierChange body     supplierChange true "Supplier business key"
// @Success     200            {object} model.CaseView
// @Failure     400            {object} errorResponse
// @Failure     404            {object} errorResponse
// @Failure     500            {object} errorResponse
// @Router      /api/cases/{id}/supplier [put]
func (h *CaseHTTPHandler) PutSupplier(c echo.Context) error {
	var sc supplierChange
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&sc); err != nil {
		return err
	}

	view, err := h.caseSvc.ChangeSupplier(c.Request().Context(), sc.ID, sc.SupplierID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// PostSurvey submits case survey
// @Summary     Submit survey
// @Description Creates case survey or replaces the existing one
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       id        path     string    true "Case object id"
// @Param       newSurvey body     newSurvey true "Rating and comment"
// @Success     200       {object} model.Survey
// @Failure     400       {object} errorResponse
// @Failure     404       {object} errorResponse
// @Failure     500       {object} errorResponse
// @Router      /api/cases/{id}/survey [post]
func (h *CaseHTTPHandler) PostSurvey(c echo.Context) error {
	var ns newSurvey
	if err := c.Bind(&ns); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ns); err != nil {
		return err
	}

	survey, err := h.surveySvc.Submit(c.Request().Context(), ns.ID, ns.Rating, ns.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, survey)
}

// DeleteByID deletes case with all related data
// @Summary     Delete case
// @Description Deletes case together with its timeline, survey and notifications
// @Tags        cases
// @Produce     json
// @Param       id  path     string true "Case object id"
// @Success     200 {object} model.CaseDeletion
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     500 {object} errorResponse
// @Router      /api/cases/{id} [delete]
func (h *CaseHTTPHandler) DeleteByID(c echo.Context) error {
	res, err := h.caseSvc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// LookupHTTPHandler is http handler for lookups endpoint
type LookupHTTPHandler struct {
	lookupSvc service.LookupService
}

// NewLookupHTTPHandler builds new LookupHTTPHandler
func NewLookupHTTPHandler(lookupSvc service.LookupService) *LookupHTTPHandler {
	return &LookupHTTPHandler{lookupSvc: lookupSvc}
}

// CaseTypes lists case types
// @Summary     Case types
// @Tags        lookups
// @Produce     json
// @Success     200 {array}  model.CaseType
// @Failure     500 {object} errorResponse
// @Router      /api/lookups/case-types [get]
func (h *LookupHTTPHandler) CaseTypes(c echo.Context) error {
	caseTypes, err := h.lookupSvc.CaseTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caseTypes)
}

// StatusCodes lists status codes
// @Summary     Status codes
// @Tags        lookups
// @Produce     json
// @Success     200 {array}  model.StatusCode
// @Failure     500 {object} errorResponse
// @Router      /api/lookups/status-codes [get]
func (h *LookupHTTPHandler) StatusCodes(c echo.Context) error {
	statusCodes, err := h.lookupSvc.StatusCodes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusCodes)
}

// Seed seeds reference data
// @Summary     Seed lookups
// @Description Fills empty catalogs with default case types and status codes
// @Tags        lookups
// @Produce     json
// @Success     200 {object} model.SeedResult
// @Failure     500 {object} errorResponse
// @Router      /api/lookups/seed [post]
func (h *LookupHTTPHandler) Seed(c echo.Context) error {
	res, err := h.lookupSvc.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

type markAllRead struct {
	CustomerID string `json:"customerId" validate:"required"`
}

// NotificationHTTPHandler is http handler for notifications endpoint
type NotificationHTTPHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHTTPHandler builds new NotificationHTTPHandler
func NewNotificationHTTPHandler(notificationSvc service.NotificationService) *NotificationHTTPHandler {
	return &NotificationHTTPHandler{notificationSvc: notificationSvc}
}

// GetAll returns customer inbox
// @Summary     Customer notifications
// @Description Returns up to 100 newest notifications of the customer
// @Tags        notifications
// @Produce     json
// @Param       customerId query    string true "Customer business key"
// @Success     200        {array}  model.NotificationView
// @Failure     400        {object} errorResponse
// @Failure     500        {object} errorResponse
// @Router      /api/notifications [get]
func (h *NotificationHTTPHandler) GetAll(c echo.Context) error {
	notifications, err := h.notificationSvc.List(c.Request().Context(), c.QueryParam("customerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// PutRead marks notification read
// @Summary     Mark notification read
// @Tags        notifications
// @Produce     json
// @Param       id  path     string true "Notification object id"
// @Success     200 {object} model.Notification
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     500 {object} errorResponse
// @Router      /api/notifications/{id}/read [put]
func (h *NotificationHTTPHandler) PutRead(c echo.Context) error {
	n, err := h.notificationSvc.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// PutMarkAllRead marks all customer notifications read
// @Summary     Mark all notifications read
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       markAllRead body     markAllRead true "Customer business key"
// @Success     200         {object} model.MarkAllReadResult
// @Failure     400         {object} errorResponse
// @Failure     404         {object} errorResponse
// @Failure     500         {object} errorResponse
// @Router      /api/notifications/mark-all-read [put]
func (h *NotificationHTTPHandler) PutMarkAllRead(c echo.Context) error {
	var mar markAllRead
	if err := c.Bind(&mar); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&mar); err != nil {
		return err
	}

	res, err := h.notificationSvc.MarkAllRead(c.Request().Context(), mar.CustomerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// SurveyHTTPHandler is http handler for surveys endpoint
type SurveyHTTPHandler struct {
	surveySvc service.SurveyService
}

// NewSurveyHTTPHandler builds new SurveyHTTPHandler
func NewSurveyHTTPHandler(surveySvc service.SurveyService) *SurveyHTTPHandler {
	return &SurveyHTTPHandler{surveySvc: surveySvc}
}

// GetAll lists surveys
// @Summary     List surveys
// @Description Returns surveys newest first, optionally only for cases of one customer
// @Tags        surveys
// @Produce     json
// @Param       customerId query    string false "Customer business key"
// @Success     200        {array}  model.SurveyView
// @Failure     500        {object} errorResponse
// @Router      /api/surveys [get]
func (h *SurveyHTTPHandler) GetAll(c echo.Context) error {
	surveys, err := h.surveySvc.List(c.Request().Context(), c.QueryParam("customerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, surveys)
}

// Stats aggregates surveys
// @Summary     Survey statistics
// @Tags        surveys
// @Produce     json
// @Success     200 {object} model.SurveyStats
// @Failure     500 {object} errorResponse
// @Router      /api/surveys/stats [get]
func (h *SurveyHTTPHandler) Stats(c echo.Context) error {
	stats, err := h.surveySvc.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Pinger checks datasource availability
type Pinger interface {
	Ping(context.Context, *readpref.ReadPref) error
}

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HealthHTTPHandler is http handler for liveness and readiness probes
type HealthHTTPHandler struct {
	pinger Pinger
}

// NewHealthHTTPHandler builds new HealthHTTPHandler
func NewHealthHTTPHandler(pinger Pinger) *HealthHTTPHandler {
	return &HealthHTTPHandler{pinger: pinger}
}

// Root responds while server is alive
// @Summary     Liveness
// @Tags        health
// @Produce     json
// @Success     200 {object} okResponse
// @Router      / [get]
func (h *HealthHTTPHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, &okResponse{OK: true})
}

// Health checks mongodb
// @Summary     Readiness
// @Tags        health
// @Produce     json
// @Success     200 {object} okResponse
// @Failure     503 {object} errorResponse
// @Router      /health [get]
func (h *HealthHTTPHandler) Health(c echo.Context) error {
	if err := h.pinger.Ping(c.Request().Context(), readpref.Primary()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, &errorResponse{Error: "mongodb is not reachable"})
	}
	return c.JSON(http.StatusOK, &okResponse{OK: true})
}
