package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/fleetcases/internal/errors"
	"github.com/umalmyha/fleetcases/internal/validation"
)

const internalErrorMessage = "Internal server error"

type errorBody struct {
	Error string `json:"error"`
}

// errorStatus maps application error to http status code and message shown to client
func errorStatus(err error) (int, string) {
	var (
		validationErr *apperrors.ValidationErr
		invalidRefErr *apperrors.InvalidReferenceErr
		notFoundErr   *apperrors.EntryNotFoundErr
		duplicateErr  *apperrors.DuplicateKeyErr
		businessErr   *apperrors.BusinessErr
		echoErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &invalidRefErr):
		return http.StatusBadRequest, invalidRefErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &duplicateErr):
		return http.StatusConflict, duplicateErr.Error()
	case errors.As(err, &businessErr):
		return http.StatusConflict, businessErr.Error()
	case errors.As(err, &echoErr):
		if echoErr.Code >= http.StatusInternalServerError {
			return echoErr.Code, internalErrorMessage
		}

		if msg, ok := echoErr.Message.(string); ok {
			return echoErr.Code, msg
		}
		return echoErr.Code, http.StatusText(echoErr.Code)
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// HTTPErrorHandler renders every error as {"error": message}, payload errors also carry field violations
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status int
		body   any
	)

	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		status, body = http.StatusBadRequest, pldErr
	} else {
		var msg string
		status, msg = errorStatus(err)
		body = &errorBody{Error: msg}
	}

	entry := logrus.WithFields(logrus.Fields{
		"method":    c.Request().Method,
		"path":      c.Path(),
		"status":    status,
		"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
	})
	if status >= http.StatusInternalServerError {
		entry.Errorf("error occurred on http request processing - %v", err)
	} else {
		entry.Debugf("request rejected - %v", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}

	if writeErr != nil {
		logrus.Errorf("failed to write error response - %v", writeErr)
	}
}
