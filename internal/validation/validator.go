package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError holds every field violation found in request payload
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for i, err := range e.violations {
		if i > 0 {
			buff.WriteString("\n")
		}
		buff.WriteString(err.Message)
	}

	return buff.String()
}

func (e *PayloadError) Violation(v violation) {
	e.violations = append(e.violations, v)
}

// Fields returns names of invalid fields in order of detection
func (e *PayloadError) Fields() []string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Error  string      `json:"error"`
		Errors []violation `json:"errors"`
	}{
		Error:  e.Error(),
		Errors: e.violations,
	})
}

type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// NewEchoValidator builds validator reporting json field names with english messages
func NewEchoValidator() (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}
	return Echo(v, trans), nil
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
