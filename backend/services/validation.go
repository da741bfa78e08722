// ABOUTME: Input validation for wall configurations and advice requests
// ABOUTME: Wraps go-playground/validator and flattens its errors into readable messages

package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/markalston/ledwall-calc/backend/models"
)

var validate = validator.New()

// ValidationError describes the first invalid field of a request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateWallConfig checks grid bounds, angle range, and spare count
func ValidateWallConfig(cfg models.WallConfig) error {
	if math.IsNaN(cfg.CurveAngle) || math.IsInf(cfg.CurveAngle, 0) {
		return &ValidationError{Field: "curve_angle", Message: "must be a finite number"}
	}
	if err := validate.Struct(cfg); err != nil {
		return toValidationError(err)
	}
	return nil
}

// ValidateAdviceRequest checks the embedded configuration and the question
func ValidateAdviceRequest(req models.AdviceRequest) error {
	if err := ValidateWallConfig(req.Config); err != nil {
		return err
	}
	if strings.TrimSpace(req.Question) == "" {
		return &ValidationError{Field: "question", Message: "is required"}
	}
	if err := validate.Struct(req); err != nil {
		return toValidationError(err)
	}
	return nil
}

// SanitizeQuestion strips control characters and surrounding whitespace
func SanitizeQuestion(q string) string {
	return strings.TrimSpace(sanitizeForLog(q))
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &ValidationError{Field: jsonFieldName(fe.Field()), Message: describeTag(fe)}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value())
	case "max", "lte":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s (got %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

var jsonFieldNames = map[string]string{
	"Rows":       "rows",
	"Cols":       "cols",
	"CabinetID":  "cabinet_id",
	"CurveAngle": "curve_angle",
	"Spares":     "spares",
	"Question":   "question",
}

func jsonFieldName(field string) string {
	if name, ok := jsonFieldNames[field]; ok {
		return name
	}
	return field
}
