package service

import (
	"employeedocs/cmd/internal/utils"
	"employeedocs/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// validateRequest trims every string of req and runs the struct validations.
func validateRequest(validate *validator.Validate, req any) apierror.ErrorResponse {
	utils.Sanitize(req)

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if problems := apierror.FromValidationError(err); problems != nil {
		return problems
	}

	log.Errorf("failed to validate request: %v", err)
	return apierror.InternalServerError
}
