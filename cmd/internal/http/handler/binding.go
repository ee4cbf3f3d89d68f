package handler

import (
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/utils/apierror"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryTypes names the expected type of every non-string query parameter.
var queryTypes = map[string]string{
	"limit":      "int",
	"page":       "int",
	"after":      "int",
	"before":     "int",
	"employeeId": "int",
	"deleted":    "bool",
	"pending":    "bool",
}

func bindPage(b *echo.ValueBinder, p *contract.PageRequest) *echo.ValueBinder {
	return b.Int("limit", &p.Limit).
		Int("page", &p.Page).
		Int64("after", &p.After).
		Int64("before", &p.Before)
}

// bindingError converts an echo binding failure into the API error naming the
// offending parameter.
func bindingError(err error) apierror.ErrorResponse {
	var berr *echo.BindingError
	if !errors.As(err, &berr) {
		return apierror.MalformedBodyError
	}

	dataType, ok := queryTypes[berr.Field]
	if !ok {
		dataType = "string"
	}
	return apierror.NewInvalidParamTypeError(berr.Field, dataType)
}

func pathID(c echo.Context) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("id", "int")
	}
	return id, nil
}

// bindBody decodes the JSON body only. Path parameters are read by the caller.
func bindBody(c echo.Context, dst any) apierror.ErrorResponse {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return apierror.MalformedBodyError
	}
	return nil
}

func respondError(c echo.Context, apierr apierror.ErrorResponse) error {
	return c.JSON(apierr.Code(), apierr)
}

func respondOK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}
