package middleware

import (
	"employeedocs/cmd/internal/utils/apierror"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ErrorHandler renders the errors returned by echo itself (unknown routes,
// oversized bodies, recovered panics) with the same envelope as the API errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apierr apierror.ErrorResponse = apierror.InternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		apierr = apierror.NewStatus(he.Code, httpErrorMessage(he))
	} else {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(apierr.Code())
	} else {
		werr = c.JSON(apierr.Code(), apierr)
	}

	if werr != nil {
		log.Errorf("failed to write error response: %v", werr)
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return fmt.Sprint(he.Message)
}
