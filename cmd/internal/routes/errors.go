package routes

import (
	"catering/cmd/internal/utils/apierror"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ErrorHandler renders errors raised by echo itself (unknown route, wrong
// method, panics caught by Recover) in the same envelope the handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		}
	} else {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, apierror.NewSimple(code, message))
	}
	if err != nil {
		log.Errorf("failed to write error response: %v", err)
	}
}
