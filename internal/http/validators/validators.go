package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// Struct runs the validate tags on a bound request and turns the first
// failure into a 400 the client can read.
func Struct(r any) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return echo.NewHTTPError(
			http.StatusBadRequest,
			"invalid field "+fe.Field()+": failed on "+fe.Tag(),
		)
	}

	return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
}
