package validate

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// letters and spaces only, and not blank once trimmed
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return nameRe.MatchString(s) && strings.TrimSpace(s) != ""
	})
	// publication dates must not be in the future
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(interface{ After(u time.Time) bool })
		if !ok {
			return false
		}
		return !t.After(time.Now())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
