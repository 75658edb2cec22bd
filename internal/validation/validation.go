// Package validation holds the field rules shared by request handlers and
// registers them as go-playground/validator tags on gin's binding engine.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinBusinessIDLength = 6
	MinMaxRunningHrs    = 50
	MinPasswordLength   = 8
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	validate     = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// IsPhone reports whether s is exactly ten ASCII digits.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsBusinessID reports whether a factory or machine identifier is long enough.
func IsBusinessID(s string) bool {
	return utf8.RuneCountInString(s) >= MinBusinessIDLength
}

func IsValidMaxRunningHrs(hrs float64) bool {
	return hrs >= MinMaxRunningHrs
}

func IsNonNegative(n float64) bool {
	return n >= 0
}

// IsWholeNumber reports whether n has no fractional part.
func IsWholeNumber(n float64) bool {
	return n == math.Trunc(n)
}

func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsStrongPassword requires at least eight characters with one lowercase
// letter, one uppercase letter, one digit and one symbol.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Register adds the custom tags to v and makes errors report JSON field names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	rules := map[string]func(string) bool{
		"phone":          IsPhone,
		"strongpassword": IsStrongPassword,
		"businessid":     IsBusinessID,
	}
	for tag, fn := range rules {
		fn := fn
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("validation.Register %s: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the custom tags on gin's default validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation.RegisterWithGin: unexpected binding engine")
	}
	return Register(v)
}

// IsValidationError reports whether err came from a failed binding or validation tag.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// Message turns the first validator error into a user-facing sentence.
// Errors of any other kind yield the generic malformed-body message.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "All fields must be filled"
	case "email":
		return "Email is not valid"
	case "phone":
		return "Phone number is not valid"
	case "strongpassword":
		return "Password is not strong enough"
	case "businessid":
		return fmt.Sprintf("%s must include at least %d characters", fe.Field(), MinBusinessIDLength)
	case "min", "gte":
		return fmt.Sprintf("%s cannot be less than %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is not valid", fe.Field())
	}
}
