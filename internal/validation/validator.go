// Package validation checks the shape, format and range of incoming records
// and returns the normalized entity or an *apperror.ValidationError carrying
// every violated rule.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
	pseudoRegex   = regexp.MustCompile(`^[a-zA-Z0-9@!_.-]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so message tables read like the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "username", regexMatcher(usernameRegex))
	mustRegister(v, "pseudo", regexMatcher(pseudoRegex))
	mustRegister(v, "emailformat", regexMatcher(emailRegex))
	mustRegister(v, "country", func(fl validator.FieldLevel) bool {
		return models.Country(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func regexMatcher(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// messageTable maps "<json field>.<tag>" to the message reported for that failure.
type messageTable map[string]string

// check validates s and translates every failing field into its message.
// validator stops at the first failing tag of a field, so a field reports at
// most one message while all fields are reported.
func check(s any, table messageTable) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := table[fe.Field()+"."+fe.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return out
}
