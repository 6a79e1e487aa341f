package validation

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/pkg/utils"
)

const (
	MsgUsernameTooShort = "username must be at least 3 characters"
	MsgUsernameTooLong  = "username cannot exceed 50 characters"
	MsgUsernameCharset  = "username can only contain lowercase letters, digits and underscores"
	MsgPseudoTooShort   = "pseudo must be at least 3 characters"
	MsgPseudoTooLong    = "pseudo cannot exceed 25 characters"
	MsgPseudoCharset    = "pseudo can only contain letters, digits and @ ! _ . -"
	MsgEmailInvalid     = "email is not valid"
	MsgEmailFormat      = "email must be valid (e.g. example@gaming.com)"
	MsgCountry          = "your country is not supported yet"
	MsgBirthDateFormat  = "birth date must be a date formatted as YYYY-MM-DD"
	MsgBirthDateFuture  = "birth date cannot be in the future"
	MsgBirthDateTooOld  = "birth date cannot be more than 120 years ago"
	MsgPhoneInvalid     = "invalid phone number"

	MsgPasswordRequired = "password is required"
	MsgPasswordTooShort = "password must contain at least 8 characters"
	MsgPasswordUpper    = "password must contain at least one uppercase letter"
	MsgPasswordDigit    = "password must contain at least one digit"
	MsgPasswordSpecial  = "password must contain at least one special character (e.g. !@#$%^&*)"
	MsgPasswordReused   = "you have already used this password before!"

	MsgUsernameTaken = "this username is already taken"
	MsgEmailTaken    = "this email is already taken"
	MsgPseudoTaken   = "this pseudo is already taken"
)

// MaxAge bounds how far in the past a birth date may lie.
const MaxAge = 120

var userMessages = messageTable{
	"name.min":           MsgUsernameTooShort,
	"name.max":           MsgUsernameTooLong,
	"name.username":      MsgUsernameCharset,
	"pseudo.min":         MsgPseudoTooShort,
	"pseudo.max":         MsgPseudoTooLong,
	"pseudo.pseudo":      MsgPseudoCharset,
	"email.required":     MsgEmailInvalid,
	"email.email":        MsgEmailInvalid,
	"email.emailformat":  MsgEmailFormat,
	"country.country":    MsgCountry,
	"birthDate.required": MsgBirthDateFormat,
	"birthDate.datetime": MsgBirthDateFormat,
	"numTel.required":    MsgPhoneInvalid,
}

var phoneRegex = regexp.MustCompile(`^\+\d+$`)

// UserLookup is the read side of the user store the uniqueness checks need.
// Each method returns nil, nil when no user matches.
type UserLookup interface {
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByPseudo(ctx context.Context, pseudo string) (*models.User, error)
}

// UserValidator validates user records. Unlike the other validators it is not
// pure: it queries the store for name, email and pseudo uniqueness and for a
// reused password.
type UserValidator struct {
	users UserLookup
	now   func() time.Time
}

func NewUserValidator(users UserLookup) *UserValidator {
	return &UserValidator{users: users, now: time.Now}
}

// WithClock replaces the clock used for the birth date range.
func (v *UserValidator) WithClock(now func() time.Time) *UserValidator {
	v.now = now
	return v
}

// Validate checks in and returns the normalized user without its password hash.
// selfID is the id of the user being updated, 0 on registration; rows with that
// id do not count as duplicates. A password is required when requirePassword
// is set, otherwise an empty password means "unchanged".
//
// Shape violations and uniqueness violations are reported together in one
// *apperror.ValidationError. Lookup failures are returned as store errors.
func (v *UserValidator) Validate(ctx context.Context, in models.UserInput, selfID uint, requirePassword bool) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Pseudo = strings.TrimSpace(in.Pseudo)
	in.Email = strings.TrimSpace(in.Email)
	in.NumTel = strings.TrimSpace(in.NumTel)

	msgs := check(in, userMessages)

	birthDate, birthMsgs := v.birthDate(in.BirthDate)
	msgs = append(msgs, birthMsgs...)
	msgs = append(msgs, phoneMessages(models.Country(in.Country), in.NumTel)...)

	switch {
	case in.Password != "":
		msgs = append(msgs, PasswordPolicy(in.Password)...)
	case requirePassword:
		msgs = append(msgs, MsgPasswordRequired)
	}

	taken, err := v.uniqueness(ctx, in, selfID)
	if err != nil {
		return nil, err
	}
	msgs = append(msgs, taken...)

	if err := apperror.NewValidation(msgs...); err != nil {
		return nil, err
	}

	return &models.User{
		ID:        selfID,
		Name:      in.Name,
		Pseudo:    in.Pseudo,
		Email:     in.Email,
		Country:   models.Country(in.Country),
		BirthDate: birthDate,
		NumTel:    in.NumTel,
	}, nil
}

// uniqueness runs the three lookups concurrently and reports taken values and
// a reused password.
func (v *UserValidator) uniqueness(ctx context.Context, in models.UserInput, selfID uint) ([]string, error) {
	var byName, byEmail, byPseudo *models.User

	g, gctx := errgroup.WithContext(ctx)
	if in.Name != "" {
		g.Go(func() (err error) {
			byName, err = v.users.FindUserByName(gctx, in.Name)
			return err
		})
	}
	if in.Email != "" {
		g.Go(func() (err error) {
			byEmail, err = v.users.FindUserByEmail(gctx, in.Email)
			return err
		})
	}
	if in.Pseudo != "" {
		g.Go(func() (err error) {
			byPseudo, err = v.users.FindUserByPseudo(gctx, in.Pseudo)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.Store("user uniqueness lookup", err)
	}

	var msgs []string
	if byName != nil && byName.ID != selfID {
		msgs = append(msgs, MsgUsernameTaken)
	}
	if byEmail != nil && byEmail.ID != selfID {
		msgs = append(msgs, MsgEmailTaken)
	}
	if byPseudo != nil && byPseudo.ID != selfID {
		msgs = append(msgs, MsgPseudoTaken)
	}
	if byEmail != nil && in.Password != "" && utils.VerifyPassword(in.Password, byEmail.PasswordHash) {
		msgs = append(msgs, MsgPasswordReused)
	}
	return msgs, nil
}

func (v *UserValidator) birthDate(raw string) (time.Time, []string) {
	if raw == "" {
		// Already reported by the struct check.
		return time.Time{}, nil
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, nil
	}
	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case date.After(today):
		return date, []string{MsgBirthDateFuture}
	case date.Before(today.AddDate(-MaxAge, 0, 0)):
		return date, []string{MsgBirthDateTooOld}
	}
	return date, nil
}

// phoneMessages checks that numTel is the country's calling code followed by
// 7 to 13 digits. Unsupported countries are reported by the struct check.
func phoneMessages(country models.Country, numTel string) []string {
	prefix, ok := models.CallingCodes[country]
	if !ok || numTel == "" {
		return nil
	}
	if !phoneRegex.MatchString(numTel) || !strings.HasPrefix(numTel, prefix) {
		return []string{MsgPhoneInvalid}
	}
	if n := len(numTel) - len(prefix); n < 7 || n > 13 {
		return []string{MsgPhoneInvalid}
	}
	return nil
}

// PasswordPolicy returns one message per complexity rule password breaks.
func PasswordPolicy(password string) []string {
	var msgs []string
	if len([]rune(password)) < 8 {
		msgs = append(msgs, MsgPasswordTooShort)
	}
	var upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r < 'a' || r > 'z':
			special = true
		}
	}
	if !upper {
		msgs = append(msgs, MsgPasswordUpper)
	}
	if !digit {
		msgs = append(msgs, MsgPasswordDigit)
	}
	if !special {
		msgs = append(msgs, MsgPasswordSpecial)
	}
	return msgs
}
