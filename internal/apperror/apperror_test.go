package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"
	jujuerrors "github.com/juju/errors"
)

func TestHTTPStatus(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("name is required"), http.StatusBadRequest},
		{"bad id", BadID("abc"), http.StatusBadRequest},
		{"not found", NotFound("group", 4), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", NotFound("group", 4)), http.StatusNotFound},
		{"conflict", Conflict("email already used", errors.New("duplicate")), http.StatusConflict},
		{"store", Store("create group", errors.New("connection reset")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			c.Assert(HTTPStatus(test.err), qt.Equals, test.want)
		})
	}
}

func TestNewValidationWithoutMessagesIsNil(t *testing.T) {
	qt.Assert(t, NewValidation(), qt.IsNil)
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	c := qt.New(t)

	err := NewValidation("too short", "bad charset")
	c.Assert(err, qt.ErrorMatches, "too short, bad charset")
	c.Assert(Messages(err), qt.DeepEquals, []string{"too short", "bad charset"})
}

func TestKindsMatchJujuSentinels(t *testing.T) {
	c := qt.New(t)

	c.Assert(errors.Is(NewValidation("x"), jujuerrors.NotValid), qt.IsTrue)
	c.Assert(errors.Is(NotFound("user", 1), jujuerrors.NotFound), qt.IsTrue)
	c.Assert(errors.Is(Conflict("dup", nil), jujuerrors.AlreadyExists), qt.IsTrue)
	c.Assert(errors.Is(Store("op", errors.New("x")), jujuerrors.NotFound), qt.IsFalse)
}

func TestStoreMessagesHideCause(t *testing.T) {
	err := Store("delete group", errors.New("pq: connection refused"))
	qt.Assert(t, Messages(err), qt.DeepEquals, []string{"internal server error"})
}

func TestNotFoundMessage(t *testing.T) {
	var nf *NotFoundError
	err := NotFound("group", 12)
	qt.Assert(t, errors.As(err, &nf), qt.IsTrue)
	qt.Assert(t, nf.ID, qt.Equals, uint(12))
	qt.Assert(t, err, qt.ErrorMatches, "group 12 not found")
}

func TestLabel(t *testing.T) {
	c := qt.New(t)

	c.Assert(Label(NewValidation("x")), qt.Equals, "invalid")
	c.Assert(Label(BadID("x")), qt.Equals, "bad-id")
	c.Assert(Label(jujuerrors.Annotatef(NotFound("group", 3), "update group %d", 3)), qt.Equals, "not-found")
	c.Assert(Label(Conflict("dup", nil)), qt.Equals, "conflict")
	c.Assert(Label(Store("op", errors.New("x"))), qt.Equals, "store")
	c.Assert(Label(errors.New("x")), qt.Equals, "")
}
