package clientip

import (
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRealClientIP(t *testing.T) {
	c := qt.New(t)

	for remote, want := range map[string]string{
		"10.1.2.3:5432":    "10.1.2.3",
		"[2001:db8::1]:80": "2001:db8::1",
		"203.0.113.7":      "203.0.113.7",
		" 203.0.113.8 ":    "203.0.113.8",
	} {
		r := httptest.NewRequest("GET", "/users", nil)
		r.RemoteAddr = remote
		c.Check(RealClientIP(r), qt.Equals, want, qt.Commentf("remote %q", remote))
	}
}
