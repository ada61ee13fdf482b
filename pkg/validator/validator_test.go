package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	f := NewForm()
	assert.True(t, f.Require("name", "Ada"))
	assert.False(t, f.Require("email", "   "))
	assert.False(t, f.Valid())
	assert.Equal(t, "is required", f.Errors()["email"])
}

func TestEmail(t *testing.T) {
	f := NewForm()
	assert.True(t, f.Email("email", "ada@example.com"))
	assert.True(t, f.Email("email2", "a.b+tag@sub.domain.co"))

	g := NewForm()
	assert.False(t, g.Email("email", "nope"))
	assert.False(t, g.Email("email2", "missing@tld"))
	assert.False(t, g.Email("email3", "@example.com"))
}

func TestPhone(t *testing.T) {
	f := NewForm()
	assert.True(t, f.Phone("phone", "+1 555 010 9999"))
	assert.True(t, f.Phone("phone2", "020 7946-0958"))
	assert.True(t, f.Phone("phone3", "5550100"))

	g := NewForm()
	assert.False(t, g.Phone("phone", "not a number"))
	assert.False(t, g.Phone("phone2", "12345"))
	assert.False(t, g.Phone("phone3", "(555) 0100")) // must start with a digit
}

func TestFirstFailurePerFieldWins(t *testing.T) {
	f := NewForm()
	f.Require("email", "")
	f.Email("email", "")

	assert.Equal(t, "is required", f.Errors()["email"])
	assert.Equal(t, "email", f.First())
}

func TestValidFormHasNilErrors(t *testing.T) {
	f := NewForm()
	f.Require("name", "Ada")

	assert.True(t, f.Valid())
	assert.Nil(t, f.Errors())
	assert.Equal(t, "", f.First())
}
