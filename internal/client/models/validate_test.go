package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.True(t, ValidEmail("first.last+tag@mail.example.com"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.d"))
	assert.False(t, ValidEmail("@b.co"))
}

func TestValidPassword(t *testing.T) {
	assert.False(t, ValidPassword("12345"))
	assert.True(t, ValidPassword("123456"))
}

func TestValidPhone(t *testing.T) {
	for _, p := range []string{"0123456789", "+601-234-5678", "(012) 345 6789", "012.345.678901"} {
		assert.True(t, ValidPhone(p), p)
	}
	for _, p := range []string{"", "12345", "012-345-678", "phone", "0123456789012"} {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestRequiredAndPositiveNumber(t *testing.T) {
	assert.False(t, Required(" \t"))
	assert.True(t, Required("x"))

	assert.True(t, PositiveNumber("1.5"))
	assert.False(t, PositiveNumber("0"))
	assert.False(t, PositiveNumber("-3"))
	assert.False(t, PositiveNumber("abc"))
}

func TestRegisterDataValidate(t *testing.T) {
	ok := RegisterData{Name: "Ana", Email: "ana@example.com", Password: "secret1"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Password = "short"
	assert.ErrorIs(t, bad.Validate(), ErrValidation)
	assert.ErrorContains(t, bad.Validate(), "at least 6 characters")

	bad = ok
	bad.Phone = "nope"
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	bad = ok
	bad.Name = ""
	assert.ErrorIs(t, bad.Validate(), ErrValidation)
}

func TestLoginCredentialsValidate(t *testing.T) {
	assert.NoError(t, LoginCredentials{Email: "a@b.co", Password: "x"}.Validate())
	assert.ErrorIs(t, LoginCredentials{Email: "a@b", Password: "x"}.Validate(), ErrValidation)
	assert.ErrorIs(t, LoginCredentials{Email: "a@b.co"}.Validate(), ErrValidation)
}
