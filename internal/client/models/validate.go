package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rentverse/internal/common"
)

// ErrValidation marks input rejected before it reaches the API.
var ErrValidation = common.ErrValidation

const MinPasswordLength = 6

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func ValidEmail(s string) bool { return emailRe.MatchString(s) }

func ValidPassword(s string) bool { return len(s) >= MinPasswordLength }

func ValidPhone(s string) bool { return phoneRe.MatchString(s) }

// Required reports whether s has any non-space content.
func Required(s string) bool { return strings.TrimSpace(s) != "" }

// PositiveNumber reports whether s parses as a number greater than zero.
func PositiveNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f > 0
}
