package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"pharmacy/internal/pkg/errs"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// Phone is a phone number reduced to its digits. WhatsApp delivers sender
// numbers without a leading "+", so both "+91 98450 12345" and
// "919845012345" normalize to the same value.
type Phone string

// NewPhone strips formatting characters and checks the E.164 digit count.
func NewPhone(raw string) (Phone, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return "", errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("unexpected character %q", r))
		}
	}

	digits := b.String()
	if digits == "" {
		return "", errs.NewValueIsRequiredError("phone")
	}
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", errs.NewValueIsOutOfRangeError("phone digits", len(digits), minPhoneDigits, maxPhoneDigits)
	}
	return Phone(digits), nil
}

func (p Phone) String() string {
	return string(p)
}
