// Package validate holds the credential predicates consumed by the auth
// flow. Both are pure and side-effect free.
package validate

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 5

var v = validator.New()

func IsValidEmail(s string) bool {
	return v.Var(s, "required,email") == nil
}

// IsValidPassword accepts any password of at least five characters. There
// are deliberately no complexity rules beyond length.
func IsValidPassword(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLength
}
