package merge

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const minPasswordLength = 8

var (
	onlyLettersPattern      = regexp.MustCompile(`^[A-Za-z]+$`)
	onlyNumbersPattern      = regexp.MustCompile(`^[0-9]+$`)
	lettersAndNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// PasswordWeakness names the first weakness found in password, or returns
// an empty string for an acceptable password.
func PasswordWeakness(password string) string {
	switch {
	case utf8.RuneCountInString(password) < minPasswordLength:
		return "Too short"
	case onlyLettersPattern.MatchString(password):
		return "Only letters"
	case onlyNumbersPattern.MatchString(password):
		return "Only numbers"
	case lettersAndNumberPattern.MatchString(password):
		return "No symbols"
	default:
		return ""
	}
}

// IsWeakPassword reports whether PasswordWeakness finds a problem.
func IsWeakPassword(password string) bool {
	return PasswordWeakness(password) != ""
}

// WeaknessLabel renders the weakness marker shown next to an entry, for
// example "[Weak: Too short]". It is empty for a strong password.
func WeaknessLabel(password string) string {
	problem := PasswordWeakness(password)
	if problem == "" {
		return ""
	}
	return fmt.Sprintf("[Weak: %s]", problem)
}
