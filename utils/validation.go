package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate       = validator.New()
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

const passwordSpecials = "#@$%&*!^"

func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsValidContactNumber accepts exactly ten digits.
func IsValidContactNumber(contact string) bool {
	return contactPattern.MatchString(contact)
}

// IsStrongPassword requires at least eight characters including an upper-case
// letter, a digit and one of #@$%&*!^.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

func IsValidPincode(pincode string) bool {
	return pincodePattern.MatchString(pincode)
}

func IsValidRating(rating float64) bool {
	return rating >= 1 && rating <= 5
}

// IsBlank reports whether any of the values is empty after trimming.
func IsBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
