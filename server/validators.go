package server

import "regexp"

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ValidateEmail reports whether the address has a plausible mailbox
// shape. Deliverability is out of scope.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePassword applies the password policy, returning the
// user-facing message on rejection.
func ValidatePassword(p string) (bool, string) {
	if len(p) < 8 {
		return false, "Le mot de passe doit contenir au moins 8 caractères."
	}
	return true, ""
}
