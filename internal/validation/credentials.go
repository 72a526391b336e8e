// Package validation holds the credential checks run before signup and
// login. The rules are evaluated independently so a response can report
// every failing field at once.
package validation

import "strings"

const (
	usernameMessage = "Please provide a username"
	passwordMessage = "Please enter a password that is at least 8 characters long"

	minPasswordLength = 8
)

// Result reports the outcome of credential validation. Errors maps a field
// name to a human-readable message; Valid is true iff Errors is empty.
// Responses serialize only the Errors map, never the struct itself.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// ValidateCredentials checks the username and password supplied at signup or
// login. It is a pure function: no I/O, no store access.
func ValidateCredentials(username, password string) Result {
	errors := make(map[string]string)

	if strings.TrimSpace(username) == "" {
		errors["username"] = usernameMessage
	}
	if strings.TrimSpace(password) == "" || len(password) < minPasswordLength {
		errors["password"] = passwordMessage
	}

	return Result{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}
