package str

import "errors"

// RequireNotEmpty returns s unchanged when it is non-empty, otherwise an
// error carrying msg.
func RequireNotEmpty(s, msg string) (string, error) {
	if s == "" {
		return "", errors.New(msg)
	}
	return s, nil
}
