package utils

import (
	"errors"
	"strings"
)

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Any other authorization scheme is rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
