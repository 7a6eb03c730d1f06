// Package id generates compact identifiers for records created by this service.
package id

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a 26-character lowercase base32 identifier backed by a
// random UUID. The encoding keeps IDs URL- and cookie-safe.
func NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ToLower(encoding.EncodeToString(u[:])), nil
}
