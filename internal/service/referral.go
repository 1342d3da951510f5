// File: internal/service/referral.go
package service

import (
	"crypto/rand"
	"encoding/base64"
)

var randRead = rand.Read

// NewReferralCode generates a short URL-safe referral code. Uniqueness is
// enforced by the users.referral_code constraint.
func NewReferralCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
