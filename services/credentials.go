package services

import "github.com/google/uuid"

// GeneratePassword produces a short one-time password for a newly created
// account: the first group of a fresh UUID (8 hex chars). No uniqueness is
// enforced beyond the randomness source's collision resistance.
func GeneratePassword() string {
	return uuid.New().String()[:8]
}
