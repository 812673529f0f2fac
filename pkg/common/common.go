package common

import "github.com/google/uuid"

// UUID returns a new random UUID string used as an entity identifier.
func UUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
