package core

import (
	"github.com/google/uuid"
)

// RequestID tags the log lines of one HTTP request
type RequestID string

// NewRequestID creates a time-ordered identifier, UUID v7 with a v4 fallback
func NewRequestID() RequestID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RequestID(id.String())
}

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id RequestID) IsEmpty() bool {
	return id == ""
}
