package domain

import "strings"

// Travel request status vocabulary. Stored lowercase; input is accepted in
// any case and normalized at the boundary.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// NormalizeStatus maps a raw status value to its canonical lowercase form.
// Returns a ValidationError when the value is outside the vocabulary.
func NormalizeStatus(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return s, nil
	}
	return "", ValidationError{Field: "status", Msg: "must be one of pending, approved, rejected"}
}
