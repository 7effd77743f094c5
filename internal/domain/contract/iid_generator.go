package contract

type IIDGenerator interface {
	// NewID generates a new unique identifier.
	NewID() string
	// IsValid reports whether s is a well-formed identifier.
	IsValid(s string) bool
}
