package util

// ToPtr returns a pointer to the passed value. Useful for initializing
// optional struct fields from literals.
func ToPtr[T any](v T) *T {
	return &v
}

// CoerceString dereferences the passed pointer, treating nil as the
// empty string.
func CoerceString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// CoerceBool dereferences the passed pointer, treating nil as false.
func CoerceBool(b *bool) bool {
	if b == nil {
		return false
	}

	return *b
}
