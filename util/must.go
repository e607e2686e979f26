package util

// Must unwraps a (value, error) pair, panicking on error. Intended for
// tests and initialization of values that cannot reasonably fail.
func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}

	return obj
}
