// Package must turns error returns into panics, for programs
// and tests where an error means the setup itself is broken.
package must

// Do panics if err is not nil.
func Do(err error) {
	if err != nil {
		panic(err)
	}
}

// Get returns v, or panics if err is not nil.
func Get[T any](v T, err error) T {
	Do(err)
	return v
}

// Get2 is Get for functions returning two values and an error.
func Get2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	Do(err)
	return v1, v2
}
