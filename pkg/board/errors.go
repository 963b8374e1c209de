package board

import "fmt"

// assertf enforces an invariant that a well-formed caller can never
// violate (§7.1): a non-Legal move passed to Play, a malformed setup.
// These are programmer errors, not caller data errors, so the core
// asserts and aborts rather than returning an error. Neither Legality
// nor Play compares a move's color with ExpectedColor.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
