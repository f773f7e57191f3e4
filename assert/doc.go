// Package assert provides runtime invariant checks that panic when violated.
//
// Checks are compiled in by default. Building with the assertions_disabled
// tag turns every check into a no-op:
//
//	go build -tags assertions_disabled ./...
//
// Only pass constant messages from hot paths; formatting arguments are
// boxed into interfaces even when the check passes.
package assert
