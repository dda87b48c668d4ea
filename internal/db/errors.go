package db

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a requested document does not exist. Callers
// test for it with errors.Is after any repository read.
var ErrNotFound = errors.New("document not found")

// isNotFound reports whether err is a Firestore not-found status.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
