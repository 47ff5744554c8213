package catalog

import (
	"errors"
	"fmt"

	"bookfinder/internal/platform/googlebooks"
)

// errorMessage converts a search capability failure into the message
// surfaced on the state's Error field. Nothing is allowed to escape the
// store unclassified.
func errorMessage(err error) string {
	var statusErr *googlebooks.StatusError
	switch {
	case errors.Is(err, googlebooks.ErrNotFound):
		return "book not found"
	case errors.Is(err, googlebooks.ErrTimeout):
		return "request timed out: the book catalog did not respond"
	case errors.Is(err, googlebooks.ErrUnreachable):
		return "network error: unable to reach the book catalog"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("catalog error: status %d", statusErr.Code)
	default:
		return "failed to search books"
	}
}
