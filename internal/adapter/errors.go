package adapter

import "errors"

var (
	// ErrUnauthorized means no credential could be obtained or the service
	// rejected the one presented.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrHandleNotFound is the 404-equivalent condition: the targeted blob
	// no longer exists (deleted out-of-band). Recoverable by recreating.
	ErrHandleNotFound = errors.New("remote blob handle not found")
	// ErrInvalidPayload means the fetched document was malformed or missed
	// the commands array.
	ErrInvalidPayload = errors.New("invalid remote payload")

	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
