package services

import "errors"

// Pipeline error taxonomy. Handlers map these to HTTP status codes and
// user-facing messages; everything else is treated as internal.
var (
	// ErrUnreadablePDF means the uploaded bytes are not a well-formed PDF.
	ErrUnreadablePDF = errors.New("unreadable PDF")

	// ErrNoText means the PDF parsed fine but carries no extractable text
	// layer (e.g. a scanned image-only resume).
	ErrNoText = errors.New("no text content found in PDF")

	// ErrMalformedModelResponse means the model output could not be parsed
	// as the expected profile object, even after the strict retry.
	ErrMalformedModelResponse = errors.New("malformed model response")

	// ErrModelUnavailable covers transport, auth, and rate-limit failures
	// against the language model service.
	ErrModelUnavailable = errors.New("language model service unavailable")

	// ErrSearchUnavailable covers transport and auth failures against the
	// job search API.
	ErrSearchUnavailable = errors.New("job search service unavailable")
)
