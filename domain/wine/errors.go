package wine

import "errors"

// Sentinel errors shared across the cellar. Callers test them with errors.Is;
// wrapping adds context without hiding the category.
var (
	// ErrUnauthenticated indicates no owner could be resolved for the call.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrMissingCredential indicates an AI request was attempted with no
	// API key cached.
	ErrMissingCredential = errors.New("no API key configured")

	// ErrTransportFailure indicates the remote store or AI endpoint could
	// not be reached or answered with a failure.
	ErrTransportFailure = errors.New("upstream request failed")

	// ErrNoStructuredOutput indicates the model response contained no JSON
	// object at all.
	ErrNoStructuredOutput = errors.New("no JSON object in model response")

	// ErrMalformedOutput indicates the extracted JSON could not be
	// deserialized into the expected shape.
	ErrMalformedOutput = errors.New("model response is not valid JSON")

	// ErrEmptyCandidateSet indicates a pairing was requested with no
	// in-stock wines to choose from.
	ErrEmptyCandidateSet = errors.New("no wines in stock to pair with")

	// ErrNotFound indicates the referenced record does not exist or is not
	// visible to the owner.
	ErrNotFound = errors.New("wine not found")

	// ErrWriteFailed indicates a create, update or delete was rejected by
	// the store.
	ErrWriteFailed = errors.New("write rejected by store")
)
