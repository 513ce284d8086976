package requests

import "errors"

var (
	// ErrUnknownRequestType is returned for a base request that is neither a stop nor a bus.
	ErrUnknownRequestType = errors.New("unknown request type")
	// ErrMalformedLine is returned by the text decoder for a line it cannot parse.
	ErrMalformedLine = errors.New("malformed line")
)
