package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatXML   = "xml"
	FormatText  = "text"
	FormatProto = "proto"
)

// ErrUnsupportedFormat is returned by Build for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ResponseBuilder serializes stat responses.
type ResponseBuilder struct{}

// NewResponseBuilder creates a new response builder.
func NewResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// ContentType returns the MIME type of a format, or "" for an unknown one.
func ContentType(format string) string {
	switch format {
	case FormatJSON, "":
		return "application/json"
	case FormatXML:
		return "application/xml"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatProto:
		return "application/x-protobuf"
	}
	return ""
}

// Build serializes res in the given format and returns the body with its content type.
func (rb *ResponseBuilder) Build(format string, res []Response) ([]byte, string, error) {
	var (
		b   []byte
		err error
	)
	switch format {
	case FormatJSON, "":
		b, err = rb.BuildJSON(res)
	case FormatXML:
		b = rb.BuildXML(res)
	case FormatText:
		b = rb.BuildText(res)
	case FormatProto:
		b, err = rb.BuildProto(res)
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return b, ContentType(format), err
}

// BuildJSON serializes responses to a JSON array.
func (rb *ResponseBuilder) BuildJSON(res []Response) ([]byte, error) {
	arr := make([]map[string]interface{}, 0, len(res))
	for _, r := range res {
		arr = append(arr, r.fields())
	}
	return json.Marshal(arr)
}

// MarshalJSON encodes a single response with the same fields BuildJSON uses.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields())
}
