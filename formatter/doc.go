// Package formatter renders stat request answers.
//
// This package is organized into:
// - wrapper.go: Response model and constructors wrapping catalogue statistics
// - json.go: JSON serialization using the classic field names
// - xml.go: XML serialization with proper escaping
// - text.go: console output
// - proto.go: protobuf serialization through structpb
//
// XML and console output are written by hand for precise control over the format.
package formatter
