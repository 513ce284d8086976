package formatter

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// BuildProto serializes responses as a google.protobuf.ListValue of Structs
// carrying the same fields as BuildJSON.
func (rb *ResponseBuilder) BuildProto(res []Response) ([]byte, error) {
	list, err := rb.BuildProtoList(res)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(list)
}

// BuildProtoList converts responses into a ListValue.
func (rb *ResponseBuilder) BuildProtoList(res []Response) (*structpb.ListValue, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(res))}
	for _, r := range res {
		s, err := structpb.NewStruct(r.fields())
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", r.RequestID, err)
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	return list, nil
}
