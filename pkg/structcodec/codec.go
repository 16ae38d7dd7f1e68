// Package structcodec is a payload codec backed by protobuf Struct
// messages, the payload schema used by the recording producers.
package structcodec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ssargent/replaydb/pkg/state"
)

// Codec translates frame payloads to and from google.protobuf.Struct.
// A null at the top level marks the key as a tombstone; nested structs
// become Mapping values; every other kind becomes a Scalar. Round
// trips are key/value equivalent but not guaranteed byte-identical.
type Codec struct{}

// New creates a struct payload codec
func New() Codec {
	return Codec{}
}

// Decode parses payload as a Struct message
func (Codec) Decode(payload []byte) (state.Update, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(payload, &st); err != nil {
		return nil, fmt.Errorf("decoding struct payload: %w", err)
	}
	update := make(state.Update, len(st.Fields))
	for key, value := range st.Fields {
		if _, isNull := value.GetKind().(*structpb.Value_NullValue); isNull {
			update[key] = nil
			continue
		}
		update[key] = fromProto(value)
	}
	return update, nil
}

// Encode serializes update as a Struct message
func (Codec) Encode(update state.Update) ([]byte, error) {
	st := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(update))}
	for key, value := range update {
		pv, err := toProto(value)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", key, err)
		}
		st.Fields[key] = pv
	}
	payload, err := proto.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encoding struct payload: %w", err)
	}
	return payload, nil
}

func fromProto(v *structpb.Value) state.Value {
	if sv, ok := v.GetKind().(*structpb.Value_StructValue); ok {
		m := make(state.Mapping, len(sv.StructValue.Fields))
		for key, nested := range sv.StructValue.Fields {
			m[key] = fromProto(nested)
		}
		return m
	}
	return state.Scalar{Data: v.AsInterface()}
}

func toProto(v state.Value) (*structpb.Value, error) {
	switch v := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case state.Scalar:
		return structpb.NewValue(v.Data)
	case state.Mapping:
		fields := make(map[string]*structpb.Value, len(v))
		for key, nested := range v {
			pv, err := toProto(nested)
			if err != nil {
				return nil, err
			}
			fields[key] = pv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
