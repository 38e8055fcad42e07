// Package jsoncodec registers a gRPC codec exchanging JSON message bodies.
//
// The proxy's backend APIs use hand-maintained Go bindings instead of
// generated protobuf code; requests and responses travel as JSON payloads
// selected per call via grpc.CallContentSubtype(jsoncodec.Name). Servers
// hosting these APIs pick the codec up automatically from the registry as
// long as this package is imported.
package jsoncodec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype under which the codec is registered.
const Name = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

// Marshal encodes v as a JSON payload.
func (codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a JSON payload into v.
func (codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}
	return nil
}

// Name reports the registered codec name.
func (codec) Name() string {
	return Name
}
