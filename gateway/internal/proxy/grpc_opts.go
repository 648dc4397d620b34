package proxy

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// init registers the JSON codec with the gRPC encoding registry.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// grpcCallOption returns the gRPC call option that forces JSON encoding
// on the wire, so the gateway invokes backend methods without generated stubs.
func grpcCallOption() grpc.CallOption {
	return grpc.ForceCodecCallOption{Codec: jsonCodec{}}
}

// jsonCodec is a gRPC codec that uses JSON encoding.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
