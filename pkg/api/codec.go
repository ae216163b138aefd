package api

import (
	"encoding/json"
	"fmt"
)

// Codec names. Connect registers JSON under both, so handlers must too or
// requests sent as "application/json; charset=utf-8" reach the proto codec.
const (
	CodecName        = "json"
	CharsetCodecName = "json; charset=utf-8"
)

// Codec marshals plain Go messages as JSON for Connect.
// The zero value is registered as CodecName.
type Codec struct {
	name string
}

// NewCodec returns a Codec registered under name.
func NewCodec(name string) Codec {
	return Codec{name: name}
}

func (c Codec) Name() string {
	if c.name == "" {
		return CodecName
	}
	return c.name
}

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal decodes data into msg. An empty body leaves msg at its zero value.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
