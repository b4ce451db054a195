package block

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// A Field is one key-value entry of a Payload.
type Field struct {
	Key   string
	Value string
}

// Payload stores the application-specific data of a Block as an ordered
// sequence of key-value entries. The core imposes no meaning on keys or
// values; it only requires the deterministic encoding produced by Encode, so
// that hashing a Payload is reproducible. Order is significant: two Payloads
// holding the same entries in different orders are not equal and do not hash
// equally.
type Payload []Field

// Encode returns the deterministic encoding of the Payload: a JSON object
// whose members appear in Payload order. This is the form fed into Block
// digests.
func (payload Payload) Encode() []byte {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, field := range payload {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, field.Key)
		buf.WriteByte(':')
		writeJSONString(&buf, field.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// Equal compares one Payload with another, entry-by-entry and in order.
func (payload Payload) Equal(other Payload) bool {
	if len(payload) != len(other) {
		return false
	}
	for i := range payload {
		if payload[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the Payload that shares no memory with the
// original.
func (payload Payload) Clone() Payload {
	if payload == nil {
		return nil
	}
	clone := make(Payload, len(payload))
	copy(clone, payload)
	return clone
}

// String implements the `fmt.Stringer` interface for the Payload type.
func (payload Payload) String() string {
	return string(payload.Encode())
}

func writeJSONString(buf *bytes.Buffer, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("invariant violation: marshaling %q: %v", s, err))
	}
	buf.Write(data)
}
