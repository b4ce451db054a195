package block

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON is implemented because it is not uncommon that blocks need to
// be made available through external APIs.
func (block Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index        Index     `json:"index"`
		Timestamp    Timestamp `json:"timestamp"`
		Payload      Payload   `json:"payload"`
		PreviousHash Hash      `json:"previousHash"`
		Hash         Hash      `json:"hash"`
	}{
		block.Index,
		block.Timestamp,
		block.Payload,
		block.PreviousHash,
		block.Hash,
	})
}

// UnmarshalJSON is implemented because it is not uncommon that blocks need
// to be made available through external APIs. The stored hash is restored
// as-is, never recomputed: a document whose fields were modified after
// marshaling produces a Block whose Digest no longer matches its Hash, which
// chain validation reports as corruption.
func (block *Block) UnmarshalJSON(data []byte) error {
	tmp := struct {
		Index        Index     `json:"index"`
		Timestamp    Timestamp `json:"timestamp"`
		Payload      Payload   `json:"payload"`
		PreviousHash Hash      `json:"previousHash"`
		Hash         Hash      `json:"hash"`
	}{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	block.Index = tmp.Index
	block.Timestamp = tmp.Timestamp
	block.Payload = tmp.Payload
	block.PreviousHash = tmp.PreviousHash
	block.Hash = tmp.Hash
	return nil
}

// MarshalJSON implements the `json.Marshaler` interface for the Payload
// type. The encoding is the same deterministic object produced by Encode.
func (payload Payload) MarshalJSON() ([]byte, error) {
	return payload.Encode(), nil
}

// UnmarshalJSON implements the `json.Unmarshaler` interface for the Payload
// type. Member order is preserved, because order is part of Payload
// identity. The stdlib object decoding cannot be used here: it loses member
// order.
func (payload *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	token, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("unmarshaling payload: expected object, got %v", token)
	}
	fields := Payload{}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("unmarshaling payload: expected key, got %v", keyToken)
		}
		valueToken, err := dec.Token()
		if err != nil {
			return err
		}
		value, ok := valueToken.(string)
		if !ok {
			return fmt.Errorf("unmarshaling payload: expected string value for key=%q, got %v", key, valueToken)
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*payload = fields
	return nil
}
