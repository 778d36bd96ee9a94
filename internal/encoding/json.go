// Package encoding holds the JSON helpers shared by the api client and the cli.
package encoding

import (
	"encoding/json"
	"errors"
	"io"
)

var (
	ErrDecodeJSON = errors.New("failed to decode JSON")
	ErrEncodeJSON = errors.New("failed to encode JSON")
)

// UnmarshalJSON decodes the first JSON value read from reader into a T.
func UnmarshalJSON[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(reader).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

// UnmarshalBytes decodes a complete JSON document. Unlike UnmarshalJSON, trailing data after
// the first value is an error.
func UnmarshalBytes[T any](data []byte) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

// WriteJSON writes value as indented JSON followed by a newline.
func WriteJSON(writer io.Writer, value any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return errors.Join(err, ErrEncodeJSON)
	}

	return nil
}
