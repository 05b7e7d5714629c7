package peerseal

import "encoding/json"

// marshalPayload serializes a caller-supplied value for encryption.
func marshalPayload(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &MarshalError{Err: err}
	}
	return data, nil
}

// unmarshalPayload deserializes a decrypted payload into v.
func unmarshalPayload(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &UnmarshalError{Err: err}
	}
	return nil
}
