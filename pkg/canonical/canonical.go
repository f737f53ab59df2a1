// Package canonical produces the deterministic JSON form used for event and
// manifest hashing: object keys sorted ascending by Unicode code point, no
// HTML escaping, numbers kept as their shortest round-trip decimal form,
// explicit nulls retained.
package canonical

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Marshal returns the canonical JSON encoding of v.
//
// v is first marshaled with encoding/json (so struct tags apply), then
// re-decoded with json.Number so numeric lexemes survive, then re-encoded
// with sorted keys and HTML escaping disabled.
func Marshal(v any) ([]byte, error) {
	intermediate, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical: marshal: %w", err)
	}
	return MarshalRaw(intermediate)
}

// MarshalRaw canonicalizes an existing JSON document without a round trip
// through Go types, preserving the source number lexemes exactly.
func MarshalRaw(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("canonical: decode: %w", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Hash returns the lowercase hex SHA-256 digest of the canonical encoding of v.
func Hash(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return SumHex(b), nil
}

// PrefixedHash is Hash with the "sha256:" algorithm prefix, the form stored
// for scorecard metric hashes and evidence manifests.
func PrefixedHash(v any) (string, error) {
	h, err := Hash(v)
	if err != nil {
		return "", err
	}
	return "sha256:" + h, nil
}

// SumHex returns the lowercase hex SHA-256 digest of raw bytes.
func SumHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func encode(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(t.String())
	case string:
		return encodeString(buf, t)
	case []any:
		buf.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, t[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		// Only reachable when a caller hands in a pre-decoded value that
		// bypassed UseNumber (e.g. float64 from a plain json.Unmarshal).
		var tmp bytes.Buffer
		enc := json.NewEncoder(&tmp)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("canonical: encode %T: %w", v, err)
		}
		buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	}
	return nil
}

// encodeString writes a JSON string without HTML escaping. encoding/json
// escapes <, > and & by default, which would change hashes across encoders.
func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("canonical: encode string: %w", err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
