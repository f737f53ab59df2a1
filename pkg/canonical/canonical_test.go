package canonical

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsKeys(t *testing.T) {
	b, err := Marshal(map[string]any{"zulu": 1, "alpha": 2, "Mike": 3})
	require.NoError(t, err)
	// Uppercase sorts before lowercase (code point order).
	assert.Equal(t, `{"Mike":3,"alpha":2,"zulu":1}`, string(b))
}

func TestMarshal_NestedObjectsSorted(t *testing.T) {
	b, err := Marshal(map[string]any{
		"outer": map[string]any{"b": []any{map[string]any{"y": 1, "x": 2}}, "a": true},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"outer":{"a":true,"b":[{"x":2,"y":1}]}}`, string(b))
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	b, err := Marshal(map[string]any{"text": "a<b> & </b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"text":"a<b> & </b>"}`, string(b))
	assert.NotContains(t, string(b), `<`)
}

func TestMarshal_NullRetained(t *testing.T) {
	b, err := MarshalRaw(json.RawMessage(`{"b":null,"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":null}`, string(b))
}

func TestMarshalRaw_PreservesNumberLexemes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"n":1}`, `{"n":1}`},
		{`{"n":1.5}`, `{"n":1.5}`},
		{`{"n":0.75}`, `{"n":0.75}`},
		{`{"n":-12345678901234567890}`, `{"n":-12345678901234567890}`},
		{`{"n":1e2}`, `{"n":1e2}`},
	}
	for _, tc := range cases {
		b, err := MarshalRaw(json.RawMessage(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, string(b), tc.in)
	}
}

func TestMarshal_StructTagsApply(t *testing.T) {
	type payload struct {
		RoomID string `json:"room_id"`
		Text   string `json:"text,omitempty"`
		Skip   string `json:"-"`
	}
	b, err := Marshal(payload{RoomID: "room_1", Skip: "hidden"})
	require.NoError(t, err)
	assert.Equal(t, `{"room_id":"room_1"}`, string(b))
}

func TestMarshal_DeterministicAcrossRuns(t *testing.T) {
	in := map[string]any{"k1": 1, "k2": "v", "k3": []any{"a", "b"}, "k4": nil}
	first, err := Marshal(in)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestHash_Shape(t *testing.T) {
	h, err := Hash(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Len(t, h, 64)
	assert.Equal(t, strings.ToLower(h), h)

	p, err := PrefixedHash(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "sha256:"+h, p)
}

func TestHash_SensitiveToValues(t *testing.T) {
	h1, err := Hash(map[string]any{"a": 1})
	require.NoError(t, err)
	h2, err := Hash(map[string]any{"a": 2})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestMarshal_EmbeddedRawMessage(t *testing.T) {
	// Raw payloads embedded in an envelope map keep their number lexemes and
	// get their keys sorted like everything else.
	in := map[string]any{
		"data":       json.RawMessage(`{"z":1e2,"a":"x"}`),
		"event_type": "message.created",
	}
	b, err := Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"a":"x","z":1e2},"event_type":"message.created"}`, string(b))
}

func TestHash_KeyOrderIrrelevant(t *testing.T) {
	h1, err := Hash(json.RawMessage(`{"a":1,"b":2}`))
	require.NoError(t, err)
	h2, err := Hash(json.RawMessage(`{"b":2,"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
