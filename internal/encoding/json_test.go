package encoding_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leighmacdonald/srinfo/internal/encoding"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestUnmarshalJSON(t *testing.T) {
	value, err := encoding.UnmarshalJSON[sample](strings.NewReader(`{"name":"kafka","count":3}`))
	require.NoError(t, err)
	require.Equal(t, sample{Name: "kafka", Count: 3}, value)

	_, errBad := encoding.UnmarshalJSON[sample](strings.NewReader(`{"name":`))
	require.ErrorIs(t, errBad, encoding.ErrDecodeJSON)
}

func TestUnmarshalBytesTrailingData(t *testing.T) {
	_, err := encoding.UnmarshalBytes[sample]([]byte(`{"name":"a","count":1} {}`))
	require.ErrorIs(t, err, encoding.ErrDecodeJSON)

	value, errOK := encoding.UnmarshalBytes[sample]([]byte(`{"name":"a","count":1}`))
	require.NoError(t, errOK)
	require.Equal(t, "a", value.Name)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encoding.WriteJSON(&buf, sample{Name: "seele", Count: 1}))
	require.Equal(t, "{\n  \"name\": \"seele\",\n  \"count\": 1\n}\n", buf.String())

	require.ErrorIs(t, encoding.WriteJSON(&buf, make(chan int)), encoding.ErrEncodeJSON)
}
