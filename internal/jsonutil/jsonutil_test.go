package jsonutil

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
		{
			name:    "wrong field type",
			data:    []byte(`{"name":42}`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if tt.wantErr {
				var decErr *DecodeError
				require.ErrorAs(t, err, &decErr)
				assert.Equal(t, "test context", decErr.Context)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", v.Name)
		})
	}
}

func TestDecodeError_Offset(t *testing.T) {
	var v map[string]string
	err := UnmarshalWithContext([]byte(`{"a": "b",}`), &v, "ctx")
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Greater(t, decErr.Offset, int64(0))
	assert.Contains(t, decErr.Error(), "at offset")

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr), "DecodeError should unwrap to the json error")
}

func TestDecodeError_NoOffset(t *testing.T) {
	err := &DecodeError{Context: "ctx", Offset: -1, Err: errors.New("boom")}
	assert.Equal(t, "ctx: boom", err.Error())
}

func TestUnmarshalArray(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}

	t.Run("array", func(t *testing.T) {
		got, err := UnmarshalArray[item]([]byte(`[{"id":"a"},{"id":"b"}]`), "items")
		require.NoError(t, err)
		assert.Equal(t, []item{{ID: "a"}, {ID: "b"}}, got)
	})

	t.Run("empty array is not nil", func(t *testing.T) {
		got, err := UnmarshalArray[item]([]byte(` [] `), "items")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	for name, body := range map[string]string{
		"object":    `{"id":"a"}`,
		"null":      `null`,
		"string":    `"[]"`,
		"truncated": `[{"id":"a"}`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalArray[item]([]byte(body), "items")
			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, "items", decErr.Context)
		})
	}
}
