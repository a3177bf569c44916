package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPathEscape, "escape detected")
	assert.Equal(t, ErrPathEscape, err.Code)
	assert.Equal(t, "[PATH_ESCAPE] escape detected", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrFileAccess, "cannot read file")

	assert.Equal(t, "[FILE_ACCESS] cannot read file: permission denied", err.Error())
	assert.Equal(t, inner, err.Unwrap())

	assert.Nil(t, Wrap(nil, ErrFileAccess, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrAlreadyExists, "x"),
			code: ErrAlreadyExists,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrAlreadyExists, "x"),
			code: ErrPathEscape,
			want: false,
		},
		{
			name: "wrapped plugset error",
			err:  fmt.Errorf("outer: %w", New(ErrSourceNotFound, "x")),
			code: ErrSourceNotFound,
			want: true,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			code: ErrSourceNotFound,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrConfigParse, GetErrorCode(New(ErrConfigParse, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestMissingAttr(t *testing.T) {
	err := MissingAttr("target-dir", "source-file", "com.example.plugin")

	require.True(t, IsErrorCode(err, ErrConfigMissingAttr))
	assert.Contains(t, err.Error(), "target-dir")
	assert.Contains(t, err.Error(), "source-file")
	assert.Contains(t, err.Error(), "com.example.plugin")

	assert.Equal(t, "target-dir", err.Details["attribute"])
	assert.Equal(t, "source-file", err.Details["kind"])
	assert.Equal(t, "com.example.plugin", err.Details["plugin"])
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPathEscape, "x").WithDetail("path", "/evil")
	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/evil", details["path"])
}
