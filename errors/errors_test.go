package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrs(t *testing.T) {
	ve := ValidationErrs()
	require.NoError(t, ve.Err())

	ve.Add("kafka.topic", "cannot be empty")
	ve.Add("kafka.acks", "must be one of 'all', 'leader', 'none'")
	err := ve.Err()
	require.Error(t, err)

	assert.True(t, Is(Invalid, err))
	assert.Equal(t, 2, ve.Len())
	assert.Equal(t, "validation failed: kafka.acks must be one of 'all', 'leader', 'none'; kafka.topic cannot be empty", err.Error())
}

func TestIsKind(t *testing.T) {
	cause := stderrors.New("unexpected token")
	err := fmt.Errorf("encode: %w", EncodingFailedErr(cause))

	assert.True(t, Is(Internal, err))
	assert.False(t, Is(Invalid, err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, Is(Internal, cause))
}

func TestEmptyParamErr(t *testing.T) {
	err := EmptyParamErr("redis.uri")
	assert.True(t, Is(Invalid, err))
	assert.Contains(t, err.Error(), "redis.uri cannot be empty")
}

func TestConnectErr(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ConnectErr("redis", cause)

	assert.True(t, Is(Unavailable, err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cannot connect to redis: connection refused", err.Error())
}
