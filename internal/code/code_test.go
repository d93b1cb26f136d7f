package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoading(t *testing.T) {
	require.NoError(t, Loading())
	assert.Equal(t, http.StatusBadRequest, ErrIDMismatch.StatusCode())
	assert.Equal(t, "0100001", ErrIDMismatch.Code())
}
