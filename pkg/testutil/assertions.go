package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorContains checks that err is non-nil and contains each of the
// expected substrings.
func AssertErrorContains(t *testing.T, err error, expected ...string) {
	t.Helper()
	require.Error(t, err)
	for _, e := range expected {
		assert.Contains(t, err.Error(), e)
	}
}
