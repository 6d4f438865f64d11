package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	for _, s := range []string{"a", "_a", "Property1", "choice_zero", "ÄÖÜ", "x_1_"} {
		require.True(t, Valid(s), s)
	}
	for _, s := range []string{"", "_", "1abc", "a-b", "a b", "a()", "*a", "a.b"} {
		require.False(t, Valid(s), s)
	}
}
