package strutils_test

import (
	"testing"

	"github.com/shmeado/lantern/internal/strutils"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUUID(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		normalized string
		wantErr    bool
	}{
		{"already normalized", "0123456789abcdef0123456789abcdef", "0123456789abcdef0123456789abcdef", false},
		{"dashed", "01234567-89ab-cdef-0123-456789abcdef", "0123456789abcdef0123456789abcdef", false},
		{"uppercase", "01234567-89AB-CDEF-0123-456789ABCDEF", "0123456789abcdef0123456789abcdef", false},
		{"too short", "0123456789abcdef", "", true},
		{"too long", "0123456789abcdef0123456789abcdef00", "", true},
		{"invalid characters", "0123456789abcdeg0123456789abcdef", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := strutils.NormalizeUUID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.normalized, normalized)
		})
	}
}

func TestUUIDIsNormalized(t *testing.T) {
	require.True(t, strutils.UUIDIsNormalized("0123456789abcdef0123456789abcdef"))
	require.False(t, strutils.UUIDIsNormalized("01234567-89ab-cdef-0123-456789abcdef"))
	require.False(t, strutils.UUIDIsNormalized("0123456789ABCDEF0123456789ABCDEF"))
	require.False(t, strutils.UUIDIsNormalized(""))
}
