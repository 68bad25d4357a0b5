package ai //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrength(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Strength
		wantErr bool
	}{
		{
			name: "easy",
			raw:  "easy",
			want: Easy,
		},
		{
			name: "medium",
			raw:  "medium",
			want: Medium,
		},
		{
			name: "hard",
			raw:  "hard",
			want: Hard,
		},
		{
			name: "nightmare",
			raw:  "nightmare",
			want: Nightmare,
		},
		{
			name:    "unknown",
			raw:     "grandmaster",
			wantErr: true,
		},
		{
			name:    "user is not a strength",
			raw:     "user",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			strength, err := ParseStrength(test.raw)
			if test.wantErr {
				require.ErrorIs(t, err, ErrUnknownStrength)
			} else {
				require.NoError(t, err)
				require.Equal(t, test.want, strength)
			}
		})
	}
}
