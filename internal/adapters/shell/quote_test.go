package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/protonrun/internal/adapters/shell"
	"go.trai.ch/protonrun/internal/core/domain"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain word", in: "RLBot.exe", want: "RLBot.exe"},
		{name: "number", in: "23234", want: "23234"},
		{name: "space", in: "/lib/common/Proton 8.0/proton", want: "'/lib/common/Proton 8.0/proton'"},
		{name: "empty", in: "", want: "''"},
		{name: "dollar", in: "$HOME", want: "'$HOME'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shell.Quote([]string{tt.in})
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestQuote_NullByte(t *testing.T) {
	_, err := shell.Quote([]string{"a\x00b"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrQuoteFailed.Error())
}

func TestJoin(t *testing.T) {
	got, err := shell.Join([]string{"/lib/common/Proton 8.0/proton", "runinprefix", "RLBot.exe", "23234"})
	require.NoError(t, err)
	assert.Equal(t, "'/lib/common/Proton 8.0/proton' runinprefix RLBot.exe 23234", got)
}
