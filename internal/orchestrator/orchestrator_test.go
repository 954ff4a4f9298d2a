package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

func TestTrimGravityID_StripsZeroPadding(t *testing.T) {
	t.Parallel()

	var raw [32]byte
	copy(raw[:], "testnet-gravity-id")

	got, err := trimGravityID(raw)
	require.NoError(t, err)
	require.Equal(t, "testnet-gravity-id", got)
}

func TestTrimGravityID_AllZeroIsConfigError(t *testing.T) {
	t.Parallel()

	var raw [32]byte
	_, err := trimGravityID(raw)
	require.Error(t, err)

	var orcErr *orcerr.Error
	require.ErrorAs(t, err, &orcErr)
	require.Equal(t, orcerr.KindConfig, orcErr.Kind)
}

func TestTrimGravityID_FullLengthNoPadding(t *testing.T) {
	t.Parallel()

	var raw [32]byte
	for i := range raw {
		raw[i] = 'a'
	}

	got, err := trimGravityID(raw)
	require.NoError(t, err)
	require.Len(t, got, 32)
}
