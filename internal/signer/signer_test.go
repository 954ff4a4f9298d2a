package signer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

func TestIsFatal_FatalKindsAndTransientKinds(t *testing.T) {
	t.Parallel()

	require.True(t, isFatal(orcerr.New(orcerr.KindInsufficientFees, "too poor")))
	require.True(t, isFatal(orcerr.New(orcerr.KindWrongContract, "wrong contract")))
	require.False(t, isFatal(orcerr.New(orcerr.KindTransient, "retry me")))
	require.False(t, isFatal(errors.New("plain error")))
}
