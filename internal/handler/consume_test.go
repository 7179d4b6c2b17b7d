package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/handler"
)

// A rebalance or transient session end makes sarama call Setup again on
// the same handler; a second session must not blow up the consume loop.
func TestConsumer_SetupAcrossSessions(t *testing.T) {
	t.Parallel()
	c := handler.NewConsumer(nil, zap.NewExample().Named("test"))

	require.NoError(t, c.Setup(nil))
	require.NotPanics(t, func() {
		require.NoError(t, c.Setup(nil))
		require.NoError(t, c.Cleanup(nil))
	})
}
