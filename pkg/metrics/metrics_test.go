package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Joako199002/proyecto-alzarea/pkg/metrics"
)

func TestIncAndValue(t *testing.T) {
	reg := metrics.NewRegistry()
	ctx := context.Background()

	reg.Inc(ctx, "chat_turns_total", nil, 1)
	reg.Inc(ctx, "chat_turns_total", nil, 2)
	reg.Inc(ctx, "http_requests_total", map[string]string{"method": "POST", "status": "2xx"}, 1)

	require.EqualValues(t, 3, reg.Value("chat_turns_total", nil))
	require.EqualValues(t, 1, reg.Value("http_requests_total", map[string]string{"status": "2xx", "method": "POST"}))
	require.EqualValues(t, 0, reg.Value("nunca_incrementado", nil))
}

func TestSnapshotLinesAreSortedAndLabelled(t *testing.T) {
	reg := metrics.NewRegistry()
	ctx := context.Background()

	reg.Inc(ctx, "b_total", nil, 1)
	reg.Inc(ctx, "a_total", map[string]string{"k": "v"}, 5)

	lines := reg.SnapshotLines()
	require.Equal(t, []string{"a_total{k=v} 5", "b_total 1"}, lines)

	snap := reg.SnapshotJSON()
	require.EqualValues(t, 5, snap["a_total{k=v}"])
}
