package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/testutil"
)

func TestCheck_TracksPeak(t *testing.T) {
	gm := NewGoroutineMonitor(DefaultMonitorConfig(), testutil.NopLogger())
	base := gm.GetMetrics().Baseline

	release := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() { <-release }()
	}
	gm.Check()
	close(release)

	m := gm.GetMetrics()
	assert.GreaterOrEqual(t, m.Peak, base+10)
	assert.Equal(t, m.Current-m.Baseline, m.Growth)
}

func TestCheck_AlertCooldown(t *testing.T) {
	gm := NewGoroutineMonitor(MonitorConfig{
		CheckInterval:  time.Hour,
		AlertThreshold: 0,
		AlertCooldown:  time.Hour,
	}, testutil.NopLogger())

	assert.True(t, gm.Check(), "first check above threshold alerts")
	assert.False(t, gm.Check(), "second check is inside the cooldown")
}

func TestRegisterComponent(t *testing.T) {
	gm := NewGoroutineMonitor(DefaultMonitorConfig(), testutil.NopLogger())
	gm.RegisterComponent("simulation_workers", 4)

	m := gm.GetMetrics()
	assert.Equal(t, map[string]int{"simulation_workers": 4}, m.ComponentCounts)

	m.ComponentCounts["simulation_workers"] = 99
	assert.Equal(t, 4, gm.GetMetrics().ComponentCounts["simulation_workers"])
}

func TestStart_StopsWithContext(t *testing.T) {
	gm := NewGoroutineMonitor(MonitorConfig{
		CheckInterval:  time.Millisecond,
		AlertThreshold: 1 << 20,
		AlertCooldown:  time.Minute,
	}, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	gm.Start(ctx)
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-gm.Done():
	case <-time.After(time.Second):
		require.FailNow(t, "monitor did not stop")
	}
	assert.Greater(t, gm.GetMetrics().Current, 0)
}
