// Package monitoring watches process-level resource usage of long-running
// binaries.
package monitoring

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MonitorConfig controls how often goroutines are counted and when to warn
type MonitorConfig struct {
	CheckInterval  time.Duration
	AlertThreshold int
	AlertCooldown  time.Duration
}

// DefaultMonitorConfig suits the advisor server
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		CheckInterval:  30 * time.Second,
		AlertThreshold: 1000,
		AlertCooldown:  5 * time.Minute,
	}
}

// GoroutineMonitor tracks goroutine counts. Each advisor request may fan out
// into simulation workers, so a steadily growing count points at requests
// that never finish.
type GoroutineMonitor struct {
	mu              sync.RWMutex
	config          MonitorConfig
	baseline        int
	current         int
	peak            int
	lastAlert       time.Time
	componentCounts map[string]int
	logger          zerolog.Logger
	done            chan struct{}
}

// NewGoroutineMonitor creates a monitor whose baseline is the current count
func NewGoroutineMonitor(config MonitorConfig, logger zerolog.Logger) *GoroutineMonitor {
	baseline := runtime.NumGoroutine()
	return &GoroutineMonitor{
		config:          config,
		baseline:        baseline,
		current:         baseline,
		peak:            baseline,
		componentCounts: make(map[string]int),
		logger:          logger.With().Str("component", "GoroutineMonitor").Logger(),
		done:            make(chan struct{}),
	}
}

// Start checks periodically until ctx is cancelled. Done is closed once the
// loop has exited.
func (gm *GoroutineMonitor) Start(ctx context.Context) {
	gm.logger.Info().
		Int("baseline", gm.baseline).
		Dur("interval", gm.config.CheckInterval).
		Msg("Started goroutine monitoring")

	go func() {
		defer close(gm.done)
		ticker := time.NewTicker(gm.config.CheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				gm.Check()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Done is closed when the monitoring loop stops
func (gm *GoroutineMonitor) Done() <-chan struct{} { return gm.done }

// Check samples the goroutine count once and reports whether it warned
func (gm *GoroutineMonitor) Check() bool {
	current := runtime.NumGoroutine()

	gm.mu.Lock()
	gm.current = current
	if current > gm.peak {
		gm.peak = current
	}
	growth := current - gm.baseline
	growthRate := 0.0
	if gm.baseline > 0 {
		growthRate = float64(growth) / float64(gm.baseline) * 100
	}
	shouldAlert := current > gm.config.AlertThreshold &&
		time.Since(gm.lastAlert) > gm.config.AlertCooldown
	if shouldAlert {
		gm.lastAlert = time.Now()
	}
	peak := gm.peak
	gm.mu.Unlock()

	gm.logger.Debug().
		Int("current", current).
		Int("baseline", gm.baseline).
		Int("peak", peak).
		Float64("growth_rate", growthRate).
		Msg("Goroutine metrics")

	if shouldAlert {
		gm.logger.Warn().
			Int("current", current).
			Int("threshold", gm.config.AlertThreshold).
			Float64("growth_rate", growthRate).
			Msg("High goroutine count detected - possible leak")
	}
	return shouldAlert
}

// RegisterComponent records how many goroutines a component is expected to use
func (gm *GoroutineMonitor) RegisterComponent(name string, count int) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.componentCounts[name] = count
}

// GetMetrics returns current goroutine metrics
func (gm *GoroutineMonitor) GetMetrics() GoroutineMetrics {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	counts := make(map[string]int, len(gm.componentCounts))
	for k, v := range gm.componentCounts {
		counts[k] = v
	}
	return GoroutineMetrics{
		Current:         gm.current,
		Baseline:        gm.baseline,
		Peak:            gm.peak,
		Growth:          gm.current - gm.baseline,
		ComponentCounts: counts,
	}
}

// GoroutineMetrics contains goroutine statistics
type GoroutineMetrics struct {
	Current         int            `json:"current"`
	Baseline        int            `json:"baseline"`
	Peak            int            `json:"peak"`
	Growth          int            `json:"growth"`
	ComponentCounts map[string]int `json:"component_counts"`
}
