package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// Interested in all events by default
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeShotFired))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("test-game-1", []string{"ai", "rnd"}, []string{"montecarlo", "random"}, []int{5, 4}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, []interface{}{"ai", "rnd"}, logLine["players"])
				assert.Equal(t, []interface{}{float64(5), float64(4)}, logLine["fleet"])
			},
		},
		{
			name:  "ShotFiredEvent",
			event: events.NewShotFiredEvent("test-game-1", 1, core.NewCell(3, 7), core.OutcomeSunk, 42),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(1), logLine["player_id"])
				assert.Equal(t, float64(3), logLine["row"])
				assert.Equal(t, float64(7), logLine["col"])
				assert.Equal(t, "sunk", logLine["outcome"])
				assert.Equal(t, float64(42), logLine["turn"])
			},
		},
		{
			name:  "ShipSunkEvent",
			event: events.NewShipSunkEvent("test-game-1", 0, 1, 4, 3, 7, 20),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(1), logLine["owner_id"])
				assert.Equal(t, float64(3), logLine["size"])
				assert.Equal(t, float64(7), logLine["ships_left"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("test-game-1", "Placing", "Running", "fleets placed"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Placing", logLine["from_phase"])
				assert.Equal(t, "Running", logLine["to_phase"])
				assert.Equal(t, "fleets placed", logLine["reason"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent("test-game-1", 0, "ai", 5*time.Minute, 90, []int{45, 45}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(0), logLine["winner"])
				assert.Equal(t, "ai", logLine["winner_name"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeShotFired))
	assert.False(t, logSub.InterestedIn(events.TypeShipSunk))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeShotFired))
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewGameStartedEvent("game1", nil, nil, nil))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("dev-logger", logger, zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewShotFiredEvent("dev-game", 0, core.NewCell(5, 5), core.OutcomeHit, 9))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "dev mode should embed the full event")
	assert.Equal(t, "hit", eventData["outcome"])
	assert.Equal(t, events.TypeShotFired, eventData["type"])
}
