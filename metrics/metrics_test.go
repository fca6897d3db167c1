package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveStream(9, 0, 9)
	m.ObserveStream(3, 1, 11)
	m.ObserveCorrection(2, 0)
	m.ObserveCorrection(0, 1)
	m.ObserveFood()
	m.ObserveDropped(0)
	m.ObserveDropped(4)

	assert.Equal(t, 12.0, testutil.ToFloat64(m.TilesSpawned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TilesDespawned))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.TilesMaterialized))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CollisionCorrections.WithLabelValues("wall")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CollisionCorrections.WithLabelValues("corner")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FoodEaten))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.EventsDropped))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStream(1, 1, 1)
		m.ObserveCorrection(1, 1)
		m.ObserveFood()
		m.ObserveDropped(1)
		m.ObserveGeneration("maze", time.Millisecond)
		m.ObserveFrame(time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveGeneration("cave", 3*time.Millisecond)
	m.ObserveFood()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "webbg_food_eaten_total 1"))
	assert.True(t, strings.Contains(body, `webbg_maze_generation_seconds_count{mode="cave"} 1`))
}

func TestServeRejectsEmptyAddr(t *testing.T) {
	_, err := New().Serve("", logrus.New())
	assert.Error(t, err)
}
