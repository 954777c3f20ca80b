package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zenmap/internal/domain/entity"
)

func speedPtr(v float64) *float64 { return &v }

func TestClassifyMotion(t *testing.T) {
	tests := []struct {
		name  string
		speed *float64
		want  entity.MotionType
	}{
		{"nil speed", nil, entity.MotionUnknown},
		{"zero", speedPtr(0), entity.MotionStationary},
		{"just below stationary bound", speedPtr(0.49), entity.MotionStationary},
		{"stationary bound is walking", speedPtr(0.5), entity.MotionWalking},
		{"brisk walk", speedPtr(1.9), entity.MotionWalking},
		{"walking bound is running", speedPtr(2.0), entity.MotionRunning},
		{"running bound is cycling", speedPtr(4.0), entity.MotionCycling},
		{"cycling bound is driving", speedPtr(8.0), entity.MotionDriving},
		{"highway", speedPtr(29.9), entity.MotionDriving},
		{"driving bound is transit", speedPtr(30.0), entity.MotionTransit},
		{"shinkansen", speedPtr(80.0), entity.MotionTransit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMotion(tt.speed))
		})
	}
}

// Category severity must be non-decreasing as speed increases.
func TestClassifyMotion_Monotonic(t *testing.T) {
	order := map[entity.MotionType]int{
		entity.MotionStationary: 0,
		entity.MotionWalking:    1,
		entity.MotionRunning:    2,
		entity.MotionCycling:    3,
		entity.MotionDriving:    4,
		entity.MotionTransit:    5,
	}

	prev := -1
	for speed := 0.0; speed <= 40.0; speed += 0.1 {
		got := ClassifyMotion(&speed)
		rank, ok := order[got]
		assert.True(t, ok, "unexpected category %s at speed %.1f", got, speed)
		assert.GreaterOrEqual(t, rank, prev, "category regressed at speed %.1f", speed)
		prev = rank
	}
}

func TestResolveLocationSince(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	now := t0.Add(10 * time.Minute)
	anchor := &StayAnchor{Latitude: 35.6812, Longitude: 139.7671, Since: t0}

	t.Run("no previous record resets to now", func(t *testing.T) {
		got := ResolveLocationSince(nil, 35.6812, 139.7671, DefaultStayHysteresisMeters, now)
		assert.Equal(t, now, got)
	})

	t.Run("jitter below hysteresis keeps the anchor", func(t *testing.T) {
		// ~30m north of the anchor.
		got := ResolveLocationSince(anchor, 35.6812+30/111320.0, 139.7671, DefaultStayHysteresisMeters, now)
		assert.Equal(t, t0, got)
	})

	t.Run("move beyond hysteresis resets to now", func(t *testing.T) {
		// ~80m north of the anchor.
		got := ResolveLocationSince(anchor, 35.6812+80/111320.0, 139.7671, DefaultStayHysteresisMeters, now)
		assert.Equal(t, now, got)
	})

	t.Run("zero-since anchor behaves like no record", func(t *testing.T) {
		got := ResolveLocationSince(&StayAnchor{Latitude: 35.6812, Longitude: 139.7671}, 35.6812, 139.7671, DefaultStayHysteresisMeters, now)
		assert.Equal(t, now, got)
	})
}
