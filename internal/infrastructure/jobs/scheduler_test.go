package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestScheduleShouldRun(t *testing.T) {
	t.Run("interval fires on matching minutes", func(t *testing.T) {
		s := Every(5 * time.Minute)
		assert.True(t, s.shouldRun(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)))
		assert.True(t, s.shouldRun(time.Date(2026, 8, 30, 10, 55, 0, 0, time.UTC)))
		assert.False(t, s.shouldRun(time.Date(2026, 8, 30, 10, 3, 0, 0, time.UTC)))
	})

	t.Run("daily fires at each configured time", func(t *testing.T) {
		s := DailyAt(DailyTime{Hour: 0, Minute: 0}, DailyTime{Hour: 12, Minute: 0})
		assert.True(t, s.shouldRun(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
		assert.True(t, s.shouldRun(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))
		assert.False(t, s.shouldRun(time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)))
		assert.False(t, s.shouldRun(time.Date(2026, 8, 30, 12, 1, 0, 0, time.UTC)))
	})

	t.Run("weekly fires only on the configured weekday", func(t *testing.T) {
		s := WeeklyAt(time.Monday, 6, 0)
		monday := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)
		tuesday := monday.AddDate(0, 0, 1)
		assert.True(t, s.shouldRun(monday))
		assert.False(t, s.shouldRun(tuesday))
		assert.False(t, s.shouldRun(monday.Add(time.Hour)))
	})
}

type countingJob struct {
	runs int
}

func (j *countingJob) Name() string                { return "counting" }
func (j *countingJob) Run(_ context.Context) error { j.runs++; return nil }

func TestSchedulerDoesNotDoubleFireWithinMinute(t *testing.T) {
	scheduler := NewScheduler(zap.NewNop())
	job := &countingJob{}
	scheduler.Register(job, Every(time.Minute))

	now := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	scheduler.checkAndRun(context.Background(), now)
	scheduler.checkAndRun(context.Background(), now.Add(30*time.Second))
	assert.Equal(t, 1, job.runs)

	scheduler.checkAndRun(context.Background(), now.Add(time.Minute))
	assert.Equal(t, 2, job.runs)
}

func TestSchedulerRunAll(t *testing.T) {
	scheduler := NewScheduler(zap.NewNop())
	first := &countingJob{}
	second := &countingJob{}
	scheduler.Register(first, Every(5*time.Minute))
	scheduler.Register(second, WeeklyAt(time.Monday, 6, 0))

	scheduler.RunAll(context.Background())
	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}
