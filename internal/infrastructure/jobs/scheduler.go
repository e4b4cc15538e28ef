package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of scheduled work. Run errors are logged and never stop
// the scheduler.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// DailyTime is a wall-clock time of day in the scheduler's local zone
type DailyTime struct {
	Hour   int
	Minute int
}

// Schedule decides whether a job fires at a given minute. Either Interval
// or Times is set, never both.
type Schedule struct {
	Interval time.Duration
	Times    []DailyTime
	Weekday  *time.Weekday
}

// Every returns a schedule that fires once per interval. The interval is
// rounded down to whole minutes; the scheduler ticks once a minute.
func Every(interval time.Duration) Schedule {
	return Schedule{Interval: interval}
}

// DailyAt returns a schedule that fires at the given times every day
func DailyAt(times ...DailyTime) Schedule {
	return Schedule{Times: times}
}

// WeeklyAt returns a schedule that fires once a week at the given time
func WeeklyAt(weekday time.Weekday, hour, minute int) Schedule {
	return Schedule{Times: []DailyTime{{Hour: hour, Minute: minute}}, Weekday: &weekday}
}

func (s Schedule) shouldRun(now time.Time) bool {
	if s.Weekday != nil && now.Weekday() != *s.Weekday {
		return false
	}
	if s.Interval > 0 {
		n := int(s.Interval.Minutes())
		if n <= 0 {
			n = 1
		}
		minuteOfDay := now.Hour()*60 + now.Minute()
		return minuteOfDay%n == 0
	}
	for _, t := range s.Times {
		if now.Hour() == t.Hour && now.Minute() == t.Minute {
			return true
		}
	}
	return false
}

type entry struct {
	job      Job
	schedule Schedule
	lastRun  string // minute key of the last firing, prevents double runs
}

// Scheduler drives registered jobs off a once-per-minute tick
type Scheduler struct {
	logger        *zap.Logger
	checkInterval time.Duration

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	entries   []*entry
}

// NewScheduler creates a new Scheduler
func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		logger:        logger,
		checkInterval: time.Minute,
	}
}

// Register adds a job with its schedule
func (s *Scheduler) Register(job Job, schedule Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, &entry{job: job, schedule: schedule})
}

// Start begins the tick loop. It is a no-op if already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("Scheduler started",
		zap.Int("jobs", len(s.entries)),
		zap.Duration("check_interval", s.checkInterval),
	)
	return nil
}

// Stop shuts the tick loop down, waiting for any in-flight jobs
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkAndRun(ctx, time.Now())
		}
	}
}

func (s *Scheduler) checkAndRun(ctx context.Context, now time.Time) {
	minuteKey := now.Format("2006-01-02 15:04")

	s.mu.Lock()
	due := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.lastRun == minuteKey || !e.schedule.shouldRun(now) {
			continue
		}
		e.lastRun = minuteKey
		due = append(due, e)
	}
	s.mu.Unlock()

	for _, e := range due {
		s.runJob(ctx, e.job)
	}
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	s.logger.Info("Running job", zap.String("job", job.Name()))
	if err := job.Run(ctx); err != nil {
		s.logger.Error("Job failed", zap.String("job", job.Name()), zap.Error(err))
		return
	}
	s.logger.Info("Job completed", zap.String("job", job.Name()))
}

// RunAll runs every registered job once, immediately. Used by the one-shot
// mode of the cron binary.
func (s *Scheduler) RunAll(ctx context.Context) {
	s.mu.Lock()
	entries := make([]*entry, len(s.entries))
	copy(entries, s.entries)
	s.mu.Unlock()

	for _, e := range entries {
		s.runJob(ctx, e.job)
	}
}
