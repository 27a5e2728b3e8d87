package job

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"cinemaplus/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type entry struct {
	job     Job
	id      cron.EntryID
	running atomic.Bool
}

type Scheduler struct {
	cron    *cron.Cron
	locker  Locker
	lockTTL time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	entries map[string]*entry

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler evaluates cron expressions (with a seconds field) in loc.
func NewScheduler(loc *time.Location, locker Locker, lockTTL time.Duration, logger *slog.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		locker:  locker,
		lockTTL: lockTTL,
		logger:  logger,
		entries: make(map[string]*entry),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Register adds j to the schedule. Names must be unique.
func (s *Scheduler) Register(j Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.entries[j.Name()]; dup {
		return errs.Newf("job %q already registered", j.Name())
	}

	e := &entry{job: j}
	id, err := s.cron.AddFunc(j.Spec(), func() { s.tick(e) })
	if err != nil {
		return errs.Wrapf(err, "invalid schedule %q for job %s", j.Spec(), j.Name())
	}
	e.id = id
	s.entries[j.Name()] = e

	s.logger.Info("job registered", slog.String("job", j.Name()), slog.String("spec", j.Spec()))
	return nil
}

func (s *Scheduler) Start(context.Context) error {
	s.cron.Start()
	s.logger.Info("scheduler started", slog.Int("jobs", len(s.Names())))
	return nil
}

// Stop cancels running jobs and waits for them until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "scheduler did not stop in time")
	}
}

// Names lists registered jobs in alphabetical order.
func (s *Scheduler) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunNow runs a registered job synchronously. It shares the running guard with
// scheduled ticks, so it fails with ErrJobAlreadyRunning instead of overlapping.
func (s *Scheduler) RunNow(ctx context.Context, name string) (int, error) {
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return 0, errs.Wrapf(errs.ErrJobNotFound, "job %s", name)
	}
	return s.execute(ctx, e, "manual")
}

func (s *Scheduler) tick(e *entry) {
	_, err := s.execute(s.ctx, e, "schedule")
	if err != nil && errs.Is(err, errs.ErrJobAlreadyRunning) {
		s.logger.Debug("job tick skipped", slog.String("job", e.job.Name()), slog.String("reason", err.Error()))
	}
}

func (s *Scheduler) execute(ctx context.Context, e *entry, trigger string) (affected int, err error) {
	name := e.job.Name()

	if !e.running.CompareAndSwap(false, true) {
		return 0, errs.Wrapf(errs.ErrJobAlreadyRunning, "job %s", name)
	}
	defer e.running.Store(false)

	release, ok, err := s.locker.TryLock(ctx, name, s.lockTTL)
	if err != nil {
		s.logger.Warn("job lock unavailable", slog.String("job", name), slog.String("error", err.Error()))
		return 0, err
	}
	if !ok {
		return 0, errs.Wrapf(errs.ErrJobAlreadyRunning, "job %s is held by another instance", name)
	}
	defer release(context.WithoutCancel(ctx))

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf("job %s panicked: %v", name, r)
		}

		attrs := []any{
			slog.String("job", name),
			slog.String("trigger", trigger),
			slog.Duration("duration", time.Since(start)),
			slog.Int("affected", affected),
		}
		if err != nil {
			s.logger.Error("job failed", append(attrs, slog.String("error", err.Error()))...)
			return
		}
		s.logger.Info("job finished", attrs...)
	}()

	return e.job.Run(ctx)
}

// cronLogger forwards robfig/cron's logr-style calls to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(fmt.Sprintf("cron: %s", msg), keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(fmt.Sprintf("cron: %s", msg), append(keysAndValues, "error", err)...)
}
