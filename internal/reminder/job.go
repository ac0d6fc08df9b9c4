package reminder

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/umurava/maternalcare-booking/internal/config"
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/notify"
)

// reservationStore is the slice of the appointment repository the job
// needs.
type reservationStore interface {
	ListNeedingReminder(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// contactResolver maps the opaque owner reference of a reservation to
// a deliverable contact. The hosting layer supplies the implementation.
type contactResolver interface {
	Resolve(ctx context.Context, ownerRef string) (notify.Contact, error)
}

// notifier sends the reminder itself.
type notifier interface {
	BookingReminder(contact notify.Contact, res *domain.Reservation) error
}

type logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Job sends 24-hour appointment reminders. It runs on a cron schedule
// (hourly by default), picks up scheduled reservations dated inside the
// 23 to 25 hour window, and flips the reminder flag only after the
// reminder was delivered, so a failed send is retried on the next run.
type Job struct {
	cfg      config.ReminderConfig
	store    reservationStore
	contacts contactResolver
	notifier notifier
	logger   logger

	cron *cron.Cron
	// now is swappable in tests.
	now func() time.Time
}

func NewJob(cfg config.ReminderConfig, store reservationStore, contacts contactResolver, n notifier, log logger) *Job {
	return &Job{
		cfg:      cfg,
		store:    store,
		contacts: contacts,
		notifier: n,
		logger:   log,
		now:      time.Now,
	}
}

// Start registers the reminder check with the cron scheduler and starts
// it. A no-op when the job is disabled in config.
func (j *Job) Start() error {
	if !j.cfg.Enabled {
		j.logger.Info("reminder: job disabled in config")
		return nil
	}

	j.cron = cron.New()
	if _, err := j.cron.AddFunc(j.cfg.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("reminder: job scheduled with spec %q", j.cfg.CronSpec)
	return nil
}

// Stop halts the scheduler, letting an in-flight run finish.
func (j *Job) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

// Run executes one reminder sweep. Exported so a run can also be
// triggered outside the schedule.
func (j *Job) Run(ctx context.Context) {
	now := j.now()
	from := now.Add(23 * time.Hour)
	to := now.Add(25 * time.Hour)

	// The date column has no time of day, so the query brackets whole
	// days and the exact window is re-checked per reservation below.
	reservations, err := j.store.ListNeedingReminder(ctx, from, to)
	if err != nil {
		j.logger.Error("reminder: listing reservations failed: %v", err)
		return
	}
	if len(reservations) == 0 {
		j.logger.Info("reminder: no reservations need a reminder")
		return
	}
	j.logger.Info("reminder: found %d candidate reservations", len(reservations))

	sent := 0
	for _, res := range reservations {
		hoursUntil, err := hoursUntilStart(now, res)
		if err != nil {
			j.logger.Warn("reminder: reservation id=%d has invalid start time %q: %v", res.ID, res.StartTime, err)
			continue
		}
		if hoursUntil < 23 || hoursUntil > 25 {
			continue
		}

		contact, err := j.contacts.Resolve(ctx, res.OwnerRef)
		if err != nil {
			j.logger.Warn("reminder: no contact for reservation id=%d owner=%s: %v", res.ID, res.OwnerRef, err)
			continue
		}
		if contact.Email == "" {
			j.logger.Warn("reminder: owner %s has no email, skipping reservation id=%d", res.OwnerRef, res.ID)
			continue
		}

		if err := j.notifier.BookingReminder(contact, res); err != nil {
			j.logger.Error("reminder: sending reminder for reservation id=%d failed: %v", res.ID, err)
			continue
		}
		if err := j.store.MarkReminderSent(ctx, res.ID); err != nil {
			j.logger.Error("reminder: marking reservation id=%d as reminded failed: %v", res.ID, err)
			continue
		}
		j.logger.Info("reminder: reminder sent for reservation id=%d to %s", res.ID, contact.Email)
		sent++
	}

	j.logger.Info("reminder: sweep complete, %d reminders sent", sent)
}

func hoursUntilStart(now time.Time, res *domain.Reservation) (float64, error) {
	minutes, err := res.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	start := time.Date(res.Date.Year(), res.Date.Month(), res.Date.Day(), 0, 0, 0, 0, now.Location()).
		Add(time.Duration(minutes) * time.Minute)
	return start.Sub(now).Hours(), nil
}
