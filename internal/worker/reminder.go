package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bagdasarian/taskhub/internal/config"
	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/notify"
	"github.com/bagdasarian/taskhub/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReminderDispatcher периодически выбирает задачи с приближающимся сроком
// и рассылает напоминания создателям. Работает с системными правами,
// без авторизации вызывающей стороны.
type ReminderDispatcher struct {
	taskRepo    repository.TaskRepository
	profileRepo repository.ProfileRepository
	sender      notify.Sender
	logger      *logrus.Logger
	cfg         config.ReminderConfig
}

func NewReminderDispatcher(
	taskRepo repository.TaskRepository,
	profileRepo repository.ProfileRepository,
	sender notify.Sender,
	logger *logrus.Logger,
	cfg config.ReminderConfig,
) *ReminderDispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &ReminderDispatcher{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		sender:      sender,
		logger:      logger,
		cfg:         cfg,
	}
}

func (d *ReminderDispatcher) Start(ctx context.Context) {
	d.logger.Info("Reminder dispatcher started")

	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Reminder dispatcher shutting down...")
			return
		case <-ticker.C:
			report, err := d.RunOnce(ctx, time.Now())
			if err != nil {
				d.logger.WithError(err).Error("Reminder run failed")
				continue
			}
			d.logger.WithFields(logrus.Fields{
				"processed": report.Processed,
				"succeeded": len(report.Succeeded),
				"failed":    len(report.Failures),
			}).Info("Reminder run finished")
		}
	}
}

// RunOnce обрабатывает один батч. Ошибка одной задачи не прерывает батч:
// она записывается в отчет, задача остается reminder_sent = false и будет
// повторена в следующий запуск. Ошибкой всего запуска является только
// недоступность хранилища.
func (d *ReminderDispatcher) RunOnce(ctx context.Context, now time.Time) (*domain.ReminderReport, error) {
	due, err := d.taskRepo.GetDueForReminder(ctx, now, now.Add(d.cfg.Window))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	report := &domain.ReminderReport{}
	if len(due) == 0 {
		return report, nil
	}

	// Таймаут останавливает запуск новых задач; уже запущенные
	// доделываются с родительским контекстом, отчет возвращается частичным
	launchCtx := ctx
	if d.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		launchCtx, cancel = context.WithTimeout(ctx, d.cfg.RunTimeout)
		defer cancel()
	}

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(d.cfg.Workers)

	for _, task := range due {
		if launchCtx.Err() != nil {
			d.logger.Warn("Reminder run timed out, remaining tasks stay pending")
			break
		}

		task := task
		report.Processed++
		g.Go(func() error {
			if reason := d.process(ctx, task); reason != "" {
				d.logger.WithFields(logrus.Fields{
					"task_id": task.ID,
					"reason":  reason,
				}).Warn("Reminder failed, task left pending")
				mu.Lock()
				report.Failures = append(report.Failures, domain.ReminderFailure{
					TaskID: task.ID,
					Reason: reason,
				})
				mu.Unlock()
				return nil
			}
			mu.Lock()
			report.Succeeded = append(report.Succeeded, task.ID)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	return report, nil
}

func (d *ReminderDispatcher) process(ctx context.Context, task *domain.Task) string {
	profiles, err := d.profileRepo.GetByIDs(ctx, []string{task.UserID})
	if err != nil {
		return "creator profile lookup failed: " + err.Error()
	}

	profile, ok := profiles[task.UserID]
	if !ok {
		return "creator profile not found"
	}

	subject := fmt.Sprintf("Reminder: %q is due soon", task.Title)
	body := fmt.Sprintf("Task %q is due at %s.", task.Title, task.DueDate.Format(time.RFC1123))

	if err := d.sender.Send(profile.Email, subject, body); err != nil {
		return "notification send failed: " + err.Error()
	}

	// Флаг переключается только после успешной отправки,
	// переход false -> true происходит ровно один раз
	if err := d.taskRepo.MarkReminderSent(ctx, task.ID); err != nil {
		return "reminder_sent update failed: " + err.Error()
	}

	return ""
}
