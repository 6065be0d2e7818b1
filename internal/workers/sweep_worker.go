package workers

import (
	"context"

	"talentsite_backend/internal/logger"
	"talentsite_backend/internal/services"

	"github.com/robfig/cron/v3"
)

// SweepWorker периодически запускает сверку хранилища с базой
// и убирает осиротевшие файлы
type SweepWorker struct {
	reconciler services.Reconciler
	schedule   string
	cron       *cron.Cron
}

func NewSweepWorker(reconciler services.Reconciler, schedule string) *SweepWorker {
	return &SweepWorker{
		reconciler: reconciler,
		schedule:   schedule,
		cron:       cron.New(),
	}
}

// Start регистрирует задачу и запускает планировщик
func (w *SweepWorker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		err := w.reconciler.ReconcileAll(context.Background())
		logger.WorkerLog("sweep", "reconcile_orphans", err)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("orphan sweep scheduled", "worker", "sweep", "schedule", w.schedule)
	return nil
}

// Stop останавливает планировщик и дожидается текущего запуска
func (w *SweepWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}
