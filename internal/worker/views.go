// Package worker hosts the background consumers that drain queued events.
package worker

import (
	"context"
	"errors"

	mq "github.com/atriumstudio/atrium/internal/infra/queue"
	"github.com/atriumstudio/atrium/internal/modules/repo"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// ViewWorker applies queued view-counter bumps to the project store.
type ViewWorker struct {
	consumer *mq.Consumer
	projects repo.ProjectRepo
	log      *zap.Logger
}

func NewViewWorker(consumer *mq.Consumer, projects repo.ProjectRepo, log *zap.Logger) *ViewWorker {
	return &ViewWorker{consumer: consumer, projects: projects, log: log}
}

type viewEvent struct {
	ProjectID string `json:"project_id"`
}

// Run consumes until ctx is cancelled. Malformed payloads are logged and
// dropped; store failures are returned so the message requeues.
func (w *ViewWorker) Run(ctx context.Context) error {
	return w.consumer.Handle(ctx, func(body []byte) error {
		var ev viewEvent
		if err := sonic.Unmarshal(body, &ev); err != nil || ev.ProjectID == "" {
			w.log.Warn("dropping malformed view event",
				zap.ByteString("body", body), zap.Error(err))
			return nil
		}
		if err := w.projects.IncrementViews(ctx, ev.ProjectID); err != nil {
			// A missing project is stale, not retryable.
			if errors.Is(err, repo.ErrNotFound) {
				w.log.Warn("dropping view event for unknown project",
					zap.String("project_id", ev.ProjectID))
				return nil
			}
			return err
		}
		return nil
	})
}
