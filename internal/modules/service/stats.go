package service

import (
	"context"

	"github.com/atriumstudio/atrium/internal/modules/repo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}

// StatsOverview joins the two aggregate procedures into one dashboard payload.
// InProgressSubmissions is derived, never read from the store.
type StatsOverview struct {
	Projects repo.ProjectStats `json:"projects"`
	Contacts ContactOverview   `json:"contacts"`
}

type ContactOverview struct {
	repo.ContactStats
	InProgressSubmissions int64 `json:"in_progress_submissions"`
}

type statsService struct {
	projects repo.ProjectRepo
	contacts repo.ContactRepo
	log      *zap.Logger
}

func NewStatsService(projects repo.ProjectRepo, contacts repo.ContactRepo, log *zap.Logger) StatsService {
	return &statsService{projects: projects, contacts: contacts, log: log}
}

func (s *statsService) Overview(ctx context.Context) (*StatsOverview, error) {
	var (
		pStats *repo.ProjectStats
		cStats *repo.ContactStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pStats, err = s.projects.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cStats, err = s.contacts.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(err)
	}

	inProgress := cStats.TotalSubmissions - cStats.NewSubmissions - cStats.CompletedSubmissions
	if inProgress < 0 {
		// The store changed between counts; clamp rather than report nonsense.
		s.log.Warn("negative derived in-progress count, clamping to zero",
			zap.Int64("total", cStats.TotalSubmissions),
			zap.Int64("new", cStats.NewSubmissions),
			zap.Int64("completed", cStats.CompletedSubmissions))
		inProgress = 0
	}

	return &StatsOverview{
		Projects: *pStats,
		Contacts: ContactOverview{
			ContactStats:          *cStats,
			InProgressSubmissions: inProgress,
		},
	}, nil
}
