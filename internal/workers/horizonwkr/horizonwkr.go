package horizonwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/marquee-live/backoffice/internal/app/appconfig"
	"github.com/marquee-live/backoffice/internal/pkg/caldate"
	"github.com/marquee-live/backoffice/internal/pkg/observability"
	"github.com/marquee-live/backoffice/internal/repo"
	"github.com/marquee-live/backoffice/internal/service"
)

type WorkerDeps struct {
	fx.In
	EventRepo            *repo.Event
	EventInstanceService *service.EventInstance
}

type Worker struct {
	// count counts sweeps the worker has completed so far
	count int

	// interval describes the interval in-between different sweeps
	interval time.Duration

	// horizonDays is how far ahead of today each weekly event is kept
	// materialized
	horizonDays int

	// deps
	WorkerDeps
}

// Start launches the horizon sweeper: a background loop that keeps every
// weekly event materialized from today out to the configured horizon. Each
// sweep is a plain materialization run, so overlapping with manual
// materialization or a previous sweep only ever skips existing dates.
func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("horizon worker is disabled; skipping")
		return
	}
	(&Worker{
		interval:    conf.WorkerInterval,
		horizonDays: conf.WorkerHorizonDays,
		WorkerDeps:  deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			begin := time.Now()
			log.Info().
				Int("count", w.count).
				Msg("horizon sweep started")

			created := w.sweep(ctx)

			observability.WorkerRunDuration.WithLabelValues().Set(time.Since(begin).Seconds())
			observability.MaterializedInstances.WithLabelValues("worker").Add(float64(created))
			log.Info().
				Int("count", w.count).
				Int("created", created).
				Dur("duration", time.Since(begin)).
				Msg("horizon sweep finished")

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

func (w *Worker) sweep(ctx context.Context) int {
	events, err := w.EventRepo.ListWeeklyEvents(ctx, 0)
	if err != nil {
		log.Error().Err(err).Msg("horizon sweep failed to list weekly events")
		return 0
	}

	start := caldate.Today()
	end := start.AddDays(w.horizonDays)

	created := 0
	for _, event := range events {
		instances, err := w.EventInstanceService.Materialize(
			ctx, event.OrgID, event.EventID, start.String(), end.String())
		if err != nil {
			log.Error().
				Err(err).
				Int("event_id", event.EventID).
				Int("org_id", event.OrgID).
				Msg("horizon sweep failed to materialize event")
			continue
		}
		created += len(instances)
	}
	return created
}

func (w *Worker) Count() int {
	return w.count
}
