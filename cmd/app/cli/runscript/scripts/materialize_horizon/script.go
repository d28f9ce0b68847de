package script_materialize_horizon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/marquee-live/backoffice/internal/pkg/caldate"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	slug := ctx.String("org")
	days := ctx.Int("days")

	log.Info().Str("org", slug).Int("days", days).Msg("running script")

	org, err := deps.OrgRepo.GetOrgBySlug(ctx.Context, slug)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve organization %s", slug)
	}

	events, err := deps.EventRepo.ListWeeklyEvents(ctx.Context, org.OrgID)
	if err != nil {
		return errors.Wrap(err, "failed to list weekly events")
	}

	start := caldate.Today()
	end := start.AddDays(days)

	created := 0
	for _, event := range events {
		instances, err := deps.EventInstanceService.Materialize(
			ctx.Context, org.OrgID, event.EventID, start.String(), end.String())
		if err != nil {
			return errors.Wrapf(err, "failed to materialize event %d", event.EventID)
		}
		created += len(instances)
	}

	log.Info().Int("events", len(events)).Int("created", created).Msg("script finished")

	return nil
}
