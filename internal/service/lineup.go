package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/repo"
)

type Lineup struct {
	BandRepo              *repo.Band
	EventRepo             *repo.Event
	EventBandRepo         *repo.EventBand
	EventInstanceRepo     *repo.EventInstance
	EventInstanceBandRepo *repo.EventInstanceBand
	Feed                  *Feed
}

func NewLineup(
	bandRepo *repo.Band,
	eventRepo *repo.Event,
	eventBandRepo *repo.EventBand,
	eventInstanceRepo *repo.EventInstance,
	eventInstanceBandRepo *repo.EventInstanceBand,
	feed *Feed,
) *Lineup {
	return &Lineup{
		BandRepo:              bandRepo,
		EventRepo:             eventRepo,
		EventBandRepo:         eventBandRepo,
		EventInstanceRepo:     eventInstanceRepo,
		EventInstanceBandRepo: eventInstanceBandRepo,
		Feed:                  feed,
	}
}

// SetEventLineup replaces the template-level lineup of the event: the new
// set applies to every occurrence that has no instance-level lineup of its
// own. An empty bandIDs clears the lineup.
func (s *Lineup) SetEventLineup(ctx context.Context, orgID, eventID int, bandIDs []int) ([]*model.EventBand, error) {
	event, err := s.EventRepo.GetEventByID(ctx, orgID, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.validateBandOwnership(ctx, orgID, bandIDs); err != nil {
		return nil, err
	}

	rows := lo.Map(bandIDs, func(bandID, i int) *model.EventBand {
		return &model.EventBand{EventID: event.EventID, BandID: bandID, Ord: i}
	})
	if err := s.EventBandRepo.ReplaceLineup(ctx, event.EventID, rows); err != nil {
		return nil, err
	}

	s.Feed.EventChanged(ctx, orgID, event.EventID, "event.lineup.replaced")
	return rows, nil
}

// SetInstanceLineup replaces the lineup of one occurrence. The whole set is
// swapped inside a single transaction, so the cleared-but-not-yet-replaced
// state is never observable, and ord values are dense 0..N-1 by construction.
func (s *Lineup) SetInstanceLineup(ctx context.Context, orgID, instanceID int, bandIDs []int) ([]*model.EventInstanceBand, error) {
	instance, err := s.EventInstanceRepo.GetInstanceByID(ctx, orgID, instanceID)
	if err != nil {
		return nil, err
	}
	if err := s.validateBandOwnership(ctx, orgID, bandIDs); err != nil {
		return nil, err
	}

	rows := lo.Map(bandIDs, func(bandID, i int) *model.EventInstanceBand {
		return &model.EventInstanceBand{InstanceID: instance.InstanceID, BandID: bandID, Ord: i}
	})
	if err := s.EventInstanceBandRepo.ReplaceLineup(ctx, instance.InstanceID, rows); err != nil {
		return nil, err
	}

	s.Feed.InstanceChanged(ctx, orgID, instance.InstanceID, "instance.lineup.replaced")
	return rows, nil
}

// GetEffectiveLineup resolves the lineup shown for one occurrence: a
// non-empty instance-level set fully replaces the template set for that
// date, otherwise the template set applies.
func (s *Lineup) GetEffectiveLineup(ctx context.Context, orgID, instanceID int) (*types.EffectiveLineup, error) {
	instance, err := s.EventInstanceRepo.GetInstanceByID(ctx, orgID, instanceID)
	if err != nil {
		return nil, err
	}

	instanceRows, err := s.EventInstanceBandRepo.ListByInstance(ctx, instance.InstanceID)
	if err != nil {
		return nil, err
	}
	templateRows, err := s.EventBandRepo.ListByEvent(ctx, instance.EventID)
	if err != nil {
		return nil, err
	}

	source, slots := resolveLineup(instanceRows, templateRows)

	bandIDs := lo.Map(slots, func(s lineupSlot, _ int) int { return s.bandID })
	bands, err := s.BandRepo.GetBandsByIDs(ctx, orgID, bandIDs)
	if err != nil {
		return nil, err
	}
	bandsByID := lo.KeyBy(bands, func(b *model.Band) int { return b.BandID })

	entries := make([]*types.LineupEntry, 0, len(slots))
	for _, slot := range slots {
		band, ok := bandsByID[slot.bandID]
		if !ok {
			continue
		}
		entries = append(entries, &types.LineupEntry{
			BandID:      band.BandID,
			Order:       slot.ord,
			Name:        band.Name,
			Description: band.Description,
			ImageURL:    band.ImageURL,
		})
	}

	return &types.EffectiveLineup{Source: source, Entries: entries}, nil
}

type lineupSlot struct {
	bandID int
	ord    int
}

// resolveLineup applies the instance-over-template precedence rule.
func resolveLineup(instanceRows []*model.EventInstanceBand, templateRows []*model.EventBand) (string, []lineupSlot) {
	if len(instanceRows) > 0 {
		return "instance", lo.Map(instanceRows, func(r *model.EventInstanceBand, _ int) lineupSlot {
			return lineupSlot{bandID: r.BandID, ord: r.Ord}
		})
	}
	return "template", lo.Map(templateRows, func(r *model.EventBand, _ int) lineupSlot {
		return lineupSlot{bandID: r.BandID, ord: r.Ord}
	})
}

// validateBandOwnership rejects the whole replacement before any write when
// any referenced band is missing or belongs to another org.
func (s *Lineup) validateBandOwnership(ctx context.Context, orgID int, bandIDs []int) error {
	if len(bandIDs) == 0 {
		return nil
	}
	distinct := lo.Uniq(bandIDs)
	count, err := s.BandRepo.CountByIDs(ctx, orgID, distinct)
	if err != nil {
		return err
	}
	if count != len(distinct) {
		return mqerr.ErrCrossTenantReference.Msg("one or more bands do not belong to this organization")
	}
	return nil
}
