package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/constant"
	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/pkg/caldate"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/pkg/pubstatus"
	"github.com/marquee-live/backoffice/internal/repo"
)

type EventInstance struct {
	EventRepo         *repo.Event
	EventInstanceRepo *repo.EventInstance
	Feed              *Feed
}

func NewEventInstance(eventRepo *repo.Event, eventInstanceRepo *repo.EventInstance, feed *Feed) *EventInstance {
	return &EventInstance{
		EventRepo:         eventRepo,
		EventInstanceRepo: eventInstanceRepo,
		Feed:              feed,
	}
}

// Materialize expands the weekly rule of the event over the inclusive
// [startDate, endDate] calendar range and returns only the occurrences this
// call created. Dates already materialized are skipped silently: re-running
// over an overlapping range is the expected way to extend a calendar, not an
// error. Uniqueness is enforced by the (event_id, date) index, so concurrent
// callers cannot duplicate occurrences.
func (s *EventInstance) Materialize(ctx context.Context, orgID, eventID int, startDate, endDate string) ([]*model.EventInstance, error) {
	event, err := s.EventRepo.GetEventByID(ctx, orgID, eventID)
	if err != nil {
		return nil, err
	}

	dates, err := materializationDates(event, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return []*model.EventInstance{}, nil
	}

	now := time.Now()
	instances := lo.Map(dates, func(d caldate.Date, _ int) *model.EventInstance {
		return &model.EventInstance{
			EventID:   event.EventID,
			Date:      d.Time(),
			CreatedAt: now,
			UpdatedAt: now,
		}
	})

	created, err := s.EventInstanceRepo.CreateIgnoringDuplicates(ctx, instances)
	if err != nil {
		return nil, err
	}

	for _, instance := range created {
		instance.Status = pubstatus.Compute(instance.Window(event), now)
	}

	if len(created) > 0 {
		s.Feed.InstancesMaterialized(ctx, orgID, event.EventID, len(created))
	}
	return created, nil
}

// materializationDates validates the materialization request and returns the
// candidate occurrence dates. It is pure: no storage is touched, so any
// validation failure happens before a single row could be written.
func materializationDates(event *model.Event, startDate, endDate string) ([]caldate.Date, error) {
	if !event.IsWeekly || !event.DayOfWeek.Valid {
		return nil, mqerr.ErrNotRecurring
	}

	start, err := caldate.Parse(startDate)
	if err != nil {
		return nil, err
	}
	end, err := caldate.Parse(endDate)
	if err != nil {
		return nil, err
	}

	if end.Before(start) {
		return nil, mqerr.ErrInvalidRange
	}
	if start.DaysUntil(end) > constant.MaxMaterializeRangeDays {
		return nil, mqerr.ErrInvalidRange.Msg("range exceeds %d days", constant.MaxMaterializeRangeDays)
	}

	return occurrenceDates(int(event.DayOfWeek.Int64), start, end), nil
}

// occurrenceDates walks the inclusive [start, end] range and keeps the dates
// falling on dayOfWeek (0 = Sunday). The walk aligns to the first match and
// then steps a whole week at a time; all arithmetic is integer day-based on
// date-only values, so it cannot drift across DST boundaries.
func occurrenceDates(dayOfWeek int, start, end caldate.Date) []caldate.Date {
	offset := (dayOfWeek - start.Weekday() + constant.DaysPerWeek) % constant.DaysPerWeek
	first := start.AddDays(offset)

	var dates []caldate.Date
	for d := first; !d.After(end); d = d.AddDays(constant.DaysPerWeek) {
		dates = append(dates, d)
	}
	return dates
}

func (s *EventInstance) GetInstanceByID(ctx context.Context, orgID, instanceID int) (*model.EventInstance, error) {
	instance, err := s.EventInstanceRepo.GetInstanceByID(ctx, orgID, instanceID)
	if err != nil {
		return nil, err
	}
	event, err := s.EventRepo.GetEventByID(ctx, orgID, instance.EventID)
	if err != nil {
		return nil, err
	}
	instance.Status = pubstatus.Compute(instance.Window(event), time.Now())
	return instance, nil
}

func (s *EventInstance) ListInstances(ctx context.Context, orgID, eventID int) ([]*model.EventInstance, error) {
	event, err := s.EventRepo.GetEventByID(ctx, orgID, eventID)
	if err != nil {
		return nil, err
	}
	instances, err := s.EventInstanceRepo.ListInstancesByEvent(ctx, event.EventID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, instance := range instances {
		instance.Status = pubstatus.Compute(instance.Window(event), now)
	}
	return instances, nil
}

func (s *EventInstance) UpdateInstance(ctx context.Context, orgID, instanceID int, req *types.UpdateInstanceRequest) (*model.EventInstance, error) {
	var override null.String
	if req.Draft {
		override = null.StringFrom(string(pubstatus.StatusDraft))
	}

	instance := &model.EventInstance{
		InstanceID:        instanceID,
		CustomDescription: req.CustomDescription,
		CustomImageURL:    req.CustomImageURL,
		StatusOverride:    override,
		UpdatedAt:         time.Now(),
	}
	if err := s.EventInstanceRepo.UpdateInstance(ctx, orgID, instance); err != nil {
		return nil, err
	}

	s.Feed.InstanceChanged(ctx, orgID, instanceID, "instance.updated")
	return s.GetInstanceByID(ctx, orgID, instanceID)
}

func (s *EventInstance) DeleteInstance(ctx context.Context, orgID, instanceID int) error {
	if err := s.EventInstanceRepo.DeleteInstance(ctx, orgID, instanceID); err != nil {
		return err
	}
	s.Feed.InstanceChanged(ctx, orgID, instanceID, "instance.deleted")
	return nil
}
