package service

import (
	"context"
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/pkg/pubstatus"
	"github.com/marquee-live/backoffice/internal/repo"
)

type Event struct {
	EventRepo *repo.Event
	Feed      *Feed
}

func NewEvent(eventRepo *repo.Event, feed *Feed) *Event {
	return &Event{
		EventRepo: eventRepo,
		Feed:      feed,
	}
}

func (s *Event) GetEvents(ctx context.Context, orgID int) ([]*model.Event, error) {
	events, err := s.EventRepo.GetEvents(ctx, orgID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, event := range events {
		event.Status = pubstatus.Compute(event.Window(), now)
	}
	return events, nil
}

func (s *Event) GetEventByID(ctx context.Context, orgID, eventID int) (*model.Event, error) {
	event, err := s.EventRepo.GetEventByID(ctx, orgID, eventID)
	if err != nil {
		return nil, err
	}
	event.Status = pubstatus.Compute(event.Window(), time.Now())
	return event, nil
}

func (s *Event) CreateEvent(ctx context.Context, orgID int, req *types.CreateEventRequest) (*model.Event, error) {
	event, err := eventFromRequest(orgID, req)
	if err != nil {
		return nil, err
	}

	if err := s.EventRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	event.Status = pubstatus.Compute(event.Window(), time.Now())
	s.Feed.EventChanged(ctx, orgID, event.EventID, "event.created")
	return event, nil
}

func (s *Event) UpdateEvent(ctx context.Context, orgID, eventID int, req *types.UpdateEventRequest) (*model.Event, error) {
	event, err := eventFromRequest(orgID, (*types.CreateEventRequest)(req))
	if err != nil {
		return nil, err
	}
	event.EventID = eventID

	if err := s.EventRepo.UpdateEvent(ctx, orgID, event); err != nil {
		return nil, err
	}

	s.Feed.EventChanged(ctx, orgID, eventID, "event.updated")
	return s.GetEventByID(ctx, orgID, eventID)
}

func (s *Event) DeleteEvent(ctx context.Context, orgID, eventID int) error {
	if err := s.EventRepo.DeleteEvent(ctx, orgID, eventID); err != nil {
		return err
	}
	s.Feed.EventChanged(ctx, orgID, eventID, "event.deleted")
	return nil
}

// eventFromRequest maps a request onto a model and enforces the scheduling
// mode invariant: a weekly template must carry a day of week and never a
// concrete start date; a one-off must carry full timestamps and no day of
// week.
func eventFromRequest(orgID int, req *types.CreateEventRequest) (*model.Event, error) {
	if req.IsWeekly {
		if !req.DayOfWeek.Valid {
			return nil, mqerr.ErrInvalidReq.Msg("a weekly event requires dayOfWeek")
		}
	} else {
		if req.DayOfWeek.Valid {
			return nil, mqerr.ErrInvalidReq.Msg("dayOfWeek is only valid on weekly events")
		}
		if !req.StartsAt.Valid || !req.EndsAt.Valid {
			return nil, mqerr.ErrInvalidReq.Msg("a one-off event requires startsAt and endsAt")
		}
	}

	var override null.String
	if req.Draft {
		override = null.StringFrom(string(pubstatus.StatusDraft))
	}

	now := time.Now()
	return &model.Event{
		OrgID:            orgID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		EventType:        req.EventType,
		IsWeekly:         req.IsWeekly,
		DayOfWeek:        req.DayOfWeek,
		StartsAt:         req.StartsAt,
		EndsAt:           req.EndsAt,
		PublishStartAt:   req.PublishStartAt,
		PublishEndAt:     req.PublishEndAt,
		StatusOverride:   override,
		IsFeatured:       req.IsFeatured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
