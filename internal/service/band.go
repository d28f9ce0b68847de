package service

import (
	"context"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/repo"
)

type Band struct {
	BandRepo *repo.Band
}

func NewBand(bandRepo *repo.Band) *Band {
	return &Band{BandRepo: bandRepo}
}

func (s *Band) GetBands(ctx context.Context, orgID int) ([]*model.Band, error) {
	return s.BandRepo.GetBands(ctx, orgID)
}

func (s *Band) GetBandByID(ctx context.Context, orgID, bandID int) (*model.Band, error) {
	return s.BandRepo.GetBandByID(ctx, orgID, bandID)
}

func (s *Band) CreateBand(ctx context.Context, orgID int, req *types.BandRequest) (*model.Band, error) {
	band := &model.Band{
		OrgID:       orgID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.BandRepo.CreateBand(ctx, band); err != nil {
		return nil, err
	}
	return band, nil
}

func (s *Band) UpdateBand(ctx context.Context, orgID, bandID int, req *types.BandRequest) (*model.Band, error) {
	band := &model.Band{
		BandID:      bandID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.BandRepo.UpdateBand(ctx, orgID, band); err != nil {
		return nil, err
	}
	return s.BandRepo.GetBandByID(ctx, orgID, bandID)
}

func (s *Band) DeleteBand(ctx context.Context, orgID, bandID int) error {
	return s.BandRepo.DeleteBand(ctx, orgID, bandID)
}
