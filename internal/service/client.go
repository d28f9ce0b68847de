package service

import (
	"context"
	"time"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/repo"
)

type Client struct {
	ClientRepo *repo.Client
}

func NewClient(clientRepo *repo.Client) *Client {
	return &Client{ClientRepo: clientRepo}
}

func (s *Client) GetClients(ctx context.Context, orgID int) ([]*model.Client, error) {
	return s.ClientRepo.GetClients(ctx, orgID)
}

func (s *Client) GetClientByID(ctx context.Context, orgID, clientID int) (*model.Client, error) {
	return s.ClientRepo.GetClientByID(ctx, orgID, clientID)
}

func (s *Client) CreateClient(ctx context.Context, orgID int, req *types.ClientRequest) (*model.Client, error) {
	now := time.Now()
	client := &model.Client{
		OrgID:     orgID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ClientRepo.CreateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Client) UpdateClient(ctx context.Context, orgID, clientID int, req *types.ClientRequest) (*model.Client, error) {
	client := &model.Client{
		ClientID:  clientID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		UpdatedAt: time.Now(),
	}
	if err := s.ClientRepo.UpdateClient(ctx, orgID, client); err != nil {
		return nil, err
	}
	return s.ClientRepo.GetClientByID(ctx, orgID, clientID)
}

func (s *Client) DeleteClient(ctx context.Context, orgID, clientID int) error {
	return s.ClientRepo.DeleteClient(ctx, orgID, clientID)
}
