package marketing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the store marketing needs.
type StateStore interface {
	UpdateMarketing(fn func(*State) error) error
	ViewMarketing(fn func(State))
}

// Service owns campaign commands.
type Service struct {
	store StateStore
	clock shared.Clock
}

// NewService wires the marketing service.
func NewService(store StateStore, clock shared.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// NewCampaignInput carries the create-campaign form.
type NewCampaignInput struct {
	Name      string
	Channel   string
	StartDate string
	EndDate   string
	Budget    decimal.Decimal
}

// CreateCampaign opens a campaign in planning.
func (s *Service) CreateCampaign(in NewCampaignInput) (Campaign, error) {
	c := Campaign{
		ID:        shared.NewCode("CMP"),
		Name:      in.Name,
		Channel:   in.Channel,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Budget:    in.Budget,
		Status:    CampaignPlanning,
	}
	if c.StartDate == "" {
		c.StartDate = s.clock.Today()
	}
	err := s.store.UpdateMarketing(func(st *State) error {
		st.Campaigns = append([]Campaign{c}, st.Campaigns...)
		return nil
	})
	if err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// ListCampaigns returns campaigns, newest first.
func (s *Service) ListCampaigns() []Campaign {
	var out []Campaign
	s.store.ViewMarketing(func(st State) {
		out = append([]Campaign(nil), st.Campaigns...)
	})
	return out
}

// ChangeStatus moves a campaign through its lifecycle.
func (s *Service) ChangeStatus(id string, status CampaignStatus) (Campaign, error) {
	var updated Campaign
	err := s.store.UpdateMarketing(func(st *State) error {
		c := st.FindCampaign(id)
		if c == nil {
			return fmt.Errorf("change status of %q: %w", id, ErrCampaignNotFound)
		}
		c.Status = status
		updated = *c
		return nil
	})
	if err != nil {
		return Campaign{}, err
	}
	return updated, nil
}
