package marketing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle of a campaign.
type CampaignStatus string

const (
	// CampaignPlanning is being prepared.
	CampaignPlanning CampaignStatus = "PLANNING"
	// CampaignActive is running.
	CampaignActive CampaignStatus = "ACTIVE"
	// CampaignCompleted has finished.
	CampaignCompleted CampaignStatus = "COMPLETED"
	// CampaignCancelled was withdrawn.
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// ParseCampaignStatus validates a user-supplied campaign status.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(s) {
	case CampaignPlanning, CampaignActive, CampaignCompleted, CampaignCancelled:
		return CampaignStatus(s), nil
	}
	return "", ErrUnknownCampaignStatus
}

// Campaign is one marketing push. Channel is free text (a platform name
// or "معرض تجاري"), not a sales price tier.
type Campaign struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Channel   string          `json:"channel"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Budget    decimal.Decimal `json:"budget"`
	Status    CampaignStatus  `json:"status"`
}

// State is the marketing slice of the shared object graph.
type State struct {
	Campaigns []Campaign
}

// FindCampaign returns a pointer into Campaigns by id, or nil.
func (s *State) FindCampaign(id string) *Campaign {
	for i := range s.Campaigns {
		if s.Campaigns[i].ID == id {
			return &s.Campaigns[i]
		}
	}
	return nil
}

// ErrCampaignNotFound indicates an unknown campaign id.
var ErrCampaignNotFound = errors.New("marketing: campaign not found")

// ErrUnknownCampaignStatus indicates a status outside the lifecycle set.
var ErrUnknownCampaignStatus = errors.New("marketing: unknown campaign status")
