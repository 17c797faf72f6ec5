// internal/service/campaign_service.go
package service

import (
	"github.com/contentforge/contentforge-backend/internal/events"
	"github.com/contentforge/contentforge-backend/internal/model"
	"github.com/contentforge/contentforge-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	PieceRepo    repository.ContentPieceRepositoryInterface
	VersionRepo  repository.ContentVersionRepositoryInterface
	Notifier     events.Notifier
}

type CreateCampaignInput struct {
	Name            string
	Description     string
	TargetLanguages []string
	TargetMarkets   []string
}

type UpdateCampaignInput struct {
	Name            *string
	Description     *string
	Status          *model.CampaignStatus
	TargetLanguages []string
	TargetMarkets   []string
}

// CampaignStats counts content pieces per review state. NEEDS_REVISION pieces
// count toward the total only; that partial coverage is intentional.
type CampaignStats struct {
	TotalContentPieces int `json:"total_content_pieces"`
	DraftCount         int `json:"draft_count"`
	AiSuggestedCount   int `json:"ai_suggested_count"`
	UnderReviewCount   int `json:"under_review_count"`
	ApprovedCount      int `json:"approved_count"`
	RejectedCount      int `json:"rejected_count"`
}

func (s *CampaignService) CreateCampaign(input CreateCampaignInput) (*model.Campaign, error) {
	c := &model.Campaign{
		Name:            input.Name,
		Description:     input.Description,
		Status:          model.CampaignDraft,
		TargetLanguages: input.TargetLanguages,
		TargetMarkets:   input.TargetMarkets,
	}
	if len(c.TargetLanguages) == 0 {
		c.TargetLanguages = []string{"en"}
	}
	if c.TargetMarkets == nil {
		c.TargetMarkets = []string{}
	}

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicCampaignCreated, c)
	return c, nil
}

// ListCampaigns loads every campaign with its content pieces and their
// versions, newest-updated campaigns first.
func (s *CampaignService) ListCampaigns() ([]*model.Campaign, error) {
	campaigns, err := s.CampaignRepo.List()
	if err != nil {
		return nil, err
	}
	for _, c := range campaigns {
		if err := s.loadPieces(c); err != nil {
			return nil, err
		}
	}
	return campaigns, nil
}

// GetCampaign loads a campaign together with its content pieces and their
// versions.
func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	campaign, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.loadPieces(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) loadPieces(c *model.Campaign) error {
	pieces, err := s.PieceRepo.ListByCampaign(c.ID)
	if err != nil {
		return err
	}

	c.ContentPieces = make([]model.ContentPiece, len(pieces))
	for i, p := range pieces {
		versions, err := s.VersionRepo.ListByPiece(p.ID)
		if err != nil {
			return err
		}
		p.Versions = make([]model.ContentVersion, len(versions))
		for j, v := range versions {
			p.Versions[j] = *v
		}
		c.ContentPieces[i] = *p
	}
	return nil
}

// UpdateCampaign merges the supplied fields unconditionally; there is no
// status transition graph.
func (s *CampaignService) UpdateCampaign(id string, input UpdateCampaignInput) (*model.Campaign, error) {
	campaign, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.Status != nil {
		campaign.Status = *input.Status
	}
	if input.TargetLanguages != nil {
		campaign.TargetLanguages = input.TargetLanguages
	}
	if input.TargetMarkets != nil {
		campaign.TargetMarkets = input.TargetMarkets
	}

	if err := s.CampaignRepo.Update(campaign); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicCampaignUpdated, campaign)
	return campaign, nil
}

func (s *CampaignService) DeleteCampaign(id string) (bool, error) {
	deleted, err := s.CampaignRepo.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.Notifier.Publish(events.TopicCampaignDeleted, map[string]string{"id": id})
	}
	return deleted, nil
}

func (s *CampaignService) GetCampaignStats(id string) (*CampaignStats, error) {
	if _, err := s.CampaignRepo.GetByID(id); err != nil {
		return nil, err
	}

	counts, err := s.PieceRepo.CountByReviewState(id)
	if err != nil {
		return nil, err
	}

	stats := &CampaignStats{
		DraftCount:       counts[model.ReviewDraft],
		AiSuggestedCount: counts[model.ReviewAISuggested],
		UnderReviewCount: counts[model.ReviewUnderReview],
		ApprovedCount:    counts[model.ReviewApproved],
		RejectedCount:    counts[model.ReviewRejected],
	}
	for _, count := range counts {
		stats.TotalContentPieces += count
	}

	return stats, nil
}
