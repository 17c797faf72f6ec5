// internal/service/content_service.go
package service

import (
	"github.com/contentforge/contentforge-backend/internal/ai"
	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/events"
	"github.com/contentforge/contentforge-backend/internal/model"
	"github.com/contentforge/contentforge-backend/internal/repository"
)

type ContentService struct {
	PieceRepo    repository.ContentPieceRepositoryInterface
	VersionRepo  repository.ContentVersionRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	AI           ai.Gateway
	Notifier     events.Notifier
}

type CreateContentPieceInput struct {
	CampaignID     string
	Title          string
	Type           model.ContentType
	Briefing       string
	TargetAudience string
	Tone           string
	Keywords       []string
	SourceLanguage string
}

type UpdateContentPieceInput struct {
	Title          *string
	Briefing       *string
	TargetAudience *string
	Tone           *string
	Keywords       []string
	ReviewState    *model.ReviewState
}

// CreateContentPiece rejects pieces referencing a missing campaign before any
// write happens.
func (s *ContentService) CreateContentPiece(input CreateContentPieceInput) (*model.ContentPiece, error) {
	if _, err := s.CampaignRepo.GetByID(input.CampaignID); err != nil {
		if appErrors.IsNotFound(err) {
			return nil, appErrors.NewValidation("campaign with ID %s not found", input.CampaignID)
		}
		return nil, err
	}

	piece := &model.ContentPiece{
		CampaignID:     input.CampaignID,
		Title:          input.Title,
		Type:           input.Type,
		ReviewState:    model.ReviewDraft,
		SourceLanguage: input.SourceLanguage,
		Briefing:       input.Briefing,
		TargetAudience: input.TargetAudience,
		Tone:           input.Tone,
		Keywords:       input.Keywords,
	}

	if err := s.PieceRepo.Create(piece); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicContentPieceCreated, piece)
	return piece, nil
}

// ListContentPieces loads every piece together with its versions.
func (s *ContentService) ListContentPieces() ([]*model.ContentPiece, error) {
	pieces, err := s.PieceRepo.List()
	if err != nil {
		return nil, err
	}
	for _, p := range pieces {
		if err := s.attachVersions(p); err != nil {
			return nil, err
		}
	}
	return pieces, nil
}

func (s *ContentService) ListByCampaign(campaignID string) ([]*model.ContentPiece, error) {
	pieces, err := s.PieceRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	for _, p := range pieces {
		if err := s.attachVersions(p); err != nil {
			return nil, err
		}
	}
	return pieces, nil
}

// GetContentPiece loads a piece together with its versions.
func (s *ContentService) GetContentPiece(id string) (*model.ContentPiece, error) {
	piece, err := s.PieceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.attachVersions(piece); err != nil {
		return nil, err
	}
	return piece, nil
}

func (s *ContentService) attachVersions(p *model.ContentPiece) error {
	versions, err := s.VersionRepo.ListByPiece(p.ID)
	if err != nil {
		return err
	}
	p.Versions = make([]model.ContentVersion, len(versions))
	for i, v := range versions {
		p.Versions[i] = *v
	}
	return nil
}

// UpdateContentPiece merges the supplied fields unconditionally. Review states
// are plain labels: any state may be set from any other.
func (s *ContentService) UpdateContentPiece(id string, input UpdateContentPieceInput) (*model.ContentPiece, error) {
	piece, err := s.PieceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		piece.Title = *input.Title
	}
	if input.Briefing != nil {
		piece.Briefing = *input.Briefing
	}
	if input.TargetAudience != nil {
		piece.TargetAudience = *input.TargetAudience
	}
	if input.Tone != nil {
		piece.Tone = *input.Tone
	}
	if input.Keywords != nil {
		piece.Keywords = input.Keywords
	}
	if input.ReviewState != nil {
		piece.ReviewState = *input.ReviewState
	}

	if err := s.PieceRepo.Update(piece); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicContentPieceUpdated, piece)
	return piece, nil
}

func (s *ContentService) DeleteContentPiece(id string) (bool, error) {
	deleted, err := s.PieceRepo.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.Notifier.Publish(events.TopicContentPieceDeleted, map[string]string{"id": id})
	}
	return deleted, nil
}

// GenerateAiContent produces an AI version for a piece and moves the piece to
// AI_SUGGESTED regardless of its prior state. Gateway failures propagate
// unchanged; there is no retry or fallback content.
func (s *ContentService) GenerateAiContent(contentPieceID string, provider model.AiProvider) (*model.ContentVersion, error) {
	piece, err := s.PieceRepo.GetByID(contentPieceID)
	if err != nil {
		return nil, err
	}

	if provider == "" {
		provider = model.ProviderOpenAI
	}

	result, err := s.AI.GenerateContent(ai.GenerateContentRequest{
		Type:           piece.Type,
		Briefing:       piece.Briefing,
		TargetAudience: piece.TargetAudience,
		Tone:           piece.Tone,
		Keywords:       piece.Keywords,
		Language:       piece.SourceLanguage,
		Provider:       provider,
	})
	if err != nil {
		return nil, err
	}

	analysis := s.AI.AnalyzeContent(result.Content)

	version := &model.ContentVersion{
		ContentPieceID:    piece.ID,
		Content:           result.Content,
		Language:          piece.SourceLanguage,
		Type:              model.VersionAIGenerated,
		AiProvider:        provider,
		AiModel:           metadataModel(result.Metadata),
		AiMetadata:        result.Metadata,
		SentimentAnalysis: analysis.AsMap(),
		IsActive:          false,
	}
	if err := s.VersionRepo.Create(version, false); err != nil {
		return nil, err
	}

	if err := s.PieceRepo.UpdateReviewState(piece.ID, model.ReviewAISuggested); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicAIGenerated, version)
	return version, nil
}

// TranslateContent creates an AI_TRANSLATED version under the source version's
// piece. Unlike generation it leaves the piece's review state alone.
func (s *ContentService) TranslateContent(contentVersionID, targetLanguage string, provider model.AiProvider) (*model.ContentVersion, error) {
	source, err := s.VersionRepo.GetByID(contentVersionID)
	if err != nil {
		return nil, err
	}

	piece, err := s.PieceRepo.GetByID(source.ContentPieceID)
	if err != nil {
		return nil, err
	}

	if provider == "" {
		provider = model.ProviderOpenAI
	}

	result, err := s.AI.TranslateContent(ai.TranslateContentRequest{
		Content:        source.Content,
		SourceLanguage: source.Language,
		TargetLanguage: targetLanguage,
		Context:        piece.Briefing,
		Provider:       provider,
	})
	if err != nil {
		return nil, err
	}

	analysis := s.AI.AnalyzeContent(result.Content)

	version := &model.ContentVersion{
		ContentPieceID:    source.ContentPieceID,
		Content:           result.Content,
		Language:          targetLanguage,
		Type:              model.VersionAITranslated,
		AiProvider:        provider,
		AiModel:           metadataModel(result.Metadata),
		AiMetadata:        result.Metadata,
		SentimentAnalysis: analysis.AsMap(),
		IsActive:          false,
	}
	if err := s.VersionRepo.Create(version, false); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicAITranslated, version)
	return version, nil
}

// CreateManualVersion inserts a new active ORIGINAL version. Siblings are
// deactivated in the same transaction so the single-active invariant holds.
func (s *ContentService) CreateManualVersion(contentPieceID, content, language string) (*model.ContentVersion, error) {
	if language == "" {
		language = "en"
	}

	version := &model.ContentVersion{
		ContentPieceID: contentPieceID,
		Content:        content,
		Language:       language,
		Type:           model.VersionOriginal,
		IsActive:       true,
	}
	if err := s.VersionRepo.Create(version, true); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicVersionCreated, version)
	return version, nil
}

// UpdateVersionContent rewrites a version in place and reclassifies it as
// HUMAN_EDITED whatever its prior type. Empty review notes leave the previous
// notes untouched; there is no clearing mechanism.
func (s *ContentService) UpdateVersionContent(contentVersionID, content, reviewNotes string) (*model.ContentVersion, error) {
	version, err := s.VersionRepo.GetByID(contentVersionID)
	if err != nil {
		return nil, err
	}

	version.Content = content
	version.Type = model.VersionHumanEdited
	if reviewNotes != "" {
		version.ReviewNotes = reviewNotes
	}

	if err := s.VersionRepo.Update(version); err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicVersionUpdated, version)
	return version, nil
}

// SetActiveVersion promotes one version and demotes its siblings atomically.
func (s *ContentService) SetActiveVersion(contentVersionID string) (*model.ContentVersion, error) {
	version, err := s.VersionRepo.SetActive(contentVersionID)
	if err != nil {
		return nil, err
	}

	s.Notifier.Publish(events.TopicVersionActivated, version)
	return version, nil
}

func (s *ContentService) GetVersion(id string) (*model.ContentVersion, error) {
	return s.VersionRepo.GetByID(id)
}

func (s *ContentService) ListVersions(contentPieceID string) ([]*model.ContentVersion, error) {
	return s.VersionRepo.ListByPiece(contentPieceID)
}

func metadataModel(metadata model.JSONMap) string {
	m, _ := metadata["model"].(string)
	return m
}
