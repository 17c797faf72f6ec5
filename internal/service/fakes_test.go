package service_test

import (
	"fmt"

	"github.com/contentforge/contentforge-backend/internal/ai"
	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/model"
	"github.com/contentforge/contentforge-backend/internal/repository"
)

// In-memory fakes implementing the repository interfaces. The version fake
// mirrors the real repository's contract: sequential numbering per piece and
// optional sibling deactivation, both applied atomically from the caller's
// point of view.

type fakeCampaignRepo struct {
	campaigns map[string]*model.Campaign
	seq       int
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: map[string]*model.Campaign{}}
}

func (r *fakeCampaignRepo) Create(c *model.Campaign) error {
	r.seq++
	if c.ID == "" {
		c.ID = fmt.Sprintf("camp-%d", r.seq)
	}
	if c.Status == "" {
		c.Status = model.CampaignDraft
	}
	r.campaigns[c.ID] = c
	return nil
}

func (r *fakeCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return c, nil
}

func (r *fakeCampaignRepo) List() ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(c *model.Campaign) error {
	r.campaigns[c.ID] = c
	return nil
}

func (r *fakeCampaignRepo) Delete(id string) (bool, error) {
	if _, ok := r.campaigns[id]; !ok {
		return false, nil
	}
	delete(r.campaigns, id)
	return true, nil
}

type fakePieceRepo struct {
	pieces map[string]*model.ContentPiece
	seq    int
}

func newFakePieceRepo() *fakePieceRepo {
	return &fakePieceRepo{pieces: map[string]*model.ContentPiece{}}
}

func (r *fakePieceRepo) Create(p *model.ContentPiece) error {
	r.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("piece-%d", r.seq)
	}
	if p.ReviewState == "" {
		p.ReviewState = model.ReviewDraft
	}
	if p.SourceLanguage == "" {
		p.SourceLanguage = "en"
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	r.pieces[p.ID] = p
	return nil
}

func (r *fakePieceRepo) GetByID(id string) (*model.ContentPiece, error) {
	p, ok := r.pieces[id]
	if !ok {
		return nil, appErrors.NewContentPieceNotFound(id)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePieceRepo) List() ([]*model.ContentPiece, error) {
	out := []*model.ContentPiece{}
	for _, p := range r.pieces {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePieceRepo) ListByCampaign(campaignID string) ([]*model.ContentPiece, error) {
	out := []*model.ContentPiece{}
	for _, p := range r.pieces {
		if p.CampaignID == campaignID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePieceRepo) Update(p *model.ContentPiece) error {
	copied := *p
	r.pieces[p.ID] = &copied
	return nil
}

func (r *fakePieceRepo) UpdateReviewState(id string, state model.ReviewState) error {
	p, ok := r.pieces[id]
	if !ok {
		return appErrors.NewContentPieceNotFound(id)
	}
	p.ReviewState = state
	return nil
}

func (r *fakePieceRepo) Delete(id string) (bool, error) {
	if _, ok := r.pieces[id]; !ok {
		return false, nil
	}
	delete(r.pieces, id)
	return true, nil
}

func (r *fakePieceRepo) CountByReviewState(campaignID string) (map[model.ReviewState]int, error) {
	counts := map[model.ReviewState]int{}
	for _, p := range r.pieces {
		if p.CampaignID == campaignID {
			counts[p.ReviewState]++
		}
	}
	return counts, nil
}

type fakeVersionRepo struct {
	pieces   *fakePieceRepo
	versions map[string]*model.ContentVersion
	order    []string
	seq      int
}

func newFakeVersionRepo(pieces *fakePieceRepo) *fakeVersionRepo {
	return &fakeVersionRepo{pieces: pieces, versions: map[string]*model.ContentVersion{}}
}

func (r *fakeVersionRepo) GetByID(id string) (*model.ContentVersion, error) {
	v, ok := r.versions[id]
	if !ok {
		return nil, appErrors.NewContentVersionNotFound(id)
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVersionRepo) ListByPiece(contentPieceID string) ([]*model.ContentVersion, error) {
	out := []*model.ContentVersion{}
	for _, id := range r.order {
		if v := r.versions[id]; v.ContentPieceID == contentPieceID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVersionRepo) Create(v *model.ContentVersion, deactivateSiblings bool) error {
	if _, ok := r.pieces.pieces[v.ContentPieceID]; !ok {
		return appErrors.NewContentPieceNotFound(v.ContentPieceID)
	}

	next := 1
	for _, existing := range r.versions {
		if existing.ContentPieceID == v.ContentPieceID && existing.Version >= next {
			next = existing.Version + 1
		}
	}
	v.Version = next

	if deactivateSiblings {
		for _, existing := range r.versions {
			if existing.ContentPieceID == v.ContentPieceID {
				existing.IsActive = false
			}
		}
	}

	r.seq++
	if v.ID == "" {
		v.ID = fmt.Sprintf("ver-%d", r.seq)
	}
	if v.Language == "" {
		v.Language = "en"
	}
	if v.Type == "" {
		v.Type = model.VersionOriginal
	}

	copied := *v
	r.versions[v.ID] = &copied
	r.order = append(r.order, v.ID)
	return nil
}

func (r *fakeVersionRepo) Update(v *model.ContentVersion) error {
	stored, ok := r.versions[v.ID]
	if !ok {
		return appErrors.NewContentVersionNotFound(v.ID)
	}
	stored.Content = v.Content
	stored.Type = v.Type
	stored.ReviewNotes = v.ReviewNotes
	return nil
}

func (r *fakeVersionRepo) SetActive(id string) (*model.ContentVersion, error) {
	target, ok := r.versions[id]
	if !ok {
		return nil, appErrors.NewContentVersionNotFound(id)
	}
	for _, v := range r.versions {
		if v.ContentPieceID == target.ContentPieceID {
			v.IsActive = false
		}
	}
	target.IsActive = true
	copied := *target
	return &copied, nil
}

var _ repository.CampaignRepositoryInterface = (*fakeCampaignRepo)(nil)
var _ repository.ContentPieceRepositoryInterface = (*fakePieceRepo)(nil)
var _ repository.ContentVersionRepositoryInterface = (*fakeVersionRepo)(nil)

// fakeGateway stands in for the AI providers.
type fakeGateway struct {
	generated     string
	translated    string
	generateErr   error
	translateErr  error
	analysis      *ai.ContentAnalysis
	generateCalls []ai.GenerateContentRequest
}

func (g *fakeGateway) GenerateContent(req ai.GenerateContentRequest) (*ai.GenerationResult, error) {
	g.generateCalls = append(g.generateCalls, req)
	if g.generateErr != nil {
		return nil, g.generateErr
	}
	return &ai.GenerationResult{
		Content:  g.generated,
		Metadata: model.JSONMap{"model": "gpt-4", "provider": "openai"},
	}, nil
}

func (g *fakeGateway) TranslateContent(req ai.TranslateContentRequest) (*ai.GenerationResult, error) {
	if g.translateErr != nil {
		return nil, g.translateErr
	}
	return &ai.GenerationResult{
		Content:  g.translated,
		Metadata: model.JSONMap{"model": "gpt-4", "provider": "openai"},
	}, nil
}

func (g *fakeGateway) AnalyzeContent(content string) ai.ContentAnalysis {
	if g.analysis != nil {
		return *g.analysis
	}
	return ai.NeutralAnalysis()
}

// recordingNotifier captures published events for assertions.
type recordingNotifier struct {
	topics []string
}

func (n *recordingNotifier) Publish(topic string, payload any) {
	n.topics = append(n.topics, topic)
}
