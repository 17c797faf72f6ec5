// internal/model/content_piece.go
package model

import "time"

type ContentType string

const (
	TypeHeadline           ContentType = "HEADLINE"
	TypeDescription        ContentType = "DESCRIPTION"
	TypeAdCopy             ContentType = "AD_COPY"
	TypeProductDescription ContentType = "PRODUCT_DESCRIPTION"
	TypeSocialPost         ContentType = "SOCIAL_POST"
	TypeEmailSubject       ContentType = "EMAIL_SUBJECT"
	TypeBlogTitle          ContentType = "BLOG_TITLE"
)

type ReviewState string

const (
	ReviewDraft         ReviewState = "DRAFT"
	ReviewAISuggested   ReviewState = "AI_SUGGESTED"
	ReviewUnderReview   ReviewState = "UNDER_REVIEW"
	ReviewApproved      ReviewState = "APPROVED"
	ReviewRejected      ReviewState = "REJECTED"
	ReviewNeedsRevision ReviewState = "NEEDS_REVISION"
)

// Review states are labels, not a state machine: any state can be set from
// any other.
type ContentPiece struct {
	ID             string           `db:"id" json:"id"`
	Title          string           `db:"title" json:"title"`
	Type           ContentType      `db:"type" json:"type"`
	ReviewState    ReviewState      `db:"review_state" json:"review_state"`
	SourceLanguage string           `db:"source_language" json:"source_language"`
	Briefing       string           `db:"briefing" json:"briefing,omitempty"`
	TargetAudience string           `db:"target_audience" json:"target_audience,omitempty"`
	Tone           string           `db:"tone" json:"tone,omitempty"`
	Keywords       []string         `db:"keywords" json:"keywords"`
	CampaignID     string           `db:"campaign_id" json:"campaign_id"`
	Versions       []ContentVersion `json:"versions,omitempty"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time       `db:"updated_at" json:"updated_at,omitempty"`
}
