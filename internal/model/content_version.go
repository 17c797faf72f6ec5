// internal/model/content_version.go
package model

import "time"

type VersionType string

const (
	VersionOriginal     VersionType = "ORIGINAL"
	VersionAIGenerated  VersionType = "AI_GENERATED"
	VersionAITranslated VersionType = "AI_TRANSLATED"
	VersionHumanEdited  VersionType = "HUMAN_EDITED"
)

type AiProvider string

const (
	ProviderOpenAI    AiProvider = "OPENAI"
	ProviderAnthropic AiProvider = "ANTHROPIC"
	ProviderLangChain AiProvider = "LANGCHAIN"
)

// ContentVersion is one concrete text realization of a content piece. Version
// numbers are sequential per piece and rows are never deleted; the only
// in-place mutations are the human-edit rewrite and the active flag.
type ContentVersion struct {
	ID                string      `db:"id" json:"id"`
	ContentPieceID    string      `db:"content_piece_id" json:"content_piece_id"`
	Content           string      `db:"content" json:"content"`
	Language          string      `db:"language" json:"language"`
	Type              VersionType `db:"type" json:"type"`
	AiProvider        AiProvider  `db:"ai_provider" json:"ai_provider,omitempty"`
	AiModel           string      `db:"ai_model" json:"ai_model,omitempty"`
	AiMetadata        JSONMap     `db:"ai_metadata" json:"ai_metadata,omitempty"`
	SentimentAnalysis JSONMap     `db:"sentiment_analysis" json:"sentiment_analysis,omitempty"`
	Version           int         `db:"version" json:"version"`
	IsActive          bool        `db:"is_active" json:"is_active"`
	ReviewNotes       string      `db:"review_notes" json:"review_notes,omitempty"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time  `db:"updated_at" json:"updated_at,omitempty"`
}
