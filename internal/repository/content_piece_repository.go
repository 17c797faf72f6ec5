package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/model"
)

type ContentPieceRepositoryInterface interface {
	Create(p *model.ContentPiece) error
	GetByID(id string) (*model.ContentPiece, error)
	List() ([]*model.ContentPiece, error)
	ListByCampaign(campaignID string) ([]*model.ContentPiece, error)
	Update(p *model.ContentPiece) error
	UpdateReviewState(id string, state model.ReviewState) error
	Delete(id string) (bool, error)
	CountByReviewState(campaignID string) (map[model.ReviewState]int, error)
}

type ContentPieceRepository struct {
	DB *sql.DB
}

const pieceColumns = `id, title, type, review_state, source_language, briefing, target_audience, tone, keywords, campaign_id, created_at, updated_at`

func (r *ContentPieceRepository) Create(p *model.ContentPiece) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
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
	p.CreatedAt = time.Now()

	query := `
        INSERT INTO content_pieces (id, title, type, review_state, source_language, briefing, target_audience, tone, keywords, campaign_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.DB.Exec(query,
		p.ID, p.Title, p.Type, p.ReviewState, p.SourceLanguage,
		p.Briefing, p.TargetAudience, p.Tone, pq.Array(p.Keywords),
		p.CampaignID, p.CreatedAt,
	)
	return err
}

func (r *ContentPieceRepository) GetByID(id string) (*model.ContentPiece, error) {
	query := `SELECT ` + pieceColumns + ` FROM content_pieces WHERE id=$1`
	p, err := scanPiece(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewContentPieceNotFound(id)
		}
		return nil, err
	}
	return p, nil
}

func (r *ContentPieceRepository) List() ([]*model.ContentPiece, error) {
	query := `SELECT ` + pieceColumns + ` FROM content_pieces ORDER BY COALESCE(updated_at, created_at) DESC`
	return r.queryPieces(query)
}

func (r *ContentPieceRepository) ListByCampaign(campaignID string) ([]*model.ContentPiece, error) {
	query := `SELECT ` + pieceColumns + ` FROM content_pieces WHERE campaign_id=$1 ORDER BY COALESCE(updated_at, created_at) DESC`
	return r.queryPieces(query, campaignID)
}

func (r *ContentPieceRepository) queryPieces(query string, args ...any) ([]*model.ContentPiece, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pieces := []*model.ContentPiece{}
	for rows.Next() {
		p, err := scanPiece(rows)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}
	return pieces, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPiece(row rowScanner) (*model.ContentPiece, error) {
	var p model.ContentPiece
	err := row.Scan(
		&p.ID, &p.Title, &p.Type, &p.ReviewState, &p.SourceLanguage,
		&p.Briefing, &p.TargetAudience, &p.Tone, pq.Array(&p.Keywords),
		&p.CampaignID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ContentPieceRepository) Update(p *model.ContentPiece) error {
	query := `
        UPDATE content_pieces
        SET title=$1, review_state=$2, briefing=$3, target_audience=$4, tone=$5, keywords=$6, updated_at=NOW()
        WHERE id=$7
    `
	_, err := r.DB.Exec(query,
		p.Title, p.ReviewState, p.Briefing, p.TargetAudience, p.Tone,
		pq.Array(p.Keywords), p.ID,
	)
	return err
}

func (r *ContentPieceRepository) UpdateReviewState(id string, state model.ReviewState) error {
	query := `UPDATE content_pieces SET review_state=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, state, id)
	return err
}

func (r *ContentPieceRepository) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM content_pieces WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *ContentPieceRepository) CountByReviewState(campaignID string) (map[model.ReviewState]int, error) {
	query := `SELECT review_state, COUNT(*) FROM content_pieces WHERE campaign_id=$1 GROUP BY review_state`
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[model.ReviewState]int{}
	for rows.Next() {
		var state model.ReviewState
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return nil, err
		}
		counts[state] = count
	}
	return counts, rows.Err()
}

var _ ContentPieceRepositoryInterface = (*ContentPieceRepository)(nil)
