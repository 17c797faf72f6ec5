package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/model"
)

type ContentVersionRepositoryInterface interface {
	GetByID(id string) (*model.ContentVersion, error)
	ListByPiece(contentPieceID string) ([]*model.ContentVersion, error)
	// Create assigns the next sequential version number for the piece and
	// inserts the row. With deactivateSiblings it also clears the active flag
	// on every other version of the piece, all inside one transaction.
	Create(v *model.ContentVersion, deactivateSiblings bool) error
	Update(v *model.ContentVersion) error
	SetActive(id string) (*model.ContentVersion, error)
}

type ContentVersionRepository struct {
	DB *sql.DB
}

const versionColumns = `id, content_piece_id, content, language, type, ai_provider, ai_model, ai_metadata, sentiment_analysis, version, is_active, review_notes, created_at, updated_at`

func (r *ContentVersionRepository) GetByID(id string) (*model.ContentVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM content_versions WHERE id=$1`
	v, err := scanVersion(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewContentVersionNotFound(id)
		}
		return nil, err
	}
	return v, nil
}

func (r *ContentVersionRepository) ListByPiece(contentPieceID string) ([]*model.ContentVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM content_versions WHERE content_piece_id=$1 ORDER BY version ASC`
	rows, err := r.DB.Query(query, contentPieceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []*model.ContentVersion{}
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func scanVersion(row rowScanner) (*model.ContentVersion, error) {
	var v model.ContentVersion
	err := row.Scan(
		&v.ID, &v.ContentPieceID, &v.Content, &v.Language, &v.Type,
		&v.AiProvider, &v.AiModel, &v.AiMetadata, &v.SentimentAnalysis,
		&v.Version, &v.IsActive, &v.ReviewNotes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create serializes concurrent version creation for the same piece by locking
// the parent row before computing MAX(version)+1. The unique
// (content_piece_id, version) constraint is the backstop.
func (r *ContentVersionRepository) Create(v *model.ContentVersion, deactivateSiblings bool) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pieceID string
	err = tx.QueryRow(`SELECT id FROM content_pieces WHERE id=$1 FOR UPDATE`, v.ContentPieceID).Scan(&pieceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.NewContentPieceNotFound(v.ContentPieceID)
		}
		return err
	}

	if err := tx.QueryRow(
		`SELECT COALESCE(MAX(version), 0) + 1 FROM content_versions WHERE content_piece_id=$1`,
		v.ContentPieceID,
	).Scan(&v.Version); err != nil {
		return err
	}

	if deactivateSiblings {
		if _, err := tx.Exec(
			`UPDATE content_versions SET is_active=false, updated_at=NOW() WHERE content_piece_id=$1 AND is_active`,
			v.ContentPieceID,
		); err != nil {
			return err
		}
	}

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Language == "" {
		v.Language = "en"
	}
	if v.Type == "" {
		v.Type = model.VersionOriginal
	}
	v.CreatedAt = time.Now()

	query := `
        INSERT INTO content_versions (id, content_piece_id, content, language, type, ai_provider, ai_model, ai_metadata, sentiment_analysis, version, is_active, review_notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	if _, err := tx.Exec(query,
		v.ID, v.ContentPieceID, v.Content, v.Language, v.Type,
		v.AiProvider, v.AiModel, v.AiMetadata, v.SentimentAnalysis,
		v.Version, v.IsActive, v.ReviewNotes, v.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ContentVersionRepository) Update(v *model.ContentVersion) error {
	query := `
        UPDATE content_versions
        SET content=$1, type=$2, review_notes=$3, updated_at=NOW()
        WHERE id=$4
    `
	_, err := r.DB.Exec(query, v.Content, v.Type, v.ReviewNotes, v.ID)
	return err
}

// SetActive deactivates every sibling version and activates the target in one
// transaction, so there is no observable window with zero or two active
// versions.
func (r *ContentVersionRepository) SetActive(id string) (*model.ContentVersion, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var pieceID string
	err = tx.QueryRow(`SELECT content_piece_id FROM content_versions WHERE id=$1`, id).Scan(&pieceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewContentVersionNotFound(id)
		}
		return nil, err
	}

	var lockedID string
	if err := tx.QueryRow(`SELECT id FROM content_pieces WHERE id=$1 FOR UPDATE`, pieceID).Scan(&lockedID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		`UPDATE content_versions SET is_active=false, updated_at=NOW() WHERE content_piece_id=$1 AND id <> $2 AND is_active`,
		pieceID, id,
	); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		`UPDATE content_versions SET is_active=true, updated_at=NOW() WHERE id=$1`, id,
	); err != nil {
		return nil, err
	}

	v, err := scanVersion(tx.QueryRow(`SELECT `+versionColumns+` FROM content_versions WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return v, nil
}

var _ ContentVersionRepositoryInterface = (*ContentVersionRepository)(nil)
