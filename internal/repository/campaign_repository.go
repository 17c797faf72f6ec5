package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id string) (*model.Campaign, error)
	List() ([]*model.Campaign, error)
	Update(c *model.Campaign) error
	Delete(id string) (bool, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = model.CampaignDraft
	}
	c.CreatedAt = time.Now()

	query := `
        INSERT INTO campaigns (id, name, description, status, target_languages, target_markets, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.Name, c.Description, c.Status,
		pq.Array(c.TargetLanguages), pq.Array(c.TargetMarkets), c.CreatedAt,
	)
	return err
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	query := `
        SELECT id, name, description, status, target_languages, target_markets, created_at, updated_at
        FROM campaigns WHERE id=$1
    `
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Status,
		pq.Array(&c.TargetLanguages), pq.Array(&c.TargetMarkets),
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) List() ([]*model.Campaign, error) {
	query := `
        SELECT id, name, description, status, target_languages, target_markets, created_at, updated_at
        FROM campaigns
        ORDER BY COALESCE(updated_at, created_at) DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Status,
			pq.Array(&c.TargetLanguages), pq.Array(&c.TargetMarkets),
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	query := `
        UPDATE campaigns
        SET name=$1, description=$2, status=$3, target_languages=$4, target_markets=$5, updated_at=NOW()
        WHERE id=$6
    `
	_, err := r.DB.Exec(query,
		c.Name, c.Description, c.Status,
		pq.Array(c.TargetLanguages), pq.Array(c.TargetMarkets), c.ID,
	)
	return err
}

// Delete removes a campaign; child pieces and versions go with it via the
// schema's ON DELETE CASCADE.
func (r *CampaignRepository) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
