// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

type ErrContentPieceNotFound struct {
	ContentPieceID string
}

func (e *ErrContentPieceNotFound) Error() string {
	return fmt.Sprintf("content piece with ID %s not found", e.ContentPieceID)
}

func NewContentPieceNotFound(id string) error {
	return &ErrContentPieceNotFound{ContentPieceID: id}
}

type ErrContentVersionNotFound struct {
	ContentVersionID string
}

func (e *ErrContentVersionNotFound) Error() string {
	return fmt.Sprintf("content version with ID %s not found", e.ContentVersionID)
}

func NewContentVersionNotFound(id string) error {
	return &ErrContentVersionNotFound{ContentVersionID: id}
}

// ErrValidation covers bad input rejected before any write, e.g. a content
// piece referencing a campaign that does not exist.
type ErrValidation struct {
	Msg string
}

func (e *ErrValidation) Error() string {
	return e.Msg
}

func NewValidation(format string, args ...any) error {
	return &ErrValidation{Msg: fmt.Sprintf(format, args...)}
}

type ErrProviderNotConfigured struct {
	Provider string
}

func (e *ErrProviderNotConfigured) Error() string {
	return fmt.Sprintf("AI provider %s not configured", e.Provider)
}

func NewProviderNotConfigured(provider string) error {
	return &ErrProviderNotConfigured{Provider: provider}
}

// IsNotFound reports whether err is any of the not-found kinds.
func IsNotFound(err error) bool {
	var c *ErrCampaignNotFound
	var p *ErrContentPieceNotFound
	var v *ErrContentVersionNotFound
	return errors.As(err, &c) || errors.As(err, &p) || errors.As(err, &v)
}
