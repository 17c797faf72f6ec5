// internal/handler/content_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/contentforge/contentforge-backend/internal/model"
	"github.com/contentforge/contentforge-backend/internal/service"
)

type ContentHandler struct {
	Service *service.ContentService
}

func (h *ContentHandler) CreateContentPiece(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignID     string            `json:"campaign_id"`
		Title          string            `json:"title"`
		Type           model.ContentType `json:"type"`
		Briefing       string            `json:"briefing"`
		TargetAudience string            `json:"target_audience"`
		Tone           string            `json:"tone"`
		Keywords       []string          `json:"keywords"`
		SourceLanguage string            `json:"source_language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Title == "" || body.CampaignID == "" || body.Type == "" {
		http.Error(w, "title, type and campaign_id are required", http.StatusBadRequest)
		return
	}

	piece, err := h.Service.CreateContentPiece(service.CreateContentPieceInput{
		CampaignID:     body.CampaignID,
		Title:          body.Title,
		Type:           body.Type,
		Briefing:       body.Briefing,
		TargetAudience: body.TargetAudience,
		Tone:           body.Tone,
		Keywords:       body.Keywords,
		SourceLanguage: body.SourceLanguage,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, piece)
}

func (h *ContentHandler) ListContentPieces(w http.ResponseWriter, r *http.Request) {
	pieces, err := h.Service.ListContentPieces()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": pieces,
	})
}

func (h *ContentHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	pieces, err := h.Service.ListByCampaign(campaignID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": pieces,
	})
}

func (h *ContentHandler) GetContentPiece(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	piece, err := h.Service.GetContentPiece(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

func (h *ContentHandler) UpdateContentPiece(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Title          *string            `json:"title"`
		Briefing       *string            `json:"briefing"`
		TargetAudience *string            `json:"target_audience"`
		Tone           *string            `json:"tone"`
		Keywords       []string           `json:"keywords"`
		ReviewState    *model.ReviewState `json:"review_state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	piece, err := h.Service.UpdateContentPiece(id, service.UpdateContentPieceInput{
		Title:          body.Title,
		Briefing:       body.Briefing,
		TargetAudience: body.TargetAudience,
		Tone:           body.Tone,
		Keywords:       body.Keywords,
		ReviewState:    body.ReviewState,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

func (h *ContentHandler) DeleteContentPiece(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.Service.DeleteContentPiece(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": deleted})
}

func (h *ContentHandler) GenerateAiContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Provider model.AiProvider `json:"provider"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
	}

	version, err := h.Service.GenerateAiContent(id, body.Provider)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, version)
}

func (h *ContentHandler) CreateManualVersion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Content  string `json:"content"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	version, err := h.Service.CreateManualVersion(id, body.Content, body.Language)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, version)
}

func (h *ContentHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	versions, err := h.Service.ListVersions(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": versions,
	})
}

func (h *ContentHandler) TranslateContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		TargetLanguage string           `json:"target_language"`
		Provider       model.AiProvider `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.TargetLanguage == "" {
		http.Error(w, "target_language is required", http.StatusBadRequest)
		return
	}

	version, err := h.Service.TranslateContent(id, body.TargetLanguage, body.Provider)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, version)
}

func (h *ContentHandler) UpdateVersion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Content     string `json:"content"`
		ReviewNotes string `json:"review_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	version, err := h.Service.UpdateVersionContent(id, body.Content, body.ReviewNotes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, version)
}

func (h *ContentHandler) SetActiveVersion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	version, err := h.Service.SetActiveVersion(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, version)
}
