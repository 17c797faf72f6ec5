// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/contentforge/contentforge-backend/internal/ai"
	"github.com/contentforge/contentforge-backend/internal/config"
	"github.com/contentforge/contentforge-backend/internal/db"
	"github.com/contentforge/contentforge-backend/internal/events"
	"github.com/contentforge/contentforge-backend/internal/handler"
	"github.com/contentforge/contentforge-backend/internal/repository"
	"github.com/contentforge/contentforge-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	// Init DB
	db.Init()

	campaignRepo := &repository.CampaignRepository{DB: db.DB}
	pieceRepo := &repository.ContentPieceRepository{DB: db.DB}
	versionRepo := &repository.ContentVersionRepository{DB: db.DB}

	aiService := ai.NewService(cfg)
	notifier := buildNotifier(cfg)

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		PieceRepo:    pieceRepo,
		VersionRepo:  versionRepo,
		Notifier:     notifier,
	}

	contentService := &service.ContentService{
		PieceRepo:    pieceRepo,
		VersionRepo:  versionRepo,
		CampaignRepo: campaignRepo,
		AI:           aiService,
		Notifier:     notifier,
	}

	campaignHandler := &handler.CampaignHandler{Service: campaignService}
	contentHandler := &handler.ContentHandler{Service: contentService}

	r := chi.NewRouter()

	// Campaign routes
	r.Post("/campaigns", campaignHandler.CreateCampaign)
	r.Get("/campaigns", campaignHandler.ListCampaigns)
	r.Get("/campaigns/{id}", campaignHandler.GetCampaign)
	r.Put("/campaigns/{id}", campaignHandler.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignHandler.DeleteCampaign)
	r.Get("/campaigns/{id}/stats", campaignHandler.GetCampaignStats)
	r.Get("/campaigns/{id}/content", contentHandler.ListByCampaign)

	// Content piece routes
	r.Post("/content", contentHandler.CreateContentPiece)
	r.Get("/content", contentHandler.ListContentPieces)
	r.Get("/content/{id}", contentHandler.GetContentPiece)
	r.Put("/content/{id}", contentHandler.UpdateContentPiece)
	r.Delete("/content/{id}", contentHandler.DeleteContentPiece)
	r.Post("/content/{id}/generate", contentHandler.GenerateAiContent)
	r.Post("/content/{id}/versions", contentHandler.CreateManualVersion)
	r.Get("/content/{id}/versions", contentHandler.ListVersions)

	// Version routes
	r.Put("/versions/{id}", contentHandler.UpdateVersion)
	r.Post("/versions/{id}/translate", contentHandler.TranslateContent)
	r.Post("/versions/{id}/activate", contentHandler.SetActiveVersion)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// buildNotifier wires up whichever event backends are configured. With no
// broker configured the in-process bus takes over, so local subscribers still
// see change events.
func buildNotifier(cfg *config.Config) events.Notifier {
	backends := events.MultiNotifier{}

	if cfg.RedisAddr != "" {
		backends = append(backends, events.NewRedisNotifier(cfg.RedisAddr))
		log.Println("✅ Redis event publishing enabled")
	}

	if cfg.AMQPURL != "" {
		amqpNotifier, err := events.NewAMQPNotifier(cfg.AMQPURL, "content_events")
		if err != nil {
			log.Println("⚠️ Failed to connect to AMQP, events will not reach the broker:", err)
		} else {
			backends = append(backends, amqpNotifier)
			log.Println("✅ AMQP event publishing enabled")
		}
	}

	if len(backends) == 0 {
		return events.NewBus()
	}
	return backends
}
