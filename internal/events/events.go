// internal/events/events.go
package events

// Topics carried on the change feed. Every payload is the full updated record.
const (
	TopicCampaignCreated     = "campaign.created"
	TopicCampaignUpdated     = "campaign.updated"
	TopicCampaignDeleted     = "campaign.deleted"
	TopicContentPieceCreated = "content_piece.created"
	TopicContentPieceUpdated = "content_piece.updated"
	TopicContentPieceDeleted = "content_piece.deleted"
	TopicVersionCreated      = "version.created"
	TopicVersionUpdated      = "version.updated"
	TopicVersionActivated    = "version.activated"
	TopicAIGenerated         = "ai.generated"
	TopicAITranslated        = "ai.translated"
)

// Notifier is fire-and-forget: implementations log publish failures and never
// surface them to the mutation that triggered the event.
type Notifier interface {
	Publish(topic string, payload any)
}

type NoopNotifier struct{}

func (NoopNotifier) Publish(string, any) {}
