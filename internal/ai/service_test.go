package ai

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contentforge/contentforge-backend/internal/config"
	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/model"
)

func openAIStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5},
		})
	}))
}

func newServiceWithOpenAI(t *testing.T, reply string) *Service {
	t.Helper()
	srv := openAIStub(t, reply)
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_BASE_URL", srv.URL)
	return NewService(&config.Config{OpenAIKey: "test-key", OpenAIModel: "gpt-4"})
}

func TestGenerateContentWithOpenAI(t *testing.T) {
	svc := newServiceWithOpenAI(t, "  A fast widget headline  ")

	result, err := svc.GenerateContent(GenerateContentRequest{
		Type:     model.TypeHeadline,
		Briefing: "Announce the widget",
		Provider: model.ProviderOpenAI,
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Content != "A fast widget headline" {
		t.Errorf("expected trimmed content, got %q", result.Content)
	}
	if result.Metadata["provider"] != "openai" || result.Metadata["model"] != "gpt-4" {
		t.Errorf("unexpected metadata: %v", result.Metadata)
	}
}

func TestGenerateContentDefaultsToOpenAI(t *testing.T) {
	svc := newServiceWithOpenAI(t, "generated")

	result, err := svc.GenerateContent(GenerateContentRequest{
		Type:     model.TypeAdCopy,
		Briefing: "Sell the widget",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Metadata["provider"] != "openai" {
		t.Errorf("expected openai metadata for defaulted provider, got %v", result.Metadata)
	}
}

func TestGenerateContentProviderNotConfigured(t *testing.T) {
	svc := NewService(&config.Config{})

	_, err := svc.GenerateContent(GenerateContentRequest{
		Type:     model.TypeHeadline,
		Briefing: "Announce",
		Provider: model.ProviderAnthropic,
	})

	var notConfigured *appErrors.ErrProviderNotConfigured
	if !errors.As(err, &notConfigured) {
		t.Fatalf("expected provider-not-configured error, got %v", err)
	}
	if notConfigured.Provider != "ANTHROPIC" {
		t.Errorf("expected provider ANTHROPIC in error, got %s", notConfigured.Provider)
	}
}

func TestGenerateWithChainFallsBackThroughClients(t *testing.T) {
	svc := newServiceWithOpenAI(t, "chained")

	result, err := svc.GenerateContent(GenerateContentRequest{
		Type:     model.TypeBlogTitle,
		Briefing: "Announce",
		Provider: model.ProviderLangChain,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Metadata["provider"] != "langchain" || result.Metadata["model"] != "openai" {
		t.Errorf("unexpected chain metadata: %v", result.Metadata)
	}
}

func TestTranslateContentRejectsLangChain(t *testing.T) {
	svc := newServiceWithOpenAI(t, "translated")

	_, err := svc.TranslateContent(TranslateContentRequest{
		Content:        "Hello",
		SourceLanguage: "en",
		TargetLanguage: "es",
		Provider:       model.ProviderLangChain,
	})

	var notConfigured *appErrors.ErrProviderNotConfigured
	if !errors.As(err, &notConfigured) {
		t.Fatalf("expected provider-not-configured error for LANGCHAIN translation, got %v", err)
	}
}

func TestAnalyzeContentParsesProviderJSON(t *testing.T) {
	svc := newServiceWithOpenAI(t, `{"sentiment":"positive","confidence":0.9,"keywords":["fast"],"tone":"confident","readabilityScore":80}`)

	analysis := svc.AnalyzeContent("A fast widget headline")

	if analysis.Sentiment != "positive" || analysis.Confidence != 0.9 {
		t.Errorf("unexpected analysis: %+v", analysis)
	}
	if analysis.ReadabilityScore != 80 {
		t.Errorf("expected readability 80, got %v", analysis.ReadabilityScore)
	}
}

func TestAnalyzeContentNeutralWhenNotConfigured(t *testing.T) {
	svc := NewService(&config.Config{})

	analysis := svc.AnalyzeContent("anything")
	assertNeutral(t, analysis)
}

func TestAnalyzeContentNeutralOnProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	svc := NewService(&config.Config{OpenAIKey: "test-key", OpenAIModel: "gpt-4"})

	analysis := svc.AnalyzeContent("anything")
	assertNeutral(t, analysis)
}

func TestAnalyzeContentNeutralOnBadJSON(t *testing.T) {
	svc := newServiceWithOpenAI(t, "this is not json")

	analysis := svc.AnalyzeContent("anything")
	assertNeutral(t, analysis)
}

func assertNeutral(t *testing.T, analysis ContentAnalysis) {
	t.Helper()
	if analysis.Sentiment != "neutral" {
		t.Errorf("expected neutral sentiment, got %q", analysis.Sentiment)
	}
	if analysis.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %v", analysis.Confidence)
	}
	if len(analysis.Keywords) != 0 {
		t.Errorf("expected no keywords, got %v", analysis.Keywords)
	}
	if analysis.Tone != "unknown" {
		t.Errorf("expected tone unknown, got %q", analysis.Tone)
	}
	if analysis.ReadabilityScore != 50 {
		t.Errorf("expected readability 50, got %v", analysis.ReadabilityScore)
	}
}

func TestAnthropicClientParsesTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("x-api-key") != "anth-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "Ein schneller Widget-Titel"},
			},
			"usage": map[string]any{"input_tokens": 12},
		})
	}))
	t.Cleanup(srv.Close)
	t.Setenv("ANTHROPIC_BASE_URL", srv.URL)

	svc := NewService(&config.Config{AnthropicKey: "anth-key", AnthropicModel: "claude-3-sonnet-20240229"})

	result, err := svc.GenerateContent(GenerateContentRequest{
		Type:     model.TypeHeadline,
		Briefing: "Announce",
		Provider: model.ProviderAnthropic,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Content != "Ein schneller Widget-Titel" {
		t.Errorf("unexpected content %q", result.Content)
	}
	if result.Metadata["model"] != "claude-3-sonnet-20240229" {
		t.Errorf("unexpected metadata: %v", result.Metadata)
	}
}
