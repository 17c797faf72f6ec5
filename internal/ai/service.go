// internal/ai/service.go
package ai

import (
	"encoding/json"
	"log"

	"github.com/contentforge/contentforge-backend/internal/config"
	appErrors "github.com/contentforge/contentforge-backend/internal/errors"
	"github.com/contentforge/contentforge-backend/internal/model"
)

type GenerateContentRequest struct {
	Type           model.ContentType
	Briefing       string
	TargetAudience string
	Tone           string
	Keywords       []string
	Language       string
	Provider       model.AiProvider
}

type TranslateContentRequest struct {
	Content        string
	SourceLanguage string
	TargetLanguage string
	Context        string
	Provider       model.AiProvider
}

type GenerationResult struct {
	Content  string
	Metadata model.JSONMap
}

type ContentAnalysis struct {
	Sentiment        string   `json:"sentiment"`
	Confidence       float64  `json:"confidence"`
	Keywords         []string `json:"keywords"`
	Tone             string   `json:"tone"`
	ReadabilityScore float64  `json:"readabilityScore"`
}

func (a ContentAnalysis) AsMap() model.JSONMap {
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return model.JSONMap{
		"sentiment":        a.Sentiment,
		"confidence":       a.Confidence,
		"keywords":         keywords,
		"tone":             a.Tone,
		"readabilityScore": a.ReadabilityScore,
	}
}

// NeutralAnalysis is what AnalyzeContent falls back to on any failure.
func NeutralAnalysis() ContentAnalysis {
	return ContentAnalysis{
		Sentiment:        "neutral",
		Confidence:       0.5,
		Keywords:         []string{},
		Tone:             "unknown",
		ReadabilityScore: 50,
	}
}

// Gateway is what the content service consumes. Generate and translate errors
// propagate to the caller; AnalyzeContent never fails.
type Gateway interface {
	GenerateContent(req GenerateContentRequest) (*GenerationResult, error)
	TranslateContent(req TranslateContentRequest) (*GenerationResult, error)
	AnalyzeContent(content string) ContentAnalysis
}

// Service routes requests to whichever provider clients were configured at
// startup. A nil client means the capability is absent and requests for it
// fail with a provider-not-configured error.
type Service struct {
	openai    *OpenAIClient
	anthropic *AnthropicClient
}

func NewService(cfg *config.Config) *Service {
	s := &Service{}
	if cfg.OpenAIKey != "" {
		s.openai = NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	}
	if cfg.AnthropicKey != "" {
		s.anthropic = NewAnthropicClient(cfg.AnthropicKey, cfg.AnthropicModel)
	}
	return s
}

func (s *Service) GenerateContent(req GenerateContentRequest) (*GenerationResult, error) {
	provider := req.Provider
	if provider == "" {
		provider = model.ProviderOpenAI
	}

	prompt := buildContentPrompt(req)

	var result *GenerationResult
	var err error

	switch {
	case provider == model.ProviderOpenAI && s.openai != nil:
		result, err = s.generateWithOpenAI(prompt)
	case provider == model.ProviderAnthropic && s.anthropic != nil:
		result, err = s.generateWithAnthropic(prompt)
	case provider == model.ProviderLangChain:
		result, err = s.generateWithChain(prompt)
	default:
		err = appErrors.NewProviderNotConfigured(string(provider))
	}

	if err != nil {
		log.Println("content generation failed:", err)
		return nil, err
	}
	return result, nil
}

func (s *Service) generateWithOpenAI(prompt string) (*GenerationResult, error) {
	content, usage, err := s.openai.Complete(prompt, 0.7, 500)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{
		Content: content,
		Metadata: model.JSONMap{
			"model":    s.openai.Model(),
			"provider": "openai",
			"usage":    usage,
		},
	}, nil
}

func (s *Service) generateWithAnthropic(prompt string) (*GenerationResult, error) {
	content, usage, err := s.anthropic.Complete(prompt, 500)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{
		Content: content,
		Metadata: model.JSONMap{
			"model":    s.anthropic.Model(),
			"provider": "anthropic",
			"usage":    usage,
		},
	}, nil
}

// generateWithChain picks the first configured chat client, OpenAI preferred.
func (s *Service) generateWithChain(prompt string) (*GenerationResult, error) {
	switch {
	case s.openai != nil:
		content, _, err := s.openai.Complete(prompt, 0.7, 500)
		if err != nil {
			return nil, err
		}
		return &GenerationResult{
			Content:  content,
			Metadata: model.JSONMap{"provider": "langchain", "model": "openai"},
		}, nil
	case s.anthropic != nil:
		content, _, err := s.anthropic.Complete(prompt, 500)
		if err != nil {
			return nil, err
		}
		return &GenerationResult{
			Content:  content,
			Metadata: model.JSONMap{"provider": "langchain", "model": "anthropic"},
		}, nil
	}
	return nil, appErrors.NewProviderNotConfigured(string(model.ProviderLangChain))
}

// TranslateContent supports OpenAI and Anthropic only; requesting LANGCHAIN
// here fails the same way an unconfigured provider does.
func (s *Service) TranslateContent(req TranslateContentRequest) (*GenerationResult, error) {
	provider := req.Provider
	if provider == "" {
		provider = model.ProviderOpenAI
	}

	prompt := buildTranslationPrompt(req)

	var result *GenerationResult
	var err error

	switch {
	case provider == model.ProviderOpenAI && s.openai != nil:
		var content string
		var usage map[string]any
		content, usage, err = s.openai.Complete(prompt, 0.3, 0)
		if err == nil {
			result = &GenerationResult{
				Content: content,
				Metadata: model.JSONMap{
					"model":    s.openai.Model(),
					"provider": "openai",
					"usage":    usage,
				},
			}
		}
	case provider == model.ProviderAnthropic && s.anthropic != nil:
		var content string
		var usage map[string]any
		content, usage, err = s.anthropic.Complete(prompt, 1000)
		if err == nil {
			result = &GenerationResult{
				Content: content,
				Metadata: model.JSONMap{
					"model":    s.anthropic.Model(),
					"provider": "anthropic",
					"usage":    usage,
				},
			}
		}
	default:
		err = appErrors.NewProviderNotConfigured(string(provider))
	}

	if err != nil {
		log.Println("translation failed:", err)
		return nil, err
	}
	return result, nil
}

// AnalyzeContent runs an OpenAI sentiment analysis. Any failure, including a
// missing client or malformed response, maps to the neutral default.
func (s *Service) AnalyzeContent(content string) ContentAnalysis {
	if s.openai == nil {
		log.Println("content analysis failed: OpenAI not configured")
		return NeutralAnalysis()
	}

	text, _, err := s.openai.Complete(buildAnalysisPrompt(content), 0.1, 0)
	if err != nil {
		log.Println("content analysis failed:", err)
		return NeutralAnalysis()
	}

	var analysis ContentAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		log.Println("content analysis failed: invalid JSON from provider:", err)
		return NeutralAnalysis()
	}
	return analysis
}

var _ Gateway = (*Service)(nil)
