// internal/ai/prompt.go
package ai

import (
	"fmt"
	"strings"

	"github.com/contentforge/contentforge-backend/internal/model"
)

var typeDescriptions = map[model.ContentType]string{
	model.TypeHeadline:           "attention-grabbing headline",
	model.TypeDescription:        "detailed description",
	model.TypeAdCopy:             "persuasive advertisement copy",
	model.TypeProductDescription: "product description",
	model.TypeSocialPost:         "social media post",
	model.TypeEmailSubject:       "email subject line",
	model.TypeBlogTitle:          "blog article title",
}

func buildContentPrompt(req GenerateContentRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %s based on the following requirements:\n\n", typeDescriptions[req.Type])
	fmt.Fprintf(&b, "Briefing: %s\n", req.Briefing)

	if req.TargetAudience != "" {
		fmt.Fprintf(&b, "Target Audience: %s\n", req.TargetAudience)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords to include: %s\n", strings.Join(req.Keywords, ", "))
	}
	if req.Language != "" && req.Language != "en" {
		fmt.Fprintf(&b, "Language: %s\n", req.Language)
	}

	b.WriteString("\nPlease provide only the content without any additional explanation.")

	return b.String()
}

func buildTranslationPrompt(req TranslateContentRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Translate the following content from %s to %s:\n\n", req.SourceLanguage, req.TargetLanguage)
	fmt.Fprintf(&b, "Content: \"%s\"\n\n", req.Content)

	if req.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n\n", req.Context)
	}

	b.WriteString("Please provide a natural, culturally appropriate translation that maintains the original tone and intent. Provide only the translated content without additional explanation.")

	return b.String()
}

func buildAnalysisPrompt(content string) string {
	var b strings.Builder

	b.WriteString("Analyze the following content and provide a JSON response with sentiment analysis:\n\n")
	fmt.Fprintf(&b, "Content: \"%s\"\n\n", content)
	b.WriteString("Please respond with a JSON object containing:\n")
	b.WriteString("- sentiment: \"positive\", \"negative\", or \"neutral\"\n")
	b.WriteString("- confidence: number between 0 and 1\n")
	b.WriteString("- keywords: array of important keywords\n")
	b.WriteString("- tone: descriptive tone (e.g., \"professional\", \"casual\", \"urgent\")\n")
	b.WriteString("- readabilityScore: number between 0 and 100")

	return b.String()
}
