package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"
)

// SuggestionResult is what the gateway hands back: either the model's reply
// parsed as JSON, or the raw text when it wasn't parseable. Callers must
// treat the shape as advisory and never assume Structured is set.
type SuggestionResult struct {
	Structured json.RawMessage
	Text       string
}

func (r SuggestionResult) Payload() any {
	if len(r.Structured) > 0 {
		return r.Structured
	}
	return map[string]string{"text": r.Text}
}

type SuggestionService struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewSuggestionService() *SuggestionService {
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &SuggestionService{
		client:  &http.Client{Timeout: 15 * time.Second},
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: baseURL,
	}
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// RequestSuggestion builds the prompt for kind, calls the text-generation
// API and parses the reply. Never call this while holding a database
// transaction; the remote round trip can take seconds.
func (s *SuggestionService) RequestSuggestion(ctx context.Context, kind string, data, userProfile map[string]any) (SuggestionResult, error) {
	if s.apiKey == "" {
		return SuggestionResult{}, utils.InternalError(fmt.Errorf("GEMINI_API_KEY not set"))
	}

	prompt, err := buildPrompt(kind, data, userProfile)
	if err != nil {
		return SuggestionResult{}, err
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return SuggestionResult{}, utils.InternalError(err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return SuggestionResult{}, utils.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return SuggestionResult{}, utils.InternalError(fmt.Errorf("gemini request error: %w", err))
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return SuggestionResult{}, utils.InternalError(fmt.Errorf("read gemini response error: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return SuggestionResult{}, utils.InternalError(fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, string(respBytes)))
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return SuggestionResult{}, utils.InternalError(fmt.Errorf("decode gemini response error: %w", err))
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return SuggestionResult{}, utils.InternalError(fmt.Errorf("empty gemini response"))
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	return ParseSuggestionText(text), nil
}

// ParseSuggestionText strips an optional markdown code fence and tries the
// body as JSON; anything unparseable comes back as raw text.
func ParseSuggestionText(text string) SuggestionResult {
	stripped := strings.TrimSpace(text)
	if strings.HasPrefix(stripped, "```") {
		stripped = strings.TrimPrefix(stripped, "```json")
		stripped = strings.TrimPrefix(stripped, "```")
		stripped = strings.TrimSuffix(strings.TrimSpace(stripped), "```")
		stripped = strings.TrimSpace(stripped)
	}

	if json.Valid([]byte(stripped)) && (strings.HasPrefix(stripped, "{") || strings.HasPrefix(stripped, "[")) {
		return SuggestionResult{Structured: json.RawMessage(stripped)}
	}
	return SuggestionResult{Text: text}
}

func buildPrompt(kind string, data, userProfile map[string]any) (string, error) {
	profile := func(key, fallback string) string {
		if v, ok := userProfile[key]; ok {
			return fmt.Sprintf("%v", v)
		}
		return fallback
	}

	var sb strings.Builder
	switch kind {
	case "food-suggestions":
		sb.WriteString("You are a nutritionist AI. Based on the following information, provide helpful suggestions about the user's food choices.\n\n")
		sb.WriteString("User Profile:\n")
		sb.WriteString("- Goals: " + profile("goals", "General health") + "\n")
		sb.WriteString("- Activity Level: " + profile("activityLevel", "Moderate") + "\n")
		sb.WriteString("- Dietary Restrictions: " + profile("dietaryRestrictions", "None") + "\n\n")
		writeDataSection(&sb, "Recently Logged Food", data)
		sb.WriteString("\nRespond with JSON: {\"suggestions\": [{\"type\": \"...\", \"message\": \"...\"}], \"nextMealSuggestions\": [\"...\"]}.\n")
	case "exercise-suggestions":
		sb.WriteString("You are a fitness trainer AI. Based on the following information, provide personalized exercise suggestions.\n\n")
		sb.WriteString("User Profile:\n")
		sb.WriteString("- Goals: " + profile("goals", "General fitness") + "\n")
		sb.WriteString("- Fitness Level: " + profile("fitnessLevel", "Beginner") + "\n\n")
		writeDataSection(&sb, "Recent Exercise Activity", data)
		sb.WriteString("\nRespond with JSON: {\"suggestions\": [{\"type\": \"next-exercise\", \"message\": \"...\"}], \"progressTips\": [\"...\"]}.\n")
	case "diet-plan":
		sb.WriteString("You are a nutrition expert AI. Create a personalized diet plan based on the user's profile and preferences.\n\n")
		sb.WriteString("User Profile:\n")
		sb.WriteString("- Goals: " + profile("goals", "General health") + "\n")
		sb.WriteString("- Dietary Restrictions: " + profile("dietaryRestrictions", "None") + "\n\n")
		writeDataSection(&sb, "Plan Requirements", data)
		sb.WriteString("\nRespond with JSON: {\"planOverview\": {\"name\": \"...\"}, \"dailyMeals\": [...]}.\n")
	case "product-recommendations":
		sb.WriteString("You are a fitness and health product expert AI. Recommend products based on the user's profile and activities.\n\n")
		sb.WriteString("User Profile:\n")
		sb.WriteString("- Goals: " + profile("goals", "General health") + "\n")
		sb.WriteString("- Budget Range: " + profile("budgetRange", "Moderate") + "\n\n")
		writeDataSection(&sb, "Recent Activity", data)
		sb.WriteString("\nRespond with JSON: {\"recommendedProducts\": [{\"name\": \"...\", \"reason\": \"...\"}]}.\n")
	default:
		return "", utils.ValidationError("Invalid suggestion type")
	}
	return sb.String(), nil
}

func writeDataSection(sb *strings.Builder, title string, data map[string]any) {
	sb.WriteString(title + ":\n")
	if len(data) == 0 {
		sb.WriteString("- (none)\n")
		return
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		sb.WriteString("- (none)\n")
		return
	}
	sb.Write(b)
	sb.WriteString("\n")
}
