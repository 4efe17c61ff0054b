package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nutrilens/nutrilens/backend/config"
	"github.com/nutrilens/nutrilens/backend/internal/types"
)

// UnknownFood is the sentinel name the model is told to use for foods
// that are not on the supported list.
const UnknownFood = "unknown"

const imageMimeType = "image/jpeg"

// UpstreamError carries a non-success status returned by the Gemini API
// together with the upstream error body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API returned status %d: %s", e.StatusCode, e.Body)
}

// GeminiService handles interactions with the Gemini generateContent API
type GeminiService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	retry  RetryConfig
}

// NewGeminiService creates a new GeminiService instance from explicit configuration
func NewGeminiService(cfg *config.Config) *GeminiService {
	return &GeminiService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: strings.TrimRight(cfg.GeminiAPIURL, "/"),
		model:  cfg.GeminiModel,
		client: &http.Client{Timeout: 60 * time.Second},
		retry: RetryConfig{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
		},
	}
}

// geminiRequest is the generateContent request body
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// geminiEnvelope is the subset of the generateContent response this
// service navigates into.
type geminiEnvelope struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// RecognizeFoods asks the model to identify foods from the supported list in
// the given base64-encoded image. It issues a single upstream attempt and
// returns the raw upstream envelope body on success.
func (s *GeminiService) RecognizeFoods(ctx context.Context, base64ImageData string, supportedFoods []string) ([]byte, error) {
	req := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: buildRecognitionPrompt(supportedFoods)},
				{InlineData: &geminiInlineData{
					MimeType: imageMimeType,
					Data:     base64ImageData,
				}},
			},
		}},
	}

	return s.generateContent(ctx, req)
}

// ScoreNutrition asks the model for a 0-100 health score for the aggregated
// nutrition totals. The upstream call is wrapped in the retry policy; on
// success the generated text (model-produced JSON) is returned verbatim.
func (s *GeminiService) ScoreNutrition(ctx context.Context, totals *types.NutritionTotals, foodNames []string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: buildScorePrompt(totals, foodNames)},
			},
		}},
	}

	body, err := s.generateWithRetry(ctx, req)
	if err != nil {
		return "", err
	}

	return extractGeneratedText(body)
}

// generateContent issues one generateContent request. A non-2xx upstream
// status is returned as an *UpstreamError carrying the error body.
func (s *GeminiService) generateContent(ctx context.Context, req geminiRequest) ([]byte, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.apiURL, s.model, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

// extractGeneratedText navigates the upstream envelope down to the generated
// text of the first candidate's first content part. Each missing field along
// the path is reported by name.
func extractGeneratedText(body []byte) (string, error) {
	var envelope geminiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("failed to decode upstream response: %w", err)
	}

	if len(envelope.Candidates) == 0 {
		return "", fmt.Errorf("invalid upstream response: missing candidates")
	}
	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("invalid upstream response: missing content parts")
	}
	if parts[0].Text == nil {
		return "", fmt.Errorf("invalid upstream response: missing generated text")
	}

	return *parts[0].Text, nil
}

func buildRecognitionPrompt(supportedFoods []string) string {
	return fmt.Sprintf(`Identify the foods visible in this image. Only use food names from this list: %s.
For each food you recognize, estimate its weight in grams and your confidence between 0.0 and 1.0.
If a visible food is not on the list, use the name %q instead.
Respond with a JSON array of objects shaped like {"foodName": string, "estimatedWeightGrams": number, "confidence": number} and nothing else.`,
		strings.Join(supportedFoods, ", "), UnknownFood)
}

func buildScorePrompt(totals *types.NutritionTotals, foodNames []string) string {
	return fmt.Sprintf(`You are a nutrition expert. Rate the healthiness of a meal with these aggregated totals:
Calories: %.0f kcal
Protein: %.1f g
Fat: %.1f g
Carbs: %.1f g
Sugar: %.1f g
Fiber: %.1f g
Sodium: %.0f mg
Total weight: %.0f g
Foods: %s
Respond only with JSON like {"nScore": 0, "message": ""} where nScore is an integer from 0 to 100 and message is one short sentence about the meal.`,
		totals.Calories,
		totals.Protein,
		totals.Fat,
		totals.Carbs,
		totals.Sugar,
		totals.Fiber,
		totals.Sodium,
		totals.TotalWeight,
		strings.Join(foodNames, ", "))
}
