package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/domain/report"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

// OpenAIGenerator produces reports via the OpenAI chat-completions API and
// degrades to a static template when the API key is missing or the call fails.
type OpenAIGenerator struct {
	config *config.OpenAIConfig
	client *http.Client
	logger *logrus.Logger
}

func NewOpenAIGenerator(cfg *config.OpenAIConfig, logger *logrus.Logger) ports.ReportGenerator {
	return &OpenAIGenerator{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *OpenAIGenerator) GenerateReport(ctx context.Context, reportType report.Type, data map[string]any) (*report.Report, error) {
	prompt := buildReportPrompt(reportType, data)

	content, err := g.complete(ctx, reportSystemPrompt, prompt)
	if err != nil {
		if g.logger != nil {
			g.logger.WithFields(logrus.Fields{"report_type": reportType}).WithError(err).Warn("AI generation failed, using template report")
		}
		return templateReport(reportType, data), nil
	}

	rep := parseReportContent(reportType, content)
	return rep, nil
}

func (g *OpenAIGenerator) AnswerQuestion(ctx context.Context, question string, businessContext map[string]any) (string, error) {
	contextJSON, _ := json.Marshal(businessContext)
	prompt := fmt.Sprintf("Business data:\n%s\n\nQuestion: %s", contextJSON, question)

	answer, err := g.complete(ctx, questionSystemPrompt, prompt)
	if err != nil {
		if g.logger != nil {
			g.logger.WithError(err).Warn("AI question answering failed")
		}
		return "I'm unable to analyze the data right now. Please try again later.", nil
	}
	return answer, nil
}

func (g *OpenAIGenerator) complete(ctx context.Context, system, user string) (string, error) {
	if g.config.APIKey == "" {
		return "", fmt.Errorf("openai api key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: g.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(g.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned status %d with no choices", resp.StatusCode)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

const reportSystemPrompt = `You are a real estate business analyst for a rental property company in India. ` +
	`Write concise, actionable reports. Respond with three sections separated by "---": ` +
	`a one-paragraph summary, a detailed analysis, and a bullet list of recommendations (one per line, starting with "- ").`

const questionSystemPrompt = `You are a real estate business analyst. Answer the question using only the ` +
	`business data provided. Be concise and cite concrete numbers.`

func buildReportPrompt(reportType report.Type, data map[string]any) string {
	dataJSON, _ := json.MarshalIndent(data, "", "  ")
	var focus string
	switch reportType {
	case report.TypePropertyOverview:
		focus = "the overall listing portfolio: totals, types and locations"
	case report.TypeAvailabilityStatus:
		focus = "availability and occupancy levels"
	case report.TypeLeadInsights:
		focus = "lead volume, sources and conversion"
	case report.TypeListingPerformance:
		focus = "which listings and cities perform best"
	case report.TypeMarketAnalysis:
		focus = "market positioning and pricing trends"
	}
	return fmt.Sprintf("Generate a report focused on %s.\n\nBusiness data:\n%s", focus, dataJSON)
}

// parseReportContent splits the model output into the report sections; if the
// separators are missing the whole text becomes the analysis.
func parseReportContent(reportType report.Type, content string) *report.Report {
	rep := &report.Report{
		ReportType:  reportType,
		GeneratedAt: time.Now(),
	}

	parts := strings.Split(content, "---")
	switch {
	case len(parts) >= 3:
		rep.Summary = strings.TrimSpace(parts[0])
		rep.DetailedAnalysis = strings.TrimSpace(parts[1])
		for _, line := range strings.Split(parts[2], "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
			if line != "" {
				rep.Recommendations = append(rep.Recommendations, line)
			}
		}
	case len(parts) == 2:
		rep.Summary = strings.TrimSpace(parts[0])
		rep.DetailedAnalysis = strings.TrimSpace(parts[1])
	default:
		rep.DetailedAnalysis = strings.TrimSpace(content)
	}

	return rep
}

// templateReport is the deterministic fallback when the model is unavailable.
func templateReport(reportType report.Type, data map[string]any) *report.Report {
	total, _ := data["total_properties"].(int)
	available, _ := data["available_properties"].(int)
	leads, _ := data["total_leads"].(int)
	conversion, _ := data["conversion_rate"].(float64)

	return &report.Report{
		ReportType: reportType,
		Summary: fmt.Sprintf(
			"The portfolio currently has %d listings, %d of them available. %d leads have been captured with a %.1f%% conversion rate.",
			total, available, leads, conversion),
		DetailedAnalysis: "Automatic analysis is temporarily unavailable. The figures above reflect the " +
			"live database; please retry later for a narrative breakdown.",
		Recommendations: []string{
			"Review listings that have been unavailable the longest",
			"Follow up on leads still in the new stage",
		},
		GeneratedAt: time.Now(),
	}
}
