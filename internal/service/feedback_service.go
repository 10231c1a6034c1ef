package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Bahri26/edumath-sub001/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// FeedbackFallback is returned whenever the narrative-generation call
// times out, errors, or yields an empty response.
const FeedbackFallback = "AI commentary unavailable right now"

// ExamStats is the compact summary the feedback prompt is built from.
type ExamStats struct {
	Score        int
	CorrectCount int
	WrongCount   int
	BlankCount   int
	EasyCount    int
	MediumCount  int
	HardCount    int
	WeakTopics   []string
}

// FeedbackService produces a short narrative comment on a student's exam
// performance. It is stateless and always responds within the configured
// deadline; callers never see an error.
type FeedbackService interface {
	GenerateFeedback(ctx context.Context, stats ExamStats) string
}

// textGenerator is the slice of *genai.GenerativeModel the service needs.
type textGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiFeedbackService struct {
	model   textGenerator
	timeout time.Duration
}

func NewFeedbackService(cfg *config.Config) (FeedbackService, error) {
	timeout := cfg.Feedback.Timeout
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. FeedbackService will always return the fallback text.")
		return &geminiFeedbackService{model: nil, timeout: timeout}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiFeedbackService{model: model, timeout: timeout}, nil
}

// GenerateFeedback calls the generation service with a hard deadline.
// Expiry cancels the outstanding call; the fallback text is returned on
// any failure.
func (s *geminiFeedbackService) GenerateFeedback(ctx context.Context, stats ExamStats) string {
	if s.model == nil {
		return FeedbackFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(callCtx, genai.Text(buildFeedbackPrompt(stats)))
	if err != nil {
		log.Error().Err(err).Int("score", stats.Score).Msg("Feedback generation failed, using fallback")
		return FeedbackFallback
	}

	text := extractText(resp)
	if text == "" {
		log.Warn().Msg("Feedback generation returned no text content, using fallback")
		return FeedbackFallback
	}
	return text
}

func buildFeedbackPrompt(stats ExamStats) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly math tutor writing a short comment on a student's exam result.\n")
	sb.WriteString(fmt.Sprintf("Score: %d/100. Correct: %d, wrong: %d, left blank: %d.\n",
		stats.Score, stats.CorrectCount, stats.WrongCount, stats.BlankCount))
	sb.WriteString(fmt.Sprintf("The exam had %d easy, %d medium and %d hard questions.\n",
		stats.EasyCount, stats.MediumCount, stats.HardCount))
	if len(stats.WeakTopics) > 0 {
		sb.WriteString("Topics the student struggled with: " + strings.Join(stats.WeakTopics, ", ") + ".\n")
	}
	sb.WriteString("Write 2-3 encouraging sentences, mention which topics to revise, and do not repeat the raw numbers.")
	return sb.String()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}
