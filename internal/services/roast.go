package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/metrics"
	"github.com/stackroast/stackroast/internal/scoring"
)

// Roast is a humorous critique of a stack. BurnScore rates how harsh
// the roast is (0-100); it is a comedy metric, unrelated to the health
// score.
type Roast struct {
	Text      string `json:"text"`
	BurnScore int    `json:"burn_score"`
	Source    string `json:"source"`
}

// Roast sources
const (
	RoastSourceAI       = "ai"
	RoastSourceFallback = "fallback"
)

// RoastService generates roasts, via OpenAI when a key is configured
// and from a canned line pool otherwise.
type RoastService struct {
	apiKey string
	model  string
	logger *logger.Logger
}

// NewRoastService creates a new roast service. An empty API key is
// valid and switches the service to deterministic fallback lines.
func NewRoastService(apiKey string, log *logger.Logger) *RoastService {
	return &RoastService{
		apiKey: apiKey,
		model:  openai.GPT4oMini,
		logger: log,
	}
}

// Generate produces a roast for a scored stack. It never fails: API
// errors degrade to the fallback pool.
func (s *RoastService) Generate(ctx context.Context, tools []*tool.Tool, score scoring.StackScore) Roast {
	start := time.Now()

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}

	if s.apiKey != "" {
		if text, err := s.ask(ctx, names, score); err == nil {
			roast := Roast{
				Text:      text,
				BurnScore: burnScore(text, score.Overall),
				Source:    RoastSourceAI,
			}
			metrics.RecordRoast(RoastSourceAI, time.Since(start))
			return roast
		} else {
			s.logger.ErrorWithErr(err, "Roast generation failed, using fallback")
		}
	}

	text := fallbackRoast(names, score.Overall)
	metrics.RecordRoast(RoastSourceFallback, time.Since(start))
	return Roast{
		Text:      text,
		BurnScore: burnScore(text, score.Overall),
		Source:    RoastSourceFallback,
	}
}

func (s *RoastService) ask(ctx context.Context, names []string, score scoring.StackScore) (string, error) {
	prompt := fmt.Sprintf(`Roast this tech stack. Be funny, specific and a little mean, but keep it under 80 words.

Stack: %s
Health score: %d/100 (%s)

Reply with the roast only, no preamble.`, strings.Join(names, ", "), score.Overall, score.Badge)

	client := openai.NewClient(s.apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		MaxTokens: 300,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// fallbackRoast picks a canned line deterministically from the stack
// contents, so the same stack always gets the same roast.
func fallbackRoast(names []string, overall int) string {
	stack := "an empty stack"
	if len(names) > 0 {
		stack = strings.Join(names, ", ")
	}

	lines := []string{
		"Running %s and scoring %d/100. Bold of you to call this a stack and not a cry for help.",
		"%s. Score: %d. Somewhere a site reliability engineer just felt a disturbance and doesn't know why.",
		"%s at %d/100. This isn't a tech stack, it's a group of tools that happen to share a credit card.",
		"You picked %s and got %d/100. The good news is it can only go up. Probably.",
	}

	h := fnv.New32a()
	for _, n := range names {
		h.Write([]byte(n))
	}
	line := lines[int(h.Sum32())%len(lines)]
	return fmt.Sprintf(line, stack, overall)
}

// burnScore rates roast harshness: lower stack scores earn hotter
// burns, with a small bump for longer material.
func burnScore(text string, overall int) int {
	score := 100 - overall
	if len(text) > 120 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	if score < 10 {
		score = 10
	}
	return score
}
