package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/ksandoval/mood-mirror/internal/engine"
)

// ErrNarrativeNotConfigured is returned when no API key is set; callers then
// skip narrative generation entirely.
var ErrNarrativeNotConfigured = errors.New("narrative generator not configured")

const (
	defaultNarrativeModel   = "gpt-4o-mini"
	defaultNarrativeTimeout = 45 * time.Second
	narrativeMaxRetries     = 2
)

const narrativeSystemPrompt = "You are a caregiver assistant summarizing a weekly mood report. " +
	"Write one warm, plain-language paragraph (3-4 sentences) for a family member. " +
	"Do not invent data beyond what is provided and do not give medical advice."

// NarrativeConfig holds chat-completion settings for the narrative summary.
type NarrativeConfig struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible endpoints
	Model   string
	Timeout time.Duration
}

// NarrativeGenerator produces the optional narrative paragraph of a report
// via an OpenAI-compatible chat-completion endpoint.
type NarrativeGenerator struct {
	client openaigo.Client
	model  string
}

// NewNarrativeGenerator creates a generator, or ErrNarrativeNotConfigured
// when no API key is available.
func NewNarrativeGenerator(cfg NarrativeConfig) (*NarrativeGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNarrativeNotConfigured
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultNarrativeTimeout
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultNarrativeModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(narrativeMaxRetries),
		option.WithRequestTimeout(timeout),
	}
	if baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &NarrativeGenerator{
		client: openaigo.NewClient(opts...),
		model:  model,
	}, nil
}

// Generate returns a narrative paragraph for the result.
func (g *NarrativeGenerator) Generate(ctx context.Context, res *engine.Result) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(g.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(narrativeSystemPrompt),
			openaigo.UserMessage(buildNarrativePrompt(res)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// buildNarrativePrompt flattens a result into the user prompt. Moods are
// listed by descending share so the model leads with the headline.
func buildNarrativePrompt(res *engine.Result) string {
	dist := res.Distribution

	labels := append([]string{}, dist.Labels...)
	sort.SliceStable(labels, func(i, j int) bool {
		return dist.Counts[labels[i]] > dist.Counts[labels[j]]
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Weekly mood data for %s (%d entries).\n", res.UserName, dist.Total)
	fmt.Fprintf(&sb, "Dominant mood: %s.\n", dist.Dominant)
	sb.WriteString("Distribution:\n")
	for _, label := range labels {
		fmt.Fprintf(&sb, "- %s: %d entries (%.1f%%)\n", label, dist.Counts[label], dist.Percentages[label])
	}
	sb.WriteString("Behavioral suggestions:\n")
	for _, s := range res.Suggestions {
		fmt.Fprintf(&sb, "- %s\n", s)
	}
	return sb.String()
}
