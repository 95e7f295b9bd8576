// Package analysis formats mood records into natural-language prompts and
// relays them, plus free-text chat messages, to the language model.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/user/moodlog/internal/config"
	"github.com/user/moodlog/pkg/models"
	"github.com/user/moodlog/pkg/ollama"
)

// ErrModelUnavailable wraps every provider failure so callers can map it to
// a distinct error kind without inspecting provider internals.
var ErrModelUnavailable = errors.New("model unavailable")

// Client-facing strings. NoDataMessage is returned without ever touching the
// model; the fallbacks cover a provider response with empty text.
const (
	NoDataMessage     = "No data found for the specified period. Please record some entries first."
	FallbackAnalysis  = "Unable to generate analysis"
	FallbackChatReply = "Sorry, I cannot generate a response"
)

const analysisSystemPrompt = "You are an empathetic counselor who specializes in emotional analysis. " +
	"Understand user emotions and provide constructive advice."

const chatSystemPrompt = "You are an AI assistant specializing in emotional care. " +
	"Show empathy and engage warmly with users. " +
	"Provide advice on emotional recording, stress management, and mental health."

const analysisTemplate = `Here is the user's condition data:
{{.Data}}

Please provide a comprehensive analysis including:
1. Overall patterns
2. Notable changes or trends
3. Suggestions for improvement

Use a warm and friendly tone, summarize in 3-4 sentences.`

// ModelClient is the slice of pkg/ollama the engine needs.
type ModelClient interface {
	Chat(ctx context.Context, p ollama.ChatPrompt) (string, error)
}

// Engine relays formatted prompts to the model with fixed sampling
// parameters.
type Engine struct {
	client ModelClient
	cfg    config.EngineConfig
}

// NewEngine creates an analysis engine, applying defaults for unset models,
// token bounds and timeout. Temperatures pass through as given: zero means
// greedy sampling, and config.LoadConfig supplies the 0.7/0.8 defaults.
func NewEngine(client ModelClient, cfg config.EngineConfig) *Engine {
	if cfg.AnalysisModel == "" {
		cfg.AnalysisModel = "llama3"
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = cfg.AnalysisModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 500
	}
	if cfg.ChatMaxTokens == 0 {
		cfg.ChatMaxTokens = 300
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Engine{client: client, cfg: cfg}
}

// AnalyzeRecords renders the records into the analysis prompt and returns
// the model's reply. An empty record set short-circuits to NoDataMessage
// without a model call.
func (e *Engine) AnalyzeRecords(ctx context.Context, recs []models.Record) (string, error) {
	if len(recs) == 0 {
		return NoDataMessage, nil
	}

	prompt, err := ollama.RenderTemplate(analysisTemplate, map[string]string{"Data": FormatRecords(recs)})
	if err != nil {
		return "", fmt.Errorf("render analysis prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	text, err := e.client.Chat(ctx, ollama.ChatPrompt{
		Model:       e.cfg.AnalysisModel,
		System:      analysisSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackAnalysis, nil
	}
	return text, nil
}

// Chat relays a free-text message to the model and returns the reply.
func (e *Engine) Chat(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	text, err := e.client.Chat(ctx, ollama.ChatPrompt{
		Model:       e.cfg.ChatModel,
		System:      chatSystemPrompt,
		Prompt:      message,
		MaxTokens:   e.cfg.ChatMaxTokens,
		Temperature: e.cfg.ChatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackChatReply, nil
	}
	return text, nil
}
