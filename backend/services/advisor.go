// ABOUTME: Technical advisory collaborator backed by the Anthropic Messages API
// ABOUTME: AdvisoryService adds timeout, caching, request de-duplication, and static fallback

package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/singleflight"

	"github.com/markalston/ledwall-calc/backend/cache"
	"github.com/markalston/ledwall-calc/backend/models"
)

// ErrAdvisorNotConfigured is returned when no API key is available
var ErrAdvisorNotConfigured = errors.New("advisor is not configured")

// FallbackAdvice is returned whenever the advisor cannot produce an answer
const FallbackAdvice = "Technical advice is unavailable right now. Check that the advisor API key is configured and try again."

// DefaultAdvisorModel is used when no model is configured
const DefaultAdvisorModel = "claude-3-5-haiku-latest"

const (
	defaultAdvisorMaxTokens = 1024
	defaultAdvisorTimeout   = 30 * time.Second
	highPowerThresholdW     = 20000.0
	standardAspectRatio     = 16.0 / 9.0
	aspectTolerance         = 0.01
)

// SuggestedQuestions are common questions offered to users
var SuggestedQuestions = []string{
	"Is this resolution suitable for slide presentations?",
	"What power distribution do you recommend?",
	"What is the minimum viewing distance for this pixel pitch?",
	"Will this setup work with a standard 1080p content source?",
}

const advisorSystemPrompt = "You are an expert LED video wall engineer working in live events and audio visual integration. " +
	"Give concise, practical technical answers suitable for an event technician or a project manager."

// Advisor answers free-form questions about a wall configuration
type Advisor interface {
	Advise(ctx context.Context, stats models.WallStats, cab models.Cabinet, question string) (string, error)
}

// AnthropicConfig configures an AnthropicAdvisor
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string // optional, for proxies and tests
}

// AnthropicAdvisor answers questions using Claude through the Messages API
type AnthropicAdvisor struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicAdvisor creates an advisor. It returns ErrAdvisorNotConfigured
// when the API key is empty.
func NewAnthropicAdvisor(cfg AnthropicConfig) (*AnthropicAdvisor, error) {
	if cfg.APIKey == "" {
		return nil, ErrAdvisorNotConfigured
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultAdvisorModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAdvisorMaxTokens
	}

	return &AnthropicAdvisor{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(maxTokens),
	}, nil
}

// Model returns the model id requests are sent to
func (a *AnthropicAdvisor) Model() string {
	return a.model
}

// Advise sends the configuration summary and question to the model
func (a *AnthropicAdvisor) Advise(ctx context.Context, stats models.WallStats, cab models.Cabinet, question string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: advisorSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildAdvicePrompt(stats, cab, question))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("advisor returned no text")
	}
	return text, nil
}

// BuildAdvicePrompt renders the configuration summary and the user's question
func BuildAdvicePrompt(stats models.WallStats, cab models.Cabinet, question string) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following LED video wall configuration and answer the user's question.\n\n")
	sb.WriteString("Configuration:\n")
	fmt.Fprintf(&sb, "- Cabinet: %s %s (pitch P%s)\n", cab.Brand, cab.Model, humanize.Ftoa(cab.Pitch))
	fmt.Fprintf(&sb, "- Total dimensions: %.2fm (W) x %.2fm (H)\n", stats.TotalWidthMm/1000, stats.TotalHeightMm/1000)
	if stats.IsCurved() {
		fmt.Fprintf(&sb, "- Curve: %s, radius %.2fm, chord width %.2fm\n",
			stats.CurveType(), *stats.CurveRadiusMm/1000, stats.LinearWidthMm/1000)
	}
	fmt.Fprintf(&sb, "- Resolution: %dpx x %dpx\n", stats.TotalPixelsW, stats.TotalPixelsH)
	fmt.Fprintf(&sb, "- Total pixels: %s\n", humanize.Comma(int64(stats.TotalPixels)))
	fmt.Fprintf(&sb, "- Aspect ratio: %.2f:1\n", stats.AspectRatio)
	fmt.Fprintf(&sb, "- Estimated weight: %s kg\n", humanize.Ftoa(math.Round(stats.TotalWeightKg*100)/100))
	fmt.Fprintf(&sb, "- Maximum power load: %.2f kW\n", stats.TotalMaxPowerW/1000)
	fmt.Fprintf(&sb, "\nUser question: %q\n\n", question)

	sb.WriteString("Provide a technical, concise, and useful answer.\n")
	if math.Abs(stats.AspectRatio-standardAspectRatio) > aspectTolerance {
		sb.WriteString("The resolution is not 16:9, so mention the scaling implications for standard content.\n")
	}
	if stats.TotalMaxPowerW >= highPowerThresholdW {
		sb.WriteString("The power load is high, so mention power distribution requirements such as three-phase supply.\n")
	}

	return sb.String()
}

// AdvisoryConfig configures an AdvisoryService
type AdvisoryConfig struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

// AdviceObserver is notified of every advice outcome ("ok", "cached", "fallback")
type AdviceObserver func(outcome string, elapsed time.Duration)

// AdvisoryService wraps an Advisor so callers always get an answer.
// A nil Advisor behaves as not configured.
type AdvisoryService struct {
	advisor  Advisor
	timeout  time.Duration
	cache    *cache.Cache[string]
	group    singleflight.Group
	observer AdviceObserver
}

// NewAdvisoryService creates the service. Call Close to stop its cache.
func NewAdvisoryService(advisor Advisor, cfg AdvisoryConfig) *AdvisoryService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultAdvisorTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &AdvisoryService{
		advisor: advisor,
		timeout: timeout,
		cache:   cache.New[string](ttl),
	}
}

// SetObserver registers a callback for advice outcomes
func (s *AdvisoryService) SetObserver(obs AdviceObserver) {
	s.observer = obs
}

// Configured reports whether a real advisor is attached
func (s *AdvisoryService) Configured() bool {
	return s.advisor != nil
}

// Close releases the response cache
func (s *AdvisoryService) Close() {
	s.cache.Stop()
}

// Advise returns the advisor's answer, a cached answer, or the fallback text.
// It never fails.
func (s *AdvisoryService) Advise(ctx context.Context, stats models.WallStats, cab models.Cabinet, question string) models.AdviceResponse {
	start := time.Now()
	prompt := BuildAdvicePrompt(stats, cab, question)
	key := promptKey(prompt)

	if text, ok := s.cache.Get(key); ok {
		s.observe("cached", start)
		return models.AdviceResponse{Advice: text, Cached: true}
	}

	text, err := s.fetch(ctx, key, stats, cab, question)
	if err != nil {
		if errors.Is(err, ErrAdvisorNotConfigured) {
			slog.Debug("Advisor not configured, returning fallback")
		} else {
			slog.Warn("Advisor request failed, returning fallback", "error", err)
		}
		s.observe("fallback", start)
		return models.AdviceResponse{Advice: FallbackAdvice, Fallback: true}
	}

	s.observe("ok", start)
	return models.AdviceResponse{Advice: text}
}

// fetch calls the advisor once per key among concurrent callers
func (s *AdvisoryService) fetch(ctx context.Context, key string, stats models.WallStats, cab models.Cabinet, question string) (string, error) {
	if s.advisor == nil {
		return "", ErrAdvisorNotConfigured
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Detach from the first caller's cancellation so followers are not
		// failed by it; the timeout still bounds the call.
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		text, err := s.advisor.Advise(callCtx, stats, cab, question)
		if err != nil {
			return "", err
		}
		s.cache.Set(key, text)
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *AdvisoryService) observe(outcome string, start time.Time) {
	if s.observer != nil {
		s.observer(outcome, time.Since(start))
	}
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "advice:" + hex.EncodeToString(sum[:])
}
