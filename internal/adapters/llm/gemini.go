// Package llm calls the Gemini API for structured practice plans.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/prompt"
	"github.com/okian/teamforge/pkg/logger"
	"github.com/okian/teamforge/pkg/metrics"
)

// Failure kinds recorded in metrics.
const (
	failureMissingKey = "missing_api_key"
	failureTransport  = "transport"
	failureTimeout    = "timeout"
	failureEmpty      = "empty_response"
	failureSchema     = "schema_violation"
)

const jsonMIMEType = "application/json"

// Generator produces a raw plan for a built request. Implementations make at
// most one service call per Generate and never retry.
type Generator interface {
	Generate(ctx context.Context, req prompt.Request) (model.RawPlan, error)
}

// contentGenerator is the part of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements Generator on the genai SDK.
type GeminiGenerator struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	log     logger.Logger
}

var _ Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator builds a generator. An empty apiKey is accepted: every
// Generate call then fails with ErrMissingAPIKey without touching the network.
func NewGeminiGenerator(ctx context.Context, apiKey string, opts ...Option) (*GeminiGenerator, error) {
	g := &GeminiGenerator{
		model: DefaultModel,
		log:   logger.Discard(),
	}
	if apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		g.models = client.Models
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate sends req once and validates the structured response.
func (g *GeminiGenerator) Generate(ctx context.Context, req prompt.Request) (model.RawPlan, error) {
	if g.models == nil {
		metrics.RecordGenerationFailure(failureMissingKey)
		g.log.Error(ctx, "api key not found", logger.String("mode", string(req.Mode)))
		return model.RawPlan{}, ErrMissingAPIKey
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	schema := req.Schema
	if schema == nil {
		schema = prompt.PlanSchema()
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  jsonMIMEType,
		ResponseSchema:    toGenAISchema(schema),
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), config)
	if err != nil {
		kind := failureTransport
		if errors.Is(err, context.DeadlineExceeded) {
			kind = failureTimeout
		}
		metrics.RecordGenerationFailure(kind)
		g.log.Error(ctx, "generate content failed",
			logger.String("mode", string(req.Mode)),
			logger.String("model", g.model),
			logger.Duration("elapsed", time.Since(start)),
			logger.Error(err))
		return model.RawPlan{}, fmt.Errorf("%w: %w", ErrService, err)
	}

	var text string
	if resp != nil {
		text = resp.Text()
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordGenerationFailure(failureEmpty)
		g.log.Warn(ctx, "empty generation response", logger.String("mode", string(req.Mode)))
		return model.RawPlan{}, ErrEmptyResponse
	}

	plan, err := ValidatePlan(text, schema)
	if err != nil {
		metrics.RecordGenerationFailure(failureSchema)
		g.log.Warn(ctx, "generation response rejected",
			logger.String("mode", string(req.Mode)),
			logger.Error(err))
		return model.RawPlan{}, err
	}

	g.log.Debug(ctx, "plan generated",
		logger.String("mode", string(req.Mode)),
		logger.Int("drills", len(plan.Drills)),
		logger.Duration("elapsed", time.Since(start)))
	return plan, nil
}

// toGenAISchema converts the declared output schema to the SDK type.
func toGenAISchema(s *prompt.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiType(s.Type),
		Description:      s.Description,
		Enum:             s.Enum,
		Required:         s.Required,
		PropertyOrdering: s.Order,
		Items:            toGenAISchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toGenAISchema(v)
		}
	}
	return out
}

func genaiType(t prompt.Type) genai.Type {
	switch t {
	case prompt.TypeObject:
		return genai.TypeObject
	case prompt.TypeArray:
		return genai.TypeArray
	case prompt.TypeString:
		return genai.TypeString
	default:
		return genai.TypeUnspecified
	}
}
