package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"meditrack_pro/internal/config"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyResponse = errors.New("gemini returned no candidates")
)

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	http    *resty.Client
	apiKey  string
	model   string
	limiter *rate.Limiter
	log     *zap.Logger
}

var _ interfaces.ITextGenerator = (*GeminiClient)(nil)

func NewGeminiClient(cfg config.GeminiConfig, log *zap.Logger) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GeminiClient{
		http:    client,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
		log:     logger.Component(log, "ai.gemini"),
	}
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature      *float64       `json:"temperature,omitempty"`
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generateContentRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Tools             []geminiTool      `json:"tools,omitempty"`
}

type groundingChunk struct {
	Web *struct {
		URI   string `json:"uri"`
		Title string `json:"title"`
	} `json:"web,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		FinishReason      string        `json:"finishReason"`
		GroundingMetadata *struct {
			GroundingChunks []groundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata,omitempty"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *GeminiClient) Generate(ctx context.Context, req entities.TextGenerationRequest) (entities.TextGenerationResponse, error) {
	if c.apiKey == "" {
		return entities.TextGenerationResponse{}, ErrMissingAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return entities.TextGenerationResponse{}, err
	}

	var (
		result  generateContentResponse
		apiErr  geminiError
		started = time.Now()
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(buildRequest(req)).
		SetResult(&result).
		SetError(&apiErr).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		c.log.Error("gemini call failed", zap.Error(err))
		return entities.TextGenerationResponse{}, fmt.Errorf("failed to call gemini: %w", err)
	}
	if resp.IsError() {
		c.log.Warn("gemini returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("status", apiErr.Error.Status),
			zap.String("msg", apiErr.Error.Message),
		)
		return entities.TextGenerationResponse{}, fmt.Errorf("gemini error: %s (status: %d)", apiErr.Error.Message, resp.StatusCode())
	}
	if len(result.Candidates) == 0 {
		return entities.TextGenerationResponse{}, ErrEmptyResponse
	}

	out := parseCandidate(result)
	c.log.Debug("gemini call succeeded",
		zap.String("model", c.model),
		zap.Duration("took", time.Since(started)),
		zap.Int("sources", len(out.Sources)),
	)
	return out, nil
}

func buildRequest(req entities.TextGenerationRequest) generateContentRequest {
	body := generateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}

	gc := &generationConfig{Temperature: req.Temperature}
	if req.ResponseFormat == entities.ResponseFormatJSONSchema {
		gc.ResponseMimeType = "application/json"
		gc.ResponseSchema = req.Schema
	}
	if gc.Temperature != nil || gc.ResponseMimeType != "" {
		body.GenerationConfig = gc
	}

	if req.WithSearch {
		body.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}
	return body
}

// parseCandidate joins the text parts of the first candidate and collects
// its web grounding sources, skipping chunks without a uri.
func parseCandidate(r generateContentResponse) entities.TextGenerationResponse {
	cand := r.Candidates[0]
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}

	out := entities.TextGenerationResponse{Text: sb.String()}
	if cand.GroundingMetadata == nil {
		return out
	}
	for _, ch := range cand.GroundingMetadata.GroundingChunks {
		if ch.Web == nil || ch.Web.URI == "" {
			continue
		}
		out.Sources = append(out.Sources, entities.Source{URI: ch.Web.URI, Title: ch.Web.Title})
	}
	return out
}
