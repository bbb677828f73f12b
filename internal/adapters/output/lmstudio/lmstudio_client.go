package lmstudio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"native-ai-bridge/configs"
	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// RuntimeName identifies this runtime in logs and health output
const RuntimeName = "lmstudio"

// Availability reasons specific to LM Studio
const (
	ReasonServerUnreachable        = "serverUnreachable"
	ReasonModelNotLoaded           = "modelNotLoaded"
	ReasonConfiguredModelNotLoaded = "configuredModelNotLoaded"
)

var errServerError = errors.New("LM Studio server error")

// RuntimeAdapter struct - Output adapter serving the model runtime port from
// LM Studio's OpenAI-compatible API
type RuntimeAdapter struct {
	httpClient   *http.Client
	baseURL      string
	configModel  string
	timeout      time.Duration
	probeTimeout time.Duration
}

// NewRuntimeAdapter func - Creates new LM Studio runtime adapter
func NewRuntimeAdapter(config configs.LMStudio) (*RuntimeAdapter, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:1234"
	}

	// Remove trailing slash if present
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	probeTimeout := time.Duration(config.ProbeTimeout) * time.Second
	if config.ProbeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &RuntimeAdapter{
		httpClient:   httpClient,
		baseURL:      baseURL,
		configModel:  config.Model,
		timeout:      timeout,
		probeTimeout: probeTimeout,
	}

	logrus.Infof("LM Studio runtime adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// Name returns the runtime name
func (a *RuntimeAdapter) Name() string {
	return RuntimeName
}

// Availability probes /v1/models within the probe timeout. It never retries.
func (a *RuntimeAdapter) Availability(ctx context.Context) domain.ModelAvailability {
	probeCtx, cancel := context.WithTimeout(ctx, a.probeTimeout)
	defer cancel()

	models, err := a.ListModels(probeCtx)
	switch {
	case errors.Is(err, domain.ErrRuntimeUnavailable):
		logrus.Debugf("LM Studio unreachable: %v", err)
		return unavailable(ReasonServerUnreachable)
	case errors.Is(err, errServerError):
		logrus.Debugf("LM Studio not ready: %v", err)
		return unavailable(domain.ReasonModelNotReady)
	case err != nil:
		logrus.Warnf("LM Studio availability unknown: %v", err)
		return domain.ModelAvailability{State: domain.ModelAvailabilityUnknown}
	case len(models) == 0:
		return unavailable(ReasonModelNotLoaded)
	case a.configModel != "" && !containsModel(models, a.configModel):
		return unavailable(ReasonConfiguredModelNotLoaded)
	}

	return domain.ModelAvailability{State: domain.ModelAvailable, Reason: domain.ReasonAvailable}
}

// NewSession resolves the model and returns a single-prompt session
func (a *RuntimeAdapter) NewSession(ctx context.Context, opts domain.SessionOptions) (output.ModelSession, error) {
	model, err := a.resolveModel(ctx)
	if err != nil {
		return nil, err
	}
	return &session{
		adapter:      a,
		model:        model,
		instructions: opts.Instructions,
		temperature:  opts.Temperature,
	}, nil
}

// isTransientError determines if an error or status code means the server could not be reached
func (a *RuntimeAdapter) isTransientError(err error, statusCode int) bool {
	// Check for transient status codes (5xx server errors)
	if statusCode >= 500 && statusCode < 600 {
		return true
	}

	// 4xx errors are NOT transient
	if statusCode >= 400 && statusCode < 500 {
		return false
	}

	if err == nil {
		return false
	}

	// Check for network-related errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true
		}
	}

	// Check for connection refused or other network issues
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	// Check for DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Check error message for common transient patterns
	errMsg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"eof",
	}
	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

// do sends one request and classifies transport and status failures
func (a *RuntimeAdapter) do(req *http.Request) (*http.Response, error) {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		if a.isTransientError(err, 0) {
			return nil, fmt.Errorf("%w: %v", domain.ErrRuntimeUnavailable, err)
		}
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	// Don't treat 4xx client errors as server trouble
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, fmt.Errorf("%w: status %d - %s", domain.ErrInvalidRequest, resp.StatusCode, string(body))
	}
	if a.isTransientError(nil, resp.StatusCode) {
		return nil, fmt.Errorf("%w: status %d - %s", errServerError, resp.StatusCode, string(body))
	}
	return nil, fmt.Errorf("unexpected status %d - %s", resp.StatusCode, string(body))
}

// ListModels queries the /v1/models endpoint to retrieve loaded model ids from LM Studio
func (a *RuntimeAdapter) ListModels(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/v1/models", a.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list models request: %w", err)
	}

	resp, err := a.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer resp.Body.Close()

	// Parse response
	var modelsResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return nil, fmt.Errorf("failed to parse models response: %w", err)
	}

	models := make([]string, len(modelsResp.Data))
	for i, m := range modelsResp.Data {
		models[i] = m.ID
	}

	logrus.Debugf("Listed %d models from LM Studio", len(models))

	return models, nil
}

// resolveModel returns the configured model, else the first loaded one
func (a *RuntimeAdapter) resolveModel(ctx context.Context) (string, error) {
	if a.configModel != "" {
		return a.configModel, nil
	}

	models, err := a.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get models for selection: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no models loaded in LM Studio", domain.ErrRuntimeUnavailable)
	}

	logrus.Debugf("Selected first loaded model: %s", models[0])
	return models[0], nil
}

// chatCompletion sends a non-streaming chat completion request to LM Studio
func (a *RuntimeAdapter) chatCompletion(ctx context.Context, reqBody chatCompletionAPIRequest) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send chat completion request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp chatCompletionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to parse chat completion response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	logrus.Infof("Chat completion successful, model: %s, tokens: %d", apiResp.Model, apiResp.Usage.TotalTokens)

	return apiResp.Choices[0].Message.Content, nil
}

// session is one single-prompt conversation with LM Studio
type session struct {
	adapter      *RuntimeAdapter
	model        string
	instructions string
	temperature  *float64
	closed       atomic.Bool
}

// Respond sends the system instructions and the prompt as one chat completion
func (s *session) Respond(ctx context.Context, prompt string) (string, error) {
	if s.closed.Load() {
		return "", domain.ErrSessionConsumed
	}

	messages := make([]chatMessageAPI, 0, 2)
	if s.instructions != "" {
		messages = append(messages, chatMessageAPI{Role: "system", Content: s.instructions})
	}
	messages = append(messages, chatMessageAPI{Role: "user", Content: prompt})

	return s.adapter.chatCompletion(ctx, chatCompletionAPIRequest{
		Model:       s.model,
		Messages:    messages,
		Stream:      false,
		Temperature: s.temperature,
	})
}

// Close releases the session. HTTP sessions hold no server-side state.
func (s *session) Close() error {
	s.closed.Store(true)
	return nil
}

func unavailable(reason string) domain.ModelAvailability {
	return domain.ModelAvailability{State: domain.ModelUnavailable, Reason: reason}
}

func containsModel(models []string, model string) bool {
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}

// API request/response structures for LM Studio's OpenAI-compatible API

// chatMessageAPI represents a message in the API request
type chatMessageAPI struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionAPIRequest represents the request body for chat completions
type chatCompletionAPIRequest struct {
	Model       string           `json:"model"`
	Messages    []chatMessageAPI `json:"messages"`
	Stream      bool             `json:"stream"`
	Temperature *float64         `json:"temperature,omitempty"`
}

// chatCompletionAPIResponse represents the response from non-streaming chat completions
type chatCompletionAPIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// modelsResponse represents the response from the /v1/models endpoint
type modelsResponse struct {
	Object string `json:"object"`
	Data   []struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		OwnedBy string `json:"owned_by"`
	} `json:"data"`
}
