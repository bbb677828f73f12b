package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"native-ai-bridge/internal/adapters/input/channel"
	"native-ai-bridge/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCapabilityGate implements input.CapabilityGate for testing
type MockCapabilityGate struct {
	Status domain.AvailabilityStatus
}

func (m *MockCapabilityGate) CheckAvailability(ctx context.Context) domain.AvailabilityStatus {
	return m.Status
}

func (m *MockCapabilityGate) IsAvailable(ctx context.Context) bool {
	return m.Status.Available
}

// MockGenerationBridge implements input.GenerationBridge for testing
type MockGenerationBridge struct {
	Outcome domain.GenerationOutcome
	Hold    chan struct{} // when set, completion waits until it is closed
	Calls   int
}

func (m *MockGenerationBridge) Generate(ctx context.Context, request domain.GenerationRequest, onComplete domain.CompletionFunc) {
	m.Calls++
	go func() {
		if m.Hold != nil {
			<-m.Hold
		}
		onComplete(m.Outcome)
	}()
}

// Test helper building a fiber app around one dispatcher
func newTestApp(gate *MockCapabilityGate, bridge *MockGenerationBridge) *fiber.App {
	return newTestAppWithTimeout(gate, bridge, 0)
}

func newTestAppWithTimeout(gate *MockCapabilityGate, bridge *MockGenerationBridge, timeout time.Duration) *fiber.App {
	app := fiber.New()
	dispatcher := channel.NewDispatcher(channel.DefaultName, gate, bridge)
	New("mock", timeout, dispatcher).Register(app)
	return app
}

// Test helper performing a request and decoding the reply envelope
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, channel.Reply) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var reply channel.Reply
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &reply), "body: %s", raw)
	return resp.StatusCode, reply
}

func TestInvoke_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		outcome        domain.GenerationOutcome
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "success",
			body:           `{"method":"generateText","arguments":{"prompt":"Say hi"}}`,
			outcome:        domain.Success("Hi!"),
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "bad arguments",
			body:           `{"method":"generateText","arguments":{"prompt":""}}`,
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   channel.CodeBadArgs,
		},
		{
			name:           "generation failure",
			body:           `{"method":"generateText","arguments":{"prompt":"Say hi"}}`,
			outcome:        domain.Failure(domain.FailureGenerationError, "boom"),
			expectedStatus: fiber.StatusInternalServerError,
			expectedCode:   channel.CodeGenFail,
		},
		{
			name:           "unknown method",
			body:           `{"method":"translate"}`,
			expectedStatus: fiber.StatusNotImplemented,
			expectedCode:   channel.CodeNotImplemented,
		},
		{
			name:           "missing method",
			body:           `{"arguments":{}}`,
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   channel.CodeBadArgs,
		},
		{
			name:           "malformed body",
			body:           `{"method":`,
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   channel.CodeBadArgs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			app := newTestApp(&MockCapabilityGate{}, &MockGenerationBridge{Outcome: tt.outcome})

			// Act
			status, reply := doRequest(t, app, fiber.MethodPost, "/v1/channels/afterlife/native_ai/invoke", tt.body)

			// Assert
			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedCode == "" {
				assert.Nil(t, reply.Error)
				assert.Equal(t, "Hi!", reply.Result)
				return
			}
			require.NotNil(t, reply.Error)
			assert.Equal(t, tt.expectedCode, reply.Error.Code)
		})
	}
}

func TestInvoke_EscapedChannelName(t *testing.T) {
	// Arrange
	app := newTestApp(&MockCapabilityGate{Status: domain.StatusAvailable()}, &MockGenerationBridge{})

	// Act
	status, reply := doRequest(t, app, fiber.MethodPost, "/v1/channels/afterlife%2Fnative_ai/invoke", `{"method":"isFMAvailable"}`)

	// Assert
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, reply.Result)
}

func TestInvoke_UnknownChannel(t *testing.T) {
	// Arrange
	app := newTestApp(&MockCapabilityGate{}, &MockGenerationBridge{})
	req := httptest.NewRequest(fiber.MethodPost, "/v1/channels/other/channel/invoke", strings.NewReader(`{"method":"isAvailable"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp, err := app.Test(req, -1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoke_ReplyTimeout(t *testing.T) {
	// Arrange
	hold := make(chan struct{})
	defer close(hold)
	bridge := &MockGenerationBridge{Outcome: domain.Success("late"), Hold: hold}
	app := newTestAppWithTimeout(&MockCapabilityGate{}, bridge, 50*time.Millisecond)

	for _, path := range []string{"/v1/channels/afterlife/native_ai/invoke", "/v1/model/generate"} {
		body := `{"method":"generateText","arguments":{"prompt":"Say hi"}}`
		if path == "/v1/model/generate" {
			body = `{"prompt":"Say hi"}`
		}
		req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		// Act
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		var respBody ResponseBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		resp.Body.Close()

		// Assert
		assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode, path)
		assert.Equal(t, fiber.StatusGatewayTimeout, respBody.Status.Code, path)
		assert.Equal(t, []string{context.DeadlineExceeded.Error()}, respBody.Status.Message, path)
	}
}

func TestInvoke_ReplyWithinTimeout(t *testing.T) {
	// Arrange
	app := newTestAppWithTimeout(&MockCapabilityGate{}, &MockGenerationBridge{Outcome: domain.Success("Hi!")}, time.Second)

	// Act
	status, reply := doRequest(t, app, fiber.MethodPost, "/v1/model/generate", `{"prompt":"Say hi"}`)

	// Assert
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Hi!", reply.Result)
}

func TestGenerate_BadArgumentsNeverReachBridge(t *testing.T) {
	// Arrange
	bridge := &MockGenerationBridge{Outcome: domain.Success("unused")}
	app := newTestApp(&MockCapabilityGate{}, bridge)

	// Act
	status, reply := doRequest(t, app, fiber.MethodPost, "/v1/model/generate", `{"prompt":7}`)

	// Assert
	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, reply.Error)
	assert.Equal(t, "'prompt' must be a string", reply.Error.Message)
	assert.Zero(t, bridge.Calls)
}

func TestGenerate_FailureCarriesKind(t *testing.T) {
	// Arrange
	bridge := &MockGenerationBridge{
		Outcome: domain.Failure(domain.FailureCapabilityUnavailable, "model unavailable: deviceNotEligible"),
	}
	app := newTestApp(&MockCapabilityGate{}, bridge)

	// Act
	status, reply := doRequest(t, app, fiber.MethodPost, "/v1/model/generate", `{"prompt":"Say hi"}`)

	// Assert
	assert.Equal(t, fiber.StatusInternalServerError, status)
	require.NotNil(t, reply.Error)
	assert.Equal(t, channel.CodeGenFail, reply.Error.Code)
	assert.Equal(t, "capability_unavailable", reply.Error.Details["kind"])
}

func TestModelStatusRoutes(t *testing.T) {
	// Arrange
	gate := &MockCapabilityGate{Status: domain.StatusUnavailable("modelNotReady")}
	app := newTestApp(gate, &MockGenerationBridge{})

	// Act
	availabilityStatus, availability := doRequest(t, app, fiber.MethodGet, "/v1/model/availability", "")
	statusStatus, status := doRequest(t, app, fiber.MethodGet, "/v1/model/status", "")

	// Assert
	assert.Equal(t, fiber.StatusOK, availabilityStatus)
	assert.Equal(t, false, availability.Result)
	assert.Equal(t, fiber.StatusOK, statusStatus)
	assert.Equal(t, map[string]interface{}{"available": false, "reason": "modelNotReady"}, status.Result)
}

func TestHealthCheck(t *testing.T) {
	// Arrange
	app := newTestApp(&MockCapabilityGate{}, &MockGenerationBridge{})
	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)

	// Act
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Status Status         `json:"status"`
		Data   HealthResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// Assert
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"afterlife/native_ai"}, body.Data.Channels)
	assert.Equal(t, "mock", body.Data.Runtime)
}
