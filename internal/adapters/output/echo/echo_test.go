package echo

import (
	"context"
	"testing"

	"native-ai-bridge/configs"
	"native-ai-bridge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_Available(t *testing.T) {
	rt := NewRuntime(configs.Echo{Available: true, Prefix: "echo: "})

	assert.Equal(t, "echo", rt.Name())
	assert.Equal(t, domain.ModelAvailability{State: domain.ModelAvailable, Reason: "available"}, rt.Availability(context.Background()))

	sess, err := rt.NewSession(context.Background(), domain.SessionOptions{})
	require.NoError(t, err)

	text, err := sess.Respond(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", text)

	require.NoError(t, sess.Close())
	_, err = sess.Respond(context.Background(), "again")
	assert.ErrorIs(t, err, domain.ErrSessionConsumed)
}

func TestRuntime_Unavailable(t *testing.T) {
	rt := NewRuntime(configs.Echo{Available: false, Reason: "appleIntelligenceNotEnabled"})

	availability := rt.Availability(context.Background())
	assert.Equal(t, domain.ModelUnavailable, availability.State)
	assert.Equal(t, "appleIntelligenceNotEnabled", availability.Reason)

	_, err := rt.NewSession(context.Background(), domain.SessionOptions{})
	assert.ErrorIs(t, err, domain.ErrCapabilityUnavailable)
}

func TestSession_RespectsCancelledContext(t *testing.T) {
	rt := NewRuntime(configs.Echo{Available: true})
	sess, err := rt.NewSession(context.Background(), domain.SessionOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sess.Respond(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
