package natsrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"native-ai-bridge/internal/adapters/input/channel"

	"github.com/nats-io/nats.go"
)

// Client sends call envelopes to a bridge over NATS
type Client struct {
	conn    *nats.Conn
	subject string
}

// NewClient creates a client for the given subject
func NewClient(conn *nats.Conn, subject string) *Client {
	return &Client{conn: conn, subject: subject}
}

// Call sends one call and waits for the reply until ctx ends
func (c *Client) Call(ctx context.Context, call channel.Call) (channel.Reply, error) {
	data, err := json.Marshal(call)
	if err != nil {
		return channel.Reply{}, fmt.Errorf("failed to encode call: %w", err)
	}

	msg, err := c.conn.RequestWithContext(ctx, c.subject, data)
	if err != nil {
		return channel.Reply{}, fmt.Errorf("request on %s failed: %w", c.subject, err)
	}

	var reply channel.Reply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return channel.Reply{}, fmt.Errorf("failed to decode reply: %w", err)
	}
	return reply, nil
}
