package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"native-ai-bridge/internal/adapters/input/channel"
	"native-ai-bridge/internal/adapters/input/natsrpc"

	"github.com/nats-io/nats.go"
)

// caller sends one call envelope and returns the reply envelope
type caller interface {
	Call(ctx context.Context, call channel.Call) (channel.Reply, error)
}

// connect opens the transport selected by --transport
func (cli *CLI) connect() (caller, func(), error) {
	switch cli.Transport {
	case "nats":
		nc, err := nats.Connect(cli.NatsURL, nats.Name("nativeai-cli"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to NATS at %s: %w", cli.NatsURL, err)
		}
		return natsrpc.NewClient(nc, cli.Subject), nc.Close, nil
	default:
		return newHTTPCaller(cli.URL, cli.Channel, http.DefaultClient), func() {}, nil
	}
}

// httpCaller posts call envelopes to the bridge's invoke route
type httpCaller struct {
	endpoint string
	client   *http.Client
}

func newHTTPCaller(baseURL, channelName string, client *http.Client) *httpCaller {
	return &httpCaller{
		endpoint: strings.TrimSuffix(baseURL, "/") + "/v1/channels/" + url.PathEscape(channelName) + "/invoke",
		client:   client,
	}
}

func (c *httpCaller) Call(ctx context.Context, call channel.Call) (channel.Reply, error) {
	body, err := json.Marshal(call)
	if err != nil {
		return channel.Reply{}, fmt.Errorf("failed to encode call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return channel.Reply{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return channel.Reply{}, fmt.Errorf("request to %s failed: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return channel.Reply{}, fmt.Errorf("failed to read reply: %w", err)
	}

	var reply channel.Reply
	if err := json.Unmarshal(raw, &reply); err != nil || (reply.Result == nil && reply.Error == nil && !reply.NotImplemented) {
		return channel.Reply{}, fmt.Errorf("unexpected response: status %d - %s", resp.StatusCode, string(raw))
	}
	return reply, nil
}
