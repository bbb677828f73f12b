package natsrpc

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"native-ai-bridge/internal/adapters/input/channel"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// QueueGroup lets several bridge processes share one subject
const QueueGroup = "native-ai-bridge"

const drainPollInterval = 10 * time.Millisecond

// Subscriber struct - Primary/Driving adapter serving a channel over NATS request/reply
type Subscriber struct {
	conn       *nats.Conn
	subject    string
	dispatcher *channel.Dispatcher
	sub        *nats.Subscription
	inflight   sync.WaitGroup // calls whose reply is not yet sent
}

// NewSubscriber func - Creates new NATS subscriber for one channel
func NewSubscriber(conn *nats.Conn, subject string, dispatcher *channel.Dispatcher) *Subscriber {
	return &Subscriber{
		conn:       conn,
		subject:    subject,
		dispatcher: dispatcher,
	}
}

// Start subscribes to the subject
func (s *Subscriber) Start() error {
	sub, err := s.conn.QueueSubscribe(s.subject, QueueGroup, s.handleMsg)
	if err != nil {
		return err
	}
	s.sub = sub
	logrus.Infof("Channel %s listening on NATS subject %s", s.dispatcher.Name(), s.subject)
	return nil
}

// Stop drains the subscription and waits until every accepted call has been
// answered. The connection must stay open until Stop returns.
func (s *Subscriber) Stop(ctx context.Context) error {
	if s.sub != nil {
		if err := s.sub.Drain(); err != nil {
			return err
		}
		if err := waitDrained(ctx, s.sub); err != nil {
			return err
		}
	}

	answered := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(answered)
	}()
	select {
	case <-answered:
		return nil
	case <-ctx.Done():
		logrus.Warnf("Channel %s: stopped with calls still in flight", s.dispatcher.Name())
		return ctx.Err()
	}
}

// waitDrained blocks until no more messages are delivered to sub
func waitDrained(ctx context.Context, sub *nats.Subscription) error {
	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()
	for sub.IsValid() {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (s *Subscriber) handleMsg(msg *nats.Msg) {
	if msg.Reply == "" {
		logrus.Warnf("Dropping NATS message on %s without reply subject", msg.Subject)
		return
	}
	s.inflight.Add(1)
	s.handlePayload(context.Background(), msg.Data, func(data []byte) {
		defer s.inflight.Done()
		if err := msg.Respond(data); err != nil {
			logrus.Errorf("Failed to respond on %s: %v", msg.Reply, err)
		}
	})
}

// handlePayload decodes a call envelope and sends the encoded reply envelope once
func (s *Subscriber) handlePayload(ctx context.Context, data []byte, send func([]byte)) {
	var call channel.Call
	if err := json.Unmarshal(data, &call); err != nil || call.Method == "" {
		logrus.Infof("Rejected malformed call envelope on %s", s.subject)
		send(encodeReply(channel.ErrorReply(channel.CodeBadArgs, "invalid call envelope", nil)))
		return
	}

	s.dispatcher.Handle(ctx, call, func(reply channel.Reply) {
		send(encodeReply(reply))
	})
}

func encodeReply(reply channel.Reply) []byte {
	data, err := json.Marshal(reply)
	if err != nil {
		logrus.Errorf("Failed to encode reply: %v", err)
		data, _ = json.Marshal(channel.ErrorReply(channel.CodeGenFail, "failed to encode reply", nil))
	}
	return data
}
