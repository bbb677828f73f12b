package channel

import (
	"context"
	"sync"

	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/input"
	"native-ai-bridge/pkg/validator"

	"github.com/sirupsen/logrus"
)

// DefaultName is the channel name callers address
const DefaultName = "afterlife/native_ai"

// Dispatcher struct - Primary/Driving adapter routing named calls to the gate and bridge
type Dispatcher struct {
	name      string
	gate      input.CapabilityGate
	bridge    input.GenerationBridge
	validator validator.Validator
}

// NewDispatcher func - Creates new channel dispatcher
func NewDispatcher(name string, gate input.CapabilityGate, bridge input.GenerationBridge) *Dispatcher {
	if name == "" {
		name = DefaultName
	}
	return &Dispatcher{
		name:      name,
		gate:      gate,
		bridge:    bridge,
		validator: validator.New(),
	}
}

// Name returns the channel name
func (d *Dispatcher) Name() string {
	return d.name
}

// Handle routes one call. reply is invoked exactly once, possibly on another
// goroutine for generateText.
func (d *Dispatcher) Handle(ctx context.Context, call Call, reply ReplyFunc) {
	var once sync.Once
	respond := func(r Reply) {
		once.Do(func() {
			if reply != nil {
				reply(r)
			}
		})
	}

	logrus.Debugf("Channel %s: received call %q", d.name, call.Method)

	switch call.Method {
	case MethodIsAvailable, MethodIsFMAvailable:
		respond(ResultReply(d.gate.IsAvailable(ctx)))

	case MethodGetStatus, MethodFMStatus:
		respond(ResultReply(d.gate.CheckAvailability(ctx).ToMap()))

	case MethodGenerateText:
		request, argErr := decodeGenerateArguments(call.Arguments, d.validator)
		if argErr != nil {
			logrus.Infof("Channel %s: rejected generateText: %s", d.name, argErr.Message)
			respond(Reply{Error: argErr})
			return
		}
		d.bridge.Generate(ctx, request, func(outcome domain.GenerationOutcome) {
			respond(outcomeReply(outcome))
		})

	default:
		logrus.Infof("Channel %s: method not implemented: %q", d.name, call.Method)
		respond(NotImplementedReply(call.Method))
	}
}

// Invoke handles a call and waits for its reply.
// If ctx ends first the error is returned; a running generation is not cancelled.
func (d *Dispatcher) Invoke(ctx context.Context, call Call) (Reply, error) {
	replies := make(chan Reply, 1)
	d.Handle(ctx, call, func(r Reply) {
		replies <- r
	})

	select {
	case r := <-replies:
		return r, nil
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}
}

// outcomeReply converts a generation outcome to a reply envelope
func outcomeReply(outcome domain.GenerationOutcome) Reply {
	if outcome.IsSuccess() {
		return ResultReply(outcome.Text)
	}
	return ErrorReply(CodeGenFail, outcome.Failure.Message, map[string]interface{}{
		"kind": string(outcome.Failure.Kind),
	})
}
