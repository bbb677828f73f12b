package application

import (
	"context"
	"fmt"

	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// GenerationBridge struct - Application service turning one prompt into one outcome
type GenerationBridge struct {
	gate    *CapabilityGate
	runtime output.ModelRuntime
	options domain.SessionOptions
}

// NewGenerationBridge func - Creates new generation bridge
func NewGenerationBridge(gate *CapabilityGate, runtime output.ModelRuntime, options domain.SessionOptions) *GenerationBridge {
	return &GenerationBridge{
		gate:    gate,
		runtime: runtime,
		options: options,
	}
}

// Generate func - Use case: generate text for one prompt asynchronously.
// onComplete fires exactly once. The generation ignores cancellation of ctx
// and always runs to an outcome.
func (b *GenerationBridge) Generate(ctx context.Context, request domain.GenerationRequest, onComplete domain.CompletionFunc) {
	c := newCompletion(onComplete)
	go b.run(context.WithoutCancel(ctx), request, c)
}

// Await starts a generation and waits for its outcome.
// If ctx ends first the error is returned and the generation keeps running.
func (b *GenerationBridge) Await(ctx context.Context, request domain.GenerationRequest) (domain.GenerationOutcome, error) {
	future := NewFuture()
	b.Generate(ctx, request, future.Complete)
	return future.Wait(ctx)
}

func (b *GenerationBridge) run(ctx context.Context, request domain.GenerationRequest, c *completion) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Generation panicked: %v", r)
			c.resolve(domain.Failure(domain.FailureGenerationError, fmt.Sprintf("model runtime panicked: %v", r)))
		}
	}()

	c.resolve(b.generate(ctx, request))
}

// generate performs availability check, session creation and submission in order
func (b *GenerationBridge) generate(ctx context.Context, request domain.GenerationRequest) domain.GenerationOutcome {
	probe := b.gate.Probe(ctx)
	switch probe.Outcome {
	case domain.ProbeAbsentBelowMinimumVersion:
		logrus.Infof("Generation rejected: platform unsupported (%s)", probe.Reason)
		return domain.Failure(domain.FailurePlatformUnsupported, domain.MessagePlatformUnsupported)
	case domain.ProbeAbsentOtherReason:
		logrus.Infof("Generation rejected: model unavailable (%s)", probe.Reason)
		return domain.Failure(domain.FailureCapabilityUnavailable, "model unavailable: "+probe.Reason)
	}

	session := domain.NewGenerationSession(b.options.Instructions)
	log := logrus.WithFields(logrus.Fields{"session": session.ID, "runtime": b.runtime.Name()})

	modelSession, err := b.runtime.NewSession(ctx, b.options)
	if err != nil {
		log.Errorf("Failed to create model session: %v", err)
		return domain.FailureFromError(err)
	}
	defer releaseSession(modelSession, log)

	if err := session.Claim(); err != nil {
		return domain.Failure(domain.FailureGenerationError, err.Error())
	}

	text, err := modelSession.Respond(ctx, request.Prompt)
	if err != nil {
		log.Errorf("Model failed to respond: %v", err)
		return domain.FailureFromError(err)
	}
	if text == "" {
		log.Warn("Model returned an empty response")
		return domain.Failure(domain.FailureGenerationError, domain.ErrEmptyResponse.Error())
	}

	log.Infof("Generation completed in %v", session.Age())
	return domain.Success(text)
}

// releaseSession closes the model session. A failing or panicking Close
// never changes the outcome.
func releaseSession(session output.ModelSession, log *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Model session release panicked: %v", r)
		}
	}()
	if err := session.Close(); err != nil {
		log.Warnf("Failed to release model session: %v", err)
	}
}
