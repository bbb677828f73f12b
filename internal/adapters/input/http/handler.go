package http

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"native-ai-bridge/internal/adapters/input/channel"
	"native-ai-bridge/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const invokeSuffix = "/invoke"

// HTTPHandler struct - Primary/Driving adapter exposing channels over HTTP
type HTTPHandler struct {
	channels    map[string]*channel.Dispatcher
	primary     *channel.Dispatcher
	runtimeName string
	timeout     time.Duration
	validator   validator.Validator
}

// New func - Creates new HTTP handler.
// The first dispatcher serves the /v1/model shortcut routes.
// A request gives up waiting for its reply after timeout; zero waits forever.
func New(runtimeName string, timeout time.Duration, dispatchers ...*channel.Dispatcher) *HTTPHandler {
	hdl := &HTTPHandler{
		channels:    make(map[string]*channel.Dispatcher, len(dispatchers)),
		runtimeName: runtimeName,
		timeout:     timeout,
		validator:   validator.New(),
	}
	for _, d := range dispatchers {
		if hdl.primary == nil {
			hdl.primary = d
		}
		hdl.channels[d.Name()] = d
	}
	return hdl
}

// Register mounts all routes on the router
func (hdl *HTTPHandler) Register(router fiber.Router) {
	router.Get("/health", hdl.HealthCheck)

	v1 := router.Group("/v1")
	{
		v1.Post("/channels/*", hdl.Invoke)
		v1.Get("/model/availability", hdl.Availability)
		v1.Get("/model/status", hdl.Status)
		v1.Post("/model/generate", hdl.Generate)
	}
}

// HealthCheck func
// @Summary Health check
// @Description Reports the served channels and the active model runtime
// @Tags Health
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	names := make([]string, 0, len(hdl.channels))
	for name := range hdl.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status: Success,
		Data:   HealthResponse{Channels: names, Runtime: hdl.runtimeName},
	})
}

// Invoke func
/* invoke a channel method */
// Invoke godoc
// @Summary Invoke channel method
// @Description Sends a call envelope to a named channel and returns the reply envelope
// @Tags Channel
// @Accept application/json
// @Produce json
// @Param channel path string true "Channel name, e.g. afterlife/native_ai"
// @Param InvokeRequest body InvokeRequest true "Call envelope"
// @Success 200 {object} channel.Reply
// @Failure 400 {object} channel.Reply
// @Failure 404 {object} ResponseBody
// @Failure 500 {object} channel.Reply
// @Failure 501 {object} channel.Reply
// @Failure 504 {object} ResponseBody
// @Router /v1/channels/{channel}/invoke [post]
func (hdl *HTTPHandler) Invoke(c *fiber.Ctx) error {
	path := c.Params("*")
	if !strings.HasSuffix(path, invokeSuffix) {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	name, err := url.PathUnescape(strings.TrimSuffix(path, invokeSuffix))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}

	dispatcher, ok := hdl.channels[name]
	if !ok {
		logrus.Infof("Invoke on unknown channel %q", name)
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}

	var request InvokeRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return hdl.writeReply(c, channel.ErrorReply(channel.CodeBadArgs, "invalid call envelope", nil))
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.writeReply(c, channel.ErrorReply(channel.CodeBadArgs, "invalid call envelope",
			map[string]interface{}{"validation": err.Error()}))
	}

	return hdl.dispatch(c, dispatcher, channel.Call{Method: request.Method, Arguments: request.Arguments})
}

// Availability func
// @Summary Model availability
// @Description Reports whether text generation can run right now
// @Tags Model
// @Produce json
// @Success 200 {object} channel.Reply
// @Router /v1/model/availability [get]
func (hdl *HTTPHandler) Availability(c *fiber.Ctx) error {
	return hdl.dispatch(c, hdl.primary, channel.Call{Method: channel.MethodIsAvailable})
}

// Status func
// @Summary Model status
// @Description Reports model availability together with its reason
// @Tags Model
// @Produce json
// @Success 200 {object} channel.Reply
// @Router /v1/model/status [get]
func (hdl *HTTPHandler) Status(c *fiber.Ctx) error {
	return hdl.dispatch(c, hdl.primary, channel.Call{Method: channel.MethodGetStatus})
}

// Generate func
// @Summary Generate text
// @Description Generates text for one prompt using a fresh model session
// @Tags Model
// @Accept application/json
// @Produce json
// @Param GenerateTextRequest body GenerateTextRequest true "Object with a non-empty prompt"
// @Success 200 {object} channel.Reply
// @Failure 400 {object} channel.Reply
// @Failure 500 {object} channel.Reply
// @Failure 504 {object} ResponseBody
// @Router /v1/model/generate [post]
func (hdl *HTTPHandler) Generate(c *fiber.Ctx) error {
	var request GenerateTextRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return hdl.writeReply(c, channel.ErrorReply(channel.CodeBadArgs, "Missing 'prompt'", nil))
	}
	return hdl.dispatch(c, hdl.primary, channel.Call{
		Method:    channel.MethodGenerateText,
		Arguments: map[string]interface{}(request),
	})
}

func (hdl *HTTPHandler) dispatch(c *fiber.Ctx, dispatcher *channel.Dispatcher, call channel.Call) error {
	if dispatcher == nil {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	ctx := c.UserContext()
	if hdl.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hdl.timeout)
		defer cancel()
	}
	reply, err := dispatcher.Invoke(ctx, call)
	if err != nil {
		logrus.Errorf("Channel %s: %s abandoned: %v", dispatcher.Name(), call.Method, err)
		return c.Status(fiber.StatusGatewayTimeout).JSON(ResponseBody{
			Status: Status{Code: fiber.StatusGatewayTimeout, Message: []string{err.Error()}},
		})
	}
	return hdl.writeReply(c, reply)
}

func (hdl *HTTPHandler) writeReply(c *fiber.Ctx, reply channel.Reply) error {
	return c.Status(statusFor(reply)).JSON(reply)
}

// statusFor maps a reply envelope to its HTTP status code
func statusFor(reply channel.Reply) int {
	if reply.NotImplemented {
		return fiber.StatusNotImplemented
	}
	if reply.Error == nil {
		return fiber.StatusOK
	}
	switch reply.Error.Code {
	case channel.CodeBadArgs:
		return fiber.StatusBadRequest
	case channel.CodeNotImplemented:
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}
