package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"native-ai-bridge/internal/adapters/input/channel"

	"github.com/sirupsen/logrus"
)

// CLI defines the command-line interface.
type CLI struct {
	// Global flags (shared across all subcommands)
	Transport string        `help:"Transport to the bridge" enum:"http,nats" default:"http" env:"NATIVEAI_TRANSPORT"`
	URL       string        `help:"Bridge HTTP base URL" default:"http://localhost:9089" env:"NATIVEAI_URL"`
	Channel   string        `help:"Channel name" default:"afterlife/native_ai" env:"NATIVEAI_CHANNEL"`
	NatsURL   string        `name:"nats-url" help:"NATS server URL" default:"nats://127.0.0.1:4222" env:"NATS_URL"`
	Subject   string        `help:"NATS subject of the channel" default:"nativeai.native_ai" env:"NATIVEAI_SUBJECT"`
	Timeout   time.Duration `help:"How long to wait for a reply" default:"2m"`
	Verbose   bool          `short:"v" help:"Verbose output"`

	// Subcommands
	Available AvailableCmd `cmd:"" help:"Report whether text generation can run"`
	Status    StatusCmd    `cmd:"" help:"Report model availability with its reason"`
	Generate  GenerateCmd  `cmd:"" help:"Generate text for a prompt"`
	Call      CallCmd      `cmd:"" help:"Send a raw channel call"`
}

// AvailableCmd asks isAvailable.
type AvailableCmd struct{}

// Run executes the available command.
func (c *AvailableCmd) Run(cli *CLI) error {
	return cli.invoke(channel.Call{Method: channel.MethodIsAvailable}, os.Stdout)
}

// StatusCmd asks getStatus.
type StatusCmd struct{}

// Run executes the status command.
func (c *StatusCmd) Run(cli *CLI) error {
	return cli.invoke(channel.Call{Method: channel.MethodGetStatus}, os.Stdout)
}

// GenerateCmd asks generateText.
type GenerateCmd struct {
	Prompt string `arg:"" help:"Prompt to send"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(cli *CLI) error {
	return cli.invoke(channel.Call{
		Method:    channel.MethodGenerateText,
		Arguments: map[string]interface{}{"prompt": c.Prompt},
	}, os.Stdout)
}

// CallCmd sends any method with JSON arguments.
type CallCmd struct {
	Method string `arg:"" help:"Method name, e.g. getStatus"`
	Args   string `help:"Arguments as a JSON document" placeholder:"JSON"`
}

// Run executes the call command.
func (c *CallCmd) Run(cli *CLI) error {
	call, err := c.envelope()
	if err != nil {
		return err
	}
	return cli.invoke(call, os.Stdout)
}

func (c *CallCmd) envelope() (channel.Call, error) {
	call := channel.Call{Method: c.Method}
	if c.Args != "" {
		if err := json.Unmarshal([]byte(c.Args), &call.Arguments); err != nil {
			return channel.Call{}, fmt.Errorf("invalid --args: %w", err)
		}
	}
	return call, nil
}

// invoke sends the call over the selected transport and prints the reply
func (cli *CLI) invoke(call channel.Call, w io.Writer) error {
	client, closeFn, err := cli.connect()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	logrus.Debugf("Calling %s on %s over %s", call.Method, cli.Channel, cli.Transport)
	reply, err := client.Call(ctx, call)
	if err != nil {
		return err
	}
	return printReply(w, reply)
}

// printReply writes a result to w, or returns the reply error
func printReply(w io.Writer, reply channel.Reply) error {
	if reply.Error != nil {
		if kind, ok := reply.Error.Details["kind"]; ok {
			return fmt.Errorf("%s (%v): %s", reply.Error.Code, kind, reply.Error.Message)
		}
		return reply.Error
	}

	switch result := reply.Result.(type) {
	case string:
		_, err := fmt.Fprintln(w, result)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}

func setupLogger(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
