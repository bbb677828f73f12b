package protocal

import (
	"fmt"
	"strings"

	"native-ai-bridge/configs"
	"native-ai-bridge/internal/adapters/output/echo"
	"native-ai-bridge/internal/adapters/output/foundation"
	"native-ai-bridge/internal/adapters/output/host"
	"native-ai-bridge/internal/adapters/output/lmstudio"
	"native-ai-bridge/internal/application"
	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"
)

// newModelRuntime selects the model runtime named by runtime.provider
func newModelRuntime(cfg *configs.Config) (output.ModelRuntime, error) {
	switch strings.ToLower(cfg.Runtime.Provider) {
	case "", foundation.RuntimeName:
		return foundation.NewRuntimeAdapter(), nil
	case lmstudio.RuntimeName:
		return lmstudio.NewRuntimeAdapter(cfg.LMStudio)
	case echo.RuntimeName:
		return echo.NewRuntime(cfg.Echo), nil
	default:
		return nil, fmt.Errorf("unknown runtime provider %q", cfg.Runtime.Provider)
	}
}

// newApplication wires the capability gate and generation bridge around a runtime
func newApplication(cfg *configs.Config, runtime output.ModelRuntime) (*application.CapabilityGate, *application.GenerationBridge, error) {
	var minimum domain.PlatformVersion
	if cfg.Bridge.Platform.Minimum != "" {
		parsed, err := domain.ParsePlatformVersion(cfg.Bridge.Platform.Minimum)
		if err != nil {
			return nil, nil, fmt.Errorf("bridge.platform.minimum: %w", err)
		}
		minimum = parsed
	}

	gate := application.NewCapabilityGate(runtime, host.NewPlatformProbe(cfg.Bridge.Platform.Version), minimum)
	bridge := application.NewGenerationBridge(gate, runtime, domain.SessionOptions{
		Instructions: cfg.Bridge.Instructions,
		Temperature:  cfg.Bridge.Temperature,
	})
	return gate, bridge, nil
}
