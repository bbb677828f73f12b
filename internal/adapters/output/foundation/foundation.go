// Package foundation serves the model runtime port from Apple's on-device
// Foundation Models framework. On hosts without the framework it reports the
// device as not eligible.
package foundation

// RuntimeName identifies this runtime in logs and health output
const RuntimeName = "foundation"

// RuntimeAdapter struct - Output adapter for the system language model
type RuntimeAdapter struct{}

// NewRuntimeAdapter func - Creates new Foundation Models runtime adapter
func NewRuntimeAdapter() *RuntimeAdapter {
	return &RuntimeAdapter{}
}

// Name returns the runtime name
func (a *RuntimeAdapter) Name() string {
	return RuntimeName
}
