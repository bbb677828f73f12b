package http

type (
	// InvokeRequest struct - HTTP request DTO carrying a call envelope
	InvokeRequest struct {
		Method    string      `json:"method" validate:"required"`
		Arguments interface{} `json:"arguments,omitempty"`
	}

	// GenerateTextRequest struct - HTTP request DTO for the generate shortcut.
	// Kept loose so a missing or mistyped prompt reaches the dispatcher intact.
	GenerateTextRequest map[string]interface{}
)
