package channel

// Error codes carried in reply envelopes
const (
	CodeBadArgs        = "BAD_ARGS"
	CodeGenFail        = "GEN_FAIL"
	CodeNotImplemented = "NOT_IMPLEMENTED"
)

// Method names understood by the dispatcher
const (
	MethodIsAvailable  = "isAvailable"
	MethodGetStatus    = "getStatus"
	MethodGenerateText = "generateText"

	// Aliases kept for callers built against the first app release
	MethodIsFMAvailable = "isFMAvailable"
	MethodFMStatus      = "fmStatus"
)

// Call is the call envelope sent by a caller
type Call struct {
	Method    string      `json:"method"`
	Arguments interface{} `json:"arguments,omitempty"`
}

// Error is the error part of a reply envelope
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements error
func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Reply is the reply envelope. Exactly one of Result, Error or
// NotImplemented is set.
type Reply struct {
	Result         interface{} `json:"result,omitempty"`
	Error          *Error      `json:"error,omitempty"`
	NotImplemented bool        `json:"not_implemented,omitempty"`
}

// ReplyFunc receives the reply to one call
type ReplyFunc func(reply Reply)

// ResultReply builds a success reply
func ResultReply(result interface{}) Reply {
	return Reply{Result: result}
}

// ErrorReply builds an error reply
func ErrorReply(code, message string, details map[string]interface{}) Reply {
	return Reply{Error: &Error{Code: code, Message: message, Details: details}}
}

// NotImplementedReply builds the reply for an unknown method
func NotImplementedReply(method string) Reply {
	return Reply{
		Error:          &Error{Code: CodeNotImplemented, Message: "method not implemented: " + method},
		NotImplemented: true,
	}
}

// IsSuccess reports whether the reply carries a result
func (r Reply) IsSuccess() bool {
	return r.Error == nil && !r.NotImplemented
}
