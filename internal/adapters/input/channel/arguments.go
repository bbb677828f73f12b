package channel

import (
	"native-ai-bridge/internal/domain"
	"native-ai-bridge/pkg/validator"

	"github.com/mitchellh/mapstructure"
)

const (
	msgMissingPrompt  = "Missing 'prompt'"
	msgPromptNotText  = "'prompt' must be a string"
	msgPromptEmpty    = "'prompt' must not be empty"
	argumentPromptKey = "prompt"
)

// decodeGenerateArguments extracts the generation request from untyped call
// arguments. The returned *Error carries code BAD_ARGS.
func decodeGenerateArguments(arguments interface{}, v validator.Validator) (domain.GenerationRequest, *Error) {
	var args map[string]interface{}
	if err := mapstructure.Decode(arguments, &args); err != nil {
		return domain.GenerationRequest{}, badArgs(msgMissingPrompt)
	}

	raw, ok := args[argumentPromptKey]
	if !ok || raw == nil {
		return domain.GenerationRequest{}, badArgs(msgMissingPrompt)
	}
	if _, isString := raw.(string); !isString {
		return domain.GenerationRequest{}, badArgs(msgPromptNotText)
	}

	var request domain.GenerationRequest
	if err := mapstructure.Decode(args, &request); err != nil {
		return domain.GenerationRequest{}, badArgs(msgPromptNotText)
	}
	if err := v.ValidateStruct(request); err != nil {
		return domain.GenerationRequest{}, badArgs(msgPromptEmpty)
	}

	return request, nil
}

func badArgs(message string) *Error {
	return &Error{
		Code:    CodeBadArgs,
		Message: message,
		Details: map[string]interface{}{"kind": string(domain.FailureBadArguments)},
	}
}
