package dispatch

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"chat-session-core/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodePayload unmarshals a command payload into its typed shape and
// checks the struct's validate tags. Handlers map field failures to
// their recognized kinds via kindByField, so a missing nickname surfaces
// as NicknameRequired instead of a generic decode error.
func decodePayload[T any](payload string, kindByField map[string]errors.Kind) (T, error) {
	var decoded T
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return decoded, errors.Wrap(errors.Internal, fmt.Errorf("payload decode: %w", err))
	}
	if err := validate.Struct(decoded); err != nil {
		var fieldErrors validator.ValidationErrors
		if stderrors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				if kind, ok := kindByField[fieldError.Field()]; ok {
					return decoded, errors.New(kind)
				}
			}
		}
		return decoded, errors.Wrap(errors.Internal, err)
	}
	return decoded, nil
}
