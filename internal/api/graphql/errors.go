package graphql

import (
	"errors"

	"github.com/acamargo/persona-server/internal/model"
)

// Error codes surfaced in the GraphQL error extensions.
const (
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeBadUserInput = "BAD_USER_INPUT"
	codeInternal     = "INTERNAL_SERVER_ERROR"
)

// apiError carries a stable error code alongside the message so clients
// can branch on kind without parsing text.
type apiError struct {
	code    string
	message string
}

func (e *apiError) Error() string {
	return e.message
}

// Extensions implements gqlerrors.ExtendedError.
func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// translateError classifies a service failure into a wire error.
// Validation and conflict failures keep their message; anything else is
// reported as an internal error without leaking store details.
func translateError(err error) error {
	var conflict *model.ConflictError
	if errors.As(err, &conflict) {
		return &apiError{code: codeConflict, message: conflict.Error()}
	}

	var validation *model.ValidationError
	if errors.As(err, &validation) {
		return &apiError{code: codeBadUserInput, message: validation.Error()}
	}

	if errors.Is(err, model.ErrNotFound) {
		return &apiError{code: codeNotFound, message: err.Error()}
	}

	return &apiError{code: codeInternal, message: "internal server error"}
}
