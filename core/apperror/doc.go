// Package apperror defines the error taxonomy shared by all features.
//
// Services return *apperror.Error values so that callers can classify
// failures without parsing messages. The five kinds are:
//
//   - not_found: the resource does not exist for this tenant
//   - invalid_state: the operation is not allowed in the current status
//   - validation_error: the input was rejected
//   - conflict: a uniqueness rule was violated
//   - internal_error: a storage or adapter failure
//
// The HTTP layer maps kinds to status codes with HTTPStatus
// (404, 400, 400, 400, 500 respectively).
package apperror
