package errors

import "net/http"

// HTTPStatus maps an AppError code to a response status. Unknown causes
// collapse to 500 so store internals never shape the client contract.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the sanitized message for a response body.
// Wrapped causes stay server-side.
func ClientMessage(err error) string {
	var app *AppError
	if As(err, &app) {
		return app.Message
	}
	return "operation failed"
}
