package serializer

import (
	"net/http"

	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger installs the logger used to record underlying error causes.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the error envelope for every non-2xx reply.
// Successful replies return the resource (or list) directly.
type Response struct {
	Error string `json:"error"`
}

// Err builds an error envelope and logs the underlying cause when present.
func Err(status int, msg string, err error) Response {
	if err != nil {
		log.Warn("request failed",
			zap.Int("status", status),
			zap.String("msg", msg),
			zap.Error(err))
	}
	return Response{Error: msg}
}

// ParamErr covers missing/invalid fields and duplicate unique keys.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "invalid request"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr covers missing or undecodable sessions.
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication required"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// NotFoundErr covers lookups by id that matched nothing.
func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "resource not found"
	}
	return Err(http.StatusNotFound, msg, nil)
}

// DBErr covers unexpected persistence failures.
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}
