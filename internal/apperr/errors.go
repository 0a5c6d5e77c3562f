package apperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Error is a domain-level rejection that carries the HTTP status and the
// client-facing message it should be reported with.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// New creates a domain error
func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

// Client-facing messages
const (
	MsgBadRequest      = "Bad Request"
	MsgMalformedBody   = "Misformed Request Body"
	MsgNotFound        = "Not Found"
	MsgOutOfRange      = "Out Of Range For Type Integer"
	MsgRouteNotFound   = "Route not found"
	MsgInternal        = "Internal Server Error"
	MsgArticleNotFound = "Article Not Found"
	MsgCommentNotFound = "Comment Not Found"
	MsgTopicNotFound   = "Topic Not Found"
	MsgUserNotFound    = "User Not Found"
)

var (
	ErrBadRequest      = New(http.StatusBadRequest, MsgBadRequest)
	ErrMalformedBody   = New(http.StatusBadRequest, MsgMalformedBody)
	ErrOutOfRange      = New(http.StatusBadRequest, MsgOutOfRange)
	ErrRouteNotFound   = New(http.StatusNotFound, MsgRouteNotFound)
	ErrArticleNotFound = New(http.StatusNotFound, MsgArticleNotFound)
	ErrCommentNotFound = New(http.StatusNotFound, MsgCommentNotFound)
	ErrTopicNotFound   = New(http.StatusNotFound, MsgTopicNotFound)
	ErrUserNotFound    = New(http.StatusNotFound, MsgUserNotFound)
)

// PostgreSQL SQLSTATE codes the mapper understands
const (
	CodeInvalidTextRepresentation pq.ErrorCode = "22P02"
	CodeNotNullViolation          pq.ErrorCode = "23502"
	CodeForeignKeyViolation       pq.ErrorCode = "23503"
	CodeNumericValueOutOfRange    pq.ErrorCode = "22003"
)

// Resolve maps any failure to the HTTP status and message sent to the client.
// Domain errors win over database errors; anything unrecognised is a 500.
func Resolve(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Msg
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case CodeInvalidTextRepresentation:
			return http.StatusBadRequest, MsgBadRequest
		case CodeNotNullViolation:
			return http.StatusBadRequest, MsgMalformedBody
		case CodeForeignKeyViolation:
			return http.StatusNotFound, MsgNotFound
		case CodeNumericValueOutOfRange:
			return http.StatusBadRequest, MsgOutOfRange
		}
	}

	return http.StatusInternalServerError, MsgInternal
}
