package service

import (
	"errors"
	"fmt"
)

// Kind groups error codes by how a caller should react to them.
type Kind int

const (
	KindInternal       Kind = iota
	KindAuthentication      // sign in (again)
	KindAuthorization       // signed in but not allowed
	KindNotFound
	KindConflict
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

// Error is a failure from the forum's taxonomy. Code and Message are meant to
// reach the caller verbatim.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on Kind and Code so sentinels below work with errors.Is even
// when the message carries call-site context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// AsError extracts a taxonomy error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

var (
	ErrNotSignedIn      = &Error{KindAuthentication, "ATHR-001", "User has not signed in"}
	ErrSignedOut        = &Error{KindAuthentication, "ATHR-002", "User is signed out"}
	ErrNotOwner         = &Error{KindAuthorization, "ATHR-003", "User is not the owner"}
	ErrNoActiveSession  = &Error{KindAuthentication, "SGR-001", "User is not Signed in"}
	ErrUsernameTaken    = &Error{KindConflict, "SGR-001", "Try any other Username, this Username has already been taken"}
	ErrEmailTaken       = &Error{KindConflict, "SGR-002", "This user has already been registered, try with any other emailId"}
	ErrUserNotFound     = &Error{KindNotFound, "USR-001", "User with entered uuid does not exist"}
	ErrQuestionNotFound = &Error{KindNotFound, "QUES-001", "Entered question uuid does not exist"}
	ErrAnswerNotFound   = &Error{KindNotFound, "ANS-001", "Entered answer uuid does not exist"}
	ErrUsernameNotFound = &Error{KindAuthentication, "ATH-001", "This username does not exist"}
	ErrPasswordFailed   = &Error{KindAuthentication, "ATH-002", "Password failed"}
	ErrInvalidRequest   = &Error{KindInvalid, "REQ-001", "Malformed request"}
)

// with returns a copy of sentinel carrying msg.
func with(sentinel *Error, msg string) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Message: msg}
}

func signedOut(action string) *Error {
	return with(ErrSignedOut, "User is signed out.Sign in first to "+action)
}

func sessionExpired(action string) *Error {
	return with(ErrSignedOut, "Session has expired.Sign in first to "+action)
}

// InvalidRequest reports a malformed request with a specific message.
func InvalidRequest(msg string) *Error {
	return with(ErrInvalidRequest, msg)
}
