package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed request so callers never inspect status codes.
type Kind int

const (
	// KindNetwork covers transport failures: no response was received.
	KindNetwork Kind = iota
	KindNotFound
	KindUnauthorized
	// KindClient is any other 4xx.
	KindClient
	// KindServer is a 5xx, an unexpected status or an undecodable body.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single error type returned for failed requests. Status is 0
// for network failures; Data holds the raw response body when it was JSON.
type Error struct {
	Status  int
	Kind    Kind
	Message string
	Data    json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("api %s error: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("api %s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status >= 400 && status < 500:
		return KindClient
	default:
		return KindServer
	}
}

func newStatusError(status int, body []byte) *Error {
	e := &Error{
		Status:  status,
		Kind:    kindForStatus(status),
		Message: http.StatusText(status),
	}
	if len(body) > 0 && json.Valid(body) {
		e.Data = json.RawMessage(body)
		var msg struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(body, &msg) == nil {
			switch {
			case msg.Message != "":
				e.Message = msg.Message
			case msg.Error != "":
				e.Message = msg.Error
			}
		}
	}
	return e
}

func newNetworkError(msg string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: msg, Err: err}
}

// KindOf extracts the Kind of an *Error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsUnauthorized(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindUnauthorized
}

// Message returns the server message for API errors and err.Error() otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
