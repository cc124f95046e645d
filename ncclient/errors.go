package ncclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("remote resource not found")
)

// ConnectionError means no response could be obtained from the server.
type ConnectionError struct {
	Method string
	URL    string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to server failed, method:%s, url:%s, err:%v", e.Method, e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RemoteError means the server answered, but the answer reports a failure.
type RemoteError struct {
	StatusCode int
	Exception  string
	Message    string
	Body       []byte
}

func (e *RemoteError) Error() string {
	if len(e.Exception) != 0 || len(e.Message) != 0 {
		return fmt.Sprintf("remote error, code:%d, exception:%s, msg:%s", e.StatusCode, e.Exception, e.Message)
	}
	return fmt.Sprintf("remote error, code:%d, body:%s", e.StatusCode, string(e.Body))
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ParseError means a structured document returned by the server could not be decoded.
type ParseError struct {
	Kind string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s document failed, err:%v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError wraps failures on local files.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("local io failed, op:%s, path:%s, err:%v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field:%s not found in response", e.Field)
}

type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config, key:%s, value:%s, err:%v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
