package ncclient

import (
	"io"
	"net/http"
	"time"

	"github.com/xxxsen/ncfile/diag"
)

type config struct {
	Host      string
	Username  string
	Password  string
	DebugMode string
	DebugOut  io.Writer
	Recorder  diag.IRecorder
	Client    *http.Client
	Timeout   time.Duration
}

type Option func(*config)

// WithHost sets the base url of the server, eg: https://cloud.example.com/
func WithHost(h string) Option {
	return func(c *config) {
		c.Host = h
	}
}

func WithAuth(user string, pwd string) Option {
	return func(c *config) {
		c.Username = user
		c.Password = pwd
	}
}

// WithRecorder injects the diagnostics sink, it takes precedence over WithDebugMode.
func WithRecorder(r diag.IRecorder) Option {
	return func(c *config) {
		c.Recorder = r
	}
}

// WithDebugMode builds the diagnostics sink from one of the diag modes.
func WithDebugMode(mode string, w io.Writer) Option {
	return func(c *config) {
		c.DebugMode = mode
		c.DebugOut = w
	}
}

func WithHTTPClient(cli *http.Client) Option {
	return func(c *config) {
		c.Client = cli
	}
}

func WithTimeout(t time.Duration) Option {
	return func(c *config) {
		c.Timeout = t
	}
}
