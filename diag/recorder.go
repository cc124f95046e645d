// Package diag provides the diagnostics sink used by the remote file client.
package diag

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	ModeOff     = "off"
	ModeConsole = "console"
	ModeLog     = "log"
	ModeWeb     = "web"
)

const (
	defaultPrefix = "NextCloud Debug: "
)

var ErrUnknownMode = errors.New("unknown debug mode")

// IRecorder receives one diagnostic message together with the name of the
// operation that produced it. Implementations must never fail.
type IRecorder interface {
	Record(ctx context.Context, op string, msg string)
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, op string, msg string) {}

// Nop returns a recorder that drops everything.
func Nop() IRecorder {
	return nopRecorder{}
}

type writerRecorder struct {
	mu   sync.Mutex
	w    io.Writer
	html bool
}

func (r *writerRecorder) Record(ctx context.Context, op string, msg string) {
	text := fmt.Sprintf("%s%s Source: %s", defaultPrefix, msg, op)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.html {
		_, _ = io.WriteString(r.w, html.EscapeString(text)+"<br>")
		return
	}
	_, _ = io.WriteString(r.w, text+"\n")
}

type logRecorder struct{}

func (logRecorder) Record(ctx context.Context, op string, msg string) {
	logutil.GetLogger(ctx).Debug("nextcloud debug", zap.String("op", op), zap.String("msg", msg))
}

// NewRecorder builds the recorder of the given mode. w is only used by the
// console and web modes and defaults to stdout.
func NewRecorder(mode string, w io.Writer) (IRecorder, error) {
	if w == nil {
		w = os.Stdout
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeOff, "false":
		return Nop(), nil
	case ModeConsole:
		return &writerRecorder{w: w}, nil
	case ModeWeb:
		return &writerRecorder{w: w, html: true}, nil
	case ModeLog:
		return logRecorder{}, nil
	default:
		return nil, fmt.Errorf("%w, mode:%s", ErrUnknownMode, mode)
	}
}
