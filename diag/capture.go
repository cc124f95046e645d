package diag

import (
	"context"
	"strings"
	"sync"
)

type Record struct {
	Op  string
	Msg string
}

// CaptureRecorder keeps every record in memory, it is meant for tests.
type CaptureRecorder struct {
	mu   sync.Mutex
	recs []Record
}

func NewCaptureRecorder() *CaptureRecorder {
	return &CaptureRecorder{}
}

func (c *CaptureRecorder) Record(ctx context.Context, op string, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, Record{Op: op, Msg: msg})
}

func (c *CaptureRecorder) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	rs := make([]Record, len(c.recs))
	copy(rs, c.recs)
	return rs
}

// Find returns records of op whose message contains sub, an empty op matches all.
func (c *CaptureRecorder) Find(op string, sub string) []Record {
	rs := make([]Record, 0, 4)
	for _, r := range c.Records() {
		if len(op) != 0 && r.Op != op {
			continue
		}
		if !strings.Contains(r.Msg, sub) {
			continue
		}
		rs = append(rs, r)
	}
	return rs
}
