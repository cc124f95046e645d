package ocs

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingURL = errors.New("data.url not found in share response")
)

// StatusError is returned when the meta block of the response reports a failure.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ocs request failed, code:%d, msg:%s", e.StatusCode, e.Message)
}

// DecodeMeta only extracts the meta block, it is used to inspect error bodies.
func DecodeMeta(raw []byte) (*Meta, bool) {
	if !bytes.Contains(raw, []byte("<ocs")) {
		return nil, false
	}
	rsp := &ShareResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return nil, false
	}
	return &rsp.Meta, true
}

// DecodeShare decodes the response of a share creation call.
func DecodeShare(raw []byte) (*ShareResult, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("empty ocs document")
	}
	rsp := &ShareResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return nil, fmt.Errorf("decode ocs response failed, err:%w", err)
	}
	if strings.EqualFold(strings.TrimSpace(rsp.Meta.Status), StatusFailure) {
		return nil, &StatusError{StatusCode: rsp.Meta.StatusCode, Message: strings.TrimSpace(rsp.Meta.Message)}
	}
	url := strings.TrimSpace(rsp.Data.URL)
	if len(url) == 0 {
		return nil, ErrMissingURL
	}
	return &ShareResult{
		URL:        url,
		ID:         strings.TrimSpace(rsp.Data.ID),
		Token:      strings.TrimSpace(rsp.Data.Token),
		Path:       strings.TrimSpace(rsp.Data.Path),
		Expiration: strings.TrimSpace(rsp.Data.Expiration),
	}, nil
}
