// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FrameType tags a single message delivered over the request stream.
type FrameType string

const (
	// FrameRefresh carries an authoritative snapshot of every request.
	FrameRefresh FrameType = "refresh"
	// FrameInsert carries a newly created request.
	FrameInsert FrameType = "insert"
	// FrameUpdate carries the canonical value of a changed request.
	FrameUpdate FrameType = "update"
	// FrameDelete carries the id of a removed request.
	FrameDelete FrameType = "delete"
)

var (
	// ErrMalformedFrame is returned by [DecodeFrame] when the payload is not
	// valid JSON or a field required by its type is missing.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrUnknownFrameType is returned by [DecodeFrame] for structurally
	// valid frames whose type tag is not known to this build.
	ErrUnknownFrameType = errors.New("unknown frame type")
)

// Frame is the closed set of stream messages: [RefreshFrame], [InsertFrame],
// [UpdateFrame] and [DeleteFrame]. Consumers switch on the concrete type.
type Frame interface {
	Type() FrameType
	isFrame()
}

// RefreshFrame replaces the whole collection, in the given order.
type RefreshFrame struct {
	Requests []Request
}

// InsertFrame adds a request at the front unless its id is already known.
type InsertFrame struct {
	Request Request
}

// UpdateFrame replaces a request in place, or inserts it when absent.
type UpdateFrame struct {
	Request Request
}

// DeleteFrame removes the request with RequestID.
type DeleteFrame struct {
	RequestID string
}

func (RefreshFrame) Type() FrameType { return FrameRefresh }
func (InsertFrame) Type() FrameType  { return FrameInsert }
func (UpdateFrame) Type() FrameType  { return FrameUpdate }
func (DeleteFrame) Type() FrameType  { return FrameDelete }

func (RefreshFrame) isFrame() {}
func (InsertFrame) isFrame()  {}
func (UpdateFrame) isFrame()  {}
func (DeleteFrame) isFrame()  {}

// wireFrame is the JSON shape shared by every frame type.
type wireFrame struct {
	Type      FrameType  `json:"type"`
	Requests  *[]Request `json:"requests,omitempty"`
	Request   *Request   `json:"request,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

// EncodeFrame serialises f into its wire JSON form.
func EncodeFrame(f Frame) ([]byte, error) {
	var w wireFrame

	switch frame := f.(type) {
	case RefreshFrame:
		requests := frame.Requests
		if requests == nil {
			requests = []Request{}
		}
		w = wireFrame{Type: FrameRefresh, Requests: &requests}
	case InsertFrame:
		w = wireFrame{Type: FrameInsert, Request: &frame.Request}
	case UpdateFrame:
		w = wireFrame{Type: FrameUpdate, Request: &frame.Request}
	case DeleteFrame:
		w = wireFrame{Type: FrameDelete, RequestID: frame.RequestID}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownFrameType, f)
	}

	return json.Marshal(w)
}

// DecodeFrame parses a wire JSON payload into one of the four frame types.
//
// It returns [ErrMalformedFrame] (wrapped) for unparseable JSON and for
// frames missing a required field: a refresh without "requests", an
// insert/update without a "request" carrying an id, a delete without
// "requestId", or a refresh containing a request without an id.
// It returns [ErrUnknownFrameType] (wrapped) for any other type tag.
func DecodeFrame(data []byte) (Frame, error) {
	var w wireFrame
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}

	switch w.Type {
	case FrameRefresh:
		if w.Requests == nil {
			return nil, fmt.Errorf("%w: refresh without requests", ErrMalformedFrame)
		}
		for i, r := range *w.Requests {
			if r.ID == "" {
				return nil, fmt.Errorf("%w: refresh request %d without id", ErrMalformedFrame, i)
			}
		}
		return RefreshFrame{Requests: *w.Requests}, nil
	case FrameInsert, FrameUpdate:
		if w.Request == nil || w.Request.ID == "" {
			return nil, fmt.Errorf("%w: %s without request id", ErrMalformedFrame, w.Type)
		}
		if w.Type == FrameInsert {
			return InsertFrame{Request: *w.Request}, nil
		}
		return UpdateFrame{Request: *w.Request}, nil
	case FrameDelete:
		if w.RequestID == "" {
			return nil, fmt.Errorf("%w: delete without requestId", ErrMalformedFrame)
		}
		return DeleteFrame{RequestID: w.RequestID}, nil
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrMalformedFrame)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrameType, w.Type)
	}
}
