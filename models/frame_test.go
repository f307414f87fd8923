// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Frame
		wantErr error
	}{
		{
			name:    "refresh with requests",
			payload: `{"type":"refresh","requests":[{"id":"b","status":"pending"},{"id":"a","status":"converted"}]}`,
			want: RefreshFrame{Requests: []Request{
				{ID: "b", Status: StatusPending},
				{ID: "a", Status: StatusConverted},
			}},
		},
		{
			name:    "refresh with empty list",
			payload: `{"type":"refresh","requests":[]}`,
			want:    RefreshFrame{Requests: []Request{}},
		},
		{
			name:    "insert",
			payload: `{"type":"insert","request":{"id":"x","sequenceNumber":7,"status":"pending","payload":{"name":"Ana"}}}`,
			want: InsertFrame{Request: Request{
				ID: "x", SequenceNumber: 7, Status: StatusPending,
				Payload: RequestPayload{Name: "Ana"},
			}},
		},
		{
			name:    "update",
			payload: `{"type":"update","request":{"id":"x","status":"in_contact"}}`,
			want:    UpdateFrame{Request: Request{ID: "x", Status: StatusInContact}},
		},
		{
			name:    "delete",
			payload: `{"type":"delete","requestId":"x"}`,
			want:    DeleteFrame{RequestID: "x"},
		},
		{name: "not json", payload: `{"type":`, wantErr: ErrMalformedFrame},
		{name: "missing type", payload: `{"requestId":"x"}`, wantErr: ErrMalformedFrame},
		{name: "refresh without requests", payload: `{"type":"refresh"}`, wantErr: ErrMalformedFrame},
		{name: "refresh with null requests", payload: `{"type":"refresh","requests":null}`, wantErr: ErrMalformedFrame},
		{name: "refresh entry without id", payload: `{"type":"refresh","requests":[{"status":"pending"}]}`, wantErr: ErrMalformedFrame},
		{name: "insert without request", payload: `{"type":"insert"}`, wantErr: ErrMalformedFrame},
		{name: "update without id", payload: `{"type":"update","request":{"status":"pending"}}`, wantErr: ErrMalformedFrame},
		{name: "delete without id", payload: `{"type":"delete"}`, wantErr: ErrMalformedFrame},
		{name: "unknown type", payload: `{"type":"archive","requestId":"x"}`, wantErr: ErrUnknownFrameType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFrame([]byte(tt.payload))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFrame_RefreshNilRequestsIsEmptyArray(t *testing.T) {
	data, err := EncodeFrame(RefreshFrame{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"refresh","requests":[]}`, string(data))
}

func TestEncodeFrame_Delete(t *testing.T) {
	data, err := EncodeFrame(DeleteFrame{RequestID: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"delete","requestId":"a"}`, string(data))
}

func TestEncodeFrame_DecodesBack(t *testing.T) {
	clientID := "c-1"
	frame := UpdateFrame{Request: Request{
		ID:             "a",
		Status:         StatusConverted,
		LinkedClientID: &clientID,
	}}

	data, err := EncodeFrame(frame)
	require.NoError(t, err)

	got, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestRequestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, RequestStatus("").IsValid())
	assert.False(t, RequestStatus("PENDING").IsValid())
}
