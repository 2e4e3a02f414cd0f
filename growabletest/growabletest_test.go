// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growabletest

import (
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ava-labs/growable"
)

func TestDrain(t *testing.T) {
	src := []int{3, 1, 4}
	remove := func() (int, error) {
		if len(src) == 0 {
			return 0, fmt.Errorf("%w: test", growable.ErrEmpty)
		}
		x := src[0]
		src = src[1:]
		return x, nil
	}
	if diff := cmp.Diff([]int{3, 1, 4}, Drain(t, remove)); diff != "" {
		t.Errorf("Drain() diff (-want +got):\n%s", diff)
	}
}

func TestLogRecorder(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)
	rec.Verbo("dropped")
	rec.Debug("kept", zap.String("container", "stack"), zap.Int("from", 1), zap.Int("to", 2), zap.Int("size", 1))
	rec.With(zap.String("container", "queue")).Info("shared", zap.Int("from", 4), zap.Int("to", 2), zap.Int("size", 1))
	rec.Warn("no fields")

	assert.Len(t, rec.Records(), 3)
	assert.Len(t, rec.At(logging.Debug), 1)

	want := []Resize{
		{Msg: "kept", Container: "stack", From: 1, To: 2, Size: 1},
		{Msg: "shared", Container: "queue", From: 4, To: 2, Size: 1},
	}
	if diff := cmp.Diff(want, rec.Resizes()); diff != "" {
		t.Errorf("Resizes() diff (-want +got):\n%s", diff)
	}
}
