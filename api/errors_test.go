// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package api

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorUnwrapsToSentinel(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want error
	}{
		{ErrCodeTimeout, ErrAcquireTimeout},
		{ErrCodeInvalidSlot, ErrInvalidSlot},
		{ErrCodeSlotNotAcquired, ErrSlotNotAcquired},
		{ErrCodeClosed, ErrPoolClosed},
		{ErrCodeInvalidArgument, ErrInvalidArgument},
	}
	for _, c := range cases {
		err := NewError(c.code, "boom")
		if !errors.Is(err, c.want) {
			t.Errorf("code %d: errors.Is(%v, %v) = false", c.code, err, c.want)
		}
	}
	if errors.Is(NewError(ErrCodeInvalidSlot, "boom"), ErrAcquireTimeout) {
		t.Error("structured error matched the wrong sentinel")
	}
}

func TestErrorContext(t *testing.T) {
	err := NewError(ErrCodeInvalidSlot, "slot id out of range").
		WithContext("id", 42)
	msg := err.Error()
	if !strings.Contains(msg, "slot id out of range") || !strings.Contains(msg, "42") {
		t.Errorf("Error() = %q, missing message or context", msg)
	}

	plain := NewError(ErrCodeTimeout, "plain")
	if plain.Error() != "plain" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "plain")
	}
}
