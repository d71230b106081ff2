package ratelimit

import (
	"testing"
)

func TestAllowBurstThenBlock(t *testing.T) {
	l := New(60) // 1/s, burst 6

	for i := 0; i < 6; i++ {
		if !l.Allow("a") {
			t.Fatalf("request %d should pass within burst", i)
		}
	}
	if l.Allow("a") {
		t.Error("request past burst should be limited")
	}
	if !l.Allow("b") {
		t.Error("other keys keep their own bucket")
	}
}

func TestAllowDisabled(t *testing.T) {
	l := New(0)
	for i := 0; i < 100; i++ {
		if !l.Allow("a") {
			t.Fatal("zero rate should disable limiting")
		}
	}

	var nilLimiter *Limiter
	if !nilLimiter.Allow("a") {
		t.Error("nil limiter should allow")
	}
}

func TestSmallRateHasBurstOfOne(t *testing.T) {
	l := New(5)
	if !l.Allow("a") {
		t.Fatal("first request should pass")
	}
	if l.Allow("a") {
		t.Error("second immediate request should be limited")
	}
}
