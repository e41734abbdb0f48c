package middleware

import "testing"

func TestTokenBucketBurst(t *testing.T) {
	bucket := NewTokenBucket(0.0001, 5)

	for i := 0; i < 5; i++ {
		if !bucket.Allow() {
			t.Fatalf("Expected request %d within burst to pass", i+1)
		}
	}
	if bucket.Allow() {
		t.Error("Expected request beyond burst to be rejected")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(1000, 1)

	if !bucket.Allow() {
		t.Fatal("Expected first request to pass")
	}

	// at 1000 tokens/s the bucket refills almost immediately
	passed := false
	for i := 0; i < 100000 && !passed; i++ {
		passed = bucket.Allow()
	}
	if !passed {
		t.Error("Expected bucket to refill")
	}
}
