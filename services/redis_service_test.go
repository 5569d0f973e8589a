package services

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"funcbox/models"
)

func newTestRedis(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port: %v", err)
	}
	return NewRedisService(mr.Host(), port, false), mr
}

func TestPushExecutionRequest(t *testing.T) {
	ctx := context.Background()
	svc, mr := newTestRedis(t)

	req := &models.ExecutionRequest{
		InvocationID: 42,
		FunctionName: "greeter",
		Input:        map[string]string{"NAME": "Ada"},
	}
	if err := svc.PushExecutionRequest(ctx, req); err != nil {
		t.Fatalf("PushExecutionRequest error: %v", err)
	}

	raw, err := mr.Lpop(ExecutionQueueKey)
	if err != nil {
		t.Fatalf("queue should contain the request: %v", err)
	}
	var queued models.ExecutionRequest
	if err := json.Unmarshal([]byte(raw), &queued); err != nil {
		t.Fatalf("queued payload is not JSON: %v", err)
	}
	if queued.InvocationID != 42 || queued.FunctionName != "greeter" || queued.Input["NAME"] != "Ada" {
		t.Fatalf("unexpected queued request: %+v", queued)
	}
}

func TestResultRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, mr := newTestRedis(t)

	got, err := svc.GetResult(ctx, 7)
	if err != nil {
		t.Fatalf("GetResult error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil result before the worker finishes, got %+v", got)
	}

	stored := &models.ExecutionResult{
		InvocationID: 7,
		Status:       "SUCCESS",
		Output:       map[string]interface{}{"message": "Hello, World!"},
		DurationMs:   12,
	}
	if err := svc.StoreResult(ctx, stored); err != nil {
		t.Fatalf("StoreResult error: %v", err)
	}

	got, err = svc.GetResult(ctx, 7)
	if err != nil {
		t.Fatalf("GetResult error: %v", err)
	}
	if got == nil || got.Status != "SUCCESS" || got.Output["message"] != "Hello, World!" {
		t.Fatalf("unexpected result: %+v", got)
	}

	if mr.TTL(ResultKeyPrefix+"7") != ResultTTL {
		t.Fatalf("result key should carry the shared TTL, got %s", mr.TTL(ResultKeyPrefix+"7"))
	}
}
