package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"

	"funcbox/models"
)

// InvokeService ties the registry, the invocation store, the queue and the
// artifact storage together.
type InvokeService struct {
	registry *Registry
	db       *DBService
	redis    *RedisService
	storage  StorageService
}

func NewInvokeService(registry *Registry, db *DBService, redis *RedisService, storage StorageService) *InvokeService {
	return &InvokeService{
		registry: registry,
		db:       db,
		redis:    redis,
		storage:  storage,
	}
}

// GetFunction returns a registered built-in by name.
func (s *InvokeService) GetFunction(name string) (models.BuiltinFunction, error) {
	return s.registry.Get(name)
}

// ListFunctions returns all registered built-ins.
func (s *InvokeService) ListFunctions() []models.FunctionListItem {
	return s.registry.List()
}

// Invoke records a pending invocation and queues it for the worker.
func (s *InvokeService) Invoke(ctx context.Context, functionName string, params map[string]string, invokedBy string) (*models.Invocation, error) {
	fn, err := s.registry.Get(functionName)
	if err != nil {
		return nil, err
	}

	if params == nil {
		params = map[string]string{}
	}

	inv := &models.Invocation{
		FunctionName: fn.Name,
		InputEvent:   params,
		InvokedBy:    invokedBy,
		Status:       models.StatusPending,
	}

	created, err := s.db.CreateInvocation(ctx, inv)
	if err != nil {
		return nil, err
	}

	execReq := &models.ExecutionRequest{
		InvocationID: created.ID,
		FunctionName: fn.Name,
		Input:        params,
	}
	if err := s.redis.PushExecutionRequest(ctx, execReq); err != nil {
		return nil, err
	}

	if err := s.registry.UpdateLastInvoked(fn.Name); err != nil {
		log.Warn().Str("function", fn.Name).Err(err).Msg("Failed to stamp last invocation")
	}

	return created, nil
}

// GetInvocationResult polls for the worker's result, persists it on
// completion and archives the output image when one was produced.
func (s *InvokeService) GetInvocationResult(ctx context.Context, invocationID int64) (*models.Invocation, error) {
	inv, err := s.db.GetInvocation(ctx, invocationID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("invocation not found: %d", invocationID)
	}

	if inv.Status != models.StatusPending {
		return inv, nil
	}

	result, err := s.redis.GetResult(ctx, invocationID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// Still pending.
		return inv, nil
	}

	status := invocationStatus(result.Status)

	err = s.db.UpdateInvocationResult(ctx, invocationID, status, result.Output, result.ErrorMessage, result.Logs, result.DurationMs)
	if err != nil {
		return nil, err
	}

	if status == models.StatusSuccess {
		s.archiveArtifact(ctx, invocationID, result.Output)
	}

	return s.db.GetInvocation(ctx, invocationID)
}

// invocationStatus maps the worker's coarse result status onto the
// persisted invocation status. Anything unrecognized counts as a failure.
func invocationStatus(workerStatus string) string {
	switch workerStatus {
	case "SUCCESS":
		return models.StatusSuccess
	case "TIMEOUT":
		return models.StatusTimeout
	default:
		return models.StatusFail
	}
}

// archiveArtifact persists a base64 image payload from the function output,
// if present. Failures are logged, not surfaced: the invocation itself
// succeeded.
func (s *InvokeService) archiveArtifact(ctx context.Context, invocationID int64, output map[string]interface{}) {
	encoded, ok := output["processed_image"].(string)
	if !ok || encoded == "" {
		return
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Warn().Int64("invocation_id", invocationID).Err(err).Msg("Output image is not valid base64")
		return
	}

	key := ArtifactKey(invocationID)
	if err := s.storage.SaveArtifact(ctx, key, data, "image/jpeg"); err != nil {
		log.Error().Int64("invocation_id", invocationID).Str("key", key).Err(err).Msg("Failed to save artifact")
		return
	}
	if err := s.db.UpdateInvocationArtifact(ctx, invocationID, key); err != nil {
		log.Error().Int64("invocation_id", invocationID).Str("key", key).Err(err).Msg("Failed to record artifact key")
		return
	}

	log.Debug().Int64("invocation_id", invocationID).Str("key", key).Int("bytes", len(data)).Msg("Artifact archived")
}

// ListInvocations returns the invocation history of a function.
func (s *InvokeService) ListInvocations(ctx context.Context, functionName string, limit int) ([]models.InvocationListItem, error) {
	if _, err := s.registry.Get(functionName); err != nil {
		return nil, err
	}
	return s.db.ListInvocations(ctx, functionName, limit)
}
