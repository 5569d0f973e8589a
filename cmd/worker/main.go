// The worker drains the execution queue: it pops invocation requests,
// runs the named built-in function binary with the request params as
// environment variables, and stores the outcome in Redis for the API
// server to collect.
package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"funcbox/config"
	"funcbox/logging"
	"funcbox/models"
	"funcbox/services"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	log.Info().
		Str("bin_dir", cfg.Worker.BinDir).
		Dur("exec_timeout", cfg.Worker.ExecTimeout).
		Msg("Starting funcbox worker")

	registry := services.NewRegistry()
	if err := services.SeedRegistry(registry, cfg.Worker.BinDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed function registry")
	}

	redisService := services.NewRedisService(cfg.Redis.Host, cfg.Redis.Port, false)
	ctx := context.Background()
	if err := redisService.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	log.Info().Str("host", cfg.Redis.Host).Int("port", cfg.Redis.Port).Msg("Connected to Redis")

	executor := &Executor{Timeout: cfg.Worker.ExecTimeout}
	rdb := redisService.Client()

	for {
		popped, err := rdb.BRPop(ctx, cfg.Worker.PollTimeout, services.ExecutionQueueKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			log.Error().Err(err).Msg("Error reading from queue")
			continue
		}

		// popped[0] is the queue key, popped[1] the payload.
		var req models.ExecutionRequest
		if err := json.Unmarshal([]byte(popped[1]), &req); err != nil {
			log.Error().Err(err).Msg("Error parsing execution request")
			continue
		}

		processRequest(ctx, registry, executor, redisService, &req)
	}
}

func processRequest(ctx context.Context, registry *services.Registry, executor *Executor, redisService *services.RedisService, req *models.ExecutionRequest) {
	log.Info().
		Int64("invocation_id", req.InvocationID).
		Str("function", req.FunctionName).
		Msg("Processing invocation")

	startTime := time.Now()
	result := execute(registry, executor, req)
	result.DurationMs = int(time.Since(startTime).Milliseconds())

	if err := redisService.StoreResult(ctx, result); err != nil {
		log.Error().Int64("invocation_id", req.InvocationID).Err(err).Msg("Error storing result")
		return
	}

	log.Info().
		Int64("invocation_id", req.InvocationID).
		Str("status", result.Status).
		Int("duration_ms", result.DurationMs).
		Msg("Finished invocation")
}

func execute(registry *services.Registry, executor *Executor, req *models.ExecutionRequest) *models.ExecutionResult {
	result := &models.ExecutionResult{InvocationID: req.InvocationID}

	fn, err := registry.Get(req.FunctionName)
	if err != nil {
		result.Status = "ERROR"
		result.ErrorMessage = err.Error()
		return result
	}

	status, output, logs := executor.Run(fn, req.Input)
	result.Status = status
	result.OutputRaw = output
	result.Logs = logs

	if status != "SUCCESS" {
		result.ErrorMessage = output
		return result
	}

	// The function printed exactly one JSON document. A status field of
	// "error" inside it means the function itself failed.
	var parsed map[string]interface{}
	if output != "" {
		if err := json.Unmarshal([]byte(output), &parsed); err != nil {
			parsed = map[string]interface{}{"result": output}
		}
	}
	result.Output = parsed

	if fnStatus, ok := parsed["status"].(string); ok && fnStatus == "error" {
		result.Status = "ERROR"
		if msg, ok := parsed["error"].(string); ok {
			result.ErrorMessage = msg
		}
	}

	return result
}
