package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/redis/go-redis/v9"

	"funcbox/models"
)

// Queue and result key layout shared between server and worker.
const (
	ExecutionQueueKey = "execution_queue:builtin"
	ResultKeyPrefix   = "result:"
	ResultTTL         = 10 * time.Minute
)

type RedisService struct {
	client *redis.Client
	trace  bool
}

func NewRedisService(host string, port int, trace bool) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port),
	})
	return &RedisService{client: client, trace: trace}
}

// Client exposes the underlying connection for the worker's blocking loop.
func (r *RedisService) Client() *redis.Client {
	return r.client
}

// PushExecutionRequest queues an execution request for the worker.
func (r *RedisService) PushExecutionRequest(ctx context.Context, req *models.ExecutionRequest) error {
	return r.capture(ctx, "Redis.LPush", func(ctx context.Context) error {
		jsonData, err := json.Marshal(req)
		if err != nil {
			return err
		}
		return r.client.LPush(ctx, ExecutionQueueKey, string(jsonData)).Err()
	})
}

// GetResult retrieves the execution result for an invocation ID, or nil
// when the worker has not finished yet.
func (r *RedisService) GetResult(ctx context.Context, invocationID int64) (*models.ExecutionResult, error) {
	var result *models.ExecutionResult

	err := r.capture(ctx, "Redis.Get", func(ctx context.Context) error {
		key := fmt.Sprintf("%s%d", ResultKeyPrefix, invocationID)
		jsonData, err := r.client.Get(ctx, key).Result()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}

		var execResult models.ExecutionResult
		if err := json.Unmarshal([]byte(jsonData), &execResult); err != nil {
			return err
		}
		result = &execResult
		return nil
	})

	return result, err
}

// StoreResult writes a finished execution result with the shared TTL.
func (r *RedisService) StoreResult(ctx context.Context, result *models.ExecutionResult) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%d", ResultKeyPrefix, result.InvocationID)
	return r.client.Set(ctx, key, jsonData, ResultTTL).Err()
}

// Ping checks the Redis connection.
func (r *RedisService) Ping(ctx context.Context) error {
	return r.capture(ctx, "Redis.Ping", func(ctx context.Context) error {
		return r.client.Ping(ctx).Err()
	})
}

// capture wraps fn in an X-Ray subsegment when tracing is enabled.
func (r *RedisService) capture(ctx context.Context, name string, fn func(context.Context) error) error {
	if !r.trace {
		return fn(ctx)
	}
	var err error
	xray.Capture(ctx, name, func(ctx1 context.Context) error {
		err = fn(ctx)
		if seg := xray.GetSegment(ctx1); seg != nil {
			seg.AddMetadata("redis.operation", name)
		}
		return err
	})
	return err
}
