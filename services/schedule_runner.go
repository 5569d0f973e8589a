package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"funcbox/models"
)

// ScheduleRunner periodically claims due schedules and invokes their
// functions.
type ScheduleRunner struct {
	scheduleService *ScheduleService
	invokeService   *InvokeService
	interval        time.Duration
	batchSize       int
	stopCh          chan struct{}
	wg              sync.WaitGroup
}

func NewScheduleRunner(scheduleService *ScheduleService, invokeService *InvokeService) *ScheduleRunner {
	return &ScheduleRunner{
		scheduleService: scheduleService,
		invokeService:   invokeService,
		interval:        time.Second,
		batchSize:       20,
		stopCh:          make(chan struct{}),
	}
}

func (r *ScheduleRunner) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.processDueSchedules()
			case <-r.stopCh:
				return
			}
		}
	}()
}

func (r *ScheduleRunner) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}

func (r *ScheduleRunner) processDueSchedules() {
	ctx := context.Background()
	schedules, err := r.scheduleService.ClaimDueSchedules(ctx, r.batchSize)
	if err != nil {
		log.Error().Err(err).Msg("Scheduler failed to claim schedules")
		return
	}
	for _, sched := range schedules {
		go r.executeSchedule(ctx, sched)
	}
}

func (r *ScheduleRunner) executeSchedule(ctx context.Context, sched models.FunctionSchedule) {
	payload := sched.Payload
	if payload == nil {
		payload = map[string]string{}
	}
	invokedBy := fmt.Sprintf("schedule:%d", sched.ID)

	inv, err := r.invokeService.Invoke(ctx, sched.FunctionName, payload, invokedBy)
	if err != nil {
		r.scheduleService.MarkExecuted(ctx, sched.ID, models.StatusFail, err.Error())
		return
	}

	// Poll for the result, up to 60 seconds.
	maxRetries := 120
	for i := 0; i < maxRetries; i++ {
		time.Sleep(500 * time.Millisecond)

		result, err := r.invokeService.GetInvocationResult(ctx, inv.ID)
		if err != nil {
			log.Error().Int64("schedule_id", sched.ID).Err(err).Msg("Scheduler failed to poll invocation")
			continue
		}

		if result.Status != models.StatusPending {
			errMsg := ""
			if result.Status == models.StatusFail || result.Status == models.StatusTimeout {
				errMsg = result.ErrorMessage
			}
			r.scheduleService.MarkExecuted(ctx, sched.ID, result.Status, errMsg)
			return
		}
	}

	r.scheduleService.MarkExecuted(ctx, sched.ID, models.StatusTimeout, "execution timed out after 60 seconds")
}
