package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"funcbox/models"
)

type ScheduleService struct {
	registry *Registry
	db       *DBService
}

func NewScheduleService(registry *Registry, db *DBService) *ScheduleService {
	return &ScheduleService{
		registry: registry,
		db:       db,
	}
}

// CreateSchedule registers a one-time scheduled invocation of a function.
func (s *ScheduleService) CreateSchedule(ctx context.Context, functionName string, req *models.CreateScheduleRequest) (*models.FunctionSchedule, error) {
	if _, err := s.registry.Get(functionName); err != nil {
		return nil, err
	}

	if req.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("scheduled_at is required")
	}
	now := time.Now().UTC()
	if req.ScheduledAt.Before(now) {
		return nil, fmt.Errorf("scheduled_at must be in the future")
	}

	payload := req.Payload
	if payload == nil {
		payload = map[string]string{}
	}

	return s.db.CreateSchedule(ctx, &models.FunctionSchedule{
		FunctionName: functionName,
		ScheduledAt:  req.ScheduledAt,
		Payload:      payload,
		Executed:     false,
	})
}

// ListSchedules returns the schedules for a function.
func (s *ScheduleService) ListSchedules(ctx context.Context, functionName string) ([]models.FunctionSchedule, error) {
	if _, err := s.registry.Get(functionName); err != nil {
		return nil, err
	}
	return s.db.ListSchedules(ctx, functionName)
}

// DeleteSchedule removes a schedule.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, functionName string, scheduleID int64) error {
	return s.db.DeleteSchedule(ctx, functionName, scheduleID)
}

// ClaimDueSchedules locks due schedules and returns them for execution.
func (s *ScheduleService) ClaimDueSchedules(ctx context.Context, limit int) ([]models.FunctionSchedule, error) {
	if limit <= 0 {
		limit = 10
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	rows, err := tx.QueryContext(ctx, `
		SELECT id, function_name, scheduled_at, payload, created_at, updated_at
		FROM function_schedules
		WHERE executed = FALSE AND scheduled_at <= $1
		ORDER BY scheduled_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.FunctionSchedule
	var scheduleIDs []int64
	for rows.Next() {
		var sched models.FunctionSchedule
		var payloadJSON []byte
		if err := rows.Scan(&sched.ID, &sched.FunctionName, &sched.ScheduledAt, &payloadJSON, &sched.CreatedAt, &sched.UpdatedAt); err != nil {
			return nil, err
		}
		if payloadJSON != nil {
			json.Unmarshal(payloadJSON, &sched.Payload)
		}
		schedules = append(schedules, sched)
		scheduleIDs = append(scheduleIDs, sched.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Mark as executed inside the same transaction so no other runner picks
	// these up.
	if len(scheduleIDs) > 0 {
		placeholders := ""
		for i := range scheduleIDs {
			if i > 0 {
				placeholders += ","
			}
			placeholders += fmt.Sprintf("$%d", i+1)
		}

		query := fmt.Sprintf(`
			UPDATE function_schedules
			SET executed = TRUE, executed_at = now(), updated_at = now()
			WHERE id IN (%s)
		`, placeholders)

		args := make([]interface{}, len(scheduleIDs))
		for i, id := range scheduleIDs {
			args[i] = id
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// MarkExecuted records the outcome of a claimed schedule.
func (s *ScheduleService) MarkExecuted(ctx context.Context, scheduleID int64, status, errMsg string) {
	_ = s.db.MarkScheduleExecuted(ctx, scheduleID, status, errMsg)
}
