package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"funcbox/models"
)

type DBService struct {
	db *sql.DB
}

func NewDBService(host string, port int, user, password, dbname string) (*DBService, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DBService{db: db}, nil
}

func (s *DBService) Close() error {
	return s.db.Close()
}

// InitSchema creates tables if they don't exist. Functions themselves are
// compiled into the binaries, so only invocations and schedules persist.
func (s *DBService) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS function_invocations (
		id BIGSERIAL PRIMARY KEY,
		function_name VARCHAR(100) NOT NULL,
		invoked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		invoked_by VARCHAR(255),
		input_event JSONB NOT NULL,
		status VARCHAR(20) NOT NULL,
		output_result JSONB,
		error_message TEXT,
		logs TEXT,
		duration_ms INTEGER,
		artifact_key TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS function_schedules (
		id BIGSERIAL PRIMARY KEY,
		function_name VARCHAR(100) NOT NULL,
		scheduled_at TIMESTAMPTZ NOT NULL,
		payload JSONB NOT NULL,
		executed BOOLEAN NOT NULL DEFAULT FALSE,
		executed_at TIMESTAMPTZ,
		status VARCHAR(20),
		error_message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_function_invocations_name ON function_invocations(function_name);
	CREATE INDEX IF NOT EXISTS idx_function_invocations_invoked_at ON function_invocations(invoked_at DESC);
	CREATE INDEX IF NOT EXISTS idx_function_schedules_due ON function_schedules(scheduled_at) WHERE NOT executed;
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// CreateInvocation creates a new invocation record.
func (s *DBService) CreateInvocation(ctx context.Context, inv *models.Invocation) (*models.Invocation, error) {
	inputEventJSON, _ := json.Marshal(inv.InputEvent)

	var id int64
	var invokedAt, createdAt time.Time
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO function_invocations (function_name, invoked_by, input_event, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, invoked_at, created_at
	`, inv.FunctionName, inv.InvokedBy, inputEventJSON, inv.Status).Scan(&id, &invokedAt, &createdAt)
	if err != nil {
		return nil, err
	}

	inv.ID = id
	inv.InvokedAt = invokedAt
	inv.CreatedAt = createdAt

	return inv, nil
}

// UpdateInvocationResult records the worker's outcome for an invocation.
func (s *DBService) UpdateInvocationResult(ctx context.Context, id int64, status string, outputResult map[string]interface{}, errorMessage, logs string, durationMs int) error {
	outputJSON, _ := json.Marshal(outputResult)

	_, err := s.db.ExecContext(ctx, `
		UPDATE function_invocations
		SET status = $2, output_result = $3, error_message = $4, logs = $5, duration_ms = $6
		WHERE id = $1
	`, id, status, outputJSON, errorMessage, logs, durationMs)

	return err
}

// UpdateInvocationArtifact stores the artifact key of a saved output image.
func (s *DBService) UpdateInvocationArtifact(ctx context.Context, id int64, artifactKey string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE function_invocations SET artifact_key = $2 WHERE id = $1
	`, id, artifactKey)
	return err
}

// GetInvocation retrieves an invocation by ID, or nil when absent.
func (s *DBService) GetInvocation(ctx context.Context, id int64) (*models.Invocation, error) {
	inv := &models.Invocation{}
	var inputEventJSON, outputResultJSON []byte
	var errorMessage, invokedBy, logs, artifactKey sql.NullString
	var durationMs sql.NullInt32

	err := s.db.QueryRowContext(ctx, `
		SELECT id, function_name, invoked_at, invoked_by, input_event, status, output_result, error_message, logs, duration_ms, artifact_key, created_at
		FROM function_invocations WHERE id = $1
	`, id).Scan(&inv.ID, &inv.FunctionName, &inv.InvokedAt, &invokedBy, &inputEventJSON, &inv.Status, &outputResultJSON, &errorMessage, &logs, &durationMs, &artifactKey, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if inputEventJSON != nil {
		json.Unmarshal(inputEventJSON, &inv.InputEvent)
	}
	if outputResultJSON != nil {
		json.Unmarshal(outputResultJSON, &inv.OutputResult)
	}
	if errorMessage.Valid {
		inv.ErrorMessage = errorMessage.String
	}
	if invokedBy.Valid {
		inv.InvokedBy = invokedBy.String
	}
	if logs.Valid {
		inv.Logs = logs.String
	}
	if artifactKey.Valid {
		inv.ArtifactKey = artifactKey.String
	}
	if durationMs.Valid {
		inv.DurationMs = int(durationMs.Int32)
	}

	return inv, nil
}

// ListInvocations returns the most recent invocations of a function.
func (s *DBService) ListInvocations(ctx context.Context, functionName string, limit int) ([]models.InvocationListItem, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, function_name, invoked_at, input_event, status, output_result, error_message, duration_ms, artifact_key
		FROM function_invocations
		WHERE function_name = $1
		ORDER BY invoked_at DESC
		LIMIT $2
	`, functionName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invocations []models.InvocationListItem
	for rows.Next() {
		var inv models.InvocationListItem
		var inputEventJSON, outputResultJSON []byte
		var errorMessage, artifactKey sql.NullString
		var durationMs sql.NullInt32

		err := rows.Scan(&inv.ID, &inv.FunctionName, &inv.InvokedAt, &inputEventJSON, &inv.Status, &outputResultJSON, &errorMessage, &durationMs, &artifactKey)
		if err != nil {
			return nil, err
		}

		if inputEventJSON != nil {
			json.Unmarshal(inputEventJSON, &inv.InputEvent)
		}
		if outputResultJSON != nil {
			json.Unmarshal(outputResultJSON, &inv.OutputResult)
		}
		if errorMessage.Valid {
			inv.ErrorMessage = errorMessage.String
		}
		if artifactKey.Valid {
			inv.ArtifactKey = artifactKey.String
		}
		if durationMs.Valid {
			inv.DurationMs = int(durationMs.Int32)
		}

		invocations = append(invocations, inv)
	}

	return invocations, rows.Err()
}
