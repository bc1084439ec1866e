package program

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainprogress/internal/telemetry/tracing"
	"github.com/2beens/trainprogress/pkg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddTemplate(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.template.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := template.Validate(); err != nil {
		return nil, err
	}

	sessions, err := json.Marshal(template.Sessions)
	if err != nil {
		return nil, fmt.Errorf("marshal sessions: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO program_template (name, total_weeks, sessions, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		template.Name,
		template.TotalWeeks,
		sessions,
		time.Now(),
	).Scan(&template.ID, &template.CreatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("template.id", template.ID))
	return &template, nil
}

func (r *Repo) GetTemplate(ctx context.Context, id int64) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.template.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int64("template.id", id))

	var sessions []byte
	template := &Template{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, name, total_weeks, sessions, created_at
			FROM program_template
			WHERE id = $1
		`, id).
		Scan(&template.ID, &template.Name, &template.TotalWeeks, &sessions, &template.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(sessions, &template.Sessions); err != nil {
		return nil, fmt.Errorf("unmarshal sessions of template %d: %w", id, err)
	}

	return template, nil
}

// AssignProgram supersedes the user's active instance (if any) and creates a new one
// starting at week 1, slot 0.
func (r *Repo) AssignProgram(ctx context.Context, userID uuid.UUID, templateID int64, startedAt time.Time) (_ *Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.instance.assign")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		UPDATE program_instance
		SET superseded_at = $2
		WHERE user_id = $1 AND superseded_at IS NULL
	`, userID, startedAt); err != nil {
		return nil, fmt.Errorf("supersede previous instance: %w", err)
	}

	instance := NewInstance(userID, templateID, startedAt)
	if _, err = tx.Exec(ctx, `
		INSERT INTO program_instance (id, user_id, template_id, current_week, current_session_index, started_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		instance.ID,
		instance.UserID,
		instance.TemplateID,
		instance.CurrentWeek,
		instance.CurrentSessionIndex,
		instance.StartedAt,
		instance.UpdatedAt,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrTemplateNotFound
		}
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: user %s", ErrConcurrentAssignment, userID)
		}
		return nil, fmt.Errorf("insert instance: %w", err)
	}

	return instance, nil
}

func (r *Repo) GetActiveInstance(ctx context.Context, userID uuid.UUID) (_ *Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.instance.active")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	instance := &Instance{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, user_id, template_id, current_week, current_session_index, last_rollover_record_id, started_at, updated_at
			FROM program_instance
			WHERE user_id = $1 AND superseded_at IS NULL
		`, userID).
		Scan(
			&instance.ID,
			&instance.UserID,
			&instance.TemplateID,
			&instance.CurrentWeek,
			&instance.CurrentSessionIndex,
			&instance.LastRolloverRecordID,
			&instance.StartedAt,
			&instance.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstanceNotFound
		}
		return nil, err
	}

	return instance, nil
}

// UpdateCursor persists the week and slot of an active instance.
// Superseded instances are never written.
func (r *Repo) UpdateCursor(ctx context.Context, instance *Instance) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.instance.cursor")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("instance.id", instance.ID.String()),
		attribute.Int("week", instance.CurrentWeek),
		attribute.Int("slot", instance.CurrentSessionIndex),
	)

	instance.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, `
		UPDATE program_instance
		SET current_week = $2, current_session_index = $3, last_rollover_record_id = $4, updated_at = $5
		WHERE id = $1 AND superseded_at IS NULL
	`,
		instance.ID,
		instance.CurrentWeek,
		instance.CurrentSessionIndex,
		instance.LastRolloverRecordID,
		instance.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInstanceNotFound
	}

	return nil
}
