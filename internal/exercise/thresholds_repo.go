package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/formsight/formsight/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
)

var ErrThresholdsNotFound = errors.New("thresholds not found")

type thresholdsDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repo stores per-exercise threshold overrides. A missing row means the
// exercise runs on DefaultThresholds.
type Repo struct {
	db thresholdsDB
}

func NewRepo(db thresholdsDB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetThresholds(ctx context.Context, t Type) (_ Thresholds, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.thresholds.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", t.String()))

	var raw []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT thresholds FROM exercise_thresholds WHERE exercise = $1`,
		t.String(),
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Thresholds{}, ErrThresholdsNotFound
		}
		return Thresholds{}, fmt.Errorf("thresholds [query row]: %w", err)
	}

	thresholds := DefaultThresholds()
	if err := json.Unmarshal(raw, &thresholds); err != nil {
		return Thresholds{}, fmt.Errorf("thresholds [unmarshal]: %w", err)
	}
	return thresholds, nil
}

func (r *Repo) SetThresholds(ctx context.Context, t Type, thresholds Thresholds) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.thresholds.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", t.String()))

	raw, err := json.Marshal(thresholds)
	if err != nil {
		return fmt.Errorf("thresholds [marshal]: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_thresholds (exercise, thresholds, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (exercise)
			DO UPDATE SET thresholds = $2, updated_at = now()
		`,
		t.String(), raw,
	)
	if err != nil {
		return fmt.Errorf("thresholds [exec]: %w", err)
	}
	return nil
}

// ThresholdsOrDefault loads the stored overrides for an exercise, falling
// back to package defaults when no row exists.
func (r *Repo) ThresholdsOrDefault(ctx context.Context, t Type) (Thresholds, error) {
	thresholds, err := r.GetThresholds(ctx, t)
	if err != nil {
		if errors.Is(err, ErrThresholdsNotFound) {
			return DefaultThresholds(), nil
		}
		return Thresholds{}, err
	}
	return thresholds, nil
}
