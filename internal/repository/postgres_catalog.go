package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acest-fitness/gym-service/internal/domain"
)

// LoadCatalog reads every catalog table once and returns an immutable snapshot.
// Later changes to the tables are not observed until the process restarts.
func LoadCatalog(ctx context.Context, pool *pgxpool.Pool) (*Catalog, error) {
	if pool == nil {
		return nil, errors.New("postgres pool not configured")
	}

	members, err := queryAll(ctx, pool, `SELECT id, name, age, membership FROM members ORDER BY id`,
		func(row pgx.Rows) (domain.Member, error) {
			var m domain.Member
			err := row.Scan(&m.ID, &m.Name, &m.Age, &m.Membership)
			return m, err
		})
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	workouts, err := queryAll(ctx, pool, `SELECT id, name, duration FROM workouts ORDER BY id`,
		func(row pgx.Rows) (domain.Workout, error) {
			var w domain.Workout
			err := row.Scan(&w.ID, &w.Name, &w.Duration)
			return w, err
		})
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	trainers, err := queryAll(ctx, pool, `SELECT id, name, specialty FROM trainers ORDER BY id`,
		func(row pgx.Rows) (domain.Trainer, error) {
			var t domain.Trainer
			err := row.Scan(&t.ID, &t.Name, &t.Specialty)
			return t, err
		})
	if err != nil {
		return nil, fmt.Errorf("load trainers: %w", err)
	}

	classes, err := queryAll(ctx, pool, `SELECT id, name, time_slot FROM classes ORDER BY id`,
		func(row pgx.Rows) (domain.Class, error) {
			var c domain.Class
			err := row.Scan(&c.ID, &c.Name, &c.Time)
			return c, err
		})
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}

	return NewCatalog(members, workouts, trainers, classes), nil
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
