package postgres

import (
	"context"
	"errors"
	"fmt"
	"pricesplash/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ObjectStore struct {
	pool *pgxpool.Pool
}

func (s *ObjectStore) List(ctx context.Context, prefix string) ([]domain.ObjectInfo, error) {
	const q = `select key from objects where starts_with(key, $1) order by key;`

	rows, err := s.pool.Query(ctx, q, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, err)
	}
	defer rows.Close()

	objects := make([]domain.ObjectInfo, 0, 16)
	for rows.Next() {
		var info domain.ObjectInfo
		if err = rows.Scan(&info.Key); err != nil {
			return nil, fmt.Errorf("failed to scan object key: %w", err)
		}
		objects = append(objects, info)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate objects under %q: %w", prefix, err)
	}
	return objects, nil
}

func (s *ObjectStore) Get(ctx context.Context, key string) (domain.Object, error) {
	const q = `select key, body, coalesce(content_type, '') from objects where key = $1;`

	var obj domain.Object
	if err := s.pool.QueryRow(ctx, q, key).Scan(&obj.Key, &obj.Body, &obj.ContentType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Object{}, domain.ErrObjectNotFound
		}
		return domain.Object{}, fmt.Errorf("failed to select object %q: %w", key, err)
	}
	return obj, nil
}

func (s *ObjectStore) Put(ctx context.Context, obj domain.Object) error {
	const q = `
		insert into objects (key, body, content_type, updated_at) values ($1, $2, nullif($3, ''), now())
		on conflict (key) do update
			set body = excluded.body, content_type = excluded.content_type, updated_at = excluded.updated_at;
	`

	if _, err := s.pool.Exec(ctx, q, obj.Key, obj.Body, obj.ContentType); err != nil {
		return fmt.Errorf("failed to upsert object %q: %w", obj.Key, err)
	}
	return nil
}

func NewObjectStore(pool *pgxpool.Pool) *ObjectStore {
	return &ObjectStore{pool: pool}
}
