package health

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Func wraps any probe function.
func Func(name string, fn func(context.Context) error) Check {
	return Check{Name: name, Fn: fn}
}

// Redis pings a Redis client, cluster or ring.
func Redis(client redis.UniversalClient) Check {
	return Check{
		Name: "redis",
		Fn: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Join(ErrCheckFailed, err)
			}
			return nil
		},
	}
}

// Postgres pings a pgx connection pool.
func Postgres(pool *pgxpool.Pool) Check {
	return Check{
		Name: "postgres",
		Fn: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return errors.Join(ErrCheckFailed, err)
			}
			return nil
		},
	}
}

// Mongo pings a MongoDB client against its default read preference.
func Mongo(client *mongo.Client) Check {
	return Check{
		Name: "mongo",
		Fn: func(ctx context.Context) error {
			if err := client.Ping(ctx, nil); err != nil {
				return errors.Join(ErrCheckFailed, err)
			}
			return nil
		},
	}
}
