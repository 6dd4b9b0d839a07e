// Package storagetest opens the databases used by integration tests.
// Tests are skipped when the matching environment variable is unset.
package storagetest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/migrations"
	"github.com/m04kA/LimpMe-BookingService/pkg/dbmetrics"
)

const (
	envDatabaseDSN = "TEST_DATABASE_DSN"
	envRedisAddr   = "TEST_REDIS_ADDR"
)

// OpenPostgres connects to TEST_DATABASE_DSN, applies the schema and
// truncates the tables.
func OpenPostgres(t *testing.T) *dbmetrics.DB {
	t.Helper()

	dsn := os.Getenv(envDatabaseDSN)
	if dsn == "" {
		t.Skipf("%s is not set", envDatabaseDSN)
	}

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, sqlDB.PingContext(ctx))

	db := dbmetrics.Wrap(sqlDB, nil)
	require.NoError(t, migrations.Apply(ctx, db))

	_, err = db.ExecContext(ctx, "TRUNCATE bookings, users CASCADE")
	require.NoError(t, err)

	return db
}

// CreateUser inserts a user row and returns its id
func CreateUser(t *testing.T, db dbmetrics.DBExecutor, email string) string {
	t.Helper()

	var id string
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id", email,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// OpenRedis connects to TEST_REDIS_ADDR and flushes the selected database
func OpenRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv(envRedisAddr)
	if addr == "" {
		t.Skipf("%s is not set", envRedisAddr)
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())
	require.NoError(t, client.FlushDB(ctx).Err())

	return client
}
