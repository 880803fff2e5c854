package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestConfig returns a configuration pointing at a fresh SQLite file in a temp directory.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerHost:     "localhost",
		ServerPort:     "8080",
		DBDriver:       config.DriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "CookBook.db"),
		MealDBBaseURL:  "http://mealdb.invalid/api/json/v1/1",
		MealDBTimeout:  5 * time.Second,
		MealDBCacheTTL: time.Minute,
	}
}

// SetupTestDatabase opens a migrated SQLite database that is closed when the test ends.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.New(TestConfig(t))
	require.NoError(t, err, "failed to open test database")
	db.Logger = logger.Default.LogMode(logger.Silent)

	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// SetupMockDatabase returns a gorm handle backed by sqlmock, for driving storage failures.
func SetupMockDatabase(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := database.Open(postgres.New(postgres.Config{Conn: sqlDB}), logger.Silent)
	require.NoError(t, err)
	return db, mock
}

// SetupTestRedis starts a Redis container, skipping the test when docker is unavailable.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("6379/tcp"),
				wait.ForLog("Ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}
