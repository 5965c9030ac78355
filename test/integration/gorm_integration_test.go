package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.FolderRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.AuditLogRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Folder Repository", func(t *testing.T) {
		count, err := uow.FolderRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Folder count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check AuditLog Repository", func(t *testing.T) {
		count, err := uow.AuditLogRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("AuditLog count: %d", count)
	})
}
