package postgres

import (
	"os"
	"testing"

	"todo-api/internal/adapters/output/repotest"
	"todo-api/internal/ports/output"
	gormdriver "todo-api/pkg/database_driver/gorm"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openIntegrationDB connects to DATABASE_URL and skips when it is not set
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL integration tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), gormdriver.Config(false))
	require.NoError(t, err)
	require.NoError(t, MigrateDatabase(db))
	t.Cleanup(func() { gormdriver.DisconnectPostgres(db) })
	return db
}

func truncate(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec(`TRUNCATE todos, labels RESTART IDENTITY`).Error)
}

func TestTodoRepositoryIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	repotest.RunTodoRepositoryContract(t, func(t *testing.T) output.TodoRepository {
		truncate(t, db)
		return NewTodoRepository(db)
	})
}

func TestLabelRepositoryIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	repotest.RunLabelRepositoryContract(t, func(t *testing.T) output.LabelRepository {
		truncate(t, db)
		return NewLabelRepository(db)
	})
}
