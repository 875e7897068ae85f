package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stars_admin/internal/domain/audit/model"
)

func newMockRepo(t *testing.T) (AuditRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return NewAuditRepository(gdb), mock
}

func recordRows(records ...model.ActionRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "actor_id", "entity", "entity_id", "action", "outcome", "detail", "created_at",
	})
	for _, r := range records {
		rows.AddRow(r.ID.String(), r.ActorID, r.Entity, r.EntityID, r.Action, r.Outcome, r.Detail, r.CreatedAt)
	}
	return rows
}

func TestAuditRepositoryCreate(t *testing.T) {
	t.Run("inserts a record", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`INSERT INTO "moderation_audit"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(&model.ActionRecord{
			ID:       uuid.New(),
			ActorID:  "admin-1",
			Entity:   "post",
			EntityID: "p1",
			Action:   "approve",
			Outcome:  model.OutcomeSuccess,
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`INSERT INTO "moderation_audit"`).
			WillReturnError(sql.ErrConnDone)

		err := repo.Create(&model.ActionRecord{ID: uuid.New(), Entity: "post", EntityID: "p1", Action: "delete", Outcome: model.OutcomeFailure})
		assert.Error(t, err)
	})
}

func TestAuditRepositoryList(t *testing.T) {
	t.Run("returns records with total", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		first := model.ActionRecord{
			ID: uuid.New(), ActorID: "admin-1", Entity: "post", EntityID: "p1",
			Action: "approve", Outcome: model.OutcomeSuccess, CreatedAt: time.Now(),
		}
		second := model.ActionRecord{
			ID: uuid.New(), ActorID: "admin-2", Entity: "reel", EntityID: "r1",
			Action: "delete", Outcome: model.OutcomeFailure, Detail: "upstream 502", CreatedAt: time.Now().Add(-time.Hour),
		}

		mock.ExpectQuery(`SELECT count\(\*\) FROM "moderation_audit"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT \* FROM "moderation_audit" ORDER BY created_at DESC`).
			WillReturnRows(recordRows(first, second))

		records, total, err := repo.List(0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, records, 2)
		assert.Equal(t, "approve", records[0].Action)
		assert.Equal(t, "upstream 502", records[1].Detail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count failure aborts the query", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "moderation_audit"`).
			WillReturnError(sql.ErrConnDone)

		_, _, err := repo.List(0, 10)
		assert.Error(t, err)
	})
}

func TestAuditRepositoryListByEntity(t *testing.T) {
	repo, mock := newMockRepo(t)

	record := model.ActionRecord{
		ID: uuid.New(), ActorID: "admin-1", Entity: "post", EntityID: "p1",
		Action: "reject", Outcome: model.OutcomeSuccess, CreatedAt: time.Now(),
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "moderation_audit" WHERE entity = \$1 AND entity_id = \$2`).
		WithArgs("post", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "moderation_audit" WHERE entity = \$1 AND entity_id = \$2`).
		WithArgs("post", "p1", 10).
		WillReturnRows(recordRows(record))

	records, total, err := repo.ListByEntity("post", "p1", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, "reject", records[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
