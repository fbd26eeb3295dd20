package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dsemenov/snipsync/internal/logger"
)

func newTestSyncMetaRepo(t *testing.T) (*syncMetaRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &syncMetaRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSyncMetaRepository_Handle_Empty(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_meta").
		WithArgs(metaKeyHandle).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	handle, err := repo.Handle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != "" {
		t.Errorf("expected empty handle, got %q", handle)
	}
}

func TestSyncMetaRepository_Handle(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_meta").
		WithArgs(metaKeyHandle).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("blob-42"))

	handle, err := repo.Handle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != "blob-42" {
		t.Errorf("expected blob-42, got %q", handle)
	}
}

func TestSyncMetaRepository_SetHandle(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_meta").
		WithArgs(metaKeyHandle, "blob-42").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SetHandle(context.Background(), "blob-42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncMetaRepository_ClearHandle(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sync_meta").
		WithArgs(metaKeyHandle).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearHandle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncMetaRepository_SyncVersion_Initial(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_meta").
		WithArgs(metaKeySyncVersion).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	version, err := repo.SyncVersion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 before the first push, got %d", version)
	}
}

func TestSyncMetaRepository_SyncVersion(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_meta").
		WithArgs(metaKeySyncVersion).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("17"))

	version, err := repo.SyncVersion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != 17 {
		t.Errorf("expected version 17, got %d", version)
	}
}

func TestSyncMetaRepository_SyncVersion_Corrupt(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_meta").
		WithArgs(metaKeySyncVersion).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("not-a-number"))

	if _, err := repo.SyncVersion(context.Background()); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestSyncMetaRepository_SetSyncVersion(t *testing.T) {
	repo, mock, db := newTestSyncMetaRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_meta").
		WithArgs(metaKeySyncVersion, "18").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SetSyncVersion(context.Background(), 18); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
