package leads

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateNullsEmptyOptionals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	lead := Lead{
		ID:        "lead-1",
		Name:      "Dana Smith",
		Email:     "dana@example.com",
		Message:   "We need a site.",
		Source:    SourceContact,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO leads").
		WithArgs(
			lead.ID,
			lead.Name,
			lead.Email,
			nil, // company
			lead.Message,
			lead.Source,
			nil, // priority_label
			lead.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), lead); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM leads").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "company", "message", "source", "priority_label", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListScansOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "company", "message", "source", "priority_label", "created_at",
	}).
		AddRow("lead-2", "Sam Lee", "sam@example.com", "Acme Co", "Quote please", SourceContact, "high", created).
		AddRow("lead-1", "Dana Smith", "dana@example.com", nil, "We need a site.", SourceContact, nil, created.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM leads").
		WithArgs(50).
		WillReturnRows(rows)

	leads, err := repo.List(context.Background(), 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("len = %d, want 2", len(leads))
	}
	if leads[0].Company != "Acme Co" || leads[0].PriorityLabel != "high" {
		t.Fatalf("first lead = %+v", leads[0])
	}
	if leads[1].Company != "" || leads[1].PriorityLabel != "" {
		t.Fatalf("second lead = %+v", leads[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
