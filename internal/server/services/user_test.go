package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"todoapp/internal/common"
	"todoapp/internal/dbx"
	"todoapp/internal/server/models"
	tasksrepo "todoapp/internal/server/repositories/tasks"
	usersrepo "todoapp/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	created []*models.User

	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository      { return m.t }

// --- tests ---

func TestRegister_HashesPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{}
	s := NewUserService(db, &fakeRepoManager{u: repo})

	got, err := s.Register(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if got.ID != 1 || got.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", got)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one created row, got %d", len(repo.created))
	}
	stored := repo.created[0]
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")) != nil {
		t.Fatalf("stored hash does not verify against the password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{createErr: common.ErrorDuplicateUsername}
	s := NewUserService(db, &fakeRepoManager{u: repo})

	_, err := s.Register(context.Background(), "alice", "s3cret")
	if !errors.Is(err, common.ErrorDuplicateUsername) {
		t.Fatalf("expected ErrorDuplicateUsername, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	repo := &fakeUsersRepo{getOut: &models.User{ID: 7, Username: "alice", PasswordHash: string(hash)}}
	s := NewUserService(db, &fakeRepoManager{u: repo})

	got, err := s.Login(context.Background(), "ALICE", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if got.ID != 7 || got.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestLogin_FailureIsUniform(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	// wrong password
	repo := &fakeUsersRepo{getOut: &models.User{ID: 7, Username: "alice", PasswordHash: string(hash)}}
	s := NewUserService(db, &fakeRepoManager{u: repo})
	_, errWrongPass := s.Login(context.Background(), "alice", "nope")

	// unknown user
	repo2 := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s2 := NewUserService(db, &fakeRepoManager{u: repo2})
	_, errUnknown := s2.Login(context.Background(), "ghost", "s3cret")

	if !errors.Is(errWrongPass, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: expected ErrorUnauthorized, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, common.ErrorUnauthorized) {
		t.Fatalf("unknown user: expected ErrorUnauthorized, got %v", errUnknown)
	}
	if errWrongPass.Error() != errUnknown.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrongPass, errUnknown)
	}
}

func TestLogin_RepoFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{getErr: errors.New("db down")}
	s := NewUserService(db, &fakeRepoManager{u: repo})

	_, err := s.Login(context.Background(), "alice", "s3cret")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}
