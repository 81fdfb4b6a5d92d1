package auth

import (
	"context"
	"errors"
	"testing"
)

func TestUserRepository_CreateAssignsID(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := &User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if user.ID == 0 {
		t.Error("expected generated ID")
	}
	if user.Role != RoleUser {
		t.Errorf("role = %q, want %q", user.Role, RoleUser)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	first := &User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x"}
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}

	second := &User{Name: "Imposter", Email: "ada@example.com", PasswordHash: "y"}
	if err := repo.Create(context.Background(), second); !errors.Is(err, ErrEmailExists) {
		t.Errorf("second Create() error = %v, want ErrEmailExists", err)
	}
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	seedTestUser(t, db, "Ada", "Ada@Example.com")

	if _, err := repo.GetByEmail(context.Background(), "ada@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail() with different casing error = %v, want ErrUserNotFound", err)
	}

	if _, err := repo.GetByEmail(context.Background(), "Ada@Example.com"); err != nil {
		t.Errorf("GetByEmail() exact match error = %v, want nil", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	seeded := seedTestUser(t, db, "Ada", "ada@example.com")

	got, err := repo.GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Email != seeded.Email || got.Name != seeded.Name {
		t.Errorf("GetByID() = %+v, want %+v", got, seeded)
	}
	if got.PasswordHash == "" {
		t.Error("expected password hash to be loaded for verification")
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.GetByID(context.Background(), 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_Count(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	seedTestUser(t, db, "Ada", "ada@example.com")
	seedTestUser(t, db, "Grace", "grace@example.com")

	count, err = repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
