package user_test

import (
	"context"
	"testing"

	"NestEgg/internal/domain/user"
	appErrors "NestEgg/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeUserRepository struct {
	createFn  func(ctx context.Context, u *user.User) error
	updateFn  func(ctx context.Context, u *user.User) error
	deleteFn  func(ctx context.Context, id ulid.ULID) error
	getByIDFn func(ctx context.Context, id ulid.ULID) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeUserRepository) GetById(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}

func TestServiceCreateNormalizesAndStamps(t *testing.T) {
	t.Parallel()

	svc := user.NewService(&fakeUserRepository{})

	entity := &user.User{Name: "  Alex  ", Email: "Alex@Example.com", Password: "hash"}
	if err := svc.Create(context.Background(), entity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Name != "Alex" || entity.Email != "alex@example.com" {
		t.Fatalf("expected normalized fields, got %+v", entity)
	}
	if entity.Id == (ulid.ULID{}) || entity.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps to be set, got %+v", entity)
	}
}

func TestServiceUpdateName(t *testing.T) {
	t.Parallel()

	id := ulid.Make()
	repo := &fakeUserRepository{
		getByIDFn: func(ctx context.Context, uid ulid.ULID) (*user.User, error) {
			return &user.User{Id: uid, Name: "Alex", Email: "alex@example.com"}, nil
		},
	}
	svc := user.NewService(repo)

	updated, err := svc.UpdateName(context.Background(), id, "Alexandra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Alexandra" {
		t.Fatalf("expected the name to change, got %+v", updated)
	}

	if _, err := svc.UpdateName(context.Background(), id, "   "); err == nil {
		t.Fatalf("expected a blank name to be rejected")
	}
}

func TestServiceDeleteChecksExistence(t *testing.T) {
	t.Parallel()

	svc := user.NewService(&fakeUserRepository{
		deleteFn: func(ctx context.Context, id ulid.ULID) error {
			t.Fatal("delete must not run for an unknown user")
			return nil
		},
	})

	err := svc.Delete(context.Background(), ulid.Make())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}
