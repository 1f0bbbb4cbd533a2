package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int64]domain.User{}, nextID: 1}
}

func (r *stubUserRepo) emailTaken(email string, exceptID int64) bool {
	for _, u := range r.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) List(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Find(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	if r.emailTaken(u.Email, 0) {
		return 0, domain.ErrEmailTaken
	}
	id := r.nextID
	r.nextID++
	u.ID = id
	r.users[id] = *u
	return id, nil
}

func (r *stubUserRepo) Update(ctx context.Context, u *domain.User) (bool, error) {
	if _, ok := r.users[u.ID]; !ok {
		return false, nil
	}
	if r.emailTaken(u.Email, u.ID) {
		return false, domain.ErrEmailTaken
	}
	r.users[u.ID] = *u
	return true, nil
}

func (r *stubUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func TestUserService_CreateAndGet(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	id, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "  Ada Lovelace ",
		Email: " ada@example.com ",
		City:  strPtr("London"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Ada Lovelace" || got.Email != "ada@example.com" {
		t.Fatalf("expected trimmed name and email, got %q / %q", got.Name, got.Email)
	}
}

func TestUserService_CreateRejectsMissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	cases := []ports.CreateUserInput{
		{Name: "", Email: "ada@example.com"},
		{Name: "Ada", Email: ""},
		{Name: "  ", Email: "  "},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("input %+v: expected ErrMissingFields, got %v", input, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("rejected create must not persist, repo holds %d rows", len(repo.users))
	}
}

func TestUserService_CreateRejectsInvalidEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	for _, email := range []string{"not-an-email", "ada@", "@example.com", "a b@example.com"} {
		if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Ada", Email: email}); !errors.Is(err, domain.ErrInvalidEmail) {
			t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Other", Email: "ada@example.com"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate must not persist, repo holds %d rows", len(repo.users))
	}
}

func TestUserService_UpdateMergesFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	id, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: strPtr("555-0100"),
	})

	changed, err := svc.Update(context.Background(), id, ports.UpdateUserInput{City: strPtr("London")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !changed {
		t.Fatal("expected update to report a change")
	}

	got, _ := svc.Get(context.Background(), id)
	if got.City == nil || *got.City != "London" {
		t.Fatalf("expected city London, got %+v", got.City)
	}
	if got.Phone == nil || *got.Phone != "555-0100" {
		t.Fatalf("untouched fields must survive the update, got %+v", got.Phone)
	}
}

func TestUserService_UpdateToTakenEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	svc.Create(context.Background(), ports.CreateUserInput{Name: "Ada", Email: "ada@example.com"})
	id, _ := svc.Create(context.Background(), ports.CreateUserInput{Name: "Grace", Email: "grace@example.com"})

	if _, err := svc.Update(context.Background(), id, ports.UpdateUserInput{Email: strPtr("ada@example.com")}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_UpdateUnknownID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), 42, ports.UpdateUserInput{Name: strPtr("Ada")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteReportsRemoval(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	id, _ := svc.Create(context.Background(), ports.CreateUserInput{Name: "Ada", Email: "ada@example.com"})

	removed, err := svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !removed {
		t.Fatal("expected removal of an existing user")
	}

	removed, err = svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if removed {
		t.Fatal("deleting an unknown user must report false, not an error")
	}
}
