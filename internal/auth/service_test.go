package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sproux/cms/auth"
	internalauth "github.com/sproux/cms/internal/auth"
)

func seedUsers(t *testing.T) auth.Service {
	t.Helper()

	svc := internalauth.NewService()
	ctx := context.Background()

	users := []auth.User{
		{ID: "admin-01", Email: "admin@sproux.com", Name: "Admin", Role: auth.RoleAdministrator, Password: "password123"},
		{ID: "editor-01", Email: "editor@sproux.com", Name: "Editor", Role: auth.RoleEditor, Password: "editorpass"},
	}
	for _, user := range users {
		if _, err := svc.AddUser(ctx, user); err != nil {
			t.Fatalf("add user %s failed: %v", user.ID, err)
		}
	}
	return svc
}

func TestAuthenticate(t *testing.T) {
	svc := seedUsers(t)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "admin@sproux.com", "password123")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if user.ID != "admin-01" || user.Role != auth.RoleAdministrator {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.Password != "" {
		t.Fatalf("authenticated user must not expose the password")
	}
	if user.LastLogin == nil {
		t.Fatalf("login must record the login time")
	}

	// Email matching is case and whitespace insensitive.
	if _, err := svc.Authenticate(ctx, "  Admin@SprouX.com ", "password123"); err != nil {
		t.Fatalf("expected normalized email to match, got %v", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := seedUsers(t)
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, "admin@sproux.com", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@sproux.com", "password123"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAddUserRejectsDuplicates(t *testing.T) {
	svc := seedUsers(t)
	ctx := context.Background()

	if _, err := svc.AddUser(ctx, auth.User{ID: "admin-01", Email: "new@sproux.com"}); !errors.Is(err, auth.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.AddUser(ctx, auth.User{ID: "admin-02", Email: "ADMIN@sproux.com"}); !errors.Is(err, auth.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	admin := &auth.User{ID: "admin-01", Role: auth.RoleAdministrator}
	editor := &auth.User{ID: "editor-01", Role: auth.RoleEditor}

	if err := auth.RequireRole(admin, auth.RoleAdministrator); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
	if err := auth.RequireRole(editor, auth.RoleAdministrator); !errors.Is(err, auth.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if err := auth.RequireRole(editor, auth.RoleAdministrator, auth.RoleEditor); err != nil {
		t.Fatalf("expected editor to pass with both roles allowed, got %v", err)
	}
	if err := auth.RequireRole(nil, auth.RoleEditor); !errors.Is(err, auth.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for nil user, got %v", err)
	}
}
