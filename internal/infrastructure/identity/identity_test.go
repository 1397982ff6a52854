package identity

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/domain/valueobject"
)

func newUserinfoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/realms/lan/protocol/openid-connect/userinfo") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.Header.Get("Authorization") {
		case "Bearer confirmed-token":
			_, _ = io.WriteString(w, `{"sub":"user-1","email":"ops@example.com","email_verified":true}`)
		case "Bearer pending-token":
			_, _ = io.WriteString(w, `{"sub":"user-2","email":"new@example.com","email_verified":false}`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"invalid_token","error_description":"Token verification failed"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestKeycloakProvider_Identify(t *testing.T) {
	srv := newUserinfoServer(t)
	p := NewKeycloakProvider(srv.URL, "lan")

	tests := []struct {
		name    string
		token   string
		want    *entity.Identity
		wantErr error
	}{
		{
			name:  "confirmed",
			token: "confirmed-token",
			want:  &entity.Identity{ID: "user-1", Email: "ops@example.com", Confirmed: true},
		},
		{
			name:  "unconfirmed",
			token: "pending-token",
			want:  &entity.Identity{ID: "user-2", Email: "new@example.com", Confirmed: false},
		},
		{
			name:    "rejected token",
			token:   "forged",
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: domain.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Identify(context.Background(), tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Identify() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Identify() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("identity mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStaticProvider_Identify(t *testing.T) {
	p := NewStaticProvider().
		Add("tok-a", entity.Identity{ID: "a", Confirmed: true}).
		Add("tok-b", entity.Identity{ID: "b"})

	got, err := p.Identify(context.Background(), "tok-b")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got.ID != "b" || got.Confirmed {
		t.Errorf("unexpected identity %+v", got)
	}

	if _, err := p.Identify(context.Background(), "tok-c"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestNew(t *testing.T) {
	env := func(k string) (string, bool) {
		if k == "DEV_TOKEN" {
			return "from-env", true
		}
		return "", false
	}

	t.Run("static resolves env tokens", func(t *testing.T) {
		p, err := New(&entity.IdentityConfig{
			Provider: entity.IdentityProviderStatic,
			Static: []entity.StaticIdentity{
				{Token: valueobject.SecretRef{Env: "DEV_TOKEN"}, ID: "dev", Confirmed: true},
			},
		}, env)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		id, err := p.Identify(context.Background(), "from-env")
		if err != nil || id.ID != "dev" {
			t.Errorf("Identify = %+v, %v", id, err)
		}
	})

	t.Run("static with missing env", func(t *testing.T) {
		_, err := New(&entity.IdentityConfig{
			Provider: entity.IdentityProviderStatic,
			Static:   []entity.StaticIdentity{{Token: valueobject.SecretRef{Env: "NOPE"}, ID: "dev"}},
		}, env)
		if !errors.Is(err, domain.ErrMissingEnv) {
			t.Errorf("expected ErrMissingEnv, got %v", err)
		}
	})

	t.Run("keycloak", func(t *testing.T) {
		p, err := New(&entity.IdentityConfig{
			Provider: entity.IdentityProviderKeycloak,
			Keycloak: entity.KeycloakConfig{BaseURL: "https://sso.example.com", Realm: "lan"},
		}, env)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if p.Name() != entity.IdentityProviderKeycloak {
			t.Errorf("Name() = %s", p.Name())
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := New(&entity.IdentityConfig{Provider: "ldap"}, env); !errors.Is(err, domain.ErrUnsupportedIdentity) {
			t.Errorf("expected ErrUnsupportedIdentity, got %v", err)
		}
	})
}
