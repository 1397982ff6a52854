package handler

import (
	"context"
	"crypto/rand"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
	"github.com/lite-lake/subdomaind/internal/infrastructure/metrics"
)

// AllowedMethods is advertised on every 405 response.
const AllowedMethods = "GET, POST, PUT"

const (
	opIssue  = "issue"
	opAttach = "attach"
	opReject = "reject"
)

const (
	msgMethodNotAllowed  = "Method not allowed"
	msgPermissionDenied  = "Permission denied"
	msgInvalidData       = "Invalid data"
	msgUnsupportedType   = "Only A, AAAA and TXT records are supported"
	msgPublicAddress     = "Only private IP addresses are supported."
	msgMissingSubdomain  = "Missing subdomain"
	msgSubdomainNotFound = "Subdomain not found"
	msgLookupFailed      = "Error looking up subdomain"
	msgGenerateFailed    = "Error generating subdomain"
	msgInvalidRecord     = "Invalid DNS record"
	msgDNSFailed         = "Error adding DNS record"
)

// Config carries the values the handler needs from process configuration.
type Config struct {
	Zone          string
	SessionCookie string
	Policy        entity.Policy
}

type Option func(*Handler)

func WithMetrics(m *metrics.Registry) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithRandom replaces the entropy source used for domains and secrets.
func WithRandom(r io.Reader) Option {
	return func(h *Handler) { h.random = r }
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// Handler issues subdomains on GET and attaches DNS records to them on
// POST or PUT. It keeps no state between requests.
type Handler struct {
	store    contract.SubdomainStore
	dns      contract.DNSProvider
	identity contract.IdentityProvider
	cfg      Config
	metrics  *metrics.Registry
	validate *validator.Validate
	random   io.Reader
	now      func() time.Time
}

func New(store contract.SubdomainStore, dns contract.DNSProvider, identity contract.IdentityProvider, cfg Config, opts ...Option) *Handler {
	if cfg.SessionCookie == "" {
		cfg.SessionCookie = entity.DefaultSessionCookie
	}
	h := &Handler{
		store:    store,
		dns:      dns,
		identity: identity,
		cfg:      cfg,
		validate: validator.New(),
		random:   rand.Reader,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type response struct {
	status int
	body   any
}

func errorResponse(status int, msg string) response {
	return response{status: status, body: ErrorBody{Error: msg}}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		op   string
		resp response
	)

	switch r.Method {
	case http.MethodGet:
		op = opIssue
		ctx := logger.WithOperation(r.Context(), op)
		resp = h.issue(ctx, r)
	case http.MethodPost, http.MethodPut:
		op = opAttach
		ctx := logger.WithOperation(r.Context(), op)
		resp = h.attach(ctx, r)
	default:
		op = opReject
		w.Header().Set("Allow", AllowedMethods)
		resp = errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	h.metrics.ObserveRequest(op, resp.status)
	WriteJSON(w, resp.status, resp.body)
}

// authenticate resolves the caller. Every failure, including an
// unreachable identity provider, is reported to the caller the same way.
func (h *Handler) authenticate(ctx context.Context, r *http.Request, requireConfirmed bool) (*entity.Identity, bool) {
	log := logger.FromContext(ctx)

	token := sessionToken(r, h.cfg.SessionCookie)
	if token == "" {
		log.Debug("request without session token")
		return nil, false
	}

	var id *entity.Identity
	err := h.metrics.TimedOperation(ctx, "identity.identify", func() error {
		var err error
		id, err = h.identity.Identify(ctx, token)
		return err
	})
	if err != nil {
		return nil, false
	}
	if requireConfirmed && !id.Confirmed {
		log.Info("identity not confirmed", "identity", id.ID, "error", domain.ErrIdentityUnconfirmed)
		return nil, false
	}
	return id, true
}

// sessionToken prefers a bearer Authorization header and falls back to
// the session cookie.
func sessionToken(r *http.Request, cookieName string) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, ok := strings.Cut(auth, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
