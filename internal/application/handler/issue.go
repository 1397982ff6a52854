package handler

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

// IssueResponse is returned once; the secret is never shown again.
type IssueResponse struct {
	Domain string `json:"domain"`
	Secret string `json:"secret"`
}

func (h *Handler) issue(ctx context.Context, r *http.Request) response {
	log := logger.FromContext(ctx)

	id, ok := h.authenticate(ctx, r, true)
	if !ok {
		return errorResponse(http.StatusUnauthorized, msgPermissionDenied)
	}

	sub, err := h.generate()
	if err == nil {
		err = sub.Validate()
	}
	if err != nil {
		log.Error("generate subdomain", "error", err)
		return errorResponse(http.StatusInternalServerError, msgGenerateFailed)
	}

	// A collision surfaces as a storage error; the caller simply asks again.
	err = h.metrics.TimedOperation(ctx, "store.insert", func() error {
		return h.store.Insert(ctx, sub)
	})
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}

	log.Info("subdomain issued", "domain", sub.Domain, "identity", id.ID)
	return response{
		status: http.StatusOK,
		body:   IssueResponse{Domain: sub.Domain, Secret: sub.Secret},
	}
}

func (h *Handler) generate() (*entity.Subdomain, error) {
	label, err := randomHex(h.random, domain.DomainBytes)
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}
	secret, err := randomHex(h.random, domain.SecretBytes)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return &entity.Subdomain{
		Domain:    label,
		Secret:    secret,
		CreatedAt: h.now().UTC(),
	}, nil
}

func randomHex(r io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
