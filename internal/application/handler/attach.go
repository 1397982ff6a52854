package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/domain/valueobject"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

const maxBodyBytes = 64 << 10

// AttachRequest is the only body shape accepted on POST and PUT. Fields
// are pointers so that absent and mistyped values can be told apart from
// empty strings.
type AttachRequest struct {
	Subdomain  *string `json:"subdomain"`
	Secret     *string `json:"secret"`
	RecordType *string `json:"record_type" validate:"required"`
	Content    *string `json:"content" validate:"required"`
}

type AttachResponse struct {
	Subdomain string `json:"subdomain"`
}

func (h *Handler) attach(ctx context.Context, r *http.Request) response {
	log := logger.FromContext(ctx)

	id, ok := h.authenticate(ctx, r, h.cfg.Policy.RequireConfirmedOnAttach)
	if !ok {
		return errorResponse(http.StatusUnauthorized, msgPermissionDenied)
	}

	req, err := h.decodeAttach(r)
	if err != nil {
		log.Debug("rejected attach body", "error", err)
		return errorResponse(http.StatusBadRequest, msgInvalidData)
	}

	recordType := entity.DNSRecordType(*req.RecordType)
	if !recordType.Supported() {
		return errorResponse(http.StatusBadRequest, msgUnsupportedType)
	}
	if recordType.IsAddress() && !valueobject.IsPrivateAddr(*req.Content) {
		return errorResponse(http.StatusBadRequest, msgPublicAddress)
	}

	// An empty path is still looked up and ends as not found.
	if req.Subdomain == nil {
		return errorResponse(http.StatusBadRequest, msgMissingSubdomain)
	}
	label := entity.SubdomainLabel(*req.Subdomain)

	var sub *entity.Subdomain
	err = h.metrics.TimedOperation(ctx, "store.find", func() error {
		var err error
		sub, err = h.store.FindByDomain(ctx, label)
		if errors.Is(err, domain.ErrSubdomainNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return errorResponse(http.StatusInternalServerError, msgLookupFailed)
	}
	if sub == nil {
		log.Info("unknown subdomain", "domain", label, "identity", id.ID)
		if h.cfg.Policy.ConcealNotFound {
			return errorResponse(http.StatusForbidden, msgPermissionDenied)
		}
		return errorResponse(http.StatusNotFound, msgSubdomainNotFound)
	}

	if req.Secret == nil || subtle.ConstantTimeCompare([]byte(sub.Secret), []byte(*req.Secret)) != 1 {
		log.Info("secret mismatch", "domain", sub.Domain, "identity", id.ID)
		return errorResponse(http.StatusForbidden, msgPermissionDenied)
	}

	record := &entity.DNSRecord{
		Type:    recordType,
		Name:    sub.Domain,
		Content: *req.Content,
		TTL:     domain.RecordTTL,
		Proxied: true,
	}
	if err := record.Validate(); err != nil {
		log.Error("refusing dns record", "domain", sub.Domain, "type", record.Type, "error", err)
		return errorResponse(http.StatusInternalServerError, msgInvalidRecord)
	}

	start := time.Now()
	result := h.dns.CreateRecord(ctx, h.cfg.Zone, record)
	h.metrics.RecordOperation("dns.create", result.Err, time.Since(start))
	if result.Failed() {
		log.Error("add dns record",
			"provider", h.dns.Name(),
			"domain", sub.Domain,
			"type", record.Type,
			"error", result.Err,
		)
		return errorResponse(http.StatusBadGateway, msgDNSFailed)
	}

	log.Info("dns record added",
		"provider", h.dns.Name(),
		"domain", sub.Domain,
		"type", record.Type,
		"record_id", result.RecordID,
		"identity", id.ID,
	)
	return response{status: http.StatusOK, body: AttachResponse{Subdomain: sub.Domain}}
}

// decodeAttach fails closed: unknown fields, trailing data, wrong JSON
// types and missing required fields are all rejected.
func (h *Handler) decodeAttach(r *http.Request) (*AttachRequest, error) {
	if r.Body == nil {
		return nil, io.ErrUnexpectedEOF
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	var req AttachRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON object")
	}
	if err := h.validate.Struct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
