package handler

import (
	"context"
	"sync"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

type fakeStore struct {
	mu        sync.Mutex
	records   map[string]*entity.Subdomain
	insertErr error
	findErr   error
	inserts   int
	finds     int
}

func newFakeStore(subs ...*entity.Subdomain) *fakeStore {
	s := &fakeStore{records: make(map[string]*entity.Subdomain)}
	for _, sub := range subs {
		s.records[sub.Domain] = sub
	}
	return s
}

func (s *fakeStore) Insert(ctx context.Context, sub *entity.Subdomain) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	if s.insertErr != nil {
		return s.insertErr
	}
	if _, ok := s.records[sub.Domain]; ok {
		return domain.WrapOp("insert "+sub.Domain, domain.ErrSubdomainExists)
	}
	cp := *sub
	s.records[sub.Domain] = &cp
	return nil
}

func (s *fakeStore) FindByDomain(ctx context.Context, d string) (*entity.Subdomain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.findErr != nil {
		return nil, s.findErr
	}
	sub, ok := s.records[d]
	if !ok {
		return nil, domain.ErrSubdomainNotFound
	}
	cp := *sub
	return &cp, nil
}

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inserts + s.finds
}

type dnsCall struct {
	zone   string
	record entity.DNSRecord
}

type fakeDNS struct {
	mu     sync.Mutex
	calls  []dnsCall
	result contract.CreateResult
}

func (d *fakeDNS) Name() string { return "fake" }

func (d *fakeDNS) CreateRecord(ctx context.Context, zone string, record *entity.DNSRecord) contract.CreateResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dnsCall{zone: zone, record: *record})
	return d.result
}

func (d *fakeDNS) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

type fakeIdentity struct {
	tokens map[string]entity.Identity
	err    error
	calls  int
}

func (f *fakeIdentity) Name() string { return "fake" }

func (f *fakeIdentity) Identify(ctx context.Context, token string) (*entity.Identity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.tokens[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &id, nil
}
