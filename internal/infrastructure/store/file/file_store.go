package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

const filePermissionOwnerRW = 0o600

type document struct {
	Subdomains []entity.Subdomain `yaml:"subdomains"`
}

// Store keeps subdomain records in a single YAML file. Every operation
// holds an advisory file lock, so several processes on one host may share
// the file; the uniqueness check and the write happen under the same lock.
// The flock is re-entrant within a process, hence the mutex.
type Store struct {
	path  string
	mu    sync.Mutex
	flock *flock.Flock
}

func NewStore(path string) *Store {
	return &Store{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

func (s *Store) Insert(ctx context.Context, sub *entity.Subdomain) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	for _, existing := range doc.Subdomains {
		if existing.Domain == sub.Domain {
			return fmt.Errorf("%w: %s", domain.ErrSubdomainExists, sub.Domain)
		}
	}

	doc.Subdomains = append(doc.Subdomains, *sub)
	sort.Slice(doc.Subdomains, func(i, j int) bool {
		return doc.Subdomains[i].Domain < doc.Subdomains[j].Domain
	})
	return s.write(doc)
}

func (s *Store) FindByDomain(ctx context.Context, name string) (*entity.Subdomain, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Subdomains {
		if doc.Subdomains[i].Domain == name {
			found := doc.Subdomains[i]
			return &found, nil
		}
	}
	return nil, domain.ErrSubdomainNotFound
}

func (s *Store) Close() error {
	return s.flock.Close()
}

func (s *Store) lock(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.flock.Lock(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("acquiring lock: %w", err)
	}
	return nil
}

func (s *Store) unlock() {
	s.flock.Unlock()
	s.mu.Unlock()
}

func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{}, nil
		}
		return nil, fmt.Errorf("reading store file %s: %w: %w", s.path, domain.ErrStoreReadFailed, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing store file %s: %w: %w", s.path, domain.ErrStoreSerializeFail, err)
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling store for %s: %w: %w", s.path, domain.ErrStoreSerializeFail, err)
	}

	tmpPath := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmpPath, data, filePermissionOwnerRW); err != nil {
		return fmt.Errorf("writing temp store file %s: %w: %w", tmpPath, domain.ErrStoreWriteFailed, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming store file %s: %w: %w", s.path, domain.ErrStoreWriteFailed, err)
	}
	return nil
}

var _ contract.SubdomainStore = (*Store)(nil)
