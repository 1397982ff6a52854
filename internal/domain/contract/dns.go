package contract

import (
	"context"

	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// CreateResult is the outcome of a create-record call. Exactly one of
// RecordID (possibly empty when the provider does not report one) or Err
// is meaningful; check Failed first.
type CreateResult struct {
	RecordID string
	Err      error
}

func Created(recordID string) CreateResult {
	return CreateResult{RecordID: recordID}
}

func CreateFailed(err error) CreateResult {
	return CreateResult{Err: err}
}

func (r CreateResult) Failed() bool {
	return r.Err != nil
}

type DNSProvider interface {
	Name() string
	CreateRecord(ctx context.Context, zone string, record *entity.DNSRecord) CreateResult
}
