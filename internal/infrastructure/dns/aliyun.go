package dns

import (
	"context"

	alidns "github.com/alibabacloud-go/alidns-20150109/v4/client"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	"github.com/alibabacloud-go/tea/tea"

	domainerr "github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

// AliyunProvider creates records through Alibaba Cloud DNS. The zone is
// the managed domain name, e.g. "lan.example.com".
type AliyunProvider struct {
	client *alidns.Client
}

func NewAliyunProvider(accessKeyID, accessKeySecret string) (*AliyunProvider, error) {
	config := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}
	config.Endpoint = tea.String("dns.aliyuncs.com")
	client, err := alidns.NewClient(config)
	if err != nil {
		return nil, domainerr.WrapOp("create aliyun dns client", err)
	}
	return &AliyunProvider{client: client}, nil
}

func (p *AliyunProvider) Name() string {
	return entity.DNSProviderAliyun
}

func (p *AliyunProvider) CreateRecord(ctx context.Context, zone string, record *DNSRecord) contract.CreateResult {
	log := logger.FromContext(ctx)
	if record.Proxied {
		log.Debug("proxying not available, creating plain record", "provider", p.Name(), "name", record.Name)
	}

	req := &alidns.AddDomainRecordRequest{
		DomainName: tea.String(zone),
		RR:         tea.String(record.Name),
		Type:       tea.String(string(record.Type)),
		Value:      tea.String(record.Content),
		TTL:        tea.Int64(int64(ttlOrDefault(record.TTL))),
	}

	resp, err := p.client.AddDomainRecord(req)
	if err != nil {
		return createFailed(p.Name(), err)
	}

	var recordID string
	if resp != nil && resp.Body != nil {
		recordID = tea.StringValue(resp.Body.RecordId)
	}
	log.Info("DNS record created", "provider", p.Name(), "zone", zone, "name", record.Name, "type", record.Type, "record_id", recordID)
	return contract.Created(recordID)
}
