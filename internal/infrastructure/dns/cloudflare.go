package dns

import (
	"context"

	"github.com/cloudflare/cloudflare-go/v2"
	"github.com/cloudflare/cloudflare-go/v2/dns"
	"github.com/cloudflare/cloudflare-go/v2/option"

	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

type CloudflareProvider struct {
	client *cloudflare.Client
}

// NewCloudflareProvider builds a client for a scoped API token. The SDK's
// own retries are disabled: a failed create is reported once.
func NewCloudflareProvider(apiToken string, opts ...option.RequestOption) *CloudflareProvider {
	opts = append([]option.RequestOption{
		option.WithAPIToken(apiToken),
		option.WithMaxRetries(0),
	}, opts...)
	return &CloudflareProvider{client: cloudflare.NewClient(opts...)}
}

func (p *CloudflareProvider) Name() string {
	return entity.DNSProviderCloudflare
}

func (p *CloudflareProvider) CreateRecord(ctx context.Context, zoneID string, record *DNSRecord) contract.CreateResult {
	log := logger.FromContext(ctx)
	log.Debug("creating DNS record", "provider", p.Name(), "zone", zoneID, "name", record.Name, "type", record.Type)

	params := dns.RecordNewParams{
		ZoneID: cloudflare.F(zoneID),
		Record: p.buildRecordParam(record, ttlOrDefault(record.TTL)),
	}

	if _, err := p.client.DNS.Records.New(ctx, params); err != nil {
		return createFailed(p.Name(), err)
	}

	log.Info("DNS record created", "provider", p.Name(), "zone", zoneID, "name", record.Name, "type", record.Type)
	return contract.Created("")
}

// buildRecordParam maps the supported types onto their typed params.
// Cloudflare only proxies address records, so Proxied is dropped for TXT.
func (p *CloudflareProvider) buildRecordParam(record *DNSRecord, ttl int) dns.RecordUnionParam {
	switch record.Type {
	case entity.DNSRecordTypeAAAA:
		return dns.AAAARecordParam{
			Name:    cloudflare.F(record.Name),
			Type:    cloudflare.F(dns.AAAARecordTypeAAAA),
			Content: cloudflare.F(record.Content),
			TTL:     cloudflare.F(dns.TTL(ttl)),
			Proxied: cloudflare.F(record.Proxied),
		}
	case entity.DNSRecordTypeTXT:
		return dns.TXTRecordParam{
			Name:    cloudflare.F(record.Name),
			Type:    cloudflare.F(dns.TXTRecordTypeTXT),
			Content: cloudflare.F(record.Content),
			TTL:     cloudflare.F(dns.TTL(ttl)),
		}
	default:
		return dns.ARecordParam{
			Name:    cloudflare.F(record.Name),
			Type:    cloudflare.F(dns.ARecordTypeA),
			Content: cloudflare.F(record.Content),
			TTL:     cloudflare.F(dns.TTL(ttl)),
			Proxied: cloudflare.F(record.Proxied),
		}
	}
}
