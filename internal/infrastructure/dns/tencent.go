package dns

import (
	"context"
	"strconv"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	dnspod "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/dnspod/v20210323"

	domainerr "github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

const tencentDefaultLine = "默认"

// TencentProvider creates records through DNSPod. The zone is the managed
// domain name.
type TencentProvider struct {
	client *dnspod.Client
}

func NewTencentProvider(secretID, secretKey string) (*TencentProvider, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "dnspod.tencentcloudapi.com"
	client, err := dnspod.NewClient(credential, "", cpf)
	if err != nil {
		return nil, domainerr.WrapOp("create tencent dns client", err)
	}
	return &TencentProvider{client: client}, nil
}

func (p *TencentProvider) Name() string {
	return entity.DNSProviderTencent
}

func (p *TencentProvider) CreateRecord(ctx context.Context, zone string, record *DNSRecord) contract.CreateResult {
	log := logger.FromContext(ctx)
	if record.Proxied {
		log.Debug("proxying not available, creating plain record", "provider", p.Name(), "name", record.Name)
	}

	req := dnspod.NewCreateRecordRequest()
	req.Domain = common.StringPtr(zone)
	req.SubDomain = common.StringPtr(record.Name)
	req.RecordType = common.StringPtr(string(record.Type))
	req.RecordLine = common.StringPtr(tencentDefaultLine)
	req.Value = common.StringPtr(record.Content)
	req.TTL = common.Uint64Ptr(uint64(ttlOrDefault(record.TTL)))

	resp, err := p.client.CreateRecordWithContext(ctx, req)
	if err != nil {
		return createFailed(p.Name(), err)
	}

	var recordID string
	if resp != nil && resp.Response != nil && resp.Response.RecordId != nil {
		recordID = strconv.FormatUint(*resp.Response.RecordId, 10)
	}
	log.Info("DNS record created", "provider", p.Name(), "zone", zone, "name", record.Name, "type", record.Type, "record_id", recordID)
	return contract.Created(recordID)
}
