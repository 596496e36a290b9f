package pipeline

import (
	"context"
	"time"

	"policy-pilot-go/internal/model"
)

// PolicyRecord 是创建策略时交给持久化层的载荷。
type PolicyRecord struct {
	TenantID         string
	Type             string
	Title            string
	Content          string
	Status           string
	Summary          string
	ControlCoverage  model.ControlCoverage
	RelatedProfileID string
	CurrentVersionID string
	LastGeneratedAt  time.Time
}

// PolicyVersionRecord 是创建策略版本时交给持久化层的载荷。
type PolicyVersionRecord struct {
	PolicyID        string
	TenantID        string
	VersionNumber   int
	Summary         string
	Outline         []model.PolicyOutlineSection
	Sections        []model.PolicyDraftSection
	ControlCoverage model.ControlCoverage
	Document        string
	Provenance      model.ProvenanceReport
}

// NotificationRecord 是创建通知时交给持久化层的载荷。
type NotificationRecord struct {
	TenantID    string
	UserID      string
	Type        string
	Title       string
	Description string
	Read        bool
	CreatedAt   time.Time
}

// PolicyStore 定义了流水线依赖的五个外部持久化调用。
// 流水线不直接依赖任何数据库客户端，具体实现由 repository 层注入。
// GetLatestPolicyVersion 在尚无版本时返回 (nil, nil)。
type PolicyStore interface {
	CreatePolicy(ctx context.Context, rec PolicyRecord) (string, error)
	GetLatestPolicyVersion(ctx context.Context, policyID string) (*PolicyVersionRecord, error)
	CreatePolicyVersion(ctx context.Context, rec PolicyVersionRecord) (string, error)
	UpdatePolicyCurrentVersion(ctx context.Context, policyID, versionID, summary string, coverage model.ControlCoverage) error
	CreateNotification(ctx context.Context, rec NotificationRecord) (string, error)
}
