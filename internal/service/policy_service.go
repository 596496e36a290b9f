package service

import (
	"context"
	"errors"
	"time"

	"policy-pilot-go/internal/config"
	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/repository"
	"policy-pilot-go/pkg/log"
	"policy-pilot-go/pkg/storage"
)

// 下载链接的有效期。
const downloadURLExpiry = 15 * time.Minute

// ErrNotArchived 表示策略版本尚未归档到对象存储，无法生成下载链接。
var ErrNotArchived = errors.New("策略版本尚未归档")

// PolicyService 接口定义了策略及其版本的查询操作。
// 所有方法均以租户为边界，查无记录或跨租户访问时返回 (nil, nil)。
type PolicyService interface {
	ListPolicies(ctx context.Context, tenantID string) ([]model.Policy, error)
	GetPolicy(ctx context.Context, tenantID, policyID string) (*model.Policy, error)
	ListVersions(ctx context.Context, tenantID, policyID string) ([]model.PolicyVersion, error)
	GetVersion(ctx context.Context, tenantID, versionID string) (*model.PolicyVersion, error)
	// GetDownloadURL 为已归档的策略版本生成一个带时效的下载链接。
	GetDownloadURL(ctx context.Context, tenantID, versionID string) (string, error)
}

type policyService struct {
	policyRepo repository.PolicyRepository
}

// NewPolicyService 创建一个新的 PolicyService 实例。
func NewPolicyService(policyRepo repository.PolicyRepository) PolicyService {
	return &policyService{policyRepo: policyRepo}
}

func (s *policyService) ListPolicies(ctx context.Context, tenantID string) ([]model.Policy, error) {
	return s.policyRepo.FindPoliciesByTenant(ctx, tenantID)
}

func (s *policyService) GetPolicy(ctx context.Context, tenantID, policyID string) (*model.Policy, error) {
	policy, err := s.policyRepo.FindPolicyByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if policy == nil || policy.TenantID != tenantID {
		return nil, nil
	}
	return policy, nil
}

func (s *policyService) ListVersions(ctx context.Context, tenantID, policyID string) ([]model.PolicyVersion, error) {
	policy, err := s.GetPolicy(ctx, tenantID, policyID)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, nil
	}
	return s.policyRepo.FindVersionsByPolicy(ctx, policyID)
}

func (s *policyService) GetVersion(ctx context.Context, tenantID, versionID string) (*model.PolicyVersion, error) {
	version, err := s.policyRepo.FindVersionByID(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if version == nil || version.TenantID != tenantID {
		return nil, nil
	}
	return version, nil
}

func (s *policyService) GetDownloadURL(ctx context.Context, tenantID, versionID string) (string, error) {
	version, err := s.GetVersion(ctx, tenantID, versionID)
	if err != nil {
		return "", err
	}
	if version == nil {
		return "", nil
	}
	if version.ObjectName == "" {
		return "", ErrNotArchived
	}

	url, err := storage.GetPresignedURL(config.Conf.MinIO.BucketName, version.ObjectName, downloadURLExpiry)
	if err != nil {
		log.Errorf("生成下载链接失败: VersionID=%s, Error: %v", versionID, err)
		return "", err
	}
	return url, nil
}
