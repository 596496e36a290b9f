// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"policy-pilot-go/internal/model"
)

// PolicyRepository 定义了对 policies / policy_versions 表的数据操作接口。
type PolicyRepository interface {
	CreatePolicy(ctx context.Context, policy *model.Policy) (string, error)
	FindPolicyByID(ctx context.Context, id string) (*model.Policy, error)
	FindPoliciesByTenant(ctx context.Context, tenantID string) ([]model.Policy, error)
	UpdateCurrentVersion(ctx context.Context, policyID, versionID, summary, coverageJSON string) error

	CreateVersion(ctx context.Context, version *model.PolicyVersion) (string, error)
	FindLatestVersion(ctx context.Context, policyID string) (*model.PolicyVersion, error)
	FindVersionByID(ctx context.Context, id string) (*model.PolicyVersion, error)
	FindVersionsByPolicy(ctx context.Context, policyID string) ([]model.PolicyVersion, error)
	UpdateVersionObjectName(ctx context.Context, versionID, objectName string) error
}

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository 创建一个新的 PolicyRepository 实例。
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// CreatePolicy 创建策略记录并返回持久化层分配的 ID。
func (r *policyRepository) CreatePolicy(ctx context.Context, policy *model.Policy) (string, error) {
	if policy.ID == "" {
		policy.ID = uuid.NewString()
	}
	if policy.CreatedAt.IsZero() {
		policy.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(policy).Error; err != nil {
		return "", err
	}
	return policy.ID, nil
}

// FindPolicyByID 按 ID 查找策略，不存在时返回 (nil, nil)。
func (r *policyRepository) FindPolicyByID(ctx context.Context, id string) (*model.Policy, error) {
	var policy model.Policy
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// FindPoliciesByTenant 返回租户的全部策略，按最近生成时间倒序。
func (r *policyRepository) FindPoliciesByTenant(ctx context.Context, tenantID string) ([]model.Policy, error) {
	var policies []model.Policy
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("last_generated_at DESC").
		Find(&policies).Error
	return policies, err
}

// UpdateCurrentVersion 更新策略的当前版本指针及摘要/覆盖快照。
func (r *policyRepository) UpdateCurrentVersion(ctx context.Context, policyID, versionID, summary, coverageJSON string) error {
	return r.db.WithContext(ctx).
		Model(&model.Policy{}).
		Where("id = ?", policyID).
		Updates(map[string]interface{}{
			"current_version_id": versionID,
			"summary":            summary,
			"control_coverage":   coverageJSON,
		}).Error
}

// CreateVersion 创建策略版本记录并返回分配的 ID。
func (r *policyRepository) CreateVersion(ctx context.Context, version *model.PolicyVersion) (string, error) {
	if version.ID == "" {
		version.ID = uuid.NewString()
	}
	if version.CreatedAt.IsZero() {
		version.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(version).Error; err != nil {
		return "", err
	}
	return version.ID, nil
}

// FindLatestVersion 返回策略版本号最大的版本，尚无版本时返回 (nil, nil)。
func (r *policyRepository) FindLatestVersion(ctx context.Context, policyID string) (*model.PolicyVersion, error) {
	var version model.PolicyVersion
	err := r.db.WithContext(ctx).
		Where("policy_id = ?", policyID).
		Order("version_number DESC").
		First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// FindVersionByID 按 ID 查找版本，不存在时返回 (nil, nil)。
func (r *policyRepository) FindVersionByID(ctx context.Context, id string) (*model.PolicyVersion, error) {
	var version model.PolicyVersion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// FindVersionsByPolicy 返回策略的全部版本，按版本号倒序。
func (r *policyRepository) FindVersionsByPolicy(ctx context.Context, policyID string) ([]model.PolicyVersion, error) {
	var versions []model.PolicyVersion
	err := r.db.WithContext(ctx).
		Where("policy_id = ?", policyID).
		Order("version_number DESC").
		Find(&versions).Error
	return versions, err
}

// UpdateVersionObjectName 记录版本文档在对象存储中的位置。
func (r *policyRepository) UpdateVersionObjectName(ctx context.Context, versionID, objectName string) error {
	return r.db.WithContext(ctx).
		Model(&model.PolicyVersion{}).
		Where("id = ?", versionID).
		Update("object_name", objectName).Error
}
