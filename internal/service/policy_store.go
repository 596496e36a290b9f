// Package service 提供了策略生成与查询相关的业务逻辑。
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/pipeline"
	"policy-pilot-go/internal/repository"
)

// policyStore 把 repository 层适配为流水线需要的 PolicyStore 接口，
// 负责把流水线载荷转换为数据库实体并完成 JSON 字段的序列化。
type policyStore struct {
	policyRepo       repository.PolicyRepository
	notificationRepo repository.NotificationRepository
}

// NewPolicyStore 创建一个面向流水线的持久化适配器。
func NewPolicyStore(policyRepo repository.PolicyRepository, notificationRepo repository.NotificationRepository) pipeline.PolicyStore {
	return &policyStore{
		policyRepo:       policyRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *policyStore) CreatePolicy(ctx context.Context, rec pipeline.PolicyRecord) (string, error) {
	coverageJSON, err := json.Marshal(rec.ControlCoverage)
	if err != nil {
		return "", fmt.Errorf("序列化覆盖报告失败: %w", err)
	}
	return s.policyRepo.CreatePolicy(ctx, &model.Policy{
		TenantID:            rec.TenantID,
		Type:                rec.Type,
		Title:               rec.Title,
		Content:             rec.Content,
		Status:              rec.Status,
		Summary:             rec.Summary,
		ControlCoverageJSON: string(coverageJSON),
		RelatedProfileID:    rec.RelatedProfileID,
		CurrentVersionID:    rec.CurrentVersionID,
		LastGeneratedAt:     rec.LastGeneratedAt,
	})
}

func (s *policyStore) GetLatestPolicyVersion(ctx context.Context, policyID string) (*pipeline.PolicyVersionRecord, error) {
	version, err := s.policyRepo.FindLatestVersion(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, nil
	}
	return &pipeline.PolicyVersionRecord{
		PolicyID:      version.PolicyID,
		TenantID:      version.TenantID,
		VersionNumber: version.VersionNumber,
		Summary:       version.Summary,
		Document:      version.Document,
	}, nil
}

func (s *policyStore) CreatePolicyVersion(ctx context.Context, rec pipeline.PolicyVersionRecord) (string, error) {
	outlineJSON, err := json.Marshal(rec.Outline)
	if err != nil {
		return "", fmt.Errorf("序列化大纲失败: %w", err)
	}
	sectionsJSON, err := json.Marshal(rec.Sections)
	if err != nil {
		return "", fmt.Errorf("序列化章节失败: %w", err)
	}
	coverageJSON, err := json.Marshal(rec.ControlCoverage)
	if err != nil {
		return "", fmt.Errorf("序列化覆盖报告失败: %w", err)
	}
	provenanceJSON, err := json.Marshal(rec.Provenance)
	if err != nil {
		return "", fmt.Errorf("序列化溯源报告失败: %w", err)
	}
	return s.policyRepo.CreateVersion(ctx, &model.PolicyVersion{
		PolicyID:            rec.PolicyID,
		TenantID:            rec.TenantID,
		VersionNumber:       rec.VersionNumber,
		Summary:             rec.Summary,
		OutlineJSON:         string(outlineJSON),
		SectionsJSON:        string(sectionsJSON),
		ControlCoverageJSON: string(coverageJSON),
		Document:            rec.Document,
		ProvenanceJSON:      string(provenanceJSON),
	})
}

func (s *policyStore) UpdatePolicyCurrentVersion(ctx context.Context, policyID, versionID, summary string, coverage model.ControlCoverage) error {
	coverageJSON, err := json.Marshal(coverage)
	if err != nil {
		return fmt.Errorf("序列化覆盖报告失败: %w", err)
	}
	return s.policyRepo.UpdateCurrentVersion(ctx, policyID, versionID, summary, string(coverageJSON))
}

func (s *policyStore) CreateNotification(ctx context.Context, rec pipeline.NotificationRecord) (string, error) {
	return s.notificationRepo.Create(ctx, &model.Notification{
		TenantID:    rec.TenantID,
		UserID:      rec.UserID,
		Type:        rec.Type,
		Title:       rec.Title,
		Description: rec.Description,
		Read:        rec.Read,
		CreatedAt:   rec.CreatedAt,
	})
}
