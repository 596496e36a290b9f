package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/pipeline"
)

// fakePolicyRepo 是 PolicyRepository 的内存实现，记录写入的实体供断言。
type fakePolicyRepo struct {
	policies []*model.Policy
	versions []*model.PolicyVersion

	updatedPolicyID  string
	updatedVersionID string
	updatedSummary   string
	updatedCoverage  string
	objectNames      map[string]string
}

func (r *fakePolicyRepo) CreatePolicy(ctx context.Context, policy *model.Policy) (string, error) {
	policy.ID = "policy-1"
	r.policies = append(r.policies, policy)
	return policy.ID, nil
}

func (r *fakePolicyRepo) FindPolicyByID(ctx context.Context, id string) (*model.Policy, error) {
	for _, p := range r.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePolicyRepo) FindPoliciesByTenant(ctx context.Context, tenantID string) ([]model.Policy, error) {
	var out []model.Policy
	for _, p := range r.policies {
		if p.TenantID == tenantID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePolicyRepo) UpdateCurrentVersion(ctx context.Context, policyID, versionID, summary, coverageJSON string) error {
	r.updatedPolicyID = policyID
	r.updatedVersionID = versionID
	r.updatedSummary = summary
	r.updatedCoverage = coverageJSON
	return nil
}

func (r *fakePolicyRepo) CreateVersion(ctx context.Context, version *model.PolicyVersion) (string, error) {
	version.ID = "version-1"
	r.versions = append(r.versions, version)
	return version.ID, nil
}

func (r *fakePolicyRepo) FindLatestVersion(ctx context.Context, policyID string) (*model.PolicyVersion, error) {
	var latest *model.PolicyVersion
	for _, v := range r.versions {
		if v.PolicyID == policyID && (latest == nil || v.VersionNumber > latest.VersionNumber) {
			latest = v
		}
	}
	return latest, nil
}

func (r *fakePolicyRepo) FindVersionByID(ctx context.Context, id string) (*model.PolicyVersion, error) {
	for _, v := range r.versions {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakePolicyRepo) FindVersionsByPolicy(ctx context.Context, policyID string) ([]model.PolicyVersion, error) {
	var out []model.PolicyVersion
	for _, v := range r.versions {
		if v.PolicyID == policyID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakePolicyRepo) UpdateVersionObjectName(ctx context.Context, versionID, objectName string) error {
	if r.objectNames == nil {
		r.objectNames = make(map[string]string)
	}
	r.objectNames[versionID] = objectName
	return nil
}

// fakeNotificationRepo 是 NotificationRepository 的内存实现。
type fakeNotificationRepo struct {
	notifications []*model.Notification
	readIDs       []string
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *model.Notification) (string, error) {
	notification.ID = "notification-1"
	r.notifications = append(r.notifications, notification)
	return notification.ID, nil
}

func (r *fakeNotificationRepo) FindByUser(ctx context.Context, tenantID, userID string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.notifications {
		if n.TenantID == tenantID && n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.readIDs = append(r.readIDs, id)
	return nil
}

func TestPolicyStoreCreatePolicyMarshalsCoverage(t *testing.T) {
	policyRepo := &fakePolicyRepo{}
	store := NewPolicyStore(policyRepo, &fakeNotificationRepo{})

	coverage := model.ControlCoverage{
		Covered: []string{"CTRL-PRIVACY-03"},
		Missing: []string{},
		CoverageByControl: map[string]model.ControlCoverageEntry{
			"CTRL-PRIVACY-03": {Status: model.CoverageCovered, Sections: []string{"Purpose"}},
		},
	}
	id, err := store.CreatePolicy(context.Background(), pipeline.PolicyRecord{
		TenantID:        "tenant-1",
		Type:            "Data Protection Policy",
		Title:           "Data Protection Policy (Ghana)",
		Status:          "draft",
		ControlCoverage: coverage,
		LastGeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "policy-1", id)

	require.Len(t, policyRepo.policies, 1)
	saved := policyRepo.policies[0]
	assert.Equal(t, "tenant-1", saved.TenantID)

	var decoded model.ControlCoverage
	require.NoError(t, json.Unmarshal([]byte(saved.ControlCoverageJSON), &decoded))
	require.Len(t, decoded.Covered, 1)
	assert.Equal(t, "CTRL-PRIVACY-03", decoded.Covered[0])
	assert.Equal(t, model.CoverageCovered, decoded.CoverageByControl["CTRL-PRIVACY-03"].Status)
}

func TestPolicyStoreCreateVersionRoundTripsOutline(t *testing.T) {
	policyRepo := &fakePolicyRepo{}
	store := NewPolicyStore(policyRepo, &fakeNotificationRepo{})

	outline := []model.PolicyOutlineSection{
		{ID: "data-protection-policy-section-0", Title: "Purpose", Objective: "Explain why this policy exists."},
	}
	id, err := store.CreatePolicyVersion(context.Background(), pipeline.PolicyVersionRecord{
		PolicyID:      "policy-1",
		TenantID:      "tenant-1",
		VersionNumber: 1,
		Outline:       outline,
		Document:      "# Data Protection Policy",
	})
	require.NoError(t, err)
	assert.Equal(t, "version-1", id)

	require.Len(t, policyRepo.versions, 1)
	saved := policyRepo.versions[0]
	assert.Equal(t, 1, saved.VersionNumber)
	assert.Equal(t, "# Data Protection Policy", saved.Document)

	var decoded []model.PolicyOutlineSection
	require.NoError(t, json.Unmarshal([]byte(saved.OutlineJSON), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Purpose", decoded[0].Title)
}

func TestPolicyStoreGetLatestVersionEmpty(t *testing.T) {
	store := NewPolicyStore(&fakePolicyRepo{}, &fakeNotificationRepo{})

	latest, err := store.GetLatestPolicyVersion(context.Background(), "policy-unknown")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestPolicyStoreCreateNotification(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	store := NewPolicyStore(&fakePolicyRepo{}, notificationRepo)

	id, err := store.CreateNotification(context.Background(), pipeline.NotificationRecord{
		TenantID:    "tenant-1",
		UserID:      "user-1",
		Type:        "success",
		Title:       "Data Protection Policy ready",
		Description: "Data Protection Policy was generated with 3 mapped controls.",
	})
	require.NoError(t, err)
	assert.Equal(t, "notification-1", id)
	require.Len(t, notificationRepo.notifications, 1)
	assert.False(t, notificationRepo.notifications[0].Read)
}
