package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-pilot-go/internal/model"
)

func TestGetPolicyEnforcesTenantBoundary(t *testing.T) {
	policyRepo := &fakePolicyRepo{}
	_, err := policyRepo.CreatePolicy(context.Background(), &model.Policy{TenantID: "tenant-1", Type: "Data Protection Policy"})
	require.NoError(t, err)

	svc := NewPolicyService(policyRepo)

	policy, err := svc.GetPolicy(context.Background(), "tenant-1", "policy-1")
	require.NoError(t, err)
	require.NotNil(t, policy)

	// 其他租户拿不到同一条记录
	policy, err = svc.GetPolicy(context.Background(), "tenant-2", "policy-1")
	require.NoError(t, err)
	assert.Nil(t, policy)
}

func TestListVersionsUnknownPolicy(t *testing.T) {
	svc := NewPolicyService(&fakePolicyRepo{})

	versions, err := svc.ListVersions(context.Background(), "tenant-1", "policy-unknown")
	require.NoError(t, err)
	assert.Nil(t, versions)
}

func TestGetDownloadURLNotArchived(t *testing.T) {
	policyRepo := &fakePolicyRepo{}
	_, err := policyRepo.CreateVersion(context.Background(), &model.PolicyVersion{
		PolicyID:      "policy-1",
		TenantID:      "tenant-1",
		VersionNumber: 1,
	})
	require.NoError(t, err)

	svc := NewPolicyService(policyRepo)

	_, err = svc.GetDownloadURL(context.Background(), "tenant-1", "version-1")
	assert.ErrorIs(t, err, ErrNotArchived)
}

func TestGetDownloadURLUnknownVersion(t *testing.T) {
	svc := NewPolicyService(&fakePolicyRepo{})

	url, err := svc.GetDownloadURL(context.Background(), "tenant-1", "version-unknown")
	require.NoError(t, err)
	assert.Empty(t, url)
}
