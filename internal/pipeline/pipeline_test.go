package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-pilot-go/internal/corpus"
	"policy-pilot-go/internal/model"
)

// fakeStore 是 PolicyStore 的内存实现，用于在不接数据库的情况下跑完整条流水线。
type fakeStore struct {
	policies      []PolicyRecord
	versions      []PolicyVersionRecord
	notifications []NotificationRecord
	latest        *PolicyVersionRecord

	failCreateVersion  bool
	failCreatePolicy   bool
	failNotification   bool
	updatedPolicyID    string
	updatedVersionID   string
	updateCallObserved bool
}

func (s *fakeStore) CreatePolicy(ctx context.Context, rec PolicyRecord) (string, error) {
	if s.failCreatePolicy {
		return "", errors.New("db unavailable")
	}
	s.policies = append(s.policies, rec)
	return fmt.Sprintf("policy-%d", len(s.policies)), nil
}

func (s *fakeStore) GetLatestPolicyVersion(ctx context.Context, policyID string) (*PolicyVersionRecord, error) {
	return s.latest, nil
}

func (s *fakeStore) CreatePolicyVersion(ctx context.Context, rec PolicyVersionRecord) (string, error) {
	if s.failCreateVersion {
		return "", errors.New("db unavailable")
	}
	s.versions = append(s.versions, rec)
	return fmt.Sprintf("version-%d", len(s.versions)), nil
}

func (s *fakeStore) UpdatePolicyCurrentVersion(ctx context.Context, policyID, versionID, summary string, coverage model.ControlCoverage) error {
	s.updateCallObserved = true
	s.updatedPolicyID = policyID
	s.updatedVersionID = versionID
	return nil
}

func (s *fakeStore) CreateNotification(ctx context.Context, rec NotificationRecord) (string, error) {
	if s.failNotification {
		return "", errors.New("db unavailable")
	}
	s.notifications = append(s.notifications, rec)
	return fmt.Sprintf("notification-%d", len(s.notifications)), nil
}

var pipelineReq = model.PipelineRequest{
	TenantID:     "tenant-1",
	TenantName:   "Acme Corp",
	UserID:       "user-1",
	PolicyType:   "Privacy Policy",
	Industry:     "technology",
	Jurisdiction: "United Kingdom",
}

func TestRunSuccess(t *testing.T) {
	store := &fakeStore{}
	p := New(store)

	result, err := p.Run(context.Background(), pipelineReq, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "policy-1", result.PolicyID)
	assert.Equal(t, "version-1", result.VersionID)
	assert.Len(t, result.Outline, 6)
	assert.Len(t, result.Sections, 6)
	assert.NotEmpty(t, result.Document)
	assert.NotEmpty(t, result.Summary)

	// 持久化载荷
	require.Len(t, store.policies, 1)
	assert.Equal(t, "Privacy Policy (United Kingdom)", store.policies[0].Title)
	assert.Equal(t, "draft", store.policies[0].Status)
	require.Len(t, store.versions, 1)
	assert.Equal(t, 1, store.versions[0].VersionNumber)
	assert.True(t, store.updateCallObserved)
	assert.Equal(t, "policy-1", store.updatedPolicyID)
	assert.Equal(t, "version-1", store.updatedVersionID)

	// 通知
	require.Len(t, store.notifications, 1)
	assert.Equal(t, "success", store.notifications[0].Type)
	assert.Equal(t, "Privacy Policy ready", store.notifications[0].Title)
	assert.Equal(t, "user-1", store.notifications[0].UserID)
	assert.False(t, store.notifications[0].Read)
}

func TestRunVersionNumberIncrement(t *testing.T) {
	store := &fakeStore{latest: &PolicyVersionRecord{VersionNumber: 4}}
	p := New(store)

	_, err := p.Run(context.Background(), pipelineReq, nil)
	require.NoError(t, err)
	require.Len(t, store.versions, 1)
	assert.Equal(t, 5, store.versions[0].VersionNumber)
}

func TestRunProgressContract(t *testing.T) {
	store := &fakeStore{}
	p := New(store)

	var updates []model.ProgressUpdate
	_, err := p.Run(context.Background(), pipelineReq, func(u model.ProgressUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)

	// 先是九个 pending，顺序与步骤表一致
	require.GreaterOrEqual(t, len(updates), len(Steps))
	for i, step := range Steps {
		assert.Equal(t, step, updates[i].Step)
		assert.Equal(t, model.StepPending, updates[i].Status)
	}

	// 之后每个步骤恰好经历一次 running→complete，顺序固定
	rest := updates[len(Steps):]
	require.Len(t, rest, len(Steps)*2)
	for i, step := range Steps {
		assert.Equal(t, step, rest[2*i].Step)
		assert.Equal(t, model.StepRunning, rest[2*i].Status)
		assert.Equal(t, step, rest[2*i+1].Step)
		assert.Equal(t, model.StepComplete, rest[2*i+1].Status)
	}

	// 关键步骤带有人类可读的细节
	assert.Contains(t, rest[1].Detail, "chunks indexed")
	assert.Contains(t, rest[3].Detail, "controls mapped")
	assert.Contains(t, rest[5].Detail, "context chunks selected")
	assert.Contains(t, rest[11].Detail, "covered")
}

func TestRunDeterministic(t *testing.T) {
	// 场景 C：相同输入、相同语料，两次运行的纯计算产物完全一致
	first, err := New(&fakeStore{}).Run(context.Background(), pipelineReq, nil)
	require.NoError(t, err)
	second, err := New(&fakeStore{}).Run(context.Background(), pipelineReq, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Outline, second.Outline)
	assert.Equal(t, first.Sections, second.Sections)
	assert.Equal(t, first.ControlCoverage, second.ControlCoverage)
	assert.Equal(t, first.Document, second.Document)
}

func TestRunPersistenceFailure(t *testing.T) {
	store := &fakeStore{failCreateVersion: true}
	p := New(store)

	var updates []model.ProgressUpdate
	result, err := p.Run(context.Background(), pipelineReq, func(u model.ProgressUpdate) {
		updates = append(updates, u)
	})
	require.Error(t, err)
	assert.Nil(t, result)

	// 失败步骤被标记为 error，且是最后一个事件
	last := updates[len(updates)-1]
	assert.Equal(t, StepStorePolicyVersion, last.Step)
	assert.Equal(t, model.StepError, last.Status)

	// 通知步骤不执行也不标记 error，保持 pending
	for _, u := range updates[len(Steps):] {
		if u.Step == StepNotifyFrontend {
			t.Fatalf("通知步骤不应出现任何后续状态变迁: %+v", u)
		}
	}
	assert.Empty(t, store.notifications)
}

func TestRunNotificationFailure(t *testing.T) {
	store := &fakeStore{failNotification: true}
	p := New(store)

	var updates []model.ProgressUpdate
	_, err := p.Run(context.Background(), pipelineReq, func(u model.ProgressUpdate) {
		updates = append(updates, u)
	})
	require.Error(t, err)

	last := updates[len(updates)-1]
	assert.Equal(t, StepNotifyFrontend, last.Step)
	assert.Equal(t, model.StepError, last.Status)

	// 持久化已经完成，失败发生在之后，不做回滚
	assert.Len(t, store.versions, 1)
	assert.True(t, store.updateCallObserved)
}

func TestRunCoverageInvariant(t *testing.T) {
	policyTypes := []string{
		"Privacy Policy", "Data Protection Policy", "Information Security Policy",
		"Incident Response Policy", "Acceptable Use Policy", "Employee Handbook",
		"Health and Safety Policy", "Totally Custom Policy",
	}
	for _, pt := range policyTypes {
		req := pipelineReq
		req.PolicyType = pt
		result, err := New(&fakeStore{}).Run(context.Background(), req, nil)
		require.NoError(t, err, pt)

		mapped := BuildControlMappings(corpus.ControlTemplates, pt)
		total := len(result.ControlCoverage.Covered) + len(result.ControlCoverage.Missing)
		assert.Equal(t, len(mapped), total, pt)
		for _, id := range result.ControlCoverage.Covered {
			assert.NotContains(t, result.ControlCoverage.Missing, id, pt)
		}
	}
}
