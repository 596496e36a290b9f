package model

import "time"

// 生成任务的整体状态。
const (
	RunQueued   = "queued"
	RunRunning  = "running"
	RunComplete = "complete"
	RunError    = "error"
)

// GenerationRun 是一次异步生成任务的进度快照，存放在 Redis 中供前端轮询。
// Steps 按固定步骤顺序保存每个步骤的最新状态。
type GenerationRun struct {
	RunID     string           `json:"runId"`
	TenantID  string           `json:"tenantId"`
	Status    string           `json:"status"`
	Steps     []ProgressUpdate `json:"steps"`
	PolicyID  string           `json:"policyId,omitempty"`
	VersionID string           `json:"versionId,omitempty"`
	Error     string           `json:"error,omitempty"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
