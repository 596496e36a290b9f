package model

// PipelineRequest 是一次策略生成的输入。除 BusinessSize 和 ProfileID 外均为必填。
type PipelineRequest struct {
	TenantID     string `json:"tenantId" binding:"required"`
	TenantName   string `json:"tenantName" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
	PolicyType   string `json:"policyType" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
	Jurisdiction string `json:"jurisdiction" binding:"required"`
	BusinessSize string `json:"businessSize,omitempty"`
	ProfileID    string `json:"profileId,omitempty"`
}

// GeneratePolicyRequest 是 HTTP/WebSocket 接口接收的生成请求，
// 租户与用户信息由认证中间件的令牌声明补全。
type GeneratePolicyRequest struct {
	PolicyType   string `json:"policyType" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
	Jurisdiction string `json:"jurisdiction" binding:"required"`
	BusinessSize string `json:"businessSize,omitempty"`
	ProfileID    string `json:"profileId,omitempty"`
}

// PipelineResult 是流水线的最终输出，policyId/versionId 由持久化层分配。
type PipelineResult struct {
	PolicyID        string                 `json:"policyId"`
	VersionID       string                 `json:"versionId"`
	Outline         []PolicyOutlineSection `json:"outline"`
	Sections        []PolicyDraftSection   `json:"sections"`
	Document        string                 `json:"document"`
	Summary         string                 `json:"summary"`
	Provenance      ProvenanceReport       `json:"provenanceJson"`
	ControlCoverage ControlCoverage        `json:"controlCoverage"`
}

// 流水线步骤状态。
const (
	StepPending  = "pending"
	StepRunning  = "running"
	StepComplete = "complete"
	StepError    = "error"
)

// ProgressUpdate 是流水线每次状态变迁时同步发出的进度事件。
type ProgressUpdate struct {
	Step   string `json:"step"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}
