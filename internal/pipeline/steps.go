package pipeline

// 流水线的九个步骤标识，顺序固定。
const (
	StepIngestSources        = "ingest_sources"
	StepBuildControlMappings = "build_control_mappings"
	StepRetrieveContext      = "retrieve_context"
	StepGenerateOutline      = "generate_outline"
	StepDraftSections        = "draft_sections"
	StepVerifyControls       = "verify_controls"
	StepFinalizeDocument     = "finalize_document"
	StepStorePolicyVersion   = "store_policy_version"
	StepNotifyFrontend       = "notify_frontend"
)

// Steps 按执行顺序列出全部步骤，进度初始化与错误标记都以它为准。
var Steps = []string{
	StepIngestSources,
	StepBuildControlMappings,
	StepRetrieveContext,
	StepGenerateOutline,
	StepDraftSections,
	StepVerifyControls,
	StepFinalizeDocument,
	StepStorePolicyVersion,
	StepNotifyFrontend,
}
