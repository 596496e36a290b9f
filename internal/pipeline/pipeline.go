package pipeline

import (
	"context"
	"fmt"
	"time"

	"policy-pilot-go/internal/corpus"
	"policy-pilot-go/internal/model"
	"policy-pilot-go/pkg/log"
)

// ProgressFunc 在每次步骤状态变迁时被同步调用。
// 回调内不应执行耗时操作，否则会拖慢整条流水线。
type ProgressFunc func(update model.ProgressUpdate)

// Pipeline 封装了策略生成流水线的全部依赖。
// 参考数据不可变、分块按调用新建，多个 Run 并发执行是安全的。
type Pipeline struct {
	store     PolicyStore
	library   []model.SourceDocument
	templates []model.ControlMapping
}

// New 创建一个使用内置语料库的 Pipeline 实例。
func New(store PolicyStore) *Pipeline {
	return NewWithReferenceData(store, corpus.SourceLibrary, corpus.ControlTemplates)
}

// NewWithReferenceData 创建一个使用自定义参考数据的 Pipeline 实例，主要用于测试。
func NewWithReferenceData(store PolicyStore, library []model.SourceDocument, templates []model.ControlMapping) *Pipeline {
	return &Pipeline{
		store:     store,
		library:   library,
		templates: templates,
	}
}

// Run 按固定顺序执行九个步骤并返回流水线结果。
// 计算阶段（步骤 1-7）为纯计算，不会失败；仅持久化与通知两步可能出错。
// 出错时把当前步骤与后续未到达的步骤（最后的通知步骤除外）标记为 error，
// 然后向调用方返回错误，不做任何回滚或重试。
func (p *Pipeline) Run(ctx context.Context, req model.PipelineRequest, onProgress ProgressFunc) (*model.PipelineResult, error) {
	log.Infof("[Pipeline] 开始生成策略, type=%s, tenant=%s, jurisdiction=%s", req.PolicyType, req.TenantID, req.Jurisdiction)

	// 所有步骤先置为 pending
	for _, step := range Steps {
		emit(onProgress, step, model.StepPending, "")
	}

	emit(onProgress, StepIngestSources, model.StepRunning, "")
	chunks := IngestSources(p.library, req.PolicyType, req.Industry, req.Jurisdiction)
	emit(onProgress, StepIngestSources, model.StepComplete, fmt.Sprintf("%d chunks indexed", len(chunks)))
	log.Infof("[Pipeline] 步骤1: 摄取完成, 共 %d 个分块", len(chunks))

	emit(onProgress, StepBuildControlMappings, model.StepRunning, "")
	controls := BuildControlMappings(p.templates, req.PolicyType)
	emit(onProgress, StepBuildControlMappings, model.StepComplete, fmt.Sprintf("%d controls mapped", len(controls)))
	log.Infof("[Pipeline] 步骤2: 控制项映射完成, 共 %d 项", len(controls))

	emit(onProgress, StepRetrieveContext, model.StepRunning, "")
	narrative := req.PolicyType + " " + req.Industry + " " + req.Jurisdiction
	contexts := RetrieveContext(controls, chunks, narrative)
	selected := 0
	for _, c := range contexts {
		selected += len(c.Chunks)
	}
	emit(onProgress, StepRetrieveContext, model.StepComplete, fmt.Sprintf("%d context chunks selected", selected))
	log.Infof("[Pipeline] 步骤3: 上下文检索完成, 共选中 %d 个分块", selected)

	emit(onProgress, StepGenerateOutline, model.StepRunning, "")
	outline := GenerateOutline(req.PolicyType, controls)
	emit(onProgress, StepGenerateOutline, model.StepComplete, "")
	log.Infof("[Pipeline] 步骤4: 大纲生成完成, 共 %d 个章节", len(outline))

	emit(onProgress, StepDraftSections, model.StepRunning, "")
	sections := DraftSections(outline, contexts, req)
	emit(onProgress, StepDraftSections, model.StepComplete, "")
	log.Infof("[Pipeline] 步骤5: 章节草拟完成")

	emit(onProgress, StepVerifyControls, model.StepRunning, "")
	coverage := VerifyControls(controls, sections)
	emit(onProgress, StepVerifyControls, model.StepComplete,
		fmt.Sprintf("%d covered / %d missing", len(coverage.Covered), len(coverage.Missing)))
	log.Infof("[Pipeline] 步骤6: 覆盖校验完成, covered=%d, missing=%d", len(coverage.Covered), len(coverage.Missing))

	emit(onProgress, StepFinalizeDocument, model.StepRunning, "")
	document, summary, report := FinalizeDocument(req, sections, coverage)
	emit(onProgress, StepFinalizeDocument, model.StepComplete, "")
	log.Infof("[Pipeline] 步骤7: 文档定稿完成, 长度 %d 字符", len(document))

	// 步骤8: 持久化策略与版本
	emit(onProgress, StepStorePolicyVersion, model.StepRunning, "")
	title := fmt.Sprintf("%s (%s)", req.PolicyType, req.Jurisdiction)
	policyID, err := p.store.CreatePolicy(ctx, PolicyRecord{
		TenantID:         req.TenantID,
		Type:             req.PolicyType,
		Title:            title,
		Content:          document,
		Status:           "draft",
		Summary:          summary,
		ControlCoverage:  coverage,
		RelatedProfileID: req.ProfileID,
		LastGeneratedAt:  time.Now(),
	})
	if err != nil {
		p.markFailed(onProgress, StepStorePolicyVersion)
		return nil, fmt.Errorf("创建策略记录失败: %w", err)
	}

	latest, err := p.store.GetLatestPolicyVersion(ctx, policyID)
	if err != nil {
		p.markFailed(onProgress, StepStorePolicyVersion)
		return nil, fmt.Errorf("查询最新策略版本失败: %w", err)
	}
	versionNumber := 1
	if latest != nil {
		versionNumber = latest.VersionNumber + 1
	}

	versionID, err := p.store.CreatePolicyVersion(ctx, PolicyVersionRecord{
		PolicyID:        policyID,
		TenantID:        req.TenantID,
		VersionNumber:   versionNumber,
		Summary:         summary,
		Outline:         outline,
		Sections:        sections,
		ControlCoverage: coverage,
		Document:        document,
		Provenance:      report,
	})
	if err != nil {
		p.markFailed(onProgress, StepStorePolicyVersion)
		return nil, fmt.Errorf("创建策略版本失败: %w", err)
	}

	if err := p.store.UpdatePolicyCurrentVersion(ctx, policyID, versionID, summary, coverage); err != nil {
		p.markFailed(onProgress, StepStorePolicyVersion)
		return nil, fmt.Errorf("更新策略当前版本指针失败: %w", err)
	}
	emit(onProgress, StepStorePolicyVersion, model.StepComplete, "")
	log.Infof("[Pipeline] 步骤8: 已持久化策略 %s 的第 %d 版 (%s)", policyID, versionNumber, versionID)

	// 步骤9: 创建前端通知
	emit(onProgress, StepNotifyFrontend, model.StepRunning, "")
	if _, err := p.store.CreateNotification(ctx, NotificationRecord{
		TenantID:    req.TenantID,
		UserID:      req.UserID,
		Type:        "success",
		Title:       fmt.Sprintf("%s ready", req.PolicyType),
		Description: fmt.Sprintf("%s was generated with %d mapped controls.", req.PolicyType, len(coverage.Covered)),
		Read:        false,
		CreatedAt:   time.Now(),
	}); err != nil {
		p.markFailed(onProgress, StepNotifyFrontend)
		return nil, fmt.Errorf("创建通知失败: %w", err)
	}
	emit(onProgress, StepNotifyFrontend, model.StepComplete, "")

	log.Infof("[Pipeline] 策略生成完毕, policyId=%s, versionId=%s", policyID, versionID)
	return &model.PipelineResult{
		PolicyID:        policyID,
		VersionID:       versionID,
		Outline:         outline,
		Sections:        sections,
		Document:        document,
		Summary:         summary,
		Provenance:      report,
		ControlCoverage: coverage,
	}, nil
}

// emit 同步发出一次进度事件，onProgress 为 nil 时不做任何事。
func emit(onProgress ProgressFunc, step, status, detail string) {
	if onProgress == nil {
		return
	}
	onProgress(model.ProgressUpdate{Step: step, Status: status, Detail: detail})
}

// markFailed 把失败步骤与其后未到达的步骤标记为 error。
// 最后的通知步骤只有在自身失败时才会被标记，未到达时保持 pending。
func (p *Pipeline) markFailed(onProgress ProgressFunc, failedStep string) {
	reached := false
	for _, step := range Steps {
		if step == failedStep {
			reached = true
			emit(onProgress, step, model.StepError, "")
			continue
		}
		if reached && step != StepNotifyFrontend {
			emit(onProgress, step, model.StepError, "")
		}
	}
}
