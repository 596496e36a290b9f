package pipeline

import (
	"fmt"
	"strings"
	"time"

	"policy-pilot-go/internal/model"
)

// FinalizeDocument 把章节草稿装配成最终的 Markdown 文档，
// 并生成一句话摘要与结构化溯源报告。纯字符串装配，无失败路径。
func FinalizeDocument(req model.PipelineRequest, sections []model.PolicyDraftSection, coverage model.ControlCoverage) (document, summary string, report model.ProvenanceReport) {
	now := time.Now()
	effectiveDate := now.Format("2006-01-02")

	header := fmt.Sprintf("# %s\n\n**Tenant:** %s\n**Jurisdiction:** %s\n**Industry:** %s\n**Effective Date:** %s\n\n",
		req.PolicyType, req.TenantName, req.Jurisdiction, req.Industry, effectiveDate)

	rendered := make([]string, 0, len(sections))
	for idx, section := range sections {
		rendered = append(rendered, fmt.Sprintf("## %d. %s\n\n%s\n", idx+1, section.Title, section.Content))
	}
	body := strings.Join(rendered, "\n")

	coverageSummary := fmt.Sprintf("## Control Coverage Summary\n\n- Covered Controls: %d\n- Missing Controls: %d\n\n",
		len(coverage.Covered), len(coverage.Missing))

	document = header + body + coverageSummary

	summary = fmt.Sprintf("Generated %s for %s, aligned to %d mapped controls with %d remaining gaps.",
		req.PolicyType, req.TenantName, len(coverage.Covered), len(coverage.Missing))

	provenanceSections := make([]model.ProvenanceSection, 0, len(sections))
	for _, section := range sections {
		provenanceSections = append(provenanceSections, model.ProvenanceSection{
			ID:         section.ID,
			Title:      section.Title,
			Controls:   section.ControlsCovered,
			Provenance: section.Provenance,
		})
	}

	report = model.ProvenanceReport{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		PolicyType:  req.PolicyType,
		TenantID:    req.TenantID,
		Sections:    provenanceSections,
		Coverage:    coverage,
	}

	return document, summary, report
}
