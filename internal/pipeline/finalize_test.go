package pipeline

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-pilot-go/internal/model"
)

func TestFinalizeDocumentLayout(t *testing.T) {
	req := model.PipelineRequest{
		TenantID:     "tenant-1",
		TenantName:   "Acme Corp",
		PolicyType:   "Privacy Policy",
		Industry:     "technology",
		Jurisdiction: "United Kingdom",
	}
	sections := []model.PolicyDraftSection{
		{ID: "s1", Title: "Purpose & Scope", Content: "Alpha.", ControlsCovered: []string{"C1"}},
		{ID: "s2", Title: "Use and Sharing", Content: "Beta.", ControlsCovered: []string{}},
	}
	coverage := model.ControlCoverage{Covered: []string{"C1"}, Missing: []string{"C2"}}

	document, summary, report := FinalizeDocument(req, sections, coverage)

	// 头部字段
	assert.True(t, strings.HasPrefix(document, "# Privacy Policy\n\n"))
	assert.Contains(t, document, "**Tenant:** Acme Corp\n")
	assert.Contains(t, document, "**Jurisdiction:** United Kingdom\n")
	assert.Contains(t, document, "**Industry:** technology\n")
	assert.Contains(t, document, fmt.Sprintf("**Effective Date:** %s\n", time.Now().Format("2006-01-02")))

	// 章节按 1 起始编号渲染
	assert.Contains(t, document, "## 1. Purpose & Scope\n\nAlpha.\n")
	assert.Contains(t, document, "## 2. Use and Sharing\n\nBeta.\n")

	// 覆盖摘要块
	assert.Contains(t, document, "## Control Coverage Summary\n\n- Covered Controls: 1\n- Missing Controls: 1\n")

	assert.Equal(t, "Generated Privacy Policy for Acme Corp, aligned to 1 mapped controls with 1 remaining gaps.", summary)

	assert.Equal(t, "Privacy Policy", report.PolicyType)
	assert.Equal(t, "tenant-1", report.TenantID)
	require.Len(t, report.Sections, 2)
	assert.Equal(t, "s1", report.Sections[0].ID)
	assert.Equal(t, []string{"C1"}, report.Sections[0].Controls)
	assert.Equal(t, coverage, report.Coverage)

	// 生成时间为 RFC3339 格式
	_, err := time.Parse(time.RFC3339, report.GeneratedAt)
	assert.NoError(t, err)
}
