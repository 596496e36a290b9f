package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"policy-pilot-go/internal/model"
)

func TestVerifyControlsPartition(t *testing.T) {
	controls := []model.ControlMapping{{ID: "C1"}, {ID: "C2"}, {ID: "C3"}}
	sections := []model.PolicyDraftSection{
		{Title: "Governance", ControlsCovered: []string{"C1", "C3"}},
		{Title: "Procedures", ControlsCovered: []string{"C3"}},
	}

	coverage := VerifyControls(controls, sections)
	assert.Equal(t, []string{"C1", "C3"}, coverage.Covered)
	assert.Equal(t, []string{"C2"}, coverage.Missing)

	// 分区不变量：covered 与 missing 互斥，并集为全部控制项
	assert.Len(t, coverage.Covered, len(controls)-len(coverage.Missing))
	for _, id := range coverage.Covered {
		assert.NotContains(t, coverage.Missing, id)
	}
	assert.Len(t, coverage.CoverageByControl, len(controls))
}

func TestVerifyControlsEntries(t *testing.T) {
	// 场景 B：两个控制项只有一个被章节引用
	controls := []model.ControlMapping{{ID: "C1"}, {ID: "C2"}}
	sections := []model.PolicyDraftSection{
		{Title: "Access Control", ControlsCovered: []string{"C1"}},
	}

	coverage := VerifyControls(controls, sections)
	assert.Equal(t, []string{"C1"}, coverage.Covered)
	assert.Equal(t, []string{"C2"}, coverage.Missing)

	covered := coverage.CoverageByControl["C1"]
	assert.Equal(t, model.CoverageCovered, covered.Status)
	assert.Equal(t, []string{"Access Control"}, covered.Sections)

	missing := coverage.CoverageByControl["C2"]
	assert.Equal(t, model.CoverageMissing, missing.Status)
	assert.Empty(t, missing.Sections)
	assert.NotNil(t, missing.Sections)
}

func TestVerifyControlsNoControls(t *testing.T) {
	coverage := VerifyControls(nil, nil)
	assert.Empty(t, coverage.Covered)
	assert.Empty(t, coverage.Missing)
	assert.Empty(t, coverage.CoverageByControl)
}
