package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-pilot-go/internal/corpus"
)

func TestBuildControlMappingsByPolicyType(t *testing.T) {
	mapped := BuildControlMappings(corpus.ControlTemplates, "Privacy Policy")
	require.Len(t, mapped, 1)
	assert.Equal(t, "CTRL-PRIVACY-03", mapped[0].ID)

	mapped = BuildControlMappings(corpus.ControlTemplates, "Information Security Policy")
	ids := make([]string, 0, len(mapped))
	for _, m := range mapped {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"CTRL-ACCESS-01", "CTRL-INCIDENT-02", "CTRL-TRAINING-05"}, ids)
}

func TestBuildControlMappingsFallback(t *testing.T) {
	mapped := BuildControlMappings(corpus.ControlTemplates, "Remote Work Policy")
	require.Len(t, mapped, 3, "无命中时取前三条模板兜底")
	for _, m := range mapped {
		assert.Equal(t, []string{"Remote Work Policy"}, m.PolicyTypes)
	}

	// 兜底不能污染模板库本身
	assert.Equal(t,
		[]string{"Information Security Policy", "Acceptable Use Policy", "Employee Handbook"},
		corpus.ControlTemplates[0].PolicyTypes)
}

func TestBuildControlMappingsNeverEmpty(t *testing.T) {
	policyTypes := []string{
		"Privacy Policy",
		"Data Protection Policy",
		"Information Security Policy",
		"Incident Response Policy",
		"Acceptable Use Policy",
		"Employee Handbook",
		"Health and Safety Policy",
		"Completely Made Up Policy",
		"",
	}
	for _, pt := range policyTypes {
		assert.NotEmpty(t, BuildControlMappings(corpus.ControlTemplates, pt), "policyType=%q", pt)
	}
}
