package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"policy-pilot-go/internal/corpus"
	"policy-pilot-go/internal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GenerateOutline 生成指定策略类型的规范章节列表，并把控制项分配到章节。
// 分配规则是按下标轮转（j mod n == i mod n），不做语义匹配：
// 每个控制项恰好落在一个章节，某些章节可能为空。
func GenerateOutline(policyType string, controls []model.ControlMapping) []model.PolicyOutlineSection {
	sectionTitles, ok := corpus.Outlines[policyType]
	if !ok {
		sectionTitles = corpus.DefaultSections
	}

	n := len(sectionTitles)
	idPrefix := whitespaceRun.ReplaceAllString(strings.ToLower(policyType), "-")

	sections := make([]model.PolicyOutlineSection, 0, n)
	for i, title := range sectionTitles {
		related := []string{}
		for j, control := range controls {
			if j%n == i%n {
				related = append(related, control.ID)
			}
		}

		objective, ok := corpus.SectionObjectives[title]
		if !ok {
			objective = corpus.GenericObjective
		}

		sections = append(sections, model.PolicyOutlineSection{
			ID:        fmt.Sprintf("%s-section-%d", idPrefix, i+1),
			Title:     title,
			Objective: objective,
			Controls:  related,
		})
	}

	return sections
}
