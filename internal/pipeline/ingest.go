// Package pipeline 实现了策略生成流水线：摄取、控制项映射、上下文检索、
// 大纲生成、章节草拟、覆盖校验、文档定稿与编排。
package pipeline

import (
	"fmt"
	"strings"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/pkg/textvec"
)

// chunkSize 是摄取阶段的分块词数上限。
const chunkSize = textvec.DefaultChunkSize

// IngestSources 按策略类型/行业/司法辖区筛选来源文档库并切块。
// 命中规则（任一满足即视为相关）：
//   - 文档的 policyTypes 包含 policyType；
//   - 文档的 industries 与 industry（小写）精确匹配或任一方向子串匹配；
//   - 文档的 jurisdiction 与 jurisdiction 忽略大小写相等，或为 "global" 通配。
//
// 若无任何文档命中则回退到整个文档库，保证库非空时输出一定非空。
func IngestSources(library []model.SourceDocument, policyType, industry, jurisdiction string) []model.SourceChunk {
	industryLower := strings.ToLower(industry)
	jurisdictionLower := strings.ToLower(jurisdiction)

	var relevant []*model.SourceDocument
	for i := range library {
		source := &library[i]
		if matchesPolicyType(source, policyType) ||
			matchesIndustry(source, industryLower) ||
			matchesJurisdiction(source, jurisdictionLower) {
			relevant = append(relevant, source)
		}
	}

	// 兜底：没有任何命中时使用全量文档库
	if len(relevant) == 0 {
		for i := range library {
			relevant = append(relevant, &library[i])
		}
	}

	var chunks []model.SourceChunk
	for _, source := range relevant {
		for idx, text := range textvec.ChunkText(source.Excerpt, chunkSize) {
			chunks = append(chunks, model.SourceChunk{
				ID:     fmt.Sprintf("%s-excerpt-%d", source.ID, idx),
				Source: source,
				Text:   text,
				Tags:   []string{"overview"},
				Vector: textvec.BuildVector(text),
			})
		}

		for c := range source.Controls {
			control := &source.Controls[c]
			for idx, text := range textvec.ChunkText(control.Text, chunkSize) {
				chunks = append(chunks, model.SourceChunk{
					ID:      fmt.Sprintf("%s-%s-%d", source.ID, control.ID, idx),
					Source:  source,
					Control: control,
					Text:    text,
					Tags:    control.Tags,
					Vector:  textvec.BuildVector(text),
				})
			}
		}
	}

	return chunks
}

func matchesPolicyType(source *model.SourceDocument, policyType string) bool {
	for _, pt := range source.PolicyTypes {
		if pt == policyType {
			return true
		}
	}
	return false
}

func matchesIndustry(source *model.SourceDocument, industryLower string) bool {
	for _, ind := range source.Industries {
		if ind == industryLower ||
			strings.Contains(industryLower, ind) ||
			strings.Contains(ind, industryLower) {
			return true
		}
	}
	return false
}

func matchesJurisdiction(source *model.SourceDocument, jurisdictionLower string) bool {
	sourceJurisdiction := strings.ToLower(source.Jurisdiction)
	return sourceJurisdiction == jurisdictionLower || strings.Contains(sourceJurisdiction, "global")
}
