package pipeline

import (
	"fmt"
	"strings"

	"policy-pilot-go/internal/model"
)

// provenanceConfidence 是溯源标签的固定置信度，保持与参考行为一致。
const provenanceConfidence = 0.85

// DraftSections 基于检索到的上下文为每个大纲章节合成正文。
// 每个命中的分块产出一段固定模板的段落和一条溯源标签；
// 没有任何上下文命中的章节会得到一段兜底文案，保证章节内容非空。
func DraftSections(outline []model.PolicyOutlineSection, contexts []model.RetrievedContext, req model.PipelineRequest) []model.PolicyDraftSection {
	sections := make([]model.PolicyDraftSection, 0, len(outline))
	for _, section := range outline {
		var paragraphs []string
		provenance := []model.ProvenanceTag{}

		for _, ctx := range contexts {
			if !containsString(section.Controls, ctx.ControlID) {
				continue
			}
			for _, chunk := range ctx.Chunks {
				paragraphs = append(paragraphs, fmt.Sprintf(
					"Referencing %s (%s), we commit to %s. This applies to %s operating in %s.",
					chunk.Source.Name, chunk.Source.Jurisdiction, chunk.Text, req.TenantName, req.Jurisdiction,
				))

				citation := chunk.Source.Name
				if chunk.Control != nil {
					citation = chunk.Control.Title
				}
				provenance = append(provenance, model.ProvenanceTag{
					SourceID:     chunk.Source.ID,
					SourceName:   chunk.Source.Name,
					Jurisdiction: chunk.Source.Jurisdiction,
					IndustryTags: chunk.Source.Industries,
					Citation:     citation,
					ChunkID:      chunk.ID,
					Confidence:   provenanceConfidence,
				})
			}
		}

		if len(paragraphs) == 0 {
			paragraphs = append(paragraphs, fmt.Sprintf(
				"%s documents %s expectations in alignment with regional regulators and industry frameworks. Detailed procedures will be enriched as more evidence is captured.",
				req.TenantName, strings.ToLower(section.Title),
			))
		}

		sections = append(sections, model.PolicyDraftSection{
			ID:              section.ID,
			Title:           section.Title,
			Content:         section.Objective + "\n\n" + strings.Join(paragraphs, "\n\n"),
			ControlsCovered: section.Controls,
			Provenance:      provenance,
		})
	}

	return sections
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
