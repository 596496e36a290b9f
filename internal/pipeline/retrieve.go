package pipeline

import (
	"sort"
	"strings"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/pkg/textvec"
)

// 检索打分权重：控制项特异性优先于通用叙述匹配。
// 该比例是刻意固定的行为常量，调整它会改变外部可见的检索结果。
const (
	controlWeight       = 0.6
	narrativeWeight     = 0.4
	topChunksPerControl = 2
)

// RetrieveContext 对每个控制项按加权余弦相似度对全部分块打分并取前二。
// 打分 = 0.6 * sim(控制项向量, 分块向量) + 0.4 * sim(叙述向量, 分块向量)。
// 排序为稳定降序，同分时保持分块在语料中的原始顺序。
// 分块不足两个时取可用的数量，可能为零，由后续草拟阶段兜底。
func RetrieveContext(controls []model.ControlMapping, chunks []model.SourceChunk, policyNarrative string) []model.RetrievedContext {
	narrativeVector := textvec.BuildVector(policyNarrative)

	retrieved := make([]model.RetrievedContext, 0, len(controls))
	for _, control := range controls {
		controlText := control.Title + " " + control.Description + " " + strings.Join(control.Tags, " ")
		controlVector := textvec.BuildVector(controlText)

		scores := make([]float64, len(chunks))
		order := make([]int, len(chunks))
		for i, chunk := range chunks {
			scores[i] = controlWeight*textvec.CosineSimilarity(controlVector, chunk.Vector) +
				narrativeWeight*textvec.CosineSimilarity(narrativeVector, chunk.Vector)
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]] > scores[order[b]]
		})

		limit := topChunksPerControl
		if limit > len(chunks) {
			limit = len(chunks)
		}
		top := make([]model.SourceChunk, 0, limit)
		for _, idx := range order[:limit] {
			top = append(top, chunks[idx])
		}

		retrieved = append(retrieved, model.RetrievedContext{
			ControlID: control.ID,
			Chunks:    top,
		})
	}

	return retrieved
}
