package model

import "policy-pilot-go/pkg/textvec"

// SourceChunk 是摄取阶段产生的文本分块，检索的最小单位。
// 每次流水线运行都会重新生成，不做持久化。
type SourceChunk struct {
	ID      string          `json:"id"`
	Source  *SourceDocument `json:"-"`
	Control *SourceControl  `json:"-"`
	Text    string          `json:"text"`
	Tags    []string        `json:"tags"`
	Vector  textvec.Vector  `json:"-"`
}

// RetrievedContext 是针对单个控制项检索出的分块排序结果。
type RetrievedContext struct {
	ControlID string        `json:"controlId"`
	Chunks    []SourceChunk `json:"chunks"`
}
