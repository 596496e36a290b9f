package model

// PolicyOutlineSection 是大纲中的一个章节，Controls 为分配给它的控制项 ID 列表。
type PolicyOutlineSection struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Objective string   `json:"objective"`
	Controls  []string `json:"controls"`
}

// ProvenanceTag 记录了草稿段落到来源文档/控制项的溯源信息。
type ProvenanceTag struct {
	SourceID     string   `json:"sourceId"`
	SourceName   string   `json:"sourceName"`
	Jurisdiction string   `json:"jurisdiction"`
	IndustryTags []string `json:"industryTags"`
	Citation     string   `json:"citation"`
	ChunkID      string   `json:"chunkId"`
	Confidence   float64  `json:"confidence"`
}

// PolicyDraftSection 是草拟完成的章节，Content 保证非空。
type PolicyDraftSection struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	ControlsCovered []string        `json:"controlsCovered"`
	Provenance      []ProvenanceTag `json:"provenance"`
}

// 控制项覆盖状态。
const (
	CoverageCovered = "covered"
	CoverageMissing = "missing"
)

// ControlCoverageEntry 描述单个控制项的覆盖情况。
type ControlCoverageEntry struct {
	Status   string   `json:"status"`
	Sections []string `json:"sections"`
}

// ControlCoverage 是覆盖校验的结果。
// 不变量：Covered 与 Missing 互斥，且二者并集等于全部映射的控制项。
type ControlCoverage struct {
	Covered           []string                        `json:"covered"`
	Missing           []string                        `json:"missing"`
	CoverageByControl map[string]ControlCoverageEntry `json:"coverageByControl"`
}

// ProvenanceSection 是溯源报告中单个章节的条目。
type ProvenanceSection struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Controls   []string        `json:"controls"`
	Provenance []ProvenanceTag `json:"provenance"`
}

// ProvenanceReport 是随版本持久化的结构化溯源报告。
type ProvenanceReport struct {
	GeneratedAt string              `json:"generatedAt"`
	PolicyType  string              `json:"policyType"`
	TenantID    string              `json:"tenantId"`
	Sections    []ProvenanceSection `json:"sections"`
	Coverage    ControlCoverage     `json:"coverage"`
}
