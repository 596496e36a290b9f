package model

// EsPolicyDocument 是写入 Elasticsearch 的策略文档结构。
// 每个已定稿的策略版本对应一条记录，文档 ID 为 VersionID。
type EsPolicyDocument struct {
	VersionID  string `json:"version_id"`
	PolicyID   string `json:"policy_id"`
	TenantID   string `json:"tenant_id"`
	PolicyType string `json:"policy_type"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Document   string `json:"document"`
	CreatedAt  string `json:"created_at"`
}

// PolicySearchResult 是策略全文检索的单条命中结果。
type PolicySearchResult struct {
	PolicyID   string  `json:"policyId"`
	VersionID  string  `json:"versionId"`
	PolicyType string  `json:"policyType"`
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Score      float64 `json:"score"`
	CreatedAt  string  `json:"createdAt"`
}
