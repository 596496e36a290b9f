// Package model 定义了领域实体与数据库表对应的 Go 结构体。
package model

// SourceControl 是某个监管来源文档中的一条具体合规要求。
// 归属于唯一的 SourceDocument，属于只读参考数据。
type SourceControl struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
}

// SourceDocument 是一份监管来源文档（法规、框架、指南）。
// Jurisdiction 为 "Global" 时表示通配所有司法辖区。
type SourceDocument struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Jurisdiction string          `json:"jurisdiction"`
	Industries   []string        `json:"industries"`
	PolicyTypes  []string        `json:"policyTypes"`
	Excerpt      string          `json:"excerpt"`
	Controls     []SourceControl `json:"controls"`
}

// ControlMapping 是策略类型到合规控制项的映射模板。
// PolicyTypes 表示该控制项适用于哪些策略类型（多对多）。
type ControlMapping struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Framework   string   `json:"framework"`
	PolicyTypes []string `json:"policyTypes"`
	Tags        []string `json:"tags"`
}
