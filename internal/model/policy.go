package model

import "time"

// Policy 对应于数据库中的 policies 表。
// Content 与 ControlCoverageJSON 保存当前版本的最终文档与覆盖报告快照。
type Policy struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey;column:id" json:"id"`
	TenantID            string    `gorm:"type:varchar(36);not null;index;column:tenant_id" json:"tenantId"`
	Type                string    `gorm:"type:varchar(100);not null;column:type" json:"type"`
	Title               string    `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Content             string    `gorm:"type:longtext;column:content" json:"content"`
	Status              string    `gorm:"type:varchar(20);not null;default:draft;column:status" json:"status"`
	Summary             string    `gorm:"type:text;column:summary" json:"summary"`
	ControlCoverageJSON string    `gorm:"type:text;column:control_coverage" json:"-"`
	RelatedProfileID    string    `gorm:"type:varchar(36);column:related_profile_id" json:"relatedProfileId"`
	CurrentVersionID    string    `gorm:"type:varchar(36);column:current_version_id" json:"currentVersionId"`
	LastGeneratedAt     time.Time `gorm:"column:last_generated_at" json:"lastGeneratedAt"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Policy) TableName() string {
	return "policies"
}

// PolicyVersion 对应于数据库中的 policy_versions 表。
// Outline/Sections/Provenance 以 JSON 文本形式落库，版本号从 1 开始递增。
type PolicyVersion struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey;column:id" json:"id"`
	PolicyID            string    `gorm:"type:varchar(36);not null;index;column:policy_id" json:"policyId"`
	TenantID            string    `gorm:"type:varchar(36);not null;index;column:tenant_id" json:"tenantId"`
	VersionNumber       int       `gorm:"not null;column:version_number" json:"versionNumber"`
	Summary             string    `gorm:"type:text;column:summary" json:"summary"`
	OutlineJSON         string    `gorm:"type:text;column:outline" json:"-"`
	SectionsJSON        string    `gorm:"type:longtext;column:sections" json:"-"`
	ControlCoverageJSON string    `gorm:"type:text;column:control_coverage" json:"-"`
	Document            string    `gorm:"type:longtext;column:document" json:"document"`
	ProvenanceJSON      string    `gorm:"type:longtext;column:provenance" json:"-"`
	ObjectName          string    `gorm:"type:varchar(255);column:object_name" json:"objectName"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (PolicyVersion) TableName() string {
	return "policy_versions"
}

// Notification 对应于数据库中的 notifications 表。
type Notification struct {
	ID          string    `gorm:"type:varchar(36);primaryKey;column:id" json:"id"`
	TenantID    string    `gorm:"type:varchar(36);not null;index;column:tenant_id" json:"tenantId"`
	UserID      string    `gorm:"type:varchar(36);not null;index;column:user_id" json:"userId"`
	Type        string    `gorm:"type:varchar(20);not null;column:type" json:"type"`
	Title       string    `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	Read        bool      `gorm:"not null;default:false;column:read" json:"read"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
