package corpus

// Outlines 是策略类型到规范章节标题列表的映射，顺序即文档章节顺序。
// 未收录的策略类型使用 DefaultSections。
var Outlines = map[string][]string{
	"Privacy Policy": {
		"Purpose & Scope",
		"Lawful Basis and Collection",
		"Use and Sharing",
		"Data Subject Rights",
		"Security & Retention",
		"Governance & Contact",
	},
	"Data Protection Policy": {
		"Governance",
		"Data Inventory",
		"Processing Principles",
		"Third-Party Management",
		"Incident Management",
		"Continuous Improvement",
	},
	"Information Security Policy": {
		"Program Overview",
		"Access Control",
		"Asset & Configuration Management",
		"Monitoring & Detection",
		"Incident Response",
		"Awareness & Measurement",
	},
	"Incident Response Policy": {
		"Objectives",
		"Roles & Responsibilities",
		"Detection & Triage",
		"Containment & Eradication",
		"Communication & Reporting",
		"Lessons Learned",
	},
	"Acceptable Use Policy": {
		"Scope",
		"Acceptable Behavior",
		"Prohibited Activities",
		"Monitoring & Privacy",
		"Enforcement",
	},
	"Employee Handbook": {
		"Welcome & Values",
		"Employment Basics",
		"Workplace Conduct",
		"Health, Safety & Wellbeing",
		"Training & Development",
		"Reporting & Discipline",
	},
	"Health and Safety Policy": {
		"Policy Statement",
		"Roles & Responsibilities",
		"Risk Assessment",
		"Training & Competency",
		"Emergency Response",
		"Auditing & Review",
	},
}

// DefaultSections 是兜底的六章节大纲。
var DefaultSections = []string{
	"Purpose",
	"Scope",
	"Responsibilities",
	"Procedures",
	"Monitoring",
	"Review",
}

// SectionObjectives 是章节标题到固定目标句的映射。
var SectionObjectives = map[string]string{
	"Purpose":          "Explain why the policy exists and what outcome it drives.",
	"Scope":            "Describe the business units, systems, and geographies covered.",
	"Responsibilities": "Clarify accountable roles, approvers, and escalation paths.",
	"Procedures":       "Detail the required controls, workflows, and safeguards.",
	"Monitoring":       "Outline evidence, metrics, and inspection cadences.",
	"Review":           "Explain review frequency, triggers, and ownership.",
}

// GenericObjective 用于未在 SectionObjectives 中登记的章节标题。
const GenericObjective = "Detail the expectations for this policy chapter."
