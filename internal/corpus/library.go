// Package corpus 存放流水线依赖的静态参考数据：来源文档库、控制项模板与大纲表。
// 全部为只读数据，并发的流水线调用之间不存在共享可变状态。
package corpus

import "policy-pilot-go/internal/model"

// SourceLibrary 是内置的监管来源文档库。
var SourceLibrary = []model.SourceDocument{
	{
		ID:           "nist-csf",
		Name:         "NIST Cybersecurity Framework 2.0",
		Jurisdiction: "United States",
		Industries:   []string{"technology", "finance", "healthcare", "manufacturing"},
		PolicyTypes: []string{
			"Information Security Policy",
			"Incident Response Policy",
			"Acceptable Use Policy",
			"Data Protection Policy",
		},
		Excerpt: "NIST CSF 2.0 describes governance, identification, protection, detection, response, and recovery outcomes required for resilient cybersecurity programs.",
		Controls: []model.SourceControl{
			{
				ID:    "NIST-ID.GV-03",
				Title: "Documented security governance",
				Text:  "Organizations maintain a security governance program that defines policy ownership, review cadences, and accountability at the executive level.",
				Tags:  []string{"governance", "policy-management"},
			},
			{
				ID:    "NIST-PR.AC-01",
				Title: "Access control rules",
				Text:  "Role-based and least-privilege access control rules must be documented, reviewed quarterly, and enforced through technical safeguards.",
				Tags:  []string{"access-control", "least-privilege"},
			},
			{
				ID:    "NIST-RS.MI-01",
				Title: "Incident response improvements",
				Text:  "Incident response plans incorporate lessons learned, scenario testing, and communication requirements for regulators and affected parties.",
				Tags:  []string{"incident-response", "testing"},
			},
		},
	},
	{
		ID:           "cis-controls-v8",
		Name:         "CIS Critical Security Controls v8",
		Jurisdiction: "Global",
		Industries:   []string{"technology", "finance", "retail", "public-sector"},
		PolicyTypes: []string{
			"Information Security Policy",
			"Acceptable Use Policy",
			"Incident Response Policy",
		},
		Excerpt: "CIS Controls provide prescriptive safeguards for asset inventory, secure configuration, vulnerability management, and awareness education.",
		Controls: []model.SourceControl{
			{
				ID:    "CIS-04",
				Title: "Secure configuration management",
				Text:  "Policies must define baseline configurations for servers, workstations, and cloud workloads, including hardening and change control expectations.",
				Tags:  []string{"configuration", "change-management"},
			},
			{
				ID:    "CIS-14",
				Title: "Security awareness and skills",
				Text:  "Organizations implement continuous security awareness training that aligns to policy statements about acceptable behavior and reporting duties.",
				Tags:  []string{"training", "awareness"},
			},
		},
	},
	{
		ID:           "osha-1910",
		Name:         "OSHA 29 CFR 1910",
		Jurisdiction: "United States",
		Industries:   []string{"manufacturing", "energy", "construction", "healthcare"},
		PolicyTypes:  []string{"Health and Safety Policy", "Employee Handbook"},
		Excerpt:      "OSHA regulations outline employer obligations for hazard communication, worker training, incident logging, and workplace inspections.",
		Controls: []model.SourceControl{
			{
				ID:    "OSHA-1910.1200",
				Title: "Hazard communication",
				Text:  "Employers must maintain written programs describing how hazardous chemicals are labeled, documented, and communicated to employees.",
				Tags:  []string{"hazard", "communication"},
			},
			{
				ID:    "OSHA-1910.38",
				Title: "Emergency action planning",
				Text:  "Policies define evacuation routes, alarm systems, accountability procedures, and responsibilities for medical assistance.",
				Tags:  []string{"emergency-response", "safety"},
			},
		},
	},
	{
		ID:           "ghana-dpc",
		Name:         "Ghana Data Protection Commission Guidelines",
		Jurisdiction: "Ghana",
		Industries:   []string{"finance", "telecom", "public-sector"},
		PolicyTypes:  []string{"Privacy Policy", "Data Protection Policy"},
		Excerpt:      "The DPC guidance clarifies consent, cross-border transfers, breach notification, and appointment of data protection officers for high-risk processing.",
		Controls: []model.SourceControl{
			{
				ID:    "GH-DPC-05",
				Title: "Data subject rights workflow",
				Text:  "Controllers document workflows for acknowledging, validating, and fulfilling access, rectification, and objection requests within statutory timelines.",
				Tags:  []string{"data-rights", "workflow"},
			},
			{
				ID:    "GH-DPC-11",
				Title: "Cross-border transfer assessment",
				Text:  "Policies require adequacy assessments, contractual safeguards, and board approval before exporting personal data outside Ghana.",
				Tags:  []string{"cross-border", "governance"},
			},
		},
	},
	{
		ID:           "ico-guidance",
		Name:         "UK ICO Accountability Framework",
		Jurisdiction: "United Kingdom",
		Industries:   []string{"technology", "healthcare", "public-sector"},
		PolicyTypes:  []string{"Privacy Policy", "Data Protection Policy", "Employee Handbook"},
		Excerpt:      "The ICO accountability framework emphasizes governance reporting, DPIAs, lawful basis documentation, and staff awareness.",
		Controls: []model.SourceControl{
			{
				ID:    "ICO-A1",
				Title: "Leadership accountability",
				Text:  "Senior leadership must approve privacy policies, receive quarterly compliance reporting, and evidence resource allocation for data protection.",
				Tags:  []string{"leadership", "governance"},
			},
			{
				ID:    "ICO-T3",
				Title: "Training and awareness",
				Text:  "Policies specify onboarding and annual refresher training covering data protection principles, rights, and incident escalation.",
				Tags:  []string{"training", "privacy"},
			},
		},
	},
}
