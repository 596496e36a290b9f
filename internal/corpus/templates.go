package corpus

import "policy-pilot-go/internal/model"

// ControlTemplates 是内置的控制项模板库，策略类型与控制项为多对多关系。
var ControlTemplates = []model.ControlMapping{
	{
		ID:          "CTRL-ACCESS-01",
		Title:       "Role-based access enforcement",
		Description: "Define how identities are provisioned, reviewed quarterly, and revoked when staff separate.",
		Framework:   "NIST-CSF PR.AC / CIS 5",
		PolicyTypes: []string{"Information Security Policy", "Acceptable Use Policy", "Employee Handbook"},
		Tags:        []string{"access-control", "identity"},
	},
	{
		ID:          "CTRL-INCIDENT-02",
		Title:       "Incident escalation and communication",
		Description: "Outline thresholds for incident declaration, responder roles, regulator notifications, and post-incident reporting.",
		Framework:   "NIST-RS.MI / CIS 17",
		PolicyTypes: []string{"Incident Response Policy", "Information Security Policy"},
		Tags:        []string{"incident-response"},
	},
	{
		ID:          "CTRL-PRIVACY-03",
		Title:       "Data subject rights fulfillment",
		Description: "Describe intake channels, validation steps, and service-level targets for privacy rights requests.",
		Framework:   "Ghana DPC / UK ICO",
		PolicyTypes: []string{"Privacy Policy", "Data Protection Policy"},
		Tags:        []string{"privacy", "data-rights"},
	},
	{
		ID:          "CTRL-SAFETY-04",
		Title:       "Hazard communication",
		Description: "Document how employees receive safety data sheets, labeling standards, and training frequency.",
		Framework:   "OSHA 1910.1200",
		PolicyTypes: []string{"Health and Safety Policy", "Employee Handbook"},
		Tags:        []string{"safety"},
	},
	{
		ID:          "CTRL-TRAINING-05",
		Title:       "Mandatory compliance training",
		Description: "Clarify required courses, cadence, tracking responsibilities, and consequences for overdue training.",
		Framework:   "CIS 14 / ICO-T3",
		PolicyTypes: []string{"Employee Handbook", "Information Security Policy", "Data Protection Policy"},
		Tags:        []string{"training"},
	},
}
