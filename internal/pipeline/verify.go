package pipeline

import "policy-pilot-go/internal/model"

// VerifyControls 计算已映射控制项的覆盖情况。
// 每个控制项要么进入 Covered（至少一个章节引用它），要么进入 Missing，
// 二者互斥且并集为全部控制项。
func VerifyControls(controls []model.ControlMapping, sections []model.PolicyDraftSection) model.ControlCoverage {
	coverage := model.ControlCoverage{
		Covered:           []string{},
		Missing:           []string{},
		CoverageByControl: make(map[string]model.ControlCoverageEntry, len(controls)),
	}

	for _, control := range controls {
		var coveringTitles []string
		for _, section := range sections {
			if containsString(section.ControlsCovered, control.ID) {
				coveringTitles = append(coveringTitles, section.Title)
			}
		}

		if len(coveringTitles) > 0 {
			coverage.Covered = append(coverage.Covered, control.ID)
			coverage.CoverageByControl[control.ID] = model.ControlCoverageEntry{
				Status:   model.CoverageCovered,
				Sections: coveringTitles,
			}
		} else {
			coverage.Missing = append(coverage.Missing, control.ID)
			coverage.CoverageByControl[control.ID] = model.ControlCoverageEntry{
				Status:   model.CoverageMissing,
				Sections: []string{},
			}
		}
	}

	return coverage
}
