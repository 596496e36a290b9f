package pipeline

import "policy-pilot-go/internal/model"

// fallbackTemplateCount 是模板无命中时取用的兜底模板数量。
const fallbackTemplateCount = 3

// BuildControlMappings 解析指定策略类型所需的控制项集合。
// 若没有任何模板适用，则取模板库的前三条并把适用类型改写为当前策略类型，
// 保证下游永远拿到非空的控制项列表。返回的都是副本，不会改动模板库本身。
func BuildControlMappings(templates []model.ControlMapping, policyType string) []model.ControlMapping {
	var mapped []model.ControlMapping
	for _, tpl := range templates {
		for _, pt := range tpl.PolicyTypes {
			if pt == policyType {
				mapped = append(mapped, tpl)
				break
			}
		}
	}
	if len(mapped) > 0 {
		return mapped
	}

	// 兜底：模板覆盖不足时复用前几条模板
	count := fallbackTemplateCount
	if count > len(templates) {
		count = len(templates)
	}
	fallback := make([]model.ControlMapping, 0, count)
	for _, tpl := range templates[:count] {
		tpl.PolicyTypes = []string{policyType}
		fallback = append(fallback, tpl)
	}
	return fallback
}
