// Package service 提供了搜索相关的业务逻辑。
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"

	"policy-pilot-go/internal/config"
	"policy-pilot-go/internal/model"
	"policy-pilot-go/pkg/log"
)

// SearchService 接口定义了策略全文检索操作。
type SearchService interface {
	SearchPolicies(ctx context.Context, query string, topK int, tenantID, policyType string) ([]model.PolicySearchResult, error)
}

type searchService struct {
	esClient *elasticsearch.Client
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(esClient *elasticsearch.Client) SearchService {
	return &searchService{esClient: esClient}
}

// SearchPolicies 在当前租户已定稿的策略版本中做全文检索。
// 标题命中权重最高，其次是摘要，正文兜底；policyType 非空时附加精确过滤。
func (s *searchService) SearchPolicies(ctx context.Context, query string, topK int, tenantID, policyType string) ([]model.PolicySearchResult, error) {
	log.Infof("[SearchService] 开始检索策略, query: '%s', topK: %d, tenant: %s", query, topK, tenantID)

	// 1. 构建查询：must 为多字段匹配，filter 限定租户（及可选的策略类型）
	filters := []map[string]interface{}{
		{"term": map[string]interface{}{"tenant_id": tenantID}},
	}
	if policyType != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"policy_type": policyType},
		})
	}

	esQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"title^3", "summary^2", "document"},
					},
				},
				"filter": filters,
			},
		},
		"size": topK,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(esQuery); err != nil {
		log.Errorf("[SearchService] 序列化 Elasticsearch 查询失败: %v", err)
		return nil, fmt.Errorf("failed to encode es query: %w", err)
	}

	// 2. 执行搜索
	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(config.Conf.Elasticsearch.IndexName),
		s.esClient.Search.WithBody(&buf),
		s.esClient.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		log.Errorf("[SearchService] 向 Elasticsearch 发送搜索请求失败: %v", err)
		return nil, fmt.Errorf("elasticsearch search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		log.Errorf("[SearchService] Elasticsearch 返回错误, status: %s, body: %s", res.Status(), string(bodyBytes))
		return nil, fmt.Errorf("elasticsearch returned an error: %s", res.String())
	}

	// 3. 解析结果
	var esResponse struct {
		Hits struct {
			Hits []struct {
				Source model.EsPolicyDocument `json:"_source"`
				Score  float64                `json:"_score"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResponse); err != nil {
		log.Errorf("[SearchService] 解析 Elasticsearch 响应失败: %v", err)
		return nil, fmt.Errorf("failed to decode es response: %w", err)
	}

	results := make([]model.PolicySearchResult, 0, len(esResponse.Hits.Hits))
	for _, hit := range esResponse.Hits.Hits {
		results = append(results, model.PolicySearchResult{
			PolicyID:   hit.Source.PolicyID,
			VersionID:  hit.Source.VersionID,
			PolicyType: hit.Source.PolicyType,
			Title:      hit.Source.Title,
			Summary:    hit.Source.Summary,
			Score:      hit.Score,
			CreatedAt:  hit.Source.CreatedAt,
		})
	}

	log.Infof("[SearchService] 检索完毕, query: '%s', 返回 %d 条结果", query, len(results))
	return results, nil
}
