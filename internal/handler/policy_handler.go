// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/service"
	"policy-pilot-go/pkg/log"
	"policy-pilot-go/pkg/token"
)

// PolicyHandler 结构体定义了策略生成与查询相关的处理器。
type PolicyHandler struct {
	generationService service.GenerationService
	policyService     service.PolicyService
}

// NewPolicyHandler 创建一个新的 PolicyHandler 实例。
func NewPolicyHandler(generationService service.GenerationService, policyService service.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		generationService: generationService,
		policyService:     policyService,
	}
}

// claimsFromContext 取出认证中间件写入的令牌声明。
func claimsFromContext(c *gin.Context) (*token.CustomClaims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.CustomClaims)
	return claims, ok
}

// Generate 受理一次异步生成请求，立即返回 runId 供前端轮询进度。
func (h *PolicyHandler) Generate(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	var req model.GeneratePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("[PolicyHandler] 生成请求参数无效: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	pipelineReq := model.PipelineRequest{
		TenantID:     claims.TenantID,
		TenantName:   claims.TenantName,
		UserID:       claims.UserID,
		PolicyType:   req.PolicyType,
		Industry:     req.Industry,
		Jurisdiction: req.Jurisdiction,
		BusinessSize: req.BusinessSize,
		ProfileID:    req.ProfileID,
	}

	runID, err := h.generationService.StartGeneration(c.Request.Context(), pipelineReq)
	if err != nil {
		log.Errorf("[PolicyHandler] 生成任务入队失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成任务入队失败"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"code": 202, "data": gin.H{"runId": runID}, "message": "accepted"})
}

// GetProgress 返回一次生成任务的进度快照。
func (h *PolicyHandler) GetProgress(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	runID := c.Param("runId")
	run, err := h.generationService.GetProgress(c.Request.Context(), runID)
	if err != nil {
		log.Errorf("[PolicyHandler] 查询进度失败: RunID=%s, Error: %v", runID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询进度失败"})
		return
	}
	if run == nil || run.TenantID != claims.TenantID {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": run, "message": "success"})
}

// ListPolicies 返回当前租户的全部策略。
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	policies, err := h.policyService.ListPolicies(c.Request.Context(), claims.TenantID)
	if err != nil {
		log.Errorf("[PolicyHandler] 查询策略列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询策略列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": policies, "message": "success"})
}

// GetPolicy 返回单个策略及其当前版本快照。
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	policy, err := h.policyService.GetPolicy(c.Request.Context(), claims.TenantID, c.Param("id"))
	if err != nil {
		log.Errorf("[PolicyHandler] 查询策略失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询策略失败"})
		return
	}
	if policy == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "策略不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": policy, "message": "success"})
}

// ListVersions 返回一个策略的全部版本，按版本号降序。
func (h *PolicyHandler) ListVersions(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	versions, err := h.policyService.ListVersions(c.Request.Context(), claims.TenantID, c.Param("id"))
	if err != nil {
		log.Errorf("[PolicyHandler] 查询版本列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询版本列表失败"})
		return
	}
	if versions == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "策略不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": versions, "message": "success"})
}

// Download 为已归档的策略版本签发一个带时效的下载链接。
func (h *PolicyHandler) Download(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	versionID := c.Param("versionId")
	url, err := h.policyService.GetDownloadURL(c.Request.Context(), claims.TenantID, versionID)
	if errors.Is(err, service.ErrNotArchived) {
		c.JSON(http.StatusConflict, gin.H{"error": "策略版本尚未归档"})
		return
	}
	if err != nil {
		log.Errorf("[PolicyHandler] 生成下载链接失败: VersionID=%s, Error: %v", versionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成下载链接失败"})
		return
	}
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "策略版本不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": gin.H{"url": url}, "message": "success"})
}
