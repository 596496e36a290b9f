package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"policy-pilot-go/internal/service"
	"policy-pilot-go/pkg/log"
)

// NotificationHandler 结构体定义了通知相关的处理器。
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler 创建一个新的 NotificationHandler 实例。
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List 返回当前用户的全部通知，按创建时间降序。
func (h *NotificationHandler) List(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), claims.TenantID, claims.UserID)
	if err != nil {
		log.Errorf("[NotificationHandler] 查询通知列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询通知列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": notifications, "message": "success"})
}

// MarkRead 把单条通知标记为已读。
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		log.Errorf("[NotificationHandler] 标记通知已读失败: ID=%s, Error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "标记已读失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": nil, "message": "success"})
}
