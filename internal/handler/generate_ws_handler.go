package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/service"
	"policy-pilot-go/pkg/log"
	"policy-pilot-go/pkg/token"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源
	},
}

// wsFrame 是推送给前端的 WebSocket 消息帧。
// type 为 progress/result/error 三种之一。
type wsFrame struct {
	Type      string      `json:"type"`
	Step      string      `json:"step,omitempty"`
	Status    string      `json:"status,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// GenerateWsHandler 负责处理 WebSocket 生成连接。
// 与异步入队不同，它在连接内同步执行流水线并实时推送每个步骤的状态。
type GenerateWsHandler struct {
	generationService service.GenerationService
	jwtManager        *token.JWTManager
}

// NewGenerateWsHandler 创建一个新的 GenerateWsHandler。
func NewGenerateWsHandler(generationService service.GenerationService, jwtManager *token.JWTManager) *GenerateWsHandler {
	return &GenerateWsHandler{
		generationService: generationService,
		jwtManager:        jwtManager,
	}
}

// Handle 处理一个传入的 WebSocket 连接。
// 客户端发送一条 JSON 生成请求，服务端依次推送进度帧，最后推送结果帧并关闭。
func (h *GenerateWsHandler) Handle(c *gin.Context) {
	tokenString := c.Param("token")
	claims, err := h.jwtManager.VerifyToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "无效的 token", "data": nil})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket 升级失败", err)
		return
	}
	defer conn.Close()

	log.Infof("WebSocket 连接已建立, 租户: %s, 用户: %s", claims.TenantID, claims.UserID)

	var req model.GeneratePolicyRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Warnf("读取 WebSocket 生成请求失败: %v", err)
		writeFrame(conn, wsFrame{Type: "error", Message: "无效的生成请求"})
		return
	}
	if req.PolicyType == "" || req.Industry == "" || req.Jurisdiction == "" {
		writeFrame(conn, wsFrame{Type: "error", Message: "policyType/industry/jurisdiction 均为必填"})
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

	// 流水线的进度回调是同步的，这里直接逐帧写回即可
	result, err := h.generationService.RunGeneration(c.Request.Context(), pipelineReq, func(update model.ProgressUpdate) {
		writeFrame(conn, wsFrame{
			Type:   "progress",
			Step:   update.Step,
			Status: update.Status,
			Detail: update.Detail,
		})
	})
	if err != nil {
		log.Errorf("WebSocket 生成失败: %v", err)
		writeFrame(conn, wsFrame{Type: "error", Message: "策略生成失败"})
		return
	}

	writeFrame(conn, wsFrame{Type: "result", Data: result})
	log.Infof("WebSocket 生成完毕, policyId=%s", result.PolicyID)
}

// writeFrame 写出一帧消息，写失败只记日志，连接随后会自然关闭。
func writeFrame(conn *websocket.Conn, frame wsFrame) {
	frame.Timestamp = time.Now().UnixMilli()
	if err := conn.WriteJSON(frame); err != nil {
		log.Warnf("写出 WebSocket 消息失败: %v", err)
	}
}
