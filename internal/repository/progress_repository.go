package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"policy-pilot-go/internal/model"
)

// 进度快照在 Redis 中的保留时长。
const runProgressTTL = 24 * time.Hour

// ProgressRepository 定义了生成任务进度快照的存取接口。
type ProgressRepository interface {
	Save(ctx context.Context, run *model.GenerationRun) error
	Get(ctx context.Context, runID string) (*model.GenerationRun, error)
}

type redisProgressRepository struct {
	redisClient *redis.Client
}

// NewProgressRepository 创建一个新的 ProgressRepository 实例。
func NewProgressRepository(redisClient *redis.Client) ProgressRepository {
	return &redisProgressRepository{redisClient: redisClient}
}

func runKey(runID string) string {
	return fmt.Sprintf("genrun:%s", runID)
}

// Save 把进度快照整体写入 Redis 并刷新过期时间。
func (r *redisProgressRepository) Save(ctx context.Context, run *model.GenerationRun) error {
	run.UpdatedAt = time.Now()
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("序列化进度快照失败: %w", err)
	}
	if err := r.redisClient.Set(ctx, runKey(run.RunID), data, runProgressTTL).Err(); err != nil {
		return fmt.Errorf("写入进度快照失败: %w", err)
	}
	return nil
}

// Get 读取进度快照，任务不存在时返回 (nil, nil)。
func (r *redisProgressRepository) Get(ctx context.Context, runID string) (*model.GenerationRun, error) {
	data, err := r.redisClient.Get(ctx, runKey(runID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取进度快照失败: %w", err)
	}
	var run model.GenerationRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("解析进度快照失败: %w", err)
	}
	return &run, nil
}
