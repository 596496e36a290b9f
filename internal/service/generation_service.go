package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"policy-pilot-go/internal/config"
	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/pipeline"
	"policy-pilot-go/internal/repository"
	"policy-pilot-go/pkg/es"
	"policy-pilot-go/pkg/kafka"
	"policy-pilot-go/pkg/log"
	"policy-pilot-go/pkg/storage"
	"policy-pilot-go/pkg/tasks"
)

// GenerationService 负责策略生成任务的入队、执行与进度查询。
// 它同时实现了 kafka.TaskProcessor，由消费者在后台调用 Process。
type GenerationService interface {
	// StartGeneration 初始化进度快照并把任务投递到 Kafka，立即返回 runID。
	StartGeneration(ctx context.Context, req model.PipelineRequest) (string, error)
	// RunGeneration 同步执行一次完整的生成流水线，进度通过回调逐步上报。
	RunGeneration(ctx context.Context, req model.PipelineRequest, onProgress pipeline.ProgressFunc) (*model.PipelineResult, error)
	// GetProgress 查询进度快照，任务不存在时返回 (nil, nil)。
	GetProgress(ctx context.Context, runID string) (*model.GenerationRun, error)
	// Process 执行一个从 Kafka 消费到的生成任务。
	Process(ctx context.Context, task tasks.PolicyGenerationTask) error
}

type generationService struct {
	pipe         *pipeline.Pipeline
	progressRepo repository.ProgressRepository
	policyRepo   repository.PolicyRepository
}

// NewGenerationService 创建一个新的 GenerationService 实例。
func NewGenerationService(pipe *pipeline.Pipeline, progressRepo repository.ProgressRepository, policyRepo repository.PolicyRepository) GenerationService {
	return &generationService{
		pipe:         pipe,
		progressRepo: progressRepo,
		policyRepo:   policyRepo,
	}
}

func (s *generationService) StartGeneration(ctx context.Context, req model.PipelineRequest) (string, error) {
	runID := uuid.NewString()

	// 先写入 queued 状态的快照，保证前端在消费者拉起任务前就能轮询到
	run := newRunSnapshot(runID, req.TenantID)
	if err := s.progressRepo.Save(ctx, run); err != nil {
		return "", fmt.Errorf("初始化进度快照失败: %w", err)
	}

	if err := kafka.ProduceGenerationTask(tasks.PolicyGenerationTask{RunID: runID, Request: req}); err != nil {
		run.Status = model.RunError
		run.Error = "任务入队失败"
		if saveErr := s.progressRepo.Save(ctx, run); saveErr != nil {
			log.Errorf("回写入队失败状态出错: RunID=%s, Error: %v", runID, saveErr)
		}
		return "", fmt.Errorf("投递生成任务失败: %w", err)
	}

	log.Infof("生成任务已入队: RunID=%s, PolicyType=%s, Tenant=%s", runID, req.PolicyType, req.TenantID)
	return runID, nil
}

// Process 实现 kafka.TaskProcessor，由 Kafka 消费者在后台调用。
// 每次进度变迁都会同步刷新 Redis 中的快照。
func (s *generationService) Process(ctx context.Context, task tasks.PolicyGenerationTask) error {
	run := newRunSnapshot(task.RunID, task.Request.TenantID)
	run.Status = model.RunRunning
	if err := s.progressRepo.Save(ctx, run); err != nil {
		return fmt.Errorf("更新进度快照失败: %w", err)
	}

	result, err := s.pipe.Run(ctx, task.Request, func(update model.ProgressUpdate) {
		applyStepUpdate(run, update)
		if saveErr := s.progressRepo.Save(ctx, run); saveErr != nil {
			log.Warnf("刷新进度快照失败: RunID=%s, Step=%s, Error: %v", task.RunID, update.Step, saveErr)
		}
	})
	if err != nil {
		run.Status = model.RunError
		run.Error = err.Error()
		if saveErr := s.progressRepo.Save(ctx, run); saveErr != nil {
			log.Errorf("回写失败状态出错: RunID=%s, Error: %v", task.RunID, saveErr)
		}
		return err
	}

	run.Status = model.RunComplete
	run.PolicyID = result.PolicyID
	run.VersionID = result.VersionID
	if saveErr := s.progressRepo.Save(ctx, run); saveErr != nil {
		log.Errorf("回写完成状态出错: RunID=%s, Error: %v", task.RunID, saveErr)
	}

	// 归档与检索索引是尽力而为的后置动作，失败只记日志，不影响任务结果
	s.archiveAndIndex(ctx, task.Request, result)
	return nil
}

func (s *generationService) RunGeneration(ctx context.Context, req model.PipelineRequest, onProgress pipeline.ProgressFunc) (*model.PipelineResult, error) {
	result, err := s.pipe.Run(ctx, req, onProgress)
	if err != nil {
		return nil, err
	}
	s.archiveAndIndex(ctx, req, result)
	return result, nil
}

func (s *generationService) GetProgress(ctx context.Context, runID string) (*model.GenerationRun, error) {
	return s.progressRepo.Get(ctx, runID)
}

// archiveAndIndex 把定稿文档归档到 MinIO 并写入 Elasticsearch 检索索引。
// 两个客户端未初始化时跳过（纯计算场景，例如 WebSocket 本地联调）。
func (s *generationService) archiveAndIndex(ctx context.Context, req model.PipelineRequest, result *model.PipelineResult) {
	if storage.MinioClient != nil {
		objectName := fmt.Sprintf("policies/%s/%s.md", result.PolicyID, result.VersionID)
		if err := storage.UploadPolicyDocument(ctx, config.Conf.MinIO.BucketName, objectName, result.Document); err != nil {
			log.Warnf("归档策略文档失败: VersionID=%s, Error: %v", result.VersionID, err)
		} else if err := s.policyRepo.UpdateVersionObjectName(ctx, result.VersionID, objectName); err != nil {
			log.Warnf("回写归档对象名失败: VersionID=%s, Error: %v", result.VersionID, err)
		} else {
			log.Infof("策略文档已归档: %s", objectName)
		}
	}

	if es.ESClient != nil {
		doc := model.EsPolicyDocument{
			VersionID:  result.VersionID,
			PolicyID:   result.PolicyID,
			TenantID:   req.TenantID,
			PolicyType: req.PolicyType,
			Title:      fmt.Sprintf("%s (%s)", req.PolicyType, req.Jurisdiction),
			Summary:    result.Summary,
			Document:   result.Document,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := es.IndexPolicyDocument(ctx, config.Conf.Elasticsearch.IndexName, doc); err != nil {
			log.Warnf("索引策略文档失败: VersionID=%s, Error: %v", result.VersionID, err)
		} else {
			log.Infof("策略文档已写入检索索引: VersionID=%s", result.VersionID)
		}
	}
}

// newRunSnapshot 构造一个所有步骤均为 pending 的初始快照。
func newRunSnapshot(runID, tenantID string) *model.GenerationRun {
	steps := make([]model.ProgressUpdate, 0, len(pipeline.Steps))
	for _, step := range pipeline.Steps {
		steps = append(steps, model.ProgressUpdate{Step: step, Status: model.StepPending})
	}
	return &model.GenerationRun{
		RunID:    runID,
		TenantID: tenantID,
		Status:   model.RunQueued,
		Steps:    steps,
	}
}

// applyStepUpdate 把一次进度事件合并到快照的步骤列表中。
func applyStepUpdate(run *model.GenerationRun, update model.ProgressUpdate) {
	for i := range run.Steps {
		if run.Steps[i].Step == update.Step {
			run.Steps[i].Status = update.Status
			if update.Detail != "" {
				run.Steps[i].Detail = update.Detail
			}
			return
		}
	}
	run.Steps = append(run.Steps, update)
}
