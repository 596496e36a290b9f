// Package tasks defines the structure for tasks that are sent to Kafka.
package tasks

import "policy-pilot-go/internal/model"

// PolicyGenerationTask represents the data structure for an asynchronous
// policy generation job.
type PolicyGenerationTask struct {
	RunID   string                `json:"run_id"`
	Request model.PipelineRequest `json:"request"`
}
