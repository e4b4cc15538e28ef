package jobs

import (
	"context"
	"fmt"
	"time"
)

const heartbeatTimestampLayout = "02/01/2006-15:04:05"

// HeartbeatJob appends a liveness line every run, checking the GraphQL
// endpoint with the hello query. A failed check still logs a line; the
// heartbeat itself must never go silent.
type HeartbeatJob struct {
	client  *Client
	logPath string
}

// NewHeartbeatJob creates a new HeartbeatJob
func NewHeartbeatJob(client *Client, logPath string) *HeartbeatJob {
	return &HeartbeatJob{client: client, logPath: logPath}
}

// Name returns the job name
func (j *HeartbeatJob) Name() string { return "heartbeat" }

// Run performs one heartbeat check
func (j *HeartbeatJob) Run(ctx context.Context) error {
	timestamp := time.Now().Format(heartbeatTimestampLayout)

	var data struct {
		Hello string `json:"hello"`
	}
	err := j.client.Execute(ctx, "{ hello }", nil, &data)

	var line string
	switch {
	case err != nil:
		line = fmt.Sprintf("%s CRM is alive — GraphQL check failed: %v", timestamp, err)
	case data.Hello == "":
		line = fmt.Sprintf("%s CRM is alive — GraphQL returned unexpected payload", timestamp)
	default:
		line = fmt.Sprintf("%s CRM is alive — GraphQL OK", timestamp)
	}

	return appendLine(j.logPath, line)
}
