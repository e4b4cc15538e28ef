package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const lowStockMutation = `
mutation {
  updateLowStockProducts {
    success
    message
    updatedProducts {
      name
      stock
    }
  }
}`

// LowStockJob invokes the restock mutation and logs which products changed
type LowStockJob struct {
	client  *Client
	logPath string
}

// NewLowStockJob creates a new LowStockJob
func NewLowStockJob(client *Client, logPath string) *LowStockJob {
	return &LowStockJob{client: client, logPath: logPath}
}

// Name returns the job name
func (j *LowStockJob) Name() string { return "low-stock" }

// Run executes the restock mutation once
func (j *LowStockJob) Run(ctx context.Context) error {
	timestamp := time.Now().Format(heartbeatTimestampLayout)

	var data struct {
		UpdateLowStockProducts struct {
			Success         bool   `json:"success"`
			Message         string `json:"message"`
			UpdatedProducts []struct {
				Name  string `json:"name"`
				Stock int    `json:"stock"`
			} `json:"updatedProducts"`
		} `json:"updateLowStockProducts"`
	}
	if err := j.client.Execute(ctx, lowStockMutation, nil, &data); err != nil {
		return appendLine(j.logPath, fmt.Sprintf("%s Low stock update failed: %v", timestamp, err))
	}

	payload := data.UpdateLowStockProducts
	if len(payload.UpdatedProducts) == 0 {
		return appendLine(j.logPath, fmt.Sprintf("%s Low stock update completed: %s", timestamp, payload.Message))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Restocked %d products", timestamp, len(payload.UpdatedProducts))
	for _, p := range payload.UpdatedProducts {
		fmt.Fprintf(&b, "\n - %s: %d", p.Name, p.Stock)
	}
	return appendLine(j.logPath, b.String())
}
