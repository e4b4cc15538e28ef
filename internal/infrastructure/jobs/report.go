package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const reportQuery = `
query {
  allCustomers {
    id
  }
  allOrders {
    id
    totalAmount
  }
}`

// ReportJob aggregates customer count, order count and total revenue and
// appends one summary line per run
type ReportJob struct {
	client  *Client
	logPath string
}

// NewReportJob creates a new ReportJob
func NewReportJob(client *Client, logPath string) *ReportJob {
	return &ReportJob{client: client, logPath: logPath}
}

// Name returns the job name
func (j *ReportJob) Name() string { return "report" }

// Run generates one report line
func (j *ReportJob) Run(ctx context.Context) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	var data struct {
		AllCustomers []struct {
			ID string `json:"id"`
		} `json:"allCustomers"`
		AllOrders []struct {
			ID          string `json:"id"`
			TotalAmount string `json:"totalAmount"`
		} `json:"allOrders"`
	}
	if err := j.client.Execute(ctx, reportQuery, nil, &data); err != nil {
		return appendLine(j.logPath, fmt.Sprintf("%s - Report generation failed: %v", timestamp, err))
	}

	revenue := decimal.Zero
	for _, order := range data.AllOrders {
		amount, err := decimal.NewFromString(order.TotalAmount)
		if err != nil {
			continue
		}
		revenue = revenue.Add(amount)
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		timestamp, len(data.AllCustomers), len(data.AllOrders), revenue.String())
	return appendLine(j.logPath, line)
}
