package jobs

import (
	"context"
	"fmt"
	"time"
)

const remindersQuery = `
query {
  orders {
    id
    orderDate
    customer {
      email
    }
  }
}`

// reminderWindow is how far back an order still earns a reminder
const reminderWindow = 7 * 24 * time.Hour

// RemindersJob scans recent orders and logs a reminder line for each one
// placed within the last seven days. Filtering happens client-side so the
// job keeps working even if the server-side order filters change.
type RemindersJob struct {
	client  *Client
	logPath string
	now     func() time.Time
}

// NewRemindersJob creates a new RemindersJob
func NewRemindersJob(client *Client, logPath string) *RemindersJob {
	return &RemindersJob{client: client, logPath: logPath, now: time.Now}
}

// Name returns the job name
func (j *RemindersJob) Name() string { return "order-reminders" }

// Run scans orders and appends reminder lines
func (j *RemindersJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	cutoff := now.Add(-reminderWindow)

	var data struct {
		Orders []struct {
			ID        string    `json:"id"`
			OrderDate time.Time `json:"orderDate"`
			Customer  *struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"orders"`
	}
	if err := j.client.Execute(ctx, remindersQuery, nil, &data); err != nil {
		if logErr := appendLine(j.logPath, fmt.Sprintf("%s Failed GraphQL query: %v", now.Format(time.RFC3339), err)); logErr != nil {
			return logErr
		}
		fmt.Println("Order reminders processed!")
		return nil
	}

	reminders := 0
	for _, order := range data.Orders {
		if order.OrderDate.IsZero() || order.OrderDate.Before(cutoff) {
			continue
		}
		email := ""
		if order.Customer != nil {
			email = order.Customer.Email
		}
		line := fmt.Sprintf("%s Order ID: %s, customer_email: %s, order_date: %s",
			now.Format(time.RFC3339), order.ID, email, order.OrderDate.Format(time.RFC3339))
		if err := appendLine(j.logPath, line); err != nil {
			return err
		}
		reminders++
	}

	if reminders == 0 {
		if err := appendLine(j.logPath, fmt.Sprintf("%s No recent orders in the last 7 days", now.Format(time.RFC3339))); err != nil {
			return err
		}
	}

	fmt.Println("Order reminders processed!")
	return nil
}
