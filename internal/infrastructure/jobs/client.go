package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client posts GraphQL queries to the CRM endpoint. Jobs run out of process
// from the server, so they go through the public HTTP surface like any
// other client.
type Client struct {
	http     *resty.Client
	endpoint string
}

// NewClient creates a new GraphQL client for the given endpoint
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(1),
		endpoint: endpoint,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// Execute posts the query and unmarshals the data payload into out. A
// non-200 status or any GraphQL-level error is returned as an error.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	var response graphqlResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphqlRequest{Query: query, Variables: variables}).
		SetResult(&response).
		Post(c.endpoint)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("graphql endpoint returned HTTP %d", resp.StatusCode())
	}
	if len(response.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", response.Errors[0].Message)
	}
	if out != nil && response.Data != nil {
		return json.Unmarshal(response.Data, out)
	}
	return nil
}
