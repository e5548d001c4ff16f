package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Analyst generates owner-facing commentary over structured pipeline data.
// It implements pipeline.CommentaryGenerator.
type Analyst struct {
	client Client
}

// NewAnalyst builds an Analyst on the given transport.
func NewAnalyst(client Client) *Analyst {
	return &Analyst{client: client}
}

// Summarize renders data as JSON and asks the model for a short analysis
// answering the owner's query.
func (a *Analyst) Summarize(ctx context.Context, data any, query string) (string, error) {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis data: %w", err)
	}

	prompt := fmt.Sprintf(`You are a Data Analyst Agent for a boba shop. Analyze the following data and provide insights.

Data:
%s

Business Owner Query: %s

Provide a concise analysis of:
1. Peak hours by day
2. Recommended staffing levels (orders per hour / 15 = staff needed)
3. Key patterns and trends

Keep the response under 200 words.`, encoded, query)

	resp, err := a.client.Messages(ctx, MessagesRequest{
		System:   "You are a retail operations analyst. Respond with plain prose, no markdown.",
		Messages: []Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
