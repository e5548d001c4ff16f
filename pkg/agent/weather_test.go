package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	responses []*MessagesResponse
	errs      []error
	calls     int
}

func (f *fakeClient) Messages(_ context.Context, _ MessagesRequest) (*MessagesResponse, error) {
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return nil, errors.New("no more fake responses")
}

func textResponse(text string) *MessagesResponse {
	return &MessagesResponse{
		StopReason: "end_turn",
		Content:    []ContentBlock{{Type: "text", Text: text}},
	}
}

func toolUseResponse() *MessagesResponse {
	return &MessagesResponse{
		StopReason: "tool_use",
		Content: []ContentBlock{{
			Type:  "tool_use",
			ID:    "toolu_01",
			Name:  "web_search",
			Input: json.RawMessage(`{"query":"weather forecast"}`),
		}},
	}
}

var horizon = []string{"2025-09-01", "2025-09-02", "2025-09-03"}

func TestWeatherAgent_ParsesMultipliers(t *testing.T) {
	client := &fakeClient{responses: []*MessagesResponse{
		textResponse(`{"multipliers": {"2025-09-01": 1.2, "2025-09-02": 0.7, "2025-09-03": 1.0}}`),
	}}
	agent := NewWeatherAgent(client, 3, nil, nil)

	signal, err := agent.Fetch(context.Background(), "San Diego, CA", horizon)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, signal["2025-09-01"], 1e-9)
	assert.InDelta(t, 0.7, signal["2025-09-02"], 1e-9)
	assert.InDelta(t, 1.0, signal["2025-09-03"], 1e-9)
	assert.Equal(t, 1, client.calls)
}

func TestWeatherAgent_ToolUseThenAnswer(t *testing.T) {
	client := &fakeClient{responses: []*MessagesResponse{
		toolUseResponse(),
		textResponse("Based on the forecast:\n```json\n{\"multipliers\": {\"2025-09-01\": 0.7, \"2025-09-02\": 1.1, \"2025-09-03\": 1.1}}\n```"),
	}}
	agent := NewWeatherAgent(client, 3, nil, nil)

	signal, err := agent.Fetch(context.Background(), "San Diego, CA", horizon)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
	assert.InDelta(t, 0.7, signal["2025-09-01"], 1e-9)
}

func TestWeatherAgent_RoundBudgetExhaustedFallsBack(t *testing.T) {
	client := &fakeClient{responses: []*MessagesResponse{
		toolUseResponse(), toolUseResponse(), toolUseResponse(), toolUseResponse(),
	}}
	agent := NewWeatherAgent(client, 3, nil, nil)

	signal, err := agent.Fetch(context.Background(), "San Diego, CA", horizon)
	require.NoError(t, err, "running out of rounds must not fail the run")
	assert.Equal(t, 3, client.calls, "the exchange stops at its round budget")

	for _, date := range horizon {
		assert.InDelta(t, 1.0, signal[date], 1e-9, "neutral multiplier for %s", date)
	}
}

func TestWeatherAgent_TransportErrorFallsBack(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("api unreachable")}}
	agent := NewWeatherAgent(client, 3, nil, nil)

	signal, err := agent.Fetch(context.Background(), "San Diego, CA", horizon)
	require.NoError(t, err)
	for _, date := range horizon {
		assert.InDelta(t, 1.0, signal[date], 1e-9)
	}
}

func TestWeatherAgent_UnparseableAnswerFallsBack(t *testing.T) {
	client := &fakeClient{responses: []*MessagesResponse{
		textResponse("sunny all week, no numbers for you"),
	}}
	agent := NewWeatherAgent(client, 3, nil, nil)

	signal, err := agent.Fetch(context.Background(), "San Diego, CA", horizon)
	require.NoError(t, err)
	for _, date := range horizon {
		assert.InDelta(t, 1.0, signal[date], 1e-9)
	}
}

func TestWeatherAgent_SearchResultsFlowBackAsToolResults(t *testing.T) {
	searched := ""
	search := func(_ context.Context, query string) (string, error) {
		searched = query
		return "72F and sunny", nil
	}
	client := &fakeClient{responses: []*MessagesResponse{
		toolUseResponse(),
		textResponse(`{"multipliers": {"2025-09-01": 1.1, "2025-09-02": 1.1, "2025-09-03": 1.1}}`),
	}}
	agent := NewWeatherAgent(client, 3, search, nil)

	_, err := agent.Fetch(context.Background(), "San Diego, CA", horizon)
	require.NoError(t, err)
	assert.Equal(t, "weather forecast", searched)
}

func TestStaticProvider_RainOnDaysThreeAndSix(t *testing.T) {
	week := []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}
	signal, err := StaticProvider{}.Fetch(context.Background(), "anywhere", week)
	require.NoError(t, err)

	for i, date := range week {
		want := 1.1
		if i == 2 || i == 5 {
			want = 0.7
		}
		assert.InDelta(t, want, signal[date], 1e-9, "day %d", i+1)
	}
}

func TestParseSignal_IgnoresUnknownDatesAndBadValues(t *testing.T) {
	signal, err := parseSignal(`{"multipliers": {"2025-09-01": 1.2, "2099-01-01": 2.0, "2025-09-02": -1.0}}`, horizon)
	require.NoError(t, err)

	assert.InDelta(t, 1.2, signal["2025-09-01"], 1e-9)
	_, hasFuture := signal["2099-01-01"]
	assert.False(t, hasFuture, "dates outside the horizon are dropped")
	_, hasNegative := signal["2025-09-02"]
	assert.False(t, hasNegative, "non-positive multipliers are dropped")
}
