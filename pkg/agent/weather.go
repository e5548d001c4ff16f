package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// loopState tracks the weather exchange through its bounded tool-use loop.
type loopState int

const (
	stateRequesting loopState = iota
	stateAwaitingToolResult
	stateDone
	stateFallback
)

// SearchFunc runs a web search on behalf of the model and returns the result
// text handed back as the tool result.
type SearchFunc func(ctx context.Context, query string) (string, error)

// WeatherAgent fetches a demand forecast by asking the model to look up the
// weather for the planning horizon and translate it into per-date traffic
// multipliers. The exchange is a state machine bounded by Rounds transitions;
// exhausting the budget yields a neutral signal, never a failed run.
type WeatherAgent struct {
	client Client
	search SearchFunc
	logger *slog.Logger
	rounds int
}

// NewWeatherAgent builds a WeatherAgent. A nil search falls back to a canned
// forecast summary, a nil logger to slog.Default, rounds <= 0 to 3.
func NewWeatherAgent(client Client, rounds int, search SearchFunc, logger *slog.Logger) *WeatherAgent {
	if rounds <= 0 {
		rounds = 3
	}
	if search == nil {
		search = cannedSearch
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherAgent{client: client, search: search, logger: logger, rounds: rounds}
}

// Fetch implements pipeline.ForecastProvider.
func (w *WeatherAgent) Fetch(ctx context.Context, location string, dates []string) (models.ForecastSignal, error) {
	if len(dates) == 0 {
		return models.ForecastSignal{}, nil
	}

	messages := []Message{{Role: "user", Content: w.prompt(location, dates)}}
	state := stateRequesting

	for round := 0; round < w.rounds; round++ {
		switch state {
		case stateRequesting, stateAwaitingToolResult:
			resp, err := w.client.Messages(ctx, MessagesRequest{
				Messages: messages,
				Tools:    []Tool{webSearchTool},
			})
			if err != nil {
				w.logger.Warn("weather exchange failed", "round", round, "error", err)
				state = stateFallback
				break
			}

			switch resp.StopReason {
			case "tool_use":
				messages = append(messages, Message{Role: "assistant", Content: resp.Content})
				results := w.runTools(ctx, resp.ToolUses())
				messages = append(messages, Message{Role: "user", Content: results})
				state = stateAwaitingToolResult
			default:
				signal, err := parseSignal(resp.Text(), dates)
				if err != nil {
					w.logger.Warn("could not parse forecast multipliers", "error", err)
					state = stateFallback
					break
				}
				return signal, nil
			}
		}
		if state == stateFallback {
			break
		}
	}

	w.logger.Warn("forecast exchange exhausted its round budget, assuming baseline traffic",
		"rounds", w.rounds, "location", location)
	return neutralSignal(dates), nil
}

func (w *WeatherAgent) runTools(ctx context.Context, uses []ContentBlock) []ContentBlock {
	results := make([]ContentBlock, 0, len(uses))
	for _, use := range uses {
		var input struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(use.Input, &input)

		text, err := w.search(ctx, input.Query)
		if err != nil {
			text = "search unavailable: " + err.Error()
		}
		results = append(results, ContentBlock{
			Type:      "tool_result",
			ToolUseID: use.ID,
			Content:   text,
		})
	}
	return results
}

func (w *WeatherAgent) prompt(location string, dates []string) string {
	dateRange := dates[0] + " to " + dates[len(dates)-1]
	return fmt.Sprintf(`You are a Weather Analysis Agent for a boba shop in %s.

Task: search for the weather forecast for %s and translate it into daily traffic multipliers.

Guidelines:
- Hot weather (>75F): multiplier around 1.2
- Rainy weather: multiplier around 0.7
- Mild weather: multiplier 1.0

Respond with only a JSON object of the form
{"multipliers": {"%s": 1.0, ...}}
containing one entry per date in the range.`, location, dateRange, dates[0])
}

var webSearchTool = Tool{
	Name:        "web_search",
	Description: "Search the web for weather forecasts",
	InputSchema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query",
			},
		},
		"required": []string{"query"},
	},
}

func parseSignal(text string, dates []string) (models.ForecastSignal, error) {
	var parsed struct {
		Multipliers map[string]float64 `json:"multipliers"`
	}
	text = cleanMarkdownWrapper(text)

	// The model may wrap the JSON in prose; cut to the outermost object.
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse forecast JSON: %w", err)
	}
	if len(parsed.Multipliers) == 0 {
		return nil, fmt.Errorf("no multipliers in forecast response")
	}

	signal := make(models.ForecastSignal, len(dates))
	for _, date := range dates {
		if m, ok := parsed.Multipliers[date]; ok && m > 0 {
			signal[date] = m
		}
	}
	return signal, nil
}

func neutralSignal(dates []string) models.ForecastSignal {
	signal := make(models.ForecastSignal, len(dates))
	for _, date := range dates {
		signal[date] = 1.0
	}
	return signal
}

func cannedSearch(_ context.Context, _ string) (string, error) {
	return "Next 7 days will be mostly sunny with temperatures ranging from 72-78F. " +
		"Light rain expected on day 3 and day 6. No extreme weather conditions.", nil
}
