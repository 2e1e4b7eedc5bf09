package services

import (
	"context"
	"sync"
	"time"

	"google.golang.org/genai"
)

// The fakes below stand in for collaborators declared in this package.
// The generated mocks in service_mocks cannot be used here: they import
// this package for CircuitBreakerState, which would make the in-package
// tests an import cycle.

// fakeProber reports a fixed reachability result.
type fakeProber struct {
	name string
	up   bool
}

func (p *fakeProber) Name() string                 { return p.name }
func (p *fakeProber) Probe(_ context.Context) bool { return p.up }

// fakeMetrics records every call so tests can assert on what was emitted.
type fakeMetrics struct {
	mu             sync.Mutex
	chatOutcomes   []string
	toolExecutions map[string][]string
	probes         map[string][]bool
	turns          map[string][]string
	breakerStates  []CircuitBreakerState
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		toolExecutions: make(map[string][]string),
		probes:         make(map[string][]bool),
		turns:          make(map[string][]string),
	}
}

func (m *fakeMetrics) RecordChatRequest(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatOutcomes = append(m.chatOutcomes, outcome)
}

func (m *fakeMetrics) RecordToolExecution(tool, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toolExecutions[tool] = append(m.toolExecutions[tool], outcome)
}

func (m *fakeMetrics) RecordStoreProbe(store string, reachable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probes[store] = append(m.probes[store], reachable)
}

func (m *fakeMetrics) RecordAssistantTurn(turn, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns[turn] = append(m.turns[turn], outcome)
}

func (m *fakeMetrics) SetCircuitBreakerState(state CircuitBreakerState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakerStates = append(m.breakerStates, state)
}

// fakeGenerator plays back queued responses, recording each request.
type fakeGenerator struct {
	responses []*genai.GenerateContentResponse
	errs      []error
	requests  [][]*genai.Content
	configs   []*genai.GenerateContentConfig
}

func (g *fakeGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.requests = append(g.requests, contents)
	g.configs = append(g.configs, config)

	turn := len(g.requests) - 1
	if turn < len(g.errs) && g.errs[turn] != nil {
		return nil, g.errs[turn]
	}
	if turn < len(g.responses) {
		return g.responses[turn], nil
	}
	return &genai.GenerateContentResponse{}, nil
}

// textResponse builds a response carrying only model text.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

// toolCallResponse builds a response carrying a single function call.
func toolCallResponse(name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role: "model",
					Parts: []*genai.Part{
						{FunctionCall: &genai.FunctionCall{Name: name, Args: args}},
					},
				},
			},
		},
	}
}
