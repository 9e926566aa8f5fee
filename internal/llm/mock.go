package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Guarda el ultimo prompt recibido.
type MockClient struct {
	Response   string
	Err        error
	LastSystem string
	LastPrompt string
	Calls      int
}

func (m *MockClient) Generate(_ context.Context, system, prompt string) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastPrompt = prompt
	return m.Response, m.Err
}
