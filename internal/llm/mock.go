package llm

import "context"

// MockClient permite tests sin llamar a un gateway real.
type MockClient struct {
	Response string
	ToolArgs string
	Err      error

	LastSystem string
	LastUser   string
	LastTool   string
}

func (m *MockClient) Generate(ctx context.Context, system, user string) (string, error) {
	m.LastSystem, m.LastUser = system, user
	return m.Response, m.Err
}

func (m *MockClient) GenerateWithTool(ctx context.Context, system, user string, tool ToolSpec) (string, error) {
	m.LastSystem, m.LastUser, m.LastTool = system, user, tool.Name
	return m.ToolArgs, m.Err
}
