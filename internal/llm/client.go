// Package llm habla con el gateway de IA (API estilo chat completions).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Errores tipados del gateway; los handlers los mapean a 429/402.
var (
	ErrRateLimited    = errors.New("llm gateway rate limited")
	ErrQuotaExhausted = errors.New("llm gateway credits exhausted")
	ErrEmptyResponse  = errors.New("llm empty response")
)

// Client define la interfaz hacia el oraculo de criticas y puntuaciones.
type Client interface {
	// Generate pide una respuesta de texto libre (normalmente JSON en prosa).
	Generate(ctx context.Context, system, user string) (string, error)
	// GenerateWithTool fuerza una tool call y devuelve sus argumentos crudos.
	GenerateWithTool(ctx context.Context, system, user string, tool ToolSpec) (string, error)
}

// ToolSpec describe la funcion que el gateway debe invocar.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPClient implementa Client contra un gateway OpenAI-compatible.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  logger
}

// NewHTTPClient construye un cliente HTTP apuntando a la API de chat completions.
func NewHTTPClient(baseURL, apiKey, model string, log any) *HTTPClient {
	l, _ := log.(logger)
	if baseURL == "" {
		baseURL = "https://ai.gateway.lovable.dev/v1"
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  l,
	}
}

func (c *HTTPClient) Generate(ctx context.Context, system, user string) (string, error) {
	cr, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return cr.Choices[0].Message.Content, nil
}

func (c *HTTPClient) GenerateWithTool(ctx context.Context, system, user string, tool ToolSpec) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Tools: []chatTool{{
			Type: "function",
			Function: chatToolFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		}},
		ToolChoice: &chatToolChoice{
			Type:     "function",
			Function: chatToolChoiceFunction{Name: tool.Name},
		},
	}

	cr, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 || len(cr.Choices[0].Message.ToolCalls) == 0 {
		return "", ErrEmptyResponse
	}
	args := cr.Choices[0].Message.ToolCalls[0].Function.Arguments
	if strings.TrimSpace(args) == "" {
		return "", ErrEmptyResponse
	}
	return args, nil
}

func (c *HTTPClient) complete(ctx context.Context, reqBody chatRequest) (chatResponse, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return chatResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return chatResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return chatResponse{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return chatResponse{}, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return chatResponse{}, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return chatResponse{}, ErrQuotaExhausted
	case resp.StatusCode >= 400:
		if c.logger != nil {
			c.logger.Printf("llm error status %d: %s", resp.StatusCode, string(respBody))
		}
		return chatResponse{}, fmt.Errorf("llm http error: status=%d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return chatResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if cr.Error != nil {
		return chatResponse{}, fmt.Errorf("llm api error: %s", cr.Error.Message)
	}
	return cr, nil
}

type chatRequest struct {
	Model      string          `json:"model"`
	Messages   []chatMessage   `json:"messages"`
	Tools      []chatTool      `json:"tools,omitempty"`
	ToolChoice *chatToolChoice `json:"tool_choice,omitempty"`
}

type chatMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`
}

type chatTool struct {
	Type     string           `json:"type"`
	Function chatToolFunction `json:"function"`
}

type chatToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

type chatToolChoice struct {
	Type     string                 `json:"type"`
	Function chatToolChoiceFunction `json:"function"`
}

type chatToolChoiceFunction struct {
	Name string `json:"name"`
}

type chatToolCall struct {
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
