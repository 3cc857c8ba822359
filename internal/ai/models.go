package ai

// Message is a single chat turn in the OpenAI wire format.
type Message struct {
	// Role is "system", "user" or "assistant".
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type,omitempty"`
	} `json:"error,omitempty"`
}

const (
	DefaultOpenAIModel   = "gpt-3.5-turbo"
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
)
