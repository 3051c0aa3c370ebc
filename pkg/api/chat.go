package api

// ChatRequest is the payload for a chat message
type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"` // reply language, defaults to English
}

// Resource is a helpline contact included in an escalation response
type Resource struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// ChatResponse is the reply envelope. Escalate is set when the safety gate
// intercepted the message; Resources is then a non-empty ordered list and
// Reply carries the fixed supportive text instead of an AI-generated one.
type ChatResponse struct {
	Reply     string     `json:"reply"`
	Escalate  bool       `json:"escalate,omitempty"`
	Resources []Resource `json:"resources,omitempty"`
}
