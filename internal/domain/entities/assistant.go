package entities

import "strings"

// ResponseFormat selects free text or schema-constrained JSON from the text generator.
type ResponseFormat string

const (
	ResponseFormatText       ResponseFormat = "text"
	ResponseFormatJSONSchema ResponseFormat = "json-schema"
)

// TextGenerationRequest is the prompt sent to the text-generation collaborator.
// Schema is only used with ResponseFormatJSONSchema.
type TextGenerationRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       *float64
	ResponseFormat    ResponseFormat
	Schema            map[string]any
	WithSearch        bool
}

// Source is a web reference that grounded a generated answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type TextGenerationResponse struct {
	Text    string
	Sources []Source
}

// ChatReply is the assistant answer shown in the chat transcript.
// Fallback is set when the collaborator failed and Text is a canned message.
type ChatReply struct {
	Text     string   `json:"text"`
	Sources  []Source `json:"sources,omitempty"`
	Fallback bool     `json:"fallback"`
}

type FollowUpPriority string

const (
	FollowUpPriorityAlta  FollowUpPriority = "Alta"
	FollowUpPriorityMedia FollowUpPriority = "Média"
	FollowUpPriorityBaixa FollowUpPriority = "Baixa"
)

func (p FollowUpPriority) Valid() bool {
	switch p {
	case FollowUpPriorityAlta, FollowUpPriorityMedia, FollowUpPriorityBaixa:
		return true
	}
	return false
}

// ParseFollowUpPriority also accepts the unaccented "Media" some models emit.
func ParseFollowUpPriority(raw string) (FollowUpPriority, bool) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "media") {
		return FollowUpPriorityMedia, true
	}
	for _, p := range []FollowUpPriority{FollowUpPriorityAlta, FollowUpPriorityMedia, FollowUpPriorityBaixa} {
		if strings.EqualFold(raw, string(p)) {
			return p, true
		}
	}
	return "", false
}

// FollowUpAction is an AI-suggested follow-up step for a patient.
type FollowUpAction struct {
	Action      string           `json:"action"`
	Priority    FollowUpPriority `json:"priority"`
	Description string           `json:"description"`
}
