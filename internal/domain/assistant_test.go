package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantUsage_Add(t *testing.T) {
	a := AssistantUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	b := AssistantUsage{PromptTokens: 20, CompletionTokens: 7, TotalTokens: 27}

	assert.Equal(t, AssistantUsage{PromptTokens: 30, CompletionTokens: 12, TotalTokens: 42}, a.Add(b))
	assert.Equal(t, a, a.Add(AssistantUsage{}))
}

func TestChatRole_IsValid(t *testing.T) {
	for _, r := range []ChatRole{ChatRole_User, ChatRole_Assistant, ChatRole_System, ChatRole_Tool} {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, ChatRole("developer").IsValid())
}
