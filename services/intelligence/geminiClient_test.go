// File: services/intelligence/geminiClient_test.go
package ai

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFromResponseJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Take "), genai.Text("two tablets.")},
			},
		}},
	}

	text, err := textFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Take two tablets.", text)
}

func TestTextFromResponseNoCandidates(t *testing.T) {
	_, err := textFromResponse(&genai.GenerateContentResponse{})
	require.Error(t, err)
}

func TestTextFromResponseNilContent(t *testing.T) {
	// Safety-blocked responses carry a candidate with no content.
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	_, err := textFromResponse(resp)
	require.Error(t, err)
}
