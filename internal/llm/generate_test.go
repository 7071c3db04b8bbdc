package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverLetter(t *testing.T) {
	client := &fakeClient{response: "Dear hiring team at Initech, ..."}
	generator := NewGenerator(client)

	letter, err := generator.CoverLetter(context.Background(), sampleResume(), sampleJob(),
		"Initech builds workflow software.", "Strong fit on core skills.")
	require.NoError(t, err)

	assert.NotEmpty(t, letter)
	require.Len(t, client.tiers, 1)
	assert.Equal(t, TierAdvanced, client.tiers[0])
	assert.Contains(t, client.prompts[0], "Initech builds workflow software.")
	assert.Contains(t, client.prompts[0], "Strong fit on core skills.")
}

func TestCoverLetterFillsMissingContext(t *testing.T) {
	client := &fakeClient{response: "Dear hiring team, ..."}
	generator := NewGenerator(client)

	_, err := generator.CoverLetter(context.Background(), sampleResume(), sampleJob(), "", "")
	require.NoError(t, err)

	assert.Contains(t, client.prompts[0], "Not specified")
	assert.NotContains(t, client.prompts[0], "{{.CompanyInfo}}")
}

func TestRecruiterMessage(t *testing.T) {
	client := &fakeClient{response: "Hi Jordan, I saw the Senior Backend Engineer opening..."}
	generator := NewGenerator(client)

	message, err := generator.RecruiterMessage(context.Background(), sampleResume(), sampleJob(),
		"Jordan leads platform recruiting.")
	require.NoError(t, err)

	assert.NotEmpty(t, message)
	assert.Equal(t, TierAdvanced, client.tiers[0])
	assert.Contains(t, client.prompts[0], "Jordan leads platform recruiting.")
}

func TestRecruiterMessageClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("model unavailable")}
	generator := NewGenerator(client)

	_, err := generator.RecruiterMessage(context.Background(), sampleResume(), sampleJob(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "model unavailable")
}
