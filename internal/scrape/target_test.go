package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTargetJob(t *testing.T) {
	target, err := NewTarget("https://www.linkedin.com/jobs/view/3987654321/", KindJob)
	require.NoError(t, err)
	assert.Equal(t, KindJob, target.Kind)
	assert.Equal(t, "www.linkedin.com", target.Host())
}

func TestNewTargetJobFromSearchURL(t *testing.T) {
	_, err := NewTarget("https://www.linkedin.com/jobs/search/?currentJobId=3987654321&keywords=go", KindJob)
	assert.NoError(t, err)
}

func TestNewTargetJobWithoutID(t *testing.T) {
	_, err := NewTarget("https://www.linkedin.com/jobs/search/?keywords=go", KindJob)
	var invalidErr *InvalidTargetError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, KindJob, invalidErr.Kind)
}

func TestNewTargetCompany(t *testing.T) {
	_, err := NewTarget("https://www.linkedin.com/company/initech/about/", KindCompany)
	assert.NoError(t, err)

	_, err = NewTarget("https://www.linkedin.com/in/someone/", KindCompany)
	assert.Error(t, err)
}

func TestNewTargetProfile(t *testing.T) {
	_, err := NewTarget("https://www.linkedin.com/in/jane-doe-12345/", KindProfile)
	assert.NoError(t, err)

	_, err = NewTarget("https://www.linkedin.com/company/initech/", KindProfile)
	assert.Error(t, err)
}

func TestNewTargetRejectsRelativeURL(t *testing.T) {
	_, err := NewTarget("/jobs/view/123", KindJob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an absolute URL")
}

func TestJobID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "view path", url: "https://www.linkedin.com/jobs/view/1234567890", want: "1234567890"},
		{name: "view path with slug", url: "https://www.linkedin.com/jobs/view/1234567890/?refId=abc", want: "1234567890"},
		{name: "query param", url: "https://www.linkedin.com/jobs/search/?currentJobId=987654", want: "987654"},
		{name: "path wins over query", url: "https://www.linkedin.com/jobs/view/111?currentJobId=222", want: "111"},
		{name: "no id", url: "https://www.linkedin.com/jobs/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JobID(tt.url))
		})
	}
}
