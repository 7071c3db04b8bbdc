package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_HTML(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation junk</nav>
			<main>
				<h1>Senior Go Engineer</h1>
				<p>We build payment infrastructure for the internet.</p>
				<p>You will own services end to end.</p>
			</main>
			<footer>Footer junk</footer>
		</body>
	</html>`

	doc, err := Normalize(html, KindHTML, ProvenanceAutomated, "guest_render")
	require.NoError(t, err)
	assert.Contains(t, doc.CanonicalText, "Senior Go Engineer")
	assert.Contains(t, doc.CanonicalText, "payment infrastructure")
	assert.NotContains(t, doc.CanonicalText, "Navigation junk")
	assert.Equal(t, ProvenanceAutomated, doc.Provenance)
	assert.Equal(t, "guest_render", doc.MethodID)
}

func TestNormalize_MarkdownPassthrough(t *testing.T) {
	md := "# Staff Engineer\n\nBuild things at Acme."

	doc, err := Normalize(md, KindMarkdown, ProvenanceAutomated, "direct_endpoint")
	require.NoError(t, err)
	assert.Contains(t, doc.CanonicalText, "Staff Engineer")
	assert.Contains(t, doc.CanonicalText, "Build things at Acme.")
}

func TestNormalize_AutomatedEmptyIsError(t *testing.T) {
	_, err := Normalize("   \n\t  ", KindMarkdown, ProvenanceAutomated, "guest_render")
	require.Error(t, err)

	var normErr *Error
	assert.ErrorAs(t, err, &normErr)
}

func TestNormalize_ManualVerbatim(t *testing.T) {
	doc, err := Normalize("x", KindMarkdown, ProvenanceManual, "manual")
	require.NoError(t, err)
	assert.Equal(t, "x", doc.CanonicalText)
	assert.Equal(t, ProvenanceManual, doc.Provenance)
}

func TestCollapseWhitespace(t *testing.T) {
	in := "Line one   with\t\tspaces  \nLine two\r\n\n\n\n\nLine three"
	out := CollapseWhitespace(in)
	assert.Equal(t, "Line one with spaces\nLine two\n\nLine three", out)
}

func TestStripUINoise(t *testing.T) {
	in := "Jane Doe\n500+ connections\nExperienced engineer.\nShow more details Show less"
	out := StripUINoise(in)
	assert.NotContains(t, out, "connections")
	assert.NotContains(t, out, "Show more")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Experienced engineer.")
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe\n500+ connections\nBuilds  systems   at scale\n\n\n\nMore text",
		"# Role\nSee more blah See less\nBody   text here",
		"Plain already-normalized text\n\nSecond section",
	}

	for _, in := range inputs {
		once := StripUINoise(CollapseWhitespace(in))
		twice := StripUINoise(CollapseWhitespace(once))
		assert.Equal(t, once, twice)
	}
}

func TestExtractHints_Title(t *testing.T) {
	hints := ExtractHints("# Senior Data Engineer\nWe are hiring.")
	assert.Equal(t, "Senior Data Engineer", hints.Title)
}

func TestExtractHints_Organization(t *testing.T) {
	hints := ExtractHints("Software Engineer at Streamline Systems\nGreat role.")
	assert.Equal(t, "Streamline Systems", hints.Organization)
}

func TestExtractHints_Location(t *testing.T) {
	hints := ExtractHints("Location: Berlin, Germany\nSome description.")
	assert.Equal(t, "Berlin, Germany", hints.Location)
}

func TestExtractHints_RemoteKeyword(t *testing.T) {
	hints := ExtractHints("this is a fully Remote role with quarterly offsites")
	assert.Equal(t, "Remote", hints.Location)
}

func TestExtractHints_Defaults(t *testing.T) {
	hints := ExtractHints("nothing recognizable here whatsoever")
	assert.Equal(t, NotSpecified, hints.Organization)
	assert.Equal(t, NotSpecified, hints.Location)
	assert.Equal(t, NotSpecified, hints.Title)
}

func TestExtractHints_FirstPatternWins(t *testing.T) {
	text := "# Lead Engineer\nJob Title: Something Else\nbody"
	hints := ExtractHints(text)
	assert.Equal(t, "Lead Engineer", hints.Title)
}

func TestNormalize_LongHTMLUsesReadability(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><article><h1>Platform Engineer</h1>")
	for i := 0; i < 30; i++ {
		sb.WriteString("<p>A meaningful paragraph about the role and the team and the stack.</p>")
	}
	sb.WriteString("</article></body></html>")

	doc, err := Normalize(sb.String(), KindHTML, ProvenanceAutomated, "auth_render")
	require.NoError(t, err)
	assert.Contains(t, doc.CanonicalText, "meaningful paragraph")
}
