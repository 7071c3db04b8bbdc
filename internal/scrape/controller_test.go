package scrape

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/identity"
	"github.com/jonathan/recruiter-agent/internal/normalize"
)

// stubStrategy records invocations and returns a canned result.
type stubStrategy struct {
	id      string
	applies bool
	result  AttemptResult
	calls   int
}

func (s *stubStrategy) ID() string          { return s.id }
func (s *stubStrategy) Applies(Target) bool { return s.applies }
func (s *stubStrategy) Fetch(context.Context, Target, identity.Identity) AttemptResult {
	s.calls++
	return s.result
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.StrategyDelayMin = 0
	cfg.StrategyDelayMax = 0
	return cfg
}

func testController(strategies ...Strategy) *Controller {
	return NewController(testConfig(), strategies, identity.NewPool(), zap.NewNop())
}

func jobTarget(t *testing.T) Target {
	t.Helper()
	target, err := NewTarget("https://www.linkedin.com/jobs/view/1234567890", KindJob)
	require.NoError(t, err)
	return target
}

func longText(n int) string {
	return strings.Repeat("job description content ", n/24+1)[:n]
}

func success(id, content string) AttemptResult {
	return AttemptResult{
		Succeeded:   true,
		Content:     content,
		ContentKind: normalize.KindMarkdown,
		MethodID:    id,
	}
}

func TestResolveFirstStrategyWins(t *testing.T) {
	first := &stubStrategy{id: MethodAuthRender, applies: true, result: success(MethodAuthRender, longText(300))}
	second := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}

	result := testController(first, second).Resolve(context.Background(), jobTarget(t))

	require.True(t, result.Succeeded())
	assert.Equal(t, MethodAuthRender, result.Success.MethodID)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later strategies must not run after a success")
}

func TestResolveEscalatesInRankOrder(t *testing.T) {
	var order []string
	strategies := []Strategy{
		&recordingStrategy{id: "a", order: &order},
		&recordingStrategy{id: "b", order: &order},
		&recordingStrategy{id: "c", order: &order},
	}

	result := testController(strategies...).Resolve(context.Background(), jobTarget(t))

	require.False(t, result.Succeeded())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

type recordingStrategy struct {
	id    string
	order *[]string
}

func (s *recordingStrategy) ID() string          { return s.id }
func (s *recordingStrategy) Applies(Target) bool { return true }
func (s *recordingStrategy) Fetch(context.Context, Target, identity.Identity) AttemptResult {
	*s.order = append(*s.order, s.id)
	return failure(s.id, ReasonBlocked)
}

func TestResolveNoRetryWithinStrategy(t *testing.T) {
	failing := &stubStrategy{id: MethodAuthRender, applies: true, result: failure(MethodAuthRender, ReasonTimeout)}
	fallback := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}

	result := testController(failing, fallback).Resolve(context.Background(), jobTarget(t))

	require.True(t, result.Succeeded())
	assert.Equal(t, 1, failing.calls, "a failed strategy is never retried")
	assert.Equal(t, MethodGuestRender, result.Success.MethodID)
}

func TestResolveSufficiencyBoundary(t *testing.T) {
	tests := []struct {
		name   string
		length int
		wantOK bool
	}{
		{name: "at threshold", length: config.DefaultMinContentLength, wantOK: true},
		{name: "one below threshold", length: config.DefaultMinContentLength - 1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(tt.length))}

			result := testController(strategy).Resolve(context.Background(), jobTarget(t))

			assert.Equal(t, tt.wantOK, result.Succeeded())
			if !tt.wantOK {
				assert.Equal(t, ReasonTooShort, result.Manual.LastFailureReason)
			}
		})
	}
}

func TestResolveShortContentEscalates(t *testing.T) {
	short := &stubStrategy{id: MethodAuthRender, applies: true, result: success(MethodAuthRender, "too short")}
	long := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}

	result := testController(short, long).Resolve(context.Background(), jobTarget(t))

	require.True(t, result.Succeeded())
	assert.Equal(t, MethodGuestRender, result.Success.MethodID, "a nominal success below the threshold is a failure")
}

func TestResolveSkipsInapplicableStrategies(t *testing.T) {
	skipped := &stubStrategy{id: MethodAuthRender, applies: false, result: success(MethodAuthRender, longText(300))}
	applicable := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}

	result := testController(skipped, applicable).Resolve(context.Background(), jobTarget(t))

	require.True(t, result.Succeeded())
	assert.Equal(t, 0, skipped.calls)
	assert.Equal(t, MethodGuestRender, result.Success.MethodID)
}

func TestResolveExhaustionIsTerminal(t *testing.T) {
	strategies := []Strategy{
		&stubStrategy{id: MethodAuthRender, applies: true, result: failure(MethodAuthRender, ReasonAuthLost)},
		&stubStrategy{id: MethodGuestRender, applies: true, result: failure(MethodGuestRender, ReasonTimeout)},
		&stubStrategy{id: MethodMirror, applies: true, result: failure(MethodMirror, ReasonNotImplemented)},
	}
	target := jobTarget(t)

	result := testController(strategies...).Resolve(context.Background(), target)

	require.False(t, result.Succeeded())
	require.NotNil(t, result.Manual)
	assert.Equal(t, target, result.Manual.Target)
	assert.Equal(t, ReasonNotImplemented, result.Manual.LastFailureReason)
	assert.Len(t, result.Manual.Steps, 4)
	assert.Contains(t, result.Manual.Steps[0], target.URL)
	for _, s := range strategies {
		assert.Equal(t, 1, s.(*stubStrategy).calls, "exhaustion must not trigger extra attempts")
	}
}

func TestResolveNormalizeFailureEscalates(t *testing.T) {
	// HTML with no extractable text normalizes to nothing, which is a
	// failure for automated provenance. Pad it past the length gate so the
	// normalizer is what rejects it.
	empty := "<html><body>" + strings.Repeat("<div></div>", 50) + "</body></html>"
	bad := &stubStrategy{id: MethodAuthRender, applies: true, result: AttemptResult{
		Succeeded: true, Content: empty, ContentKind: normalize.KindHTML, MethodID: MethodAuthRender,
	}}
	good := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}

	result := testController(bad, good).Resolve(context.Background(), jobTarget(t))

	require.True(t, result.Succeeded())
	assert.Equal(t, MethodGuestRender, result.Success.MethodID)
}

func TestAcceptManualBypassesSufficiency(t *testing.T) {
	result := testController().AcceptManual(jobTarget(t), "x")

	require.True(t, result.Succeeded())
	assert.Equal(t, "x", result.Success.Normalized.CanonicalText)
	assert.Equal(t, MethodManual, result.Success.MethodID)
	assert.Equal(t, normalize.ProvenanceManual, result.Success.Normalized.Provenance)
}

func TestExhaustionThenManualRecovers(t *testing.T) {
	controller := testController(
		&stubStrategy{id: MethodGuestRender, applies: true, result: failure(MethodGuestRender, ReasonBlocked)},
	)
	target := jobTarget(t)

	exhausted := controller.Resolve(context.Background(), target)
	require.False(t, exhausted.Succeeded())
	assert.Equal(t, ReasonBlocked, exhausted.Manual.LastFailureReason)

	recovered := controller.AcceptManual(target, "Senior Platform Engineer at Initech. Pasted by hand.")
	require.True(t, recovered.Succeeded())
	assert.Equal(t, MethodManual, recovered.Success.MethodID)
}

func TestResolveCancelledContextStops(t *testing.T) {
	first := &stubStrategy{id: MethodAuthRender, applies: true, result: failure(MethodAuthRender, ReasonTimeout)}
	second := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}

	cfg := testConfig()
	cfg.StrategyDelayMin = config.DefaultStrategyDelayMin
	cfg.StrategyDelayMax = config.DefaultStrategyDelayMax
	controller := NewController(cfg, []Strategy{first, second}, identity.NewPool(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := controller.Resolve(ctx, jobTarget(t))

	require.False(t, result.Succeeded())
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestManualInstructionsPerKind(t *testing.T) {
	target, err := NewTarget("https://www.linkedin.com/company/initech/", KindCompany)
	require.NoError(t, err)

	manual := ManualInstructions(target, ReasonAuthLost)

	assert.Contains(t, manual.Message, "company")
	assert.Contains(t, manual.Steps[1], "company information")
	assert.Equal(t, ReasonAuthLost, manual.LastFailureReason)
}
