package locres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletion is a scriptable CompletionClient.
type fakeCompletion struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
	delay time.Duration
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeCompletion) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func replyJSON(originCode, originConf, destCode, destConf, rationale string) string {
	return fmt.Sprintf(`{
		"origin": {"code": %q, "name": "", "city": "", "country": "", "confidence": %q},
		"destination": {"code": %q, "name": "", "city": "", "country": "", "confidence": %q},
		"rationale": %q
	}`, originCode, originConf, destCode, destConf, rationale)
}

func testTextResolver(client CompletionClient, deadline time.Duration) *textResolver {
	return newTextResolver(client, deadline, slog.Default())
}

func TestExtractParsesStructuredReply(t *testing.T) {
	client := &fakeCompletion{reply: replyJSON("FRA", "high", "LIR", "medium",
		"costa rica context selects the Guanacaste airport")}
	tr := testTextResolver(client, time.Second)

	out := tr.extract(context.Background(), "frankfurt to liberia costa rica")
	require.False(t, out.Failed)
	require.NotNil(t, out.Origin)
	assert.Equal(t, "FRA", out.Origin.Code)
	assert.Equal(t, ConfidenceHigh, out.Origin.Confidence)
	require.NotNil(t, out.Destination)
	assert.Equal(t, "LIR", out.Destination.Code)
	assert.Equal(t, ConfidenceMedium, out.Destination.Confidence)
	assert.Contains(t, out.Rationale, "Guanacaste")
}

func TestExtractUnmentionedSideIsAbsent(t *testing.T) {
	client := &fakeCompletion{reply: replyJSON("", "none", "LIR", "high", "")}
	tr := testTextResolver(client, time.Second)

	out := tr.extract(context.Background(), "liberia costa rica")
	require.False(t, out.Failed)
	assert.Nil(t, out.Origin, "confidence none with empty code means absent")
	require.NotNil(t, out.Destination)
	assert.Equal(t, "LIR", out.Destination.Code)
}

func TestExtractToleratesMarkdownFences(t *testing.T) {
	client := &fakeCompletion{reply: "Sure, here you go:\n```json\n" +
		replyJSON("", "none", "FRA", "high", "") + "\n```\n"}
	tr := testTextResolver(client, time.Second)

	out := tr.extract(context.Background(), "frankfurt")
	require.False(t, out.Failed)
	require.NotNil(t, out.Destination)
	assert.Equal(t, "FRA", out.Destination.Code)
}

func TestExtractLowercaseCodeIsCanonicalized(t *testing.T) {
	client := &fakeCompletion{reply: replyJSON("", "none", "lir", "high", "")}
	tr := testTextResolver(client, time.Second)

	out := tr.extract(context.Background(), "liberia")
	require.False(t, out.Failed)
	assert.Equal(t, "LIR", out.Destination.Code)
}

func TestExtractFailures(t *testing.T) {
	cases := map[string]string{
		"not json at all":      "I could not parse that query, sorry!",
		"schema missing sides": `{"rationale": "hmm"}`,
		"bad confidence enum":  replyJSON("", "none", "LIR", "certain", ""),
		"bad code format":      replyJSON("", "none", "LIRX", "high", ""),
		"empty reply":          "",
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			tr := testTextResolver(&fakeCompletion{reply: reply}, time.Second)
			out := tr.extract(context.Background(), "anywhere")
			assert.True(t, out.Failed, "reply %q must fail extraction", reply)
		})
	}
}

func TestExtractTransportErrorIsFailure(t *testing.T) {
	tr := testTextResolver(&fakeCompletion{err: errors.New("connection refused")}, time.Second)
	out := tr.extract(context.Background(), "frankfurt")
	assert.True(t, out.Failed)
}

func TestExtractDeadlineRace(t *testing.T) {
	client := &fakeCompletion{
		reply: replyJSON("", "none", "FRA", "high", ""),
		delay: 200 * time.Millisecond,
	}
	tr := testTextResolver(client, 20*time.Millisecond)

	start := time.Now()
	out := tr.extract(context.Background(), "frankfurt")
	assert.True(t, out.Failed, "deadline expiry is an extraction failure")
	assert.Less(t, time.Since(start), 150*time.Millisecond,
		"the deadline, not the slow call, must determine when extract returns")
}

func TestExtractCancellationReachesClient(t *testing.T) {
	done := make(chan error, 1)
	client := completionFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		done <- ctx.Err()
		return "", ctx.Err()
	})
	tr := testTextResolver(client, 10*time.Millisecond)

	out := tr.extract(context.Background(), "frankfurt")
	assert.True(t, out.Failed)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded,
			"the losing call must be cancelled, not abandoned mid-flight")
	case <-time.After(time.Second):
		t.Fatal("client never observed cancellation")
	}
}

func TestExtractNilClientFails(t *testing.T) {
	tr := testTextResolver(nil, time.Second)
	out := tr.extract(context.Background(), "frankfurt")
	assert.True(t, out.Failed)
}

// completionFunc adapts a function to CompletionClient.
type completionFunc func(ctx context.Context, prompt string) (string, error)

func (f completionFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestExtractPromptCarriesContract(t *testing.T) {
	var captured string
	client := completionFunc(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return replyJSON("", "none", "LIR", "high", ""), nil
	})
	tr := testTextResolver(client, time.Second)
	tr.extract(context.Background(), "liberia costa rica")

	require.NotEmpty(t, captured)
	assert.Contains(t, captured, "liberia costa rica", "query must be embedded")
	assert.Contains(t, captured, `"confidence"`, "structured shape is part of the contract")
	assert.Contains(t, captured, "Country or region context overrides",
		"disambiguation rules are part of the contract")
}
