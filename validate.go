package locres

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// validator double-checks low-confidence codes. The format check is local and
// authoritative; the external confirmation is best-effort, so an unreachable
// validation service degrades to format-only validation instead of failing
// resolutions.
type validator struct {
	enabled  bool
	endpoint string // e.g. "https://api.example.com/airports"; "" disables the remote check
	client   *http.Client
	log      *slog.Logger
}

func newValidator(enabled bool, endpoint string, log *slog.Logger) *validator {
	return &validator{
		enabled:  enabled,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		log:      log,
	}
}

// confirm reports whether code should be trusted. Only called for
// low-confidence candidates.
func (v *validator) confirm(ctx context.Context, code string) bool {
	if !IsValidCode(code) {
		return false
	}
	if !v.enabled || v.endpoint == "" {
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", v.endpoint, code), nil)
	if err != nil {
		return true
	}
	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn("code validation unreachable, accepting by format", "code", code, "err", err)
		return true
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true
	case resp.StatusCode == http.StatusNotFound:
		return false
	default:
		// Server trouble is the service's problem, not the code's.
		v.log.Warn("code validation errored, accepting by format", "code", code, "status", resp.StatusCode)
		return true
	}
}
