package locres

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// CompletionClient is the generative-text collaborator the resolver consults
// when the deterministic tiers come up empty. Implementations should honor
// context cancellation; the resolver additionally abandons any call that
// outlives its deadline.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// maxCompletionBody bounds how much of an HTTP completion response is read.
const maxCompletionBody = 1 << 20 // 1MB

// HTTPCompletionClient talks to a completion endpoint that accepts
// {"prompt": ...} and answers {"text": ...}.
type HTTPCompletionClient struct {
	URL    string
	APIKey string
	Client *http.Client
}

// NewHTTPCompletionClient creates a client for the given endpoint with a
// transport tuned for a single long-ish call per resolution.
func NewHTTPCompletionClient(url, apiKey string) *HTTPCompletionClient {
	return &HTTPCompletionClient{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        4,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 15 * time.Second,
			},
		},
	}
}

// Complete posts the prompt and returns the completion text. The request is
// built on ctx, so cancelling the context tears the call down at the
// transport rather than leaving it running.
func (c *HTTPCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCompletionBody)).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	return out.Text, nil
}

// extractionPrompt is the disambiguation contract sent to the completion
// service: country or region context beats bare city-name heuristics,
// multi-airport cities get their primary airport, and an unmentioned side must
// come back as an empty code with confidence "none".
const extractionPrompt = `Extract the travel origin and destination from the query below.

Respond with ONLY a JSON object in this exact shape:
{
  "origin": {"code": "", "name": "", "city": "", "country": "", "confidence": "none"},
  "destination": {"code": "", "name": "", "city": "", "country": "", "confidence": "none"},
  "rationale": ""
}

Rules:
- "code" is the three-letter IATA airport code, or "" when that side is not mentioned.
- "confidence" is one of "high", "medium", "low", "none". Use "none" with an empty code
  when a side is not mentioned at all.
- Country or region context overrides bare city-name heuristics. "liberia costa rica"
  means LIR (Liberia, Costa Rica), not an airport in the country of Liberia.
- For cities with several airports, prefer the primary international airport
  (e.g. "new york" is JFK, "tokyo" is HND) unless the query names a specific one.
- When the query names only one place, treat it as the destination.
- "rationale" is one short sentence explaining any disambiguation you made.

Query: %s`

// extractionSchemaJSON is the schema every model reply must satisfy before it
// is trusted. A reply that fails validation is treated exactly like a timeout.
const extractionSchemaJSON = `{
  "type": "object",
  "required": ["origin", "destination"],
  "properties": {
    "origin": {"$ref": "#/$defs/side"},
    "destination": {"$ref": "#/$defs/side"},
    "rationale": {"type": "string"}
  },
  "$defs": {
    "side": {
      "type": "object",
      "required": ["code", "confidence"],
      "properties": {
        "code": {"type": "string", "pattern": "^([A-Za-z]{3})?$"},
        "name": {"type": "string"},
        "city": {"type": "string"},
        "country": {"type": "string"},
        "confidence": {"type": "string", "enum": ["high", "medium", "low", "none"]}
      }
    }
  }
}`

// extractionSchema compiles the reply schema once per process.
var extractionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(extractionSchemaJSON))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extraction.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("extraction.json")
})

// extractionOutcome is the value-typed result of one extraction attempt.
// Failed covers every way the attempt can go wrong: transport error, deadline
// expiry, unparseable reply, schema violation. Failures are values, never
// panics or returned errors.
type extractionOutcome struct {
	Origin      *Candidate
	Destination *Candidate
	Rationale   string
	Failed      bool
}

type extractionSide struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Confidence string `json:"confidence"`
}

type extractionReply struct {
	Origin      extractionSide `json:"origin"`
	Destination extractionSide `json:"destination"`
	Rationale   string         `json:"rationale"`
}

// textResolver owns the completion-service boundary: prompt construction,
// the deadline race, and schema validation of the reply.
type textResolver struct {
	client   CompletionClient
	deadline time.Duration
	log      *slog.Logger
}

func newTextResolver(client CompletionClient, deadline time.Duration, log *slog.Logger) *textResolver {
	return &textResolver{client: client, deadline: deadline, log: log}
}

// extract races the completion call against the configured deadline. The
// context carries the deadline so a well-behaved client cancels its transport;
// the select additionally abandons clients that ignore cancellation, with the
// buffered channel letting the stray goroutine finish and be collected.
func (t *textResolver) extract(ctx context.Context, query string) extractionOutcome {
	if t.client == nil {
		return extractionOutcome{Failed: true}
	}

	ctx, cancel := context.WithTimeout(ctx, t.deadline)
	defer cancel()

	type completion struct {
		raw string
		err error
	}
	ch := make(chan completion, 1)
	go func() {
		raw, err := t.client.Complete(ctx, fmt.Sprintf(extractionPrompt, query))
		ch <- completion{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		t.log.Warn("extraction timed out", "query", query, "deadline", t.deadline)
		return extractionOutcome{Failed: true}
	case got := <-ch:
		if got.err != nil {
			t.log.Warn("extraction call failed", "query", query, "err", got.err)
			return extractionOutcome{Failed: true}
		}
		return t.parse(query, got.raw)
	}
}

// parse validates the raw reply against the extraction schema and converts it
// into candidates. Any violation degrades to a failed outcome.
func (t *textResolver) parse(query, raw string) extractionOutcome {
	payload := extractJSONObject(raw)
	if payload == "" {
		t.log.Warn("extraction reply held no JSON object", "query", query)
		return extractionOutcome{Failed: true}
	}

	schema, err := extractionSchema()
	if err != nil {
		t.log.Error("extraction schema failed to compile", "err", err)
		return extractionOutcome{Failed: true}
	}
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(payload))
	if err != nil {
		t.log.Warn("extraction reply is not valid JSON", "query", query, "err", err)
		return extractionOutcome{Failed: true}
	}
	if err := schema.Validate(inst); err != nil {
		t.log.Warn("extraction reply failed schema validation", "query", query, "err", err)
		return extractionOutcome{Failed: true}
	}

	var reply extractionReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return extractionOutcome{Failed: true}
	}
	return extractionOutcome{
		Origin:      candidateFromSide(reply.Origin),
		Destination: candidateFromSide(reply.Destination),
		Rationale:   strings.TrimSpace(reply.Rationale),
	}
}

func candidateFromSide(s extractionSide) *Candidate {
	c := &Candidate{
		Code:       s.Code,
		Name:       strings.TrimSpace(s.Name),
		City:       strings.TrimSpace(s.City),
		Country:    strings.TrimSpace(s.Country),
		Confidence: ParseConfidence(s.Confidence),
	}
	c.normalize()
	if c.absent() {
		return nil
	}
	return c
}

// extractJSONObject pulls the outermost {...} out of a reply, tolerating
// models that wrap JSON in prose or markdown fences.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
