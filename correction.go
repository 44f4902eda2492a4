package locres

import (
	"regexp"
	"strings"
	"time"
)

// CorrectionStore remembers user-supplied disambiguations keyed by normalized
// query. Records are long-lived relative to extraction cache entries because a
// human correction is the strongest signal the resolver ever receives.
type CorrectionStore struct {
	cache *Cache[string, CorrectionRecord]
	now   func() time.Time
}

// NewCorrectionStore creates a correction store bounded to maxSize records,
// each living for ttl.
func NewCorrectionStore(maxSize int, ttl time.Duration) *CorrectionStore {
	return &CorrectionStore{
		cache: NewCache[string, CorrectionRecord](maxSize, ttl),
		now:   time.Now,
	}
}

// Lookup returns the correction recorded for the exact normalized query.
func (s *CorrectionStore) Lookup(normalizedQuery string) (CorrectionRecord, bool) {
	return s.cache.Get(normalizedQuery)
}

// Record stores a correction, overwriting any earlier one for the same query.
func (s *CorrectionStore) Record(normalizedQuery, extractedCode, correctedCode string, target Target) CorrectionRecord {
	if target == "" {
		target = TargetDestination
	}
	rec := CorrectionRecord{
		NormalizedQuery: normalizedQuery,
		ExtractedCode:   strings.ToUpper(extractedCode),
		CorrectedCode:   strings.ToUpper(correctedCode),
		Target:          target,
		CorrectedAt:     s.now(),
	}
	s.cache.Set(normalizedQuery, rec)
	return rec
}

// Stats exposes the underlying cache counters.
func (s *CorrectionStore) Stats() CacheStats {
	return s.cache.Stats()
}

func (s *CorrectionStore) startSweeper(interval time.Duration) func() {
	return s.cache.StartSweeper(interval)
}

// correctionPatterns is the tagged pattern set that classifies a follow-up
// utterance as a correction. Deliberately a small explicit list, not a model
// call: each form is independently testable and the set fails closed on
// anything unrecognized.
var correctionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bno,?\s+i\s+meant\s+([a-z]{3})\b`),
	regexp.MustCompile(`(?i)\bi\s+meant\s+([a-z]{3})\b`),
	regexp.MustCompile(`(?i)^correction[:,]?\s+([a-z]{3})\b`),
	regexp.MustCompile(`(?i)\bnot\s+[a-z]{3},?\s+([a-z]{3})\b`),
	regexp.MustCompile(`(?i)\bshould\s+be\s+([a-z]{3})\b`),
}

// bareCodePattern matches a reply that is nothing but a code, like "LIR" or
// "lir.". Only meaningful when the prior result actually left something to
// correct, so ClassifyCorrection gates it on the prior result's state.
var bareCodePattern = regexp.MustCompile(`(?i)^\s*([a-z]{3})\s*[.!]?\s*$`)

// ambiguous reports whether a prior result left room for a correction: it
// asked for clarification or carried a side below high confidence.
func ambiguous(prior ResolutionResult) bool {
	if prior.NeedsClarification != nil {
		return true
	}
	for _, c := range []*Candidate{prior.Origin, prior.Destination} {
		if !c.absent() && (c.Confidence == ConfidenceLow || c.Confidence == ConfidenceMedium) {
			return true
		}
	}
	return false
}

// ClassifyCorrection decides whether utterance corrects the prior result and,
// if so, which code and which side it applies to. The target side comes from
// the prior clarification request when one exists, defaulting to destination.
func ClassifyCorrection(utterance string, prior ResolutionResult) (code string, target Target, ok bool) {
	matched := ""
	for _, p := range correctionPatterns {
		if m := p.FindStringSubmatch(utterance); m != nil {
			matched = m[1]
			break
		}
	}
	if matched == "" && ambiguous(prior) {
		if m := bareCodePattern.FindStringSubmatch(utterance); m != nil {
			matched = m[1]
		}
	}
	if matched == "" {
		return "", "", false
	}

	code = strings.ToUpper(matched)
	if !IsValidCode(code) {
		return "", "", false
	}
	target = TargetDestination
	if prior.NeedsClarification != nil && prior.NeedsClarification.Target != "" {
		target = prior.NeedsClarification.Target
	}
	if target == TargetBoth {
		// A single corrected code cannot fix both sides; apply it to the
		// destination, the side travelers correct most.
		target = TargetDestination
	}
	return code, target, true
}
