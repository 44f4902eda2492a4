package locres

import (
	"errors"
	"strings"
	"time"
)

// Confidence grades how much trust a resolved field deserves. It drives
// whether a result is cached (no low fields), validated (low fields only), or
// treated as absent (none).
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// ParseConfidence maps a free-form tier string to a Confidence, defaulting to
// ConfidenceNone for anything unrecognized.
func ParseConfidence(s string) Confidence {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceMedium:
		return ConfidenceMedium
	case ConfidenceLow:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Candidate is one resolved side of a travel query.
// Invariant: Confidence == ConfidenceNone exactly when Code is empty.
type Candidate struct {
	Code       string // IATA code, three uppercase letters
	Name       string // airport display name
	City       string
	Country    string
	Confidence Confidence
}

// normalize enforces the code/confidence invariant and canonicalizes the code
// to uppercase. A candidate with a malformed code degenerates to absent.
func (c *Candidate) normalize() {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if !IsValidCode(c.Code) {
		c.Code = ""
	}
	if c.Code == "" {
		c.Confidence = ConfidenceNone
	} else if c.Confidence == "" || c.Confidence == ConfidenceNone {
		c.Confidence = ConfidenceLow
	}
}

// absent reports whether this candidate carries no usable code.
func (c *Candidate) absent() bool {
	return c == nil || c.Code == ""
}

// Target names which side of a result a clarification or correction applies to.
type Target string

const (
	TargetOrigin      Target = "origin"
	TargetDestination Target = "destination"
	TargetBoth        Target = "both"
)

// Clarification asks the user to disambiguate one or both sides of a result.
type Clarification struct {
	Target  Target
	Message string
}

// Tier identifies which resolution stage produced a result.
type Tier string

const (
	TierDirect     Tier = "direct"
	TierCorrection Tier = "correction"
	TierCache      Tier = "cache"
	TierGazetteer  Tier = "gazetteer"
	TierExtraction Tier = "extraction"
)

// Resolution errors. Only ErrExtractionFailed ever surfaces on a
// ResolutionResult; validation failures clear the offending field and request
// clarification instead of propagating.
var (
	ErrExtractionFailed = errors.New("location extraction failed")
	ErrValidationFailed = errors.New("location code validation failed")
)

// ResolutionResult is the outcome of resolving one query. A nil Origin or
// Destination means that side was not mentioned or could not be resolved.
// Err is data, not a panic path: callers inspect it with errors.Is.
type ResolutionResult struct {
	Origin             *Candidate
	Destination        *Candidate
	NeedsClarification *Clarification
	Err                error
	Source             Tier
}

// Resolved reports whether at least one side carries a usable code.
func (r ResolutionResult) Resolved() bool {
	return !r.Origin.absent() || !r.Destination.absent()
}

// hasLowConfidence reports whether any present side sits at the low tier.
// Such results are never written to the extraction cache.
func (r ResolutionResult) hasLowConfidence() bool {
	return (!r.Origin.absent() && r.Origin.Confidence == ConfidenceLow) ||
		(!r.Destination.absent() && r.Destination.Confidence == ConfidenceLow)
}

// flagClarification marks target as needing user input, merging with any
// prior flag: flagging the second side upgrades the target to both.
func (r *ResolutionResult) flagClarification(target Target, message string) {
	if r.NeedsClarification == nil {
		r.NeedsClarification = &Clarification{Target: target, Message: message}
		return
	}
	if r.NeedsClarification.Target != target {
		r.NeedsClarification.Target = TargetBoth
	}
	if message != "" {
		if r.NeedsClarification.Message != "" {
			r.NeedsClarification.Message += " "
		}
		r.NeedsClarification.Message += message
	}
}

// CorrectionRecord remembers a user-supplied disambiguation for one normalized
// query. It overrides every other resolution tier on later lookups of the
// exact same query.
type CorrectionRecord struct {
	NormalizedQuery string
	ExtractedCode   string
	CorrectedCode   string
	Target          Target
	CorrectedAt     time.Time
}

// extractionRecord is the value stored in the extraction cache. Only results
// with no low-confidence field and no error are ever written.
type extractionRecord struct {
	Origin      *Candidate
	Destination *Candidate
	CachedAt    time.Time
}
