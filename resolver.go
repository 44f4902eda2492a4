package locres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Resolver converts free-text travel references into IATA codes through a
// fixed tier order: direct code pair, learned correction, extraction cache,
// static gazetteer, then the generative extraction call with post-hoc
// validation. The first confident tier wins.
//
// Construct one Resolver at process start and share it; the caches it owns
// are the only mutable state and are safe for concurrent use.
type Resolver struct {
	cfg  Config
	gaz  *Gazetteer
	text *textResolver
	val  *validator
	log  *slog.Logger

	extractions *Cache[string, extractionRecord]
	corrections *CorrectionStore

	// group collapses concurrent resolutions of the same normalized query
	// into one pipeline pass.
	group singleflight.Group

	client CompletionClient
	now    func() time.Time
	stops  []func()
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(r *Resolver) { r.cfg = cfg }
}

// WithLogger sets the structured logger; slog.Default() is used otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithGazetteer substitutes a custom gazetteer for the compiled-in one.
func WithGazetteer(g *Gazetteer) Option {
	return func(r *Resolver) { r.gaz = g }
}

// NewResolver builds a resolver around the given completion client. A nil
// client is allowed when Config.CompletionURL is set (the built-in HTTP client
// is used) or when only the deterministic tiers are needed.
func NewResolver(client CompletionClient, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:    DefaultConfig(),
		gaz:    DefaultGazetteer(),
		log:    slog.Default(),
		client: client,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil && r.cfg.CompletionURL != "" {
		r.client = NewHTTPCompletionClient(r.cfg.CompletionURL, r.cfg.CompletionAPIKey)
	}

	r.text = newTextResolver(r.client, r.cfg.ExtractionDeadline, r.log)
	r.val = newValidator(r.cfg.ValidationEnabled, r.cfg.ValidationURL, r.log)
	r.extractions = NewCache[string, extractionRecord](r.cfg.ExtractionCacheSize, r.cfg.ExtractionCacheTTL)
	r.corrections = NewCorrectionStore(r.cfg.CorrectionCacheSize, r.cfg.CorrectionCacheTTL)

	if r.cfg.SweepInterval > 0 {
		r.stops = append(r.stops,
			r.extractions.StartSweeper(r.cfg.SweepInterval),
			r.corrections.startSweeper(r.cfg.SweepInterval),
		)
	}
	return r
}

// Close stops the background sweepers. The resolver remains usable, its
// caches just stop being physically pruned.
func (r *Resolver) Close() {
	for _, stop := range r.stops {
		stop()
	}
	r.stops = nil
}

// ResolverStats aggregates the cache counters.
type ResolverStats struct {
	Extractions CacheStats
	Corrections CacheStats
}

// Stats returns a snapshot of both caches.
func (r *Resolver) Stats() ResolverStats {
	return ResolverStats{
		Extractions: r.extractions.Stats(),
		Corrections: r.corrections.Stats(),
	}
}

// ClearCaches empties the extraction cache and correction store.
func (r *Resolver) ClearCaches() {
	r.extractions.Clear()
	r.corrections.cache.Clear()
}

// Resolve runs the full tier pipeline for query. It never returns a Go error:
// the one terminal failure, extraction_failed, arrives as ResolutionResult.Err.
func (r *Resolver) Resolve(ctx context.Context, query string) ResolutionResult {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return ResolutionResult{NeedsClarification: &Clarification{
			Target:  TargetBoth,
			Message: "no location reference found in the query",
		}}
	}

	v, _, _ := r.group.Do(normalized, func() (any, error) {
		return r.resolveOnce(ctx, query, normalized), nil
	})
	return v.(ResolutionResult)
}

func (r *Resolver) resolveOnce(ctx context.Context, query, normalized string) ResolutionResult {
	// Tier 1: the query already spells out both codes. Deterministic and
	// cheap, so the result is never cached.
	if origin, dest, ok := TryDirect(query); ok {
		r.log.Debug("resolved by direct codes", "query", query, "origin", origin, "destination", dest)
		return ResolutionResult{
			Origin:      r.candidateFromCode(origin, ConfidenceHigh),
			Destination: r.candidateFromCode(dest, ConfidenceHigh),
			Source:      TierDirect,
		}
	}

	// Tier 2: a learned correction beats everything below, including the
	// extraction cache, so a user's override can never be shadowed by a
	// stale cached extraction.
	if rec, ok := r.corrections.Lookup(normalized); ok {
		r.log.Debug("resolved by correction record", "query", normalized, "code", rec.CorrectedCode)
		res := ResolutionResult{Source: TierCorrection}
		res.setSide(rec.Target, r.candidateFromCode(rec.CorrectedCode, ConfidenceHigh))
		return res
	}

	// Tier 3: a previous successful extraction for the identical query.
	if rec, ok := r.extractions.Get(normalized); ok {
		r.log.Debug("resolved from extraction cache", "query", normalized)
		return ResolutionResult{
			Origin:      rec.Origin.clone(),
			Destination: rec.Destination.clone(),
			Source:      TierCache,
		}
	}

	// Tier 4: static gazetteer, exact hits only. Partial or fuzzy static
	// matches are discarded rather than guessed at.
	if res, ok := r.resolveStatic(normalized); ok {
		r.log.Debug("resolved by gazetteer", "query", normalized)
		return res
	}

	// Tier 5: generative extraction under the configured deadline.
	outcome := r.text.extract(ctx, query)
	if outcome.Failed {
		return ResolutionResult{Err: ErrExtractionFailed, Source: TierExtraction}
	}
	res := ResolutionResult{
		Origin:      outcome.Origin,
		Destination: outcome.Destination,
		Source:      TierExtraction,
	}

	// Tier 6: low-confidence fields must survive validation or be cleared.
	r.validateLowConfidence(ctx, &res, outcome.Rationale)

	// An extraction that mentioned no resolvable place is not a success to
	// hand back (or cache) silently; ask the caller to be specific.
	if !res.Resolved() && res.NeedsClarification == nil {
		msg := "no origin or destination could be identified"
		if outcome.Rationale != "" {
			msg += ": " + outcome.Rationale
		}
		res.flagClarification(TargetBoth, msg)
	}

	// Tier 7: cache only clean outcomes, so ambiguous queries get a fresh
	// attempt next time and the clarification/correction loop can fire.
	if res.Err == nil && res.NeedsClarification == nil && !res.hasLowConfidence() {
		r.extractions.Set(normalized, extractionRecord{
			Origin:      res.Origin.clone(),
			Destination: res.Destination.clone(),
			CachedAt:    r.now(),
		})
	}
	return res
}

// resolveStatic accepts a query only when every place it mentions hits the
// gazetteer exactly. A two-sided query needs both sides to hit; a single
// place becomes the destination.
func (r *Resolver) resolveStatic(normalized string) (ResolutionResult, bool) {
	if from, to, ok := SplitPair(normalized); ok {
		origin, okO := r.gaz.LookupExact(from)
		dest, okD := r.gaz.LookupExact(to)
		if !okO || !okD {
			return ResolutionResult{}, false
		}
		return ResolutionResult{
			Origin:      candidateFromAirport(origin, ConfidenceHigh),
			Destination: candidateFromAirport(dest, ConfidenceHigh),
			Source:      TierGazetteer,
		}, true
	}

	a, ok := r.gaz.LookupExact(normalized)
	if !ok {
		return ResolutionResult{}, false
	}
	return ResolutionResult{
		Destination: candidateFromAirport(a, ConfidenceHigh),
		Source:      TierGazetteer,
	}, true
}

func (r *Resolver) validateLowConfidence(ctx context.Context, res *ResolutionResult, rationale string) {
	check := func(c **Candidate, target Target, label string) {
		if (*c).absent() || (*c).Confidence != ConfidenceLow {
			return
		}
		if r.val.confirm(ctx, (*c).Code) {
			return
		}
		msg := fmt.Sprintf("could not confirm %s %q", label, (*c).Code)
		if rationale != "" {
			msg += ": " + rationale
		}
		r.log.Debug("cleared unvalidated side", "side", label, "code", (*c).Code)
		*c = nil
		res.flagClarification(target, msg)
	}
	check(&res.Origin, TargetOrigin, "origin")
	check(&res.Destination, TargetDestination, "destination")
}

// RecordCorrection classifies utterance against the prior result for
// priorQuery and, when it is a correction, stores it and returns the amended
// result. The second return is false when the utterance is not a correction.
func (r *Resolver) RecordCorrection(priorQuery, utterance string, prior ResolutionResult) (ResolutionResult, bool) {
	code, target, ok := ClassifyCorrection(utterance, prior)
	if !ok {
		return prior, false
	}
	normalized := NormalizeQuery(priorQuery)
	if normalized == "" {
		return prior, false
	}

	extracted := ""
	if side := prior.side(target); !side.absent() {
		extracted = side.Code
	}
	r.corrections.Record(normalized, extracted, code, target)
	// The cached extraction for this query is now known-wrong. The
	// correction tier would shadow it anyway; dropping it keeps the cache
	// honest.
	r.extractions.Delete(normalized)
	r.log.Info("recorded correction", "query", normalized, "was", extracted, "now", code, "target", target)

	res := prior
	res.setSide(target, r.candidateFromCode(code, ConfidenceHigh))
	res.Err = nil
	res.Source = TierCorrection
	if res.NeedsClarification != nil {
		switch res.NeedsClarification.Target {
		case target:
			res.NeedsClarification = nil
		case TargetBoth:
			remaining := TargetOrigin
			if target == TargetOrigin {
				remaining = TargetDestination
			}
			res.NeedsClarification.Target = remaining
		}
	}
	return res, true
}

// candidateFromCode builds a candidate for a bare code, filling in display
// fields from the gazetteer when the code is known.
func (r *Resolver) candidateFromCode(code string, conf Confidence) *Candidate {
	c := &Candidate{Code: code, Confidence: conf}
	if a, ok := r.gaz.ByCode(code); ok {
		c.Name = a.Name
		c.City = a.City
		c.Country = a.Country
	}
	c.normalize()
	if c.absent() {
		return nil
	}
	return c
}

func candidateFromAirport(a Airport, conf Confidence) *Candidate {
	return &Candidate{
		Code:       a.Code,
		Name:       a.Name,
		City:       a.City,
		Country:    a.Country,
		Confidence: conf,
	}
}

// clone returns a copy so cached candidates cannot be mutated by callers.
func (c *Candidate) clone() *Candidate {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}

// side returns the candidate occupying target, destination for TargetBoth.
func (r ResolutionResult) side(target Target) *Candidate {
	if target == TargetOrigin {
		return r.Origin
	}
	return r.Destination
}

func (r *ResolutionResult) setSide(target Target, c *Candidate) {
	switch target {
	case TargetOrigin:
		r.Origin = c
	case TargetBoth:
		r.Origin = c.clone()
		r.Destination = c.clone()
	default:
		r.Destination = c
	}
}
