package locres

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// s2CellLevel sets the granularity of the spatial index used by
// NearestAirport. Level 4 cells are roughly 300km across, which is coarse
// enough that a point's own cell plus its neighbors almost always contain the
// nearest airport in a table of this size.
const s2CellLevel = 4

// earthRadiusKm converts s2 angular distances to kilometers.
const earthRadiusKm = 6371.01

// maxLookupInputLen caps lookup input length before edit-distance scans.
const maxLookupInputLen = 256

// minFallbackLen is the shortest query the substring and fuzzy fallbacks will
// consider. Shorter fragments match far too many keys to be meaningful.
const minFallbackLen = 4

// NormalizeQuery lowercases, strips accents and punctuation, and collapses
// whitespace. Both gazetteer keys and cache/correction keys go through this,
// so "Liberia, Costa Rica" and "liberia costa rica" share one identity.
func NormalizeQuery(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	decomposed := norm.NFD.String(q)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from NFD: drop it
		case r == ',' || r == '.' || r == '\'' || r == '"' || r == '?' || r == '!':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Gazetteer is the static place-name directory: a compiled-in airport table
// with an inverted name index, an explicitly ordered fallback key list, and an
// s2 cell index for nearest-airport queries. Immutable after construction and
// safe for concurrent use.
type Gazetteer struct {
	airports  []Airport
	nameIndex map[string][]int // normalized name → airport indices
	codeIndex map[string]int   // IATA code → airport index
	// fallbackKeys holds every index key sorted longest-first, then
	// lexicographically. Substring and edit-distance fallbacks scan this
	// list in order, so "first match wins" is deterministic across runs
	// instead of depending on map iteration order.
	fallbackKeys []string
	cellIndex    map[s2.CellID][]int
}

var defaultGazetteer = sync.OnceValue(func() *Gazetteer {
	return NewGazetteer()
})

// DefaultGazetteer returns the shared gazetteer built from the compiled-in
// airport table, constructing it on first call.
func DefaultGazetteer() *Gazetteer {
	return defaultGazetteer()
}

// NewGazetteer builds a gazetteer from the compiled-in airport table.
func NewGazetteer() *Gazetteer {
	g := &Gazetteer{
		airports:  airportTable,
		nameIndex: make(map[string][]int),
		codeIndex: make(map[string]int, len(airportTable)),
		cellIndex: make(map[s2.CellID][]int),
	}
	for i, a := range g.airports {
		g.codeIndex[a.Code] = i
		g.indexName(a.City, i)
		g.indexName(a.City+" "+a.Country, i)
		g.indexName(a.Name, i)
		for _, alt := range strings.Split(a.CityAlt, ",") {
			if alt = strings.TrimSpace(alt); alt != "" {
				g.indexName(alt, i)
			}
		}
		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(a.Latitude, a.Longitude)).Parent(s2CellLevel)
		g.cellIndex[cell] = append(g.cellIndex[cell], i)
	}

	g.fallbackKeys = make([]string, 0, len(g.nameIndex))
	for key := range g.nameIndex {
		g.fallbackKeys = append(g.fallbackKeys, key)
	}
	sort.Slice(g.fallbackKeys, func(i, j int) bool {
		a, b := g.fallbackKeys[i], g.fallbackKeys[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return g
}

func (g *Gazetteer) indexName(name string, idx int) {
	key := NormalizeQuery(name)
	if key == "" {
		return
	}
	g.nameIndex[key] = append(g.nameIndex[key], idx)
}

// bestOf picks one airport from a set of indices sharing a key: the primary
// airport (lowest Rank) wins, code order breaking ties. This is the
// major-airport preference for multi-airport cities.
func (g *Gazetteer) bestOf(indices []int) (Airport, bool) {
	if len(indices) == 0 {
		return Airport{}, false
	}
	best := g.airports[indices[0]]
	for _, idx := range indices[1:] {
		a := g.airports[idx]
		if a.Rank < best.Rank || (a.Rank == best.Rank && a.Code < best.Code) {
			best = a
		}
	}
	return best, true
}

// LookupExact resolves a place name against the index without any fallback.
// Only exact-key hits qualify as high-confidence static matches.
func (g *Gazetteer) LookupExact(name string) (Airport, bool) {
	return g.bestOf(g.nameIndex[NormalizeQuery(name)])
}

// Lookup resolves a place name, trying the exact index first and then the
// best-effort fallbacks: substring containment either way, then an edit
// distance of one, then ranked subsequence matching. Fallback hits are
// inherently weaker than exact hits; callers that need certainty should use
// LookupExact.
func (g *Gazetteer) Lookup(name string) (Airport, bool) {
	q := NormalizeQuery(name)
	if q == "" {
		return Airport{}, false
	}
	if runes := []rune(q); len(runes) > maxLookupInputLen {
		q = string(runes[:maxLookupInputLen])
	}

	if a, ok := g.bestOf(g.nameIndex[q]); ok {
		return a, true
	}
	if len(q) < minFallbackLen {
		return Airport{}, false
	}

	// Substring containment, first match wins in fallbackKeys order.
	for _, key := range g.fallbackKeys {
		if strings.Contains(key, q) || (len(key) >= minFallbackLen && strings.Contains(q, key)) {
			return g.bestOf(g.nameIndex[key])
		}
	}

	// Single-edit typo tolerance.
	for _, key := range g.fallbackKeys {
		if abs(len(key)-len(q)) <= 1 && levenshtein.ComputeDistance(q, key) <= 1 {
			return g.bestOf(g.nameIndex[key])
		}
	}

	// Ranked subsequence match over the same ordered key list. fuzzy's
	// scores are deterministic, and fallbackKeys order breaks score ties.
	if matches := fuzzy.Find(q, g.fallbackKeys); len(matches) > 0 {
		return g.bestOf(g.nameIndex[matches[0].Str])
	}
	return Airport{}, false
}

// ByCode returns the airport with the given IATA code.
func (g *Gazetteer) ByCode(code string) (Airport, bool) {
	idx, ok := g.codeIndex[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Airport{}, false
	}
	return g.airports[idx], true
}

// pairSeparators split a two-place query into its sides. The spaced hyphen
// form avoids cutting names like "dallas-fort worth".
var pairSeparators = []string{" to ", "->", "→", " - ", " – "}

// SplitPair divides a free-text query into origin and destination halves if a
// recognized separator is present.
func SplitPair(query string) (origin, destination string, ok bool) {
	q := strings.TrimSpace(query)
	for _, sep := range pairSeparators {
		if i := indexFold(q, sep); i > 0 {
			return strings.TrimSpace(q[:i]), strings.TrimSpace(q[i+len(sep):]), true
		}
	}
	return "", "", false
}

// indexFold returns the byte offset of the first case-insensitive occurrence
// of sep in s, or -1. Scanning s itself keeps offsets valid even when
// lowercasing would change the string's byte length (e.g. "İ").
func indexFold(s, sep string) int {
	for i := 0; i+len(sep) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sep)], sep) {
			return i
		}
	}
	return -1
}

// NearestAirport returns the airport closest to the given point, along with
// the great-circle distance in kilometers.
func (g *Gazetteer) NearestAirport(lat, lng float64) (Airport, float64) {
	point := s2.LatLngFromDegrees(lat, lng)
	cell := s2.CellIDFromLatLng(point).Parent(s2CellLevel)

	// Copy before appending: appending into the slice stored in cellIndex
	// would write its spare capacity, racing with concurrent lookups of
	// the same cell.
	candidates := append([]int(nil), g.cellIndex[cell]...)
	for _, n := range cell.EdgeNeighbors() {
		candidates = append(candidates, g.cellIndex[n]...)
	}
	// Sparse table: a point over open ocean can miss every indexed cell,
	// so fall back to scanning the whole table.
	if len(candidates) == 0 {
		candidates = make([]int, len(g.airports))
		for i := range g.airports {
			candidates[i] = i
		}
	}

	best := -1
	var bestDist s1.Angle
	for _, idx := range candidates {
		a := g.airports[idx]
		d := point.Distance(s2.LatLngFromDegrees(a.Latitude, a.Longitude))
		if best < 0 || d < bestDist {
			best = idx
			bestDist = d
		}
	}
	return g.airports[best], bestDist.Radians() * earthRadiusKm
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
