// Package geo provides distance lookups between free-text locations.
package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/textutil"
)

// ErrUnknownLocation is returned when a location cannot be resolved.
var ErrUnknownLocation = errors.New("unknown location")

// DistanceProvider returns the distance in kilometres between two locations.
type DistanceProvider interface {
	Distance(ctx context.Context, from, to string) (float64, error)
}

// ProviderFunc adapts a function to the DistanceProvider interface.
type ProviderFunc func(ctx context.Context, from, to string) (float64, error)

// Distance calls f(ctx, from, to).
func (f ProviderFunc) Distance(ctx context.Context, from, to string) (float64, error) {
	return f(ctx, from, to)
}

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two points.
func Haversine(a, b taxonomy.Coordinates) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Gazetteer resolves locations against a fixed city table and measures
// great-circle distance. It is read-only and safe for concurrent use.
type Gazetteer struct {
	cities map[string]taxonomy.Coordinates
	names  []string // longest first, so "new york" wins over "york"
}

// NewGazetteer returns a Gazetteer over the embedded city table.
func NewGazetteer() *Gazetteer {
	return NewGazetteerFrom(taxonomy.Default().Cities)
}

// NewGazetteerFrom returns a Gazetteer over cities. Keys are normalized.
func NewGazetteerFrom(cities map[string]taxonomy.Coordinates) *Gazetteer {
	g := &Gazetteer{cities: make(map[string]taxonomy.Coordinates, len(cities))}
	for name, c := range cities {
		name = textutil.Normalize(name)
		g.cities[name] = c
		g.names = append(g.names, name)
	}
	sort.Slice(g.names, func(i, j int) bool {
		if len(g.names[i]) != len(g.names[j]) {
			return len(g.names[i]) > len(g.names[j])
		}
		return g.names[i] < g.names[j]
	})
	return g
}

// Resolve returns the coordinates of the first known city named in location.
func (g *Gazetteer) Resolve(location string) (taxonomy.Coordinates, error) {
	normalized := textutil.Normalize(location)
	for _, name := range g.names {
		if textutil.ContainsTerm(normalized, name) {
			return g.cities[name], nil
		}
	}
	return taxonomy.Coordinates{}, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
}

// Distance implements DistanceProvider.
func (g *Gazetteer) Distance(ctx context.Context, from, to string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a, err := g.Resolve(from)
	if err != nil {
		return 0, err
	}
	b, err := g.Resolve(to)
	if err != nil {
		return 0, err
	}
	return Haversine(a, b), nil
}

// Static is a table-backed DistanceProvider for tests and fixed deployments.
// Populate it with Set before sharing it between goroutines.
type Static struct {
	distances map[[2]string]float64
}

// NewStatic returns an empty Static provider.
func NewStatic() *Static {
	return &Static{distances: make(map[[2]string]float64)}
}

// Set records a symmetric distance between from and to.
func (s *Static) Set(from, to string, km float64) *Static {
	s.distances[[2]string{textutil.Normalize(from), textutil.Normalize(to)}] = km
	s.distances[[2]string{textutil.Normalize(to), textutil.Normalize(from)}] = km
	return s
}

// Distance implements DistanceProvider.
func (s *Static) Distance(_ context.Context, from, to string) (float64, error) {
	km, ok := s.distances[[2]string{textutil.Normalize(from), textutil.Normalize(to)}]
	if !ok {
		return 0, fmt.Errorf("%w: %q to %q", ErrUnknownLocation, from, to)
	}
	return km, nil
}
