package regional

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Source is one external salary-data provider. Weights across the
// configured sources should sum to 1.0.
type Source struct {
	Name   string
	URL    string
	Weight float64
}

// DefaultSources is the standard provider mix for ingestion runs.
// Aggregator data is weighted highest because it already averages many
// postings; the remaining sources temper single-site bias.
var DefaultSources = []Source{
	{Name: "levels-aggregate", URL: "https://www.levels.fyi/t/software-engineer", Weight: 0.40},
	{Name: "glassdoor-index", URL: "https://www.glassdoor.com/Salaries/index.htm", Weight: 0.35},
	{Name: "payscale-survey", URL: "https://www.payscale.com/research/US/Job=Software_Engineer", Weight: 0.25},
}

// ReferenceCity anchors the cost-of-living index at 100.
const ReferenceCity = "New York"

// CityStat is one city's weighted salary observation during blending.
type CityStat struct {
	City        string
	WeightedSum float64
	WeightTotal float64
}

// AvgSalary returns the weight-normalized average for the city.
func (c CityStat) AvgSalary() int {
	if c.WeightTotal == 0 {
		return 0
	}
	return int(c.WeightedSum/c.WeightTotal + 0.5)
}

// UpsertSummary reports the outcome of a bulk profile write.
type UpsertSummary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// ProfileWriter persists blended profiles. The db package provides the
// production implementation.
type ProfileWriter interface {
	BulkUpsert(ctx context.Context, profiles []types.RegionalProfile) (*UpsertSummary, error)
}

// Ingester fetches salary tables from the configured sources, blends
// them into regional profiles, and writes the result.
type Ingester struct {
	sources []Source
	writer  ProfileWriter
	country string

	// fetchPage is swappable for tests.
	fetchPage func(ctx context.Context, url string, opts *fetch.Options) (*fetch.Result, error)
}

// NewIngester creates an ingester over the default source mix.
func NewIngester(writer ProfileWriter) *Ingester {
	return &Ingester{
		sources:   DefaultSources,
		writer:    writer,
		country:   "USA",
		fetchPage: fetch.Page,
	}
}

// WithSources overrides the provider list.
func (g *Ingester) WithSources(sources []Source) *Ingester {
	g.sources = sources
	return g
}

// Run fetches every source concurrently, blends the rows, and upserts
// the resulting profiles. A source that fails is logged and dropped
// from the blend; the run only fails when no source yields data.
func (g *Ingester) Run(ctx context.Context) (*UpsertSummary, error) {
	var mu sync.Mutex
	stats := make(map[string]*CityStat)

	eg, egCtx := errgroup.WithContext(ctx)
	for _, src := range g.sources {
		src := src
		eg.Go(func() error {
			result, err := g.fetchPage(egCtx, src.URL, nil)
			if err != nil {
				log.Printf("regional ingest: source %s failed: %v", src.Name, err)
				return nil
			}
			rows, err := fetch.ParseSalaryTable(result.HTML)
			if err != nil {
				log.Printf("regional ingest: source %s unparseable: %v", src.Name, err)
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, row := range rows {
				key := strings.ToLower(row.City)
				stat, ok := stats[key]
				if !ok {
					stat = &CityStat{City: row.City}
					stats[key] = stat
				}
				stat.WeightedSum += float64(row.AvgSalary) * src.Weight
				stat.WeightTotal += src.Weight
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("regional ingest: no source yielded salary data")
	}

	profiles := Blend(stats, g.country)
	summary, err := g.writer.BulkUpsert(ctx, profiles)
	if err != nil {
		return nil, fmt.Errorf("regional ingest: persist failed: %w", err)
	}
	log.Printf("regional ingest: %d inserted, %d updated, %d skipped",
		summary.Inserted, summary.Updated, summary.Skipped)
	return summary, nil
}

// Blend converts weighted city observations into regional profiles. The
// cost-of-living index is each city's average relative to the reference
// city (fixed at 100); the salary multiplier is always index/100. The
// median is approximated at 90% of the average because the source
// tables only publish means and salary distributions skew high.
func Blend(stats map[string]*CityStat, country string) []types.RegionalProfile {
	referenceAvg := 0
	if ref, ok := stats[strings.ToLower(ReferenceCity)]; ok {
		referenceAvg = ref.AvgSalary()
	}
	if referenceAvg == 0 {
		// No reference observation; fall back to the overall mean so
		// multipliers stay centered near 1.0.
		total, n := 0, 0
		for _, stat := range stats {
			total += stat.AvgSalary()
			n++
		}
		if n > 0 {
			referenceAvg = total / n
		}
	}

	now := time.Now().UTC()
	profiles := make([]types.RegionalProfile, 0, len(stats))
	for _, stat := range stats {
		avg := stat.AvgSalary()
		if avg <= 0 || referenceAvg <= 0 {
			continue
		}
		index := float64(avg) / float64(referenceAvg) * 100
		profiles = append(profiles, types.RegionalProfile{
			Region: types.Region{
				Country: country,
				City:    stat.City,
			},
			CostOfLivingIndex: index,
			SalaryMultiplier:  index / 100,
			MarketData: types.MarketData{
				AverageSalary: avg,
				MedianSalary:  int(float64(avg)*0.9 + 0.5),
				SalaryRange: types.SalaryBands{
					Entry:  int(float64(avg)*0.70 + 0.5),
					Mid:    avg,
					Senior: int(float64(avg)*1.45 + 0.5),
				},
			},
			Metadata: types.ProfileMetadata{
				Source:      "blended",
				LastUpdated: now,
			},
		})
	}
	return profiles
}
