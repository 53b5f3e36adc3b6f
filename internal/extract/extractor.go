// Package extract derives candidate skills from free resume text. It
// combines dictionary matching with optional AI augmentation behind a
// mandatory fallback chain, so extraction never fails outright.
package extract

import (
	"context"
	"log"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// proficiencyWindow is the number of characters inspected on each side of
// a skill occurrence when inferring proficiency.
const proficiencyWindow = 50

// DefaultConfidenceThreshold is the minimum AI token-classification score
// for a candidate to be merged into the result set.
const DefaultConfidenceThreshold = 0.6

// Expertise-indicator patterns, tested against the window around each
// skill occurrence. Checked strongest first.
var (
	expertPattern   = regexp.MustCompile(`(?i)\b(senior|expert|architect|principal|lead)\b`)
	advancedPattern = regexp.MustCompile(`(?i)\b(experienced|proficient|advanced|extensive|strong)\b`)
	beginnerPattern = regexp.MustCompile(`(?i)\b(basic|beginner|familiar|learning|exposure)\b`)
)

// Candidate is a raw token proposed by the AI augmentation backend.
type Candidate struct {
	Token string
	Score float64
}

// Augmenter classifies skill tokens in free text. Implementations may
// fail or hang; the extractor treats any error as "no augmentation".
type Augmenter interface {
	ClassifySkills(ctx context.Context, text string) ([]Candidate, error)
}

// Extractor scans text against a skill dictionary, with optional AI
// augmentation. The zero threshold means DefaultConfidenceThreshold.
type Extractor struct {
	dictionary []string
	sweep      []string
	augmenter  Augmenter
	threshold  float64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithAugmenter attaches an AI augmentation backend.
func WithAugmenter(a Augmenter) Option {
	return func(e *Extractor) { e.augmenter = a }
}

// WithThreshold overrides the AI confidence threshold.
func WithThreshold(t float64) Option {
	return func(e *Extractor) { e.threshold = t }
}

// WithSweepDictionary sets the full dictionary used by the empty-result
// fallback sweep. Defaults to the primary dictionary.
func WithSweepDictionary(skills []string) Option {
	return func(e *Extractor) { e.sweep = skills }
}

// New creates an extractor over the given industry dictionary.
func New(dictionary []string, opts ...Option) *Extractor {
	e := &Extractor{
		dictionary: dictionary,
		sweep:      dictionary,
		threshold:  DefaultConfidenceThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the set of skills found in text. Output order is
// unspecified; uniqueness is enforced by lowercased name, with higher
// precedence sources overwriting lower ones. Extract never fails: any
// internal error degrades to a simpler method.
func (e *Extractor) Extract(ctx context.Context, text string) []types.Skill {
	found := make(map[string]types.Skill)
	lower := strings.ToLower(text)

	// Dictionary scan is the authoritative floor.
	for _, name := range e.dictionary {
		if IsStopWord(name) {
			continue
		}
		idx := strings.Index(lower, strings.ToLower(name))
		if idx < 0 {
			continue
		}
		merge(found, types.Skill{
			Name:        name,
			Proficiency: inferProficiency(text, idx, len(name)),
			Source:      types.SourceKeyword,
		})
	}

	// Optional AI augmentation. Errors never propagate.
	if e.augmenter != nil {
		candidates, err := e.augmenter.ClassifySkills(ctx, text)
		if err != nil {
			log.Printf("skill augmentation unavailable, using dictionary results: %v", err)
		} else {
			for _, c := range candidates {
				if !e.acceptCandidate(c) {
					continue
				}
				prof := types.ProficiencyIntermediate
				if idx := strings.Index(lower, strings.ToLower(c.Token)); idx >= 0 {
					prof = inferProficiency(text, idx, len(c.Token))
				}
				merge(found, types.Skill{
					Name:        c.Token,
					Proficiency: prof,
					Source:      types.SourceAI,
					Confidence:  c.Score,
				})
			}
		}
	}

	// Final fallback: full dictionary sweep.
	if len(found) == 0 {
		for _, name := range e.sweep {
			if IsStopWord(name) {
				continue
			}
			if idx := strings.Index(lower, strings.ToLower(name)); idx >= 0 {
				merge(found, types.Skill{
					Name:        name,
					Proficiency: inferProficiency(text, idx, len(name)),
					Source:      types.SourceDictionary,
				})
			}
		}
	}

	skills := make([]types.Skill, 0, len(found))
	for _, s := range found {
		skills = append(skills, s)
	}
	return skills
}

// acceptCandidate filters AI tokens: below-threshold scores, one and two
// character tokens, punctuation runs, and stop words are all noise.
func (e *Extractor) acceptCandidate(c Candidate) bool {
	token := strings.TrimSpace(c.Token)
	if len(token) <= 2 || c.Score < e.threshold {
		return false
	}
	if IsStopWord(token) {
		return false
	}
	hasLetter := false
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasLetter = true
			break
		}
	}
	return hasLetter
}

// merge inserts a skill keyed by lowercased name, keeping the entry from
// the higher precedence source when the same skill appears twice.
func merge(found map[string]types.Skill, s types.Skill) {
	key := strings.ToLower(s.Name)
	existing, ok := found[key]
	if !ok || types.SourcePriority(s.Source) > types.SourcePriority(existing.Source) {
		found[key] = s
	}
}

// inferProficiency slices a fixed window around the occurrence at idx and
// tests it against the expertise-indicator patterns.
func inferProficiency(text string, idx, length int) types.Proficiency {
	start := idx - proficiencyWindow
	if start < 0 {
		start = 0
	}
	end := idx + length + proficiencyWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	switch {
	case expertPattern.MatchString(window):
		return types.ProficiencyExpert
	case advancedPattern.MatchString(window):
		return types.ProficiencyAdvanced
	case beginnerPattern.MatchString(window):
		return types.ProficiencyBeginner
	default:
		return types.ProficiencyIntermediate
	}
}
