package extract

import "strings"

// stopWords are non-skill tokens filtered at every extraction stage:
// articles, prepositions, pronouns, and common resume verbs.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "nor": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "from": true, "by": true, "about": true,
	"as": true, "into": true, "over": true, "under": true,
	"i": true, "me": true, "my": true, "we": true, "our": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true,
	"work": true, "worked": true, "working": true,
	"use": true, "used": true, "using": true,
	"made": true, "make": true, "making": true,
	"team": true, "company": true, "project": true, "projects": true,
	"year": true, "years": true, "month": true, "months": true,
	"experience": true, "skills": true, "responsible": true,
}

// IsStopWord reports whether token is a filtered non-skill word.
func IsStopWord(token string) bool {
	return stopWords[strings.ToLower(strings.TrimSpace(token))]
}
