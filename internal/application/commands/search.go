package commands

import (
	"context"
	"sort"
	"strings"
)

// MinQueryLength is the shortest query SearchCommand runs
const MinQueryLength = 2

// SearchResult is a note matching a query, with a relevance score
type SearchResult struct {
	NoteID      string
	Name        string
	SectionID   string
	SectionName string
	MatchedText string
	Score       int
}

// SearchCommand searches note names and content with fuzzy matching
type SearchCommand struct {
	notebook Notebook
	Query    string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(notebook Notebook, query string) *SearchCommand {
	return &SearchCommand{
		notebook: notebook,
		Query:    query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if len([]rune(query)) < MinQueryLength {
		return nil, nil
	}

	var results []SearchResult
	for _, s := range containers(c.notebook.Snapshot()) {
		for _, n := range s.Notes {
			line := matchingLine(n.Content, query)
			score := max(FuzzyScore(n.Name, query), FuzzyScore(line, query))
			if score == 0 {
				continue
			}
			results = append(results, SearchResult{
				NoteID:      n.ID,
				Name:        n.Name,
				SectionID:   s.ID,
				SectionName: s.Name,
				MatchedText: line,
				Score:       score,
			})
		}
	}

	// stable keeps notebook order among equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// matchingLine returns the first content line containing query, or the first
// non-empty line
func matchingLine(content, query string) string {
	lower := strings.ToLower(query)
	first := ""
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if strings.Contains(strings.ToLower(line), lower) {
			return line
		}
	}
	return first
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	t := []rune(strings.ToLower(target))
	q := []rune(strings.ToLower(query))

	if len(q) == 0 {
		return 0
	}

	// substring matches rank above any fuzzy match
	if strings.Contains(string(t), string(q)) {
		score := 100
		if strings.HasPrefix(string(t), string(q)) {
			score += 50
		}
		return score
	}

	// fuzzy match: chars of query appear in order
	score := 0
	qi := 0
	prev := -1

	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		if prev == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15 // start of text
		}
		if i > 0 && strings.ContainsRune(" .-_>", t[i-1]) {
			score += 10 // word start
		}
		score++
		prev = i
		qi++
	}

	if qi == len(q) {
		return score
	}
	return 0
}
