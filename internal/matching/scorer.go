// File: internal/matching/scorer.go
package matching

import (
	"math"
	"strings"
	"time"
)

// Component weights of the similarity score. The weights sum to 100, so the
// final score is a percentage of a perfect match.
const (
	CategoryWeight        = 30
	NameContainmentWeight = 25
	NamePartialWeight     = 15
	DescriptionWeightCap  = 20
	DescriptionWordWeight = 2
	LocationWeight        = 15
	DateCloseWeight       = 10
	DateNearWeight        = 5
	DateFarWeight         = 2
)

// Date proximity buckets, in days between the loss and the find.
const (
	dateCloseDays = 1
	dateNearDays  = 7
	dateFarDays   = 14
)

// AcceptanceThreshold is the minimum score for a candidate pairing to be
// recorded as a match.
const AcceptanceThreshold = 40.0

const dateLayout = "2006-01-02"

// Candidate carries the fields of one report side that participate in scoring.
type Candidate struct {
	ItemName    string
	Category    string
	Description string
	Location    string
	Date        string
}

// Score computes the similarity between a lost report and a found report as a
// percentage, rounded to two decimal places. Scoring is symmetric except for
// the partial-name rule, which only looks for lost-name words inside the
// found name: people describe what they lost more precisely than what they
// picked up.
func Score(lost, found Candidate) float64 {
	total := 0.0

	lostCategory := strings.ToLower(strings.TrimSpace(lost.Category))
	foundCategory := strings.ToLower(strings.TrimSpace(found.Category))
	if lostCategory != "" && lostCategory == foundCategory {
		total += CategoryWeight
	}

	lostName := strings.ToLower(strings.TrimSpace(lost.ItemName))
	foundName := strings.ToLower(strings.TrimSpace(found.ItemName))
	if lostName != "" && foundName != "" {
		switch {
		case strings.Contains(lostName, foundName) || strings.Contains(foundName, lostName):
			total += NameContainmentWeight
		case anyWordContained(lostName, foundName):
			total += NamePartialWeight
		}
	}

	lostDesc := strings.ToLower(strings.TrimSpace(lost.Description))
	foundDesc := strings.ToLower(strings.TrimSpace(found.Description))
	if lostDesc != "" && foundDesc != "" {
		common := commonWordCount(lostDesc, foundDesc)
		total += math.Min(DescriptionWeightCap, float64(common*DescriptionWordWeight))
	}

	lostLoc := strings.ToLower(strings.TrimSpace(lost.Location))
	foundLoc := strings.ToLower(strings.TrimSpace(found.Location))
	if lostLoc != "" && foundLoc != "" {
		if strings.Contains(lostLoc, foundLoc) || strings.Contains(foundLoc, lostLoc) {
			total += LocationWeight
		}
	}

	total += float64(dateProximityScore(lost.Date, found.Date))

	// Weights sum to 100, so total is already a percentage.
	return math.Round(total*100) / 100
}

// anyWordContained reports whether any whitespace-separated word of a appears
// as a substring of b.
func anyWordContained(a, b string) bool {
	for _, word := range strings.Fields(a) {
		if strings.Contains(b, word) {
			return true
		}
	}
	return false
}

// commonWordCount counts distinct words shared by the two descriptions.
func commonWordCount(a, b string) int {
	wordsA := make(map[string]struct{})
	for _, word := range strings.Fields(a) {
		wordsA[word] = struct{}{}
	}

	seen := make(map[string]struct{})
	count := 0
	for _, word := range strings.Fields(b) {
		if _, inA := wordsA[word]; !inA {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		count++
	}
	return count
}

// dateProximityScore scores how close the loss and find dates are. A date
// that fails to parse contributes nothing rather than rejecting the pair.
func dateProximityScore(lostDate, foundDate string) int {
	lost, err := time.Parse(dateLayout, strings.TrimSpace(lostDate))
	if err != nil {
		return 0
	}
	found, err := time.Parse(dateLayout, strings.TrimSpace(foundDate))
	if err != nil {
		return 0
	}

	diff := found.Sub(lost)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff.Hours() / 24)

	switch {
	case days <= dateCloseDays:
		return DateCloseWeight
	case days <= dateNearDays:
		return DateNearWeight
	case days <= dateFarDays:
		return DateFarWeight
	default:
		return 0
	}
}
