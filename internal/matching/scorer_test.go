// File: internal/matching/scorer_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_PerfectMatch(t *testing.T) {
	// The description needs at least ten shared words to reach the capped
	// description weight; shorter identical descriptions score below 100.
	desc := "blue jansport backpack with two zippers a water bottle pocket and reflective straps"
	lost := Candidate{
		ItemName:    "Blue Backpack",
		Category:    "Accessories",
		Description: desc,
		Location:    "Student Union",
		Date:        "2024-03-01",
	}
	found := Candidate{
		ItemName:    "Blue Backpack",
		Category:    "Accessories",
		Description: desc,
		Location:    "Student Union",
		Date:        "2024-03-01",
	}

	assert.Equal(t, 100.00, Score(lost, found))
}

func TestScore_NoOverlap(t *testing.T) {
	lost := Candidate{
		ItemName:    "Umbrella",
		Category:    "Other",
		Description: "red polka dots",
		Location:    "Gym",
		Date:        "2024-01-01",
	}
	found := Candidate{
		ItemName:    "Calculator",
		Category:    "Electronics",
		Description: "scientific casio",
		Location:    "Library",
		Date:        "2024-03-01",
	}

	assert.Equal(t, 0.00, Score(lost, found))
}

func TestScore_CategoryIsCaseInsensitive(t *testing.T) {
	lost := Candidate{Category: "electronics", ItemName: "x"}
	found := Candidate{Category: "ELECTRONICS", ItemName: "y"}

	assert.Equal(t, 30.00, Score(lost, found))
}

func TestScore_NameContainmentBothDirections(t *testing.T) {
	// Containment is checked in both directions, so the shorter name may
	// sit on either side.
	shortLost := Candidate{ItemName: "key"}
	longFound := Candidate{ItemName: "car key"}
	assert.Equal(t, 25.00, Score(shortLost, longFound))

	longLost := Candidate{ItemName: "car key"}
	shortFound := Candidate{ItemName: "key"}
	assert.Equal(t, 25.00, Score(longLost, shortFound))
}

func TestScore_NamePartialTokenOverlap(t *testing.T) {
	// "water bottle" is not contained in "steel bottle" (or vice versa),
	// but the word "bottle" appears in the found name.
	lost := Candidate{ItemName: "water bottle"}
	found := Candidate{ItemName: "steel bottle"}

	assert.Equal(t, 15.00, Score(lost, found))
}

func TestScore_PartialNameRuleIsDirectional(t *testing.T) {
	// Only words of the lost name are searched in the found name. Here no
	// lost word appears in the found name, so the pair scores nothing on
	// names even though a found word appears in the lost name.
	lost := Candidate{ItemName: "bag"}
	found := Candidate{ItemName: "handbag strap"}
	assert.Equal(t, 25.00, Score(lost, found), "substring containment still fires both ways")

	lost = Candidate{ItemName: "leather wallet"}
	found = Candidate{ItemName: "purse"}
	assert.Equal(t, 0.00, Score(lost, found))
}

func TestScore_DescriptionOverlapScaling(t *testing.T) {
	lost := Candidate{Description: "black leather wallet"}

	// Two common words: 2 * 2 = 4.
	found := Candidate{Description: "black wallet"}
	assert.Equal(t, 4.00, Score(lost, found))

	// Repeated words in one description only count once.
	found = Candidate{Description: "black black black wallet"}
	assert.Equal(t, 4.00, Score(lost, found))
}

func TestScore_DescriptionContributionIsCapped(t *testing.T) {
	words := "one two three four five six seven eight nine ten eleven twelve"
	lost := Candidate{Description: words}
	found := Candidate{Description: words}

	// Twelve common words would be 24; the cap keeps it at 20.
	assert.Equal(t, 20.00, Score(lost, found))
}

func TestScore_EmptyDescriptionContributesNothing(t *testing.T) {
	lost := Candidate{Description: ""}
	found := Candidate{Description: "black wallet"}

	assert.Equal(t, 0.00, Score(lost, found))
}

func TestScore_LocationSubstringBothDirections(t *testing.T) {
	lost := Candidate{Location: "Library"}
	found := Candidate{Location: "Main Library entrance"}
	assert.Equal(t, 15.00, Score(lost, found))

	lost = Candidate{Location: "Main Library entrance"}
	found = Candidate{Location: "library"}
	assert.Equal(t, 15.00, Score(lost, found))
}

func TestScore_DateProximityBuckets(t *testing.T) {
	tests := []struct {
		name      string
		dateLost  string
		dateFound string
		want      float64
	}{
		{"same day", "2024-01-10", "2024-01-10", 10.00},
		{"one day apart", "2024-01-10", "2024-01-11", 10.00},
		{"found before lost", "2024-01-11", "2024-01-10", 10.00},
		{"within a week", "2024-01-10", "2024-01-17", 5.00},
		{"within two weeks", "2024-01-10", "2024-01-24", 2.00},
		{"beyond two weeks", "2024-01-10", "2024-01-25", 0.00},
		{"unparsable lost date", "not-a-date", "2024-01-10", 0.00},
		{"unparsable found date", "2024-01-10", "10/01/2024", 0.00},
		{"both dates empty", "", "", 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lost := Candidate{Date: tt.dateLost}
			found := Candidate{Date: tt.dateFound}
			assert.Equal(t, tt.want, Score(lost, found))
		})
	}
}

func TestScore_ReferenceExample(t *testing.T) {
	lost := Candidate{
		ItemName:    "iPhone",
		Category:    "Electronics",
		Description: "black iphone with cracked screen",
		Location:    "Library",
		Date:        "2024-01-10",
	}
	found := Candidate{
		ItemName:    "iphone 13",
		Category:    "Electronics",
		Description: "black phone cracked screen found near library",
		Location:    "Main Library entrance",
		Date:        "2024-01-11",
	}

	// category 30 + name 25 ("iphone" contained in "iphone 13") +
	// description 6 (black, cracked, screen) + location 15 + date 10.
	score := Score(lost, found)
	assert.Equal(t, 86.00, score)
	assert.GreaterOrEqual(t, score, AcceptanceThreshold)
}
