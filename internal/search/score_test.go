// file: internal/search/score_test.go
// version: 1.1.0
// guid: aeb3a80a-b4fd-4619-9632-7caa76727982

package search

import (
	"math/rand"
	"strings"
	"testing"
)

func TestFieldScore_SubstringHit(t *testing.T) {
	// Substring at index 0 of the lower-cased name gets the full position
	// bonus.
	score := FieldScore("ethiopia", "Ethiopian Yirgacheffe")
	if score < 0.9 || score > 1.0 {
		t.Errorf("FieldScore substring hit = %v, want [0.9, 1.0]", score)
	}

	// A match later in the field scores lower than one at the start.
	early := FieldScore("ethiopia", "Ethiopian Yirgacheffe")
	late := FieldScore("yirga", "Ethiopian Yirgacheffe")
	if late >= early {
		t.Errorf("position bonus inverted: early=%v late=%v", early, late)
	}
	if late < 0.9 {
		t.Errorf("substring hit must still score >= 0.9, got %v", late)
	}
}

func TestFieldScore_FuzzyPath(t *testing.T) {
	// Transposed characters plus a missing trailing letter: not a
	// substring, so only the similarity path can score it.
	score := FieldScore("Ethiopina Yirgacheff", "Ethiopian Yirgacheffe")
	if score < 0.6 {
		t.Errorf("near-miss fuzzy match = %v, want >= 0.6", score)
	}
	if score >= 0.9 {
		t.Errorf("fuzzy match must not reach substring range, got %v", score)
	}
}

func TestFieldScore_SubstringPrecedence(t *testing.T) {
	// A query that is a substring of the text takes the substring path
	// even when it is also a near-miss of the whole text.
	if score := FieldScore("Ethiopian Yirgacheff", "Ethiopian Yirgacheffe"); score < 0.9 {
		t.Errorf("substring query must score in substring range, got %v", score)
	}
}

func TestFieldScore_Cutoff(t *testing.T) {
	if score := FieldScore("xyzxyzxyz", "completely unrelated words"); score != 0 {
		t.Errorf("sub-cutoff similarity must score exactly 0, got %v", score)
	}
}

func TestFieldScore_Degenerate(t *testing.T) {
	if score := FieldScore("", "anything"); score != 0 {
		t.Errorf("empty query scored %v, want 0", score)
	}
	if score := FieldScore("anything", ""); score != 0 {
		t.Errorf("empty text scored %v, want 0", score)
	}
}

func TestFieldScore_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randString := func(maxLen int) string {
		n := rng.Intn(maxLen)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(byte('a' + rng.Intn(6)))
		}
		return b.String()
	}

	for i := 0; i < 1000; i++ {
		q, txt := randString(10), randString(30)
		score := FieldScore(q, txt)
		if score < 0 || score > 1 {
			t.Fatalf("FieldScore(%q, %q) = %v out of [0, 1]", q, txt, score)
		}
		if q != "" && txt != "" && strings.Contains(strings.ToLower(txt), strings.ToLower(q)) && score < 0.9 {
			t.Fatalf("substring hit scored %v < 0.9 for (%q, %q)", score, q, txt)
		}
	}
}

func TestWordCoverage(t *testing.T) {
	text := "bright and floral light roast with citrus notes"
	tests := []struct {
		query string
		want  bool
	}{
		{"light floral", true},          // both words present
		{"ligt florral", true},          // small misspellings tolerated
		{"citrus chocolate caramel", false}, // 1 of 3 matched, below 70%
		{"chocolate", false},
		{"a of", false}, // nothing survives the length filter
		{"", false},
	}
	for _, tt := range tests {
		if got := WordCoverage(tt.query, text); got != tt.want {
			t.Errorf("WordCoverage(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
