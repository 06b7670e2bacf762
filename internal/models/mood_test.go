package models

import (
	"sort"
	"testing"
)

func TestValence(t *testing.T) {
	tests := []struct {
		mood string
		want MoodValence
	}{
		{"great", MoodPositive},
		{"calm", MoodPositive},
		{"okay", MoodNeutral},
		{"tired", MoodNegative},
		{"drained", MoodNegative},
		{"  Calm ", MoodPositive},    // trimmed and case-folded
		{"melancholy", MoodUnclassified},
		{"", MoodUnclassified},
	}
	for _, tt := range tests {
		if got := Valence(tt.mood); got != tt.want {
			t.Errorf("Valence(%q) = %s, want %s", tt.mood, got, tt.want)
		}
	}
}

func TestMoodTagsSortedAndClassified(t *testing.T) {
	tags := MoodTags()
	if len(tags) == 0 {
		t.Fatal("no mood tags")
	}
	if !sort.StringsAreSorted(tags) {
		t.Error("mood tags should be sorted")
	}
	for _, tag := range tags {
		if Valence(tag) == MoodUnclassified {
			t.Errorf("suggested tag %q has no valence", tag)
		}
	}
}
