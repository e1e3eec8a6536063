package models

import "testing"

func TestSatisfactionLabel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 0, want: "worst"},
		{level: 1, want: "bad"},
		{level: 2, want: "okay"},
		{level: 3, want: "good"},
		{level: 4, want: "best"},
		{level: -1, want: ""},
		{level: 5, want: ""},
	}

	for _, testCase := range tests {
		if got := SatisfactionLabel(testCase.level); got != testCase.want {
			t.Fatalf("SatisfactionLabel(%d) = %q, want %q", testCase.level, got, testCase.want)
		}
	}
}

func TestIsValidSatisfactionLevel(t *testing.T) {
	for level := SatisfactionMin; level <= SatisfactionMax; level++ {
		if !IsValidSatisfactionLevel(level) {
			t.Fatalf("expected level %d to be valid", level)
		}
	}
	if IsValidSatisfactionLevel(-1) || IsValidSatisfactionLevel(5) {
		t.Fatal("expected out-of-range levels to be invalid")
	}
}
