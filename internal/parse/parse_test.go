// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"reflect"
	"testing"
)

func TestQuestionsBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "numbered questions split at leads",
			text: "1. What is the next figure in the sequence?\n2. Count the shapes.",
			want: []string{
				"1. What is the next figure in the sequence?",
				"2. Count the shapes.",
			},
		},
		{
			name: "continuation lines joined with spaces",
			text: "3) A triangle has sides 3, 4\nand 5. Compute its area.\n4) Next one.",
			want: []string{
				"3) A triangle has sides 3, 4 and 5. Compute its area.",
				"4) Next one.",
			},
		},
		{
			name: "keyword lead without numbering",
			text: "Which of the following is prime?\nChoose one option.",
			want: []string{"Which of the following is prime? Choose one option."},
		},
		{
			name: "Q-prefixed numbering",
			text: "Q1: Solve for x.\nQ2: Solve for y.",
			want: []string{"Q1: Solve for x.", "Q2: Solve for y."},
		},
		{
			name: "preamble before first lead ignored",
			text: "INSTRUCTIONS: answer all parts.\n1. Find the value of x.",
			want: []string{"1. Find the value of x."},
		},
		{
			name: "blank lines skipped",
			text: "1. First part\n\n\ncontinued here.",
			want: []string{"1. First part continued here."},
		},
		{
			name: "no recognizable question",
			text: "page intentionally left blank",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Questions(1, tt.text, nil)
			var got []string
			for _, r := range records {
				got = append(got, r.Question)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("questions = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuestionsImageApportioning(t *testing.T) {
	imgs := func(n int) []string {
		paths := make([]string, n)
		for i := range paths {
			paths[i] = string(rune('a'+i)) + ".png"
		}
		return paths
	}

	tests := []struct {
		name        string
		text        string
		images      []string
		wantPrimary []string // primary image per record, "" for none
		wantOptions [][]string
	}{
		{
			name:        "images split between two questions",
			text:        "1. First?\n2. Second?",
			images:      imgs(4),
			wantPrimary: []string{"a.png", "c.png"},
			wantOptions: [][]string{{"b.png"}, {"d.png"}},
		},
		{
			name:        "single question takes everything",
			text:        "1. Only question.",
			images:      imgs(3),
			wantPrimary: []string{"a.png"},
			wantOptions: [][]string{{"b.png", "c.png"}},
		},
		{
			name:        "more questions than images front-loads",
			text:        "1. First?\n2. Second?\n3. Third?",
			images:      imgs(1),
			wantPrimary: []string{"a.png", "", ""},
			wantOptions: [][]string{{}, {}, {}},
		},
		{
			name:        "no questions yields one record holding all images",
			text:        "diagram page, no prompts",
			images:      imgs(2),
			wantPrimary: []string{"a.png"},
			wantOptions: [][]string{{"b.png"}},
		},
		{
			name:        "no images yields empty image fields",
			text:        "1. What is 2+2?",
			images:      nil,
			wantPrimary: []string{""},
			wantOptions: [][]string{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Questions(7, tt.text, tt.images)

			if len(records) != len(tt.wantPrimary) {
				t.Fatalf("got %d records, want %d", len(records), len(tt.wantPrimary))
			}
			for i, r := range records {
				if r.PageNumber != 7 {
					t.Errorf("record %d page = %d, want 7", i, r.PageNumber)
				}
				if r.Images != tt.wantPrimary[i] {
					t.Errorf("record %d primary = %q, want %q", i, r.Images, tt.wantPrimary[i])
				}
				if !reflect.DeepEqual(r.OptionImages, tt.wantOptions[i]) {
					t.Errorf("record %d options = %v, want %v", i, r.OptionImages, tt.wantOptions[i])
				}
			}
		})
	}
}

func TestQuestionsNoQuestionsNoImages(t *testing.T) {
	if got := Questions(1, "", nil); got != nil {
		t.Errorf("expected no records, got %v", got)
	}
}

func TestApportionCoversAllImages(t *testing.T) {
	images := []string{"a", "b", "c", "d", "e"}
	for n := 1; n <= 7; n++ {
		total := 0
		prevHi := 0
		for i := 0; i < n; i++ {
			share := apportion(images, i, n)
			total += len(share)
			// Shares are contiguous and ordered.
			if len(share) > 0 {
				lo := (i*len(images) + n - 1) / n
				if lo < prevHi {
					t.Errorf("n=%d: share %d overlaps previous", n, i)
				}
				prevHi = lo + len(share)
			}
		}
		if total != len(images) {
			t.Errorf("n=%d: apportioned %d images, want %d", n, total, len(images))
		}
	}
}
