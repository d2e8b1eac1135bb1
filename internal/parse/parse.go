// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns extracted page text into question records. The
// question/image association is positional (image index proximity within
// the page), not a layout-aware match, and the parser never fails:
// unrecognizable input degrades into best-effort records.
// Implements: prd002-question-parsing (R1-R3).
package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/exam-extract/pkg/types"
)

// questionLead matches exam-style question numbering at the start of a
// line: "1.", "12)", "Q3:", "a)" and similar.
var questionLead = regexp.MustCompile(`^(?:[Qq]?\d{1,3}|[A-Za-z])[.):\-]\s+`)

// questionKeywords mark a line as a question lead when no numbering is
// present.
var questionKeywords = []string{"question", "what", "which", "find", "solve", "calculate"}

// Questions scans the text of one page and apportions the page's images
// among the questions it finds. A line matching a question lead starts a
// new question; other non-blank lines continue the current one. Text before
// the first lead is ignored.
func Questions(pageNum int, text string, images []string) []types.QuestionRecord {
	texts := splitQuestions(text)

	// A page with images but no recognizable question still yields one
	// record, with empty question text, so the images are not lost.
	if len(texts) == 0 {
		if len(images) == 0 {
			return nil
		}
		texts = []string{""}
	}

	records := make([]types.QuestionRecord, len(texts))
	for i, q := range texts {
		share := apportion(images, i, len(texts))
		rec := types.QuestionRecord{
			Question:     q,
			PageNumber:   pageNum,
			OptionImages: []string{},
		}
		if len(share) > 0 {
			rec.Images = share[0]
			rec.OptionImages = share[1:]
		}
		records[i] = rec
	}
	return records
}

// splitQuestions breaks page text into per-question strings at question
// leads, joining continuation lines with single spaces.
func splitQuestions(text string) []string {
	var texts []string
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isQuestionLead(line) {
			if current != "" {
				texts = append(texts, current)
			}
			current = line
			continue
		}
		if current != "" {
			current += " " + line
		}
	}
	if current != "" {
		texts = append(texts, current)
	}
	return texts
}

// apportion returns the contiguous share of images belonging to question i
// of n. Shares follow image index order and are front-loaded, so when there
// are fewer images than questions the earlier questions get them.
func apportion(images []string, i, n int) []string {
	m := len(images)
	lo := (i*m + n - 1) / n
	hi := ((i+1)*m + n - 1) / n
	return images[lo:hi]
}

func isQuestionLead(line string) bool {
	if questionLead.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range questionKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}
