// Package records turns the hand-written lesson list into the lessons that get
// uploaded to the LMS: parsing, name normalization and duplicate resolution.
package records

import (
	"strings"

	"lms-records/internal/domain"
)

// Parse splits input into tech skills entries followed by soft skills entries.
//
// The two groups are separated by the first blank line. Each lesson is a
// "title<TAB>link" line; several links may be given separated by spaces, or on
// following lines that start with a tab. Lines without a tab or without a link
// are ignored.
func Parse(input string) []domain.RawEntry {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	// a line starting with a tab continues the link list of the previous one
	input = strings.ReplaceAll(input, "\n\t", " ")

	tech, soft, _ := strings.Cut(input, "\n\n")

	var out []domain.RawEntry
	out = appendSegment(out, tech, domain.TechSkills)
	out = appendSegment(out, soft, domain.SoftSkills)
	return out
}

func appendSegment(out []domain.RawEntry, segment string, cat domain.Category) []domain.RawEntry {
	for _, line := range strings.Split(segment, "\n") {
		title, linkField, ok := strings.Cut(line, "\t")
		if !ok || linkField == "" {
			continue
		}

		if !strings.Contains(linkField, " ") {
			out = append(out, domain.RawEntry{Category: cat, Title: title, Link: linkField})
			continue
		}

		i := 0
		for _, link := range strings.Split(linkField, " ") {
			if link == "" {
				continue
			}
			idx := i
			out = append(out, domain.RawEntry{Category: cat, Title: title, Link: link, Index: &idx})
			i++
		}
	}
	return out
}
