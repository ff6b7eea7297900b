package records

import (
	"fmt"
	"unicode/utf8"

	"lms-records/internal/domain"
)

// ResolveDuplicates appends " (N)" to the N-th occurrence (N >= 2) of every
// name, re-truncating so the name stays within domain.MaxNameLength. First
// occurrences are left alone.
//
// Names that only collide after this re-truncation are not detected.
func ResolveDuplicates(lessons []domain.Lesson) {
	counts := make(map[string]int, len(lessons))
	for i := range lessons {
		name := lessons[i].Name
		counts[name]++
		count := counts[name]
		if count < 2 {
			continue
		}
		marker := fmt.Sprintf(" (%d)", count)
		lessons[i].Name = TruncateChars(name, domain.MaxNameLength-utf8.RuneCountInString(marker)) + marker
	}
}

// Build runs the whole pipeline: parse, normalize every entry, then resolve
// duplicate names across the resulting list.
func Build(input string) []domain.Lesson {
	entries := Parse(input)
	lessons := make([]domain.Lesson, 0, len(entries))
	for _, e := range entries {
		lessons = append(lessons, Normalize(e))
	}
	ResolveDuplicates(lessons)
	return lessons
}
