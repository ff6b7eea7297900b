package records

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lms-records/internal/domain"
)

// Titles that already mention a category keep their own wording.
var embeddedCategories = []string{"tech skills", "tech_skills", "soft skills", "soft_skills"}

// LessonName builds the display name for a lesson: the category prefix (unless
// the title already carries one), truncated so that the optional " (N)"
// position suffix still fits into domain.MaxNameLength characters.
func LessonName(cat domain.Category, title string, index *int) string {
	suffix := ""
	if index != nil {
		suffix = fmt.Sprintf(" (%d)", *index+1)
	}

	base := cat.Prefix() + " " + title
	if hasEmbeddedCategory(title) {
		base = title
	}

	return TruncateChars(base, domain.MaxNameLength-utf8.RuneCountInString(suffix)) + suffix
}

// Normalize maps a parsed entry to a lesson.
func Normalize(e domain.RawEntry) domain.Lesson {
	return domain.Lesson{
		Name: LessonName(e.Category, e.Title, e.Index),
		Link: e.Link,
	}
}

func hasEmbeddedCategory(title string) bool {
	lower := strings.ToLower(title)
	for _, c := range embeddedCategories {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// TruncateChars returns at most max characters of s, cutting on a rune boundary.
func TruncateChars(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
