package domain

// Category tells which half of the input file a lesson came from.
type Category int

const (
	TechSkills Category = iota
	SoftSkills
)

// Prefix is the display prefix the LMS shows in front of lesson names.
func (c Category) Prefix() string {
	switch c {
	case SoftSkills:
		return "Soft skills"
	default:
		return "Tech skills"
	}
}

// RawEntry is one parsed (title, link) pair before its name is normalized.
// Index is set only when the link field of the line held several links;
// it is zero-based.
type RawEntry struct {
	Category Category
	Title    string
	Link     string
	Index    *int
}

// Lesson is the canonical record sent to the LMS. Name never exceeds
// MaxNameLength characters.
type Lesson struct {
	Name string
	Link string
}

// MaxNameLength is the longest lesson name (in characters) the LMS displays.
const MaxNameLength = 70

// RemoteMaterial is one "additional material" already stored in the LMS.
type RemoteMaterial struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
