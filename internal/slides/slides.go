// Package slides holds the portfolio content shown by the deck.
package slides

// Slide is one full-screen card. Empty strings and nil slices are absent fields.
type Slide struct {
	ID       int
	Title    string
	Subtitle string
	Content  string
	List     []string
	// Tags are kept with the content but not drawn.
	Tags []string
}

var deck = []Slide{
	{
		ID:       1,
		Title:    "Anvita S Reddy",
		Subtitle: "Student at Medhavi Skills University",
		Content:  "Searching for knowledge and innovation.\nI am a second-year student passionate about technology, data analysis and machine learning.",
		Tags:     []string{"Student", "Developer", "Analyst"},
	},
	{
		ID:    2,
		Title: "Languages",
		List:  []string{"Python", "Java", "Javascript", "Kotlin", "Learning Julia"},
	},
	{
		ID:       3,
		Title:    "Data Analysis",
		Subtitle: "Turning Data into Insights",
		Content:  "Proficient in Python and its powerful libraries.",
		List:     []string{"Numpy", "Pandas", "Seaborn", "Matplotlib", "Scikit-learn", "SQL"},
	},
	{
		ID:       4,
		Title:    "Development Skills",
		Subtitle: "Building the Future",
		Content:  "Specialized in Mobile and Web Applications.",
		List:     []string{"Android Developer (Kotlin)", "React & React Native Developer", "Data Structures & Algorithms (Java)"},
	},
}

// Deck returns a copy of the fixed slide sequence.
func Deck() []Slide {
	out := make([]Slide, len(deck))
	for i, s := range deck {
		s.List = append([]string(nil), s.List...)
		s.Tags = append([]string(nil), s.Tags...)
		out[i] = s
	}
	return out
}

// HasList reports whether the slide carries chips.
func (s Slide) HasList() bool { return len(s.List) > 0 }
