package content

import (
	"strings"
	"unicode"
)

// excerptLength is the width of the window quoted around a keyword.
const excerptLength = 150

// maxExamples caps the examples kept per skill.
const maxExamples = 3

// DefaultSkills are the keywords the site build profiles.
var DefaultSkills = []string{"rails", "python", "astro", "hotwire", "elasticsearch", "typescript", "tailwind"}

// DefaultAbout is the fact sheet used when none is configured.
func DefaultAbout() About {
	return About{
		Name:     "Stephen McCullough",
		Location: "Northern Ireland",
		Role:     "Software Engineer",
		Interests: []string{
			"Ruby on Rails",
			"Python",
			"Modern web architecture",
			"AI operating systems",
			"Personal projects",
			"Self-hosted tools",
		},
	}
}

// DeriveKnowledge builds a knowledge base from the corpus. A skill is
// mentioned by an entry when one of its tags, its body, title or description
// contains the keyword, ignoring case.
func DeriveKnowledge(corpus []Entry, about About, skills []string) *KnowledgeBase {
	kb := &KnowledgeBase{
		About:  about,
		Skills: make(map[string]Skill, len(skills)),
	}
	for _, keyword := range skills {
		kb.Skills[keyword] = skillInfo(keyword, corpus)
	}

	kb.Projects.Active = []Project{}
	for _, e := range corpus {
		if e.Category != CategoryProjects {
			continue
		}
		kb.Projects.Active = append(kb.Projects.Active, Project{
			Title:       e.Title,
			Description: e.Description,
			URL:         e.URL,
			Tags:        append([]string{}, e.Tags...),
		})
	}
	return kb
}

func skillInfo(keyword string, corpus []Entry) Skill {
	kw := strings.ToLower(keyword)

	var relevant []Entry
	for _, e := range corpus {
		if mentions(e, kw) {
			relevant = append(relevant, e)
		}
	}

	s := Skill{
		Mentioned: len(relevant) > 0,
		Count:     len(relevant),
		Examples:  []Example{},
	}
	for i, e := range relevant {
		if i == maxExamples {
			break
		}
		s.Examples = append(s.Examples, Example{
			Type:    e.Category,
			Title:   e.DisplayTitle(),
			URL:     e.URL,
			Excerpt: Excerpt(e.Body, kw, excerptLength),
		})
	}
	return s
}

func mentions(e Entry, kw string) bool {
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), kw) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.Body), kw) ||
		strings.Contains(strings.ToLower(e.Title), kw) ||
		strings.Contains(strings.ToLower(e.Description), kw)
}

// Excerpt quotes up to width characters of text centred on the first
// occurrence of keyword, marking cut ends with "...". Without a match it
// quotes the opening of text.
func Excerpt(text, keyword string, width int) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	idx := indexRunes(lower, []rune(strings.ToLower(keyword)))
	if idx < 0 {
		end := width
		if end > len(runes) {
			end = len(runes)
		}
		return string(runes[:end]) + "..."
	}

	start := idx - width/2
	if start < 0 {
		start = 0
	}
	end := idx + width/2
	if end > len(runes) {
		end = len(runes)
	}

	excerpt := string(runes[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(runes) {
		excerpt += "..."
	}
	return excerpt
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
