package matcher

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"swmterm/internal/content"
)

// SkillKeywords are looked for in questions, in this order.
var SkillKeywords = []string{
	"rails", "python", "typescript", "astro", "hotwire",
	"tailwind", "postgresql", "elasticsearch", "react", "vue",
}

const (
	maxSearchHits   = 10
	shownSearchHits = 3
	minTokenLength  = 4
	excerptWidth    = 120
)

var identityPattern = regexp.MustCompile(`who (is|are) (you|stephen|he)`)

const notUnderstood = `I don't understand that question. Try asking:
  • What about rails?
  • Who is Stephen?
  • What projects is he working on?
  • What experience does he have?

Or type 'help' for available commands.`

const experienceSummary = `Technical experience:

  Backend     Ruby on Rails, Python (FastAPI), PostgreSQL
  Frontend    Astro, Hotwire (Turbo + Stimulus), Tailwind CSS, TypeScript
  Search      Elasticsearch
  AI          Local LLMs (Ollama), RAG systems, FastMCP

Preference: monoliths over microservices, server-rendered HTML over SPAs.

Ask about a specific skill, e.g. "what about rails?"`

func answerIdentity(q string, snap *content.Snapshot) (string, bool) {
	if !identityPattern.MatchString(q) &&
		!strings.Contains(q, "about stephen") &&
		!strings.Contains(q, "about himself") &&
		q != "about" && q != "whoami" {
		return "", false
	}

	about := content.DefaultAbout()
	if snap.Knowledge != nil && snap.Knowledge.About.Name != "" {
		about = snap.Knowledge.About
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s based in %s.\n", about.Name, about.Role, about.Location)
	if len(about.Interests) > 0 {
		b.WriteString("\nInterests:\n")
		for _, interest := range about.Interests {
			fmt.Fprintf(&b, "  • %s\n", interest)
		}
	}
	b.WriteString("\nMore: whoami, projects, or ls writing/")
	return b.String(), true
}

func answerSkill(q string, snap *content.Snapshot) (string, bool) {
	for _, keyword := range SkillKeywords {
		if !strings.Contains(q, keyword) {
			continue
		}
		skill, ok := snap.Knowledge.Skill(keyword)
		if !ok {
			continue
		}
		if !skill.Mentioned {
			return unmentionedSkill(keyword, snap.Knowledge), true
		}
		return describeSkill(keyword, skill), true
	}
	return "", false
}

func unmentionedSkill(keyword string, kb *content.KnowledgeBase) string {
	documented := mentionedSkills(kb)
	msg := fmt.Sprintf("Sorry, I can't find anything Stephen has written about %s.", keyword)
	if len(documented) == 0 {
		return msg + "\n\nNo skills are documented yet."
	}
	return msg + "\n\nDocumented skills: " + strings.Join(documented, ", ")
}

// mentionedSkills lists mentioned skills, known keywords first in their
// usual order and any others alphabetically.
func mentionedSkills(kb *content.KnowledgeBase) []string {
	var (
		out  []string
		seen = make(map[string]bool)
	)
	for _, keyword := range SkillKeywords {
		seen[keyword] = true
		if s, ok := kb.Skill(keyword); ok && s.Mentioned {
			out = append(out, keyword)
		}
	}

	var rest []string
	for keyword, s := range kb.Skills {
		if !seen[keyword] && s.Mentioned {
			rest = append(rest, keyword)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func describeSkill(keyword string, skill content.Skill) string {
	var b strings.Builder
	noun := "pieces"
	if skill.Count == 1 {
		noun = "piece"
	}
	fmt.Fprintf(&b, "Yes. %s shows up in %d %s of content.\n", keyword, skill.Count, noun)

	if len(skill.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for i, ex := range skill.Examples {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "\n  • %s\n", ex.Title)
			if ex.Excerpt != "" {
				fmt.Fprintf(&b, "    %s\n", trim(ex.Excerpt, excerptWidth))
			}
			if ex.URL != "" {
				fmt.Fprintf(&b, "    %s\n", ex.URL)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func answerProjects(q string, snap *content.Snapshot) (string, bool) {
	if !strings.Contains(q, "project") && !strings.Contains(q, "working on") && !strings.Contains(q, "building") {
		return "", false
	}

	var active []content.Project
	if snap.Knowledge != nil {
		active = snap.Knowledge.Projects.Active
	}
	if len(active) == 0 {
		return "No projects are documented yet. Try: ls projects/", true
	}

	var b strings.Builder
	b.WriteString("Active projects:\n")
	for _, p := range active {
		fmt.Fprintf(&b, "\n  • %s\n", p.Title)
		if p.Description != "" {
			fmt.Fprintf(&b, "    %s\n", p.Description)
		}
		if p.URL != "" {
			fmt.Fprintf(&b, "    %s\n", p.URL)
		}
	}
	return strings.TrimRight(b.String(), "\n"), true
}

func answerExperience(q string, _ *content.Snapshot) (string, bool) {
	if !strings.Contains(q, "experience") {
		return "", false
	}
	return experienceSummary, true
}

func answerCanned(q string, snap *content.Snapshot) (string, bool) {
	normalized := stripPunctuation(q)
	if normalized == "" {
		return "", false
	}
	for _, pair := range snap.QA {
		for _, phrase := range pair.Questions {
			p := stripPunctuation(strings.ToLower(phrase))
			if p != "" && strings.Contains(normalized, p) {
				return pair.Answer, true
			}
		}
	}
	return "", false
}

func answerSearch(q string, snap *content.Snapshot) (string, bool) {
	tokens := searchTokens(q)

	var hits []content.Entry
	if len(tokens) > 0 {
		for _, e := range snap.Corpus {
			text := e.SearchText()
			for _, tok := range tokens {
				if strings.Contains(text, tok) {
					hits = append(hits, e)
					break
				}
			}
			if len(hits) == maxSearchHits {
				break
			}
		}
	}

	if len(hits) == 0 {
		return notUnderstood, true
	}

	var b strings.Builder
	noun := "results"
	if len(hits) == 1 {
		noun = "result"
	}
	fmt.Fprintf(&b, "Found %d %s:\n", len(hits), noun)
	for i, e := range hits {
		if i == shownSearchHits {
			break
		}
		fmt.Fprintf(&b, "\n  • %s (%s)\n", e.DisplayTitle(), e.Category)
		if e.Description != "" {
			fmt.Fprintf(&b, "    %s\n", trim(e.Description, excerptWidth))
		}
		if e.URL != "" {
			fmt.Fprintf(&b, "    %s\n", e.URL)
		}
	}
	if more := len(hits) - shownSearchHits; more > 0 {
		fmt.Fprintf(&b, "\n...and %d more", more)
	}
	return strings.TrimRight(b.String(), "\n"), true
}

// searchTokens splits q into words of at least minTokenLength characters.
func searchTokens(q string) []string {
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var tokens []string
	for _, w := range words {
		if len([]rune(w)) >= minTokenLength {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func stripPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func trim(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return strings.TrimSpace(string(runes[:width])) + "..."
}
