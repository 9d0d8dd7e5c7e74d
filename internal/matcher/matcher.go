// Package matcher answers free-form questions about the site owner from the
// knowledge base, the canned answers and the content corpus.
//
// Matching is keyword and substring based. Rules are tried in order and the
// first one that produces an answer wins.
package matcher

import (
	"strings"

	"swmterm/internal/content"
)

var interrogatives = []string{
	"what", "who", "when", "where", "why", "how",
	"does", "is", "can", "tell", "show", "explain",
}

var questionPhrases = []string{"tell me about", "what about", "how about", "know about"}

// IsQuestion reports whether text reads like a question rather than a
// command.
func IsQuestion(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}
	for _, word := range interrogatives {
		if strings.HasPrefix(lower, word+" ") {
			return true
		}
	}
	if strings.Contains(lower, "?") {
		return true
	}
	for _, phrase := range questionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// RuleFunc tries to answer question from snap. It returns false when the
// rule does not apply.
type RuleFunc func(question string, snap *content.Snapshot) (string, bool)

// Rule is a named entry of the responder's table.
type Rule struct {
	Name   string
	Answer RuleFunc
}

// Answer is the responder's reply and the rule that produced it.
type Answer struct {
	Rule string
	Text string
}

// Rule names.
const (
	RuleIdentity   = "identity"
	RuleSkill      = "skill"
	RuleProjects   = "projects"
	RuleExperience = "experience"
	RuleCanned     = "canned"
	RuleSearch     = "search"
	RuleUnknown    = "unknown"
)

// Responder answers questions with an ordered rule table.
type Responder struct {
	rules []Rule
}

// NewResponder creates a responder over rules. With no rules it uses
// DefaultRules.
func NewResponder(rules ...Rule) *Responder {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Responder{rules: rules}
}

// DefaultRules is the standard table: identity, skill, projects, experience,
// canned answers, then full-text search.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleIdentity, Answer: answerIdentity},
		{Name: RuleSkill, Answer: answerSkill},
		{Name: RuleProjects, Answer: answerProjects},
		{Name: RuleExperience, Answer: answerExperience},
		{Name: RuleCanned, Answer: answerCanned},
		{Name: RuleSearch, Answer: answerSearch},
	}
}

// Rules returns the names of the rules in the order they are tried.
func (r *Responder) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Respond answers question. The question is matched lower-cased; snap may
// be nil, in which case only rules that need no data can answer.
func (r *Responder) Respond(question string, snap *content.Snapshot) Answer {
	q := strings.ToLower(strings.TrimSpace(question))
	if snap == nil {
		snap = &content.Snapshot{}
	}
	for _, rule := range r.rules {
		if text, ok := rule.Answer(q, snap); ok {
			return Answer{Rule: rule.Name, Text: text}
		}
	}
	return Answer{Rule: RuleUnknown, Text: notUnderstood}
}
