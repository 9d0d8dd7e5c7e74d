// Package content models the terminal's content index: the virtual
// filesystem, the searchable corpus and the knowledge base, plus the canned
// question/answer pairs. It loads the index, derives missing pieces and
// publishes immutable snapshots.
package content

import (
	"strings"
	"time"

	"swmterm/internal/vfs"
)

// Categories of the content corpus.
const (
	CategoryWriting  = "writing"
	CategoryNotes    = "notes"
	CategoryThoughts = "thoughts"
	CategoryProjects = "projects"
)

// Entry is one indexed content item.
type Entry struct {
	Category    string    `json:"type" yaml:"type"`
	Slug        string    `json:"slug" yaml:"slug"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Body        string    `json:"content" yaml:"content"`
	Tags        []string  `json:"tags" yaml:"tags"`
	PublishedAt time.Time `json:"pubDate" yaml:"pubDate"`
	PubTime     string    `json:"pubTime,omitempty" yaml:"pubTime,omitempty"`
	URL         string    `json:"url" yaml:"url"`
}

// DisplayTitle is the title, or "<category> post" for untitled items such
// as thoughts.
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Category + " post"
}

// SearchText is the lower-cased text keyword search runs against.
func (e Entry) SearchText() string {
	parts := []string{e.Title, e.Description, e.Body, strings.Join(e.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// Example is a content item quoted as evidence of a skill.
type Example struct {
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url" yaml:"url"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
}

// Skill records how often a technology shows up in the corpus.
type Skill struct {
	Mentioned bool      `json:"mentioned" yaml:"mentioned"`
	Count     int       `json:"count" yaml:"count"`
	Examples  []Example `json:"examples" yaml:"examples"`
}

// About is the biographical fact sheet.
type About struct {
	Name      string   `json:"name" yaml:"name"`
	Location  string   `json:"location" yaml:"location"`
	Role      string   `json:"role" yaml:"role"`
	Interests []string `json:"interests" yaml:"interests"`
}

// Project is an active project listed by the knowledge base.
type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// KnowledgeBase is the structured fact table behind templated answers.
type KnowledgeBase struct {
	About    About            `json:"about" yaml:"about"`
	Skills   map[string]Skill `json:"skills" yaml:"skills"`
	Projects struct {
		Active []Project `json:"active" yaml:"active"`
	} `json:"projects" yaml:"projects"`
}

// Skill returns the entry for keyword.
func (kb *KnowledgeBase) Skill(keyword string) (Skill, bool) {
	if kb == nil {
		return Skill{}, false
	}
	s, ok := kb.Skills[keyword]
	return s, ok
}

// QAPair is a pre-written answer and the phrases that trigger it.
type QAPair struct {
	Questions []string `json:"questions" yaml:"questions"`
	Answer    string   `json:"answer" yaml:"answer"`
	Tags      []string `json:"tags" yaml:"tags"`
}

// QASet is the on-disk shape of the canned answers file.
type QASet struct {
	GeneratedAt string   `json:"generatedAt,omitempty" yaml:"generatedAt,omitempty"`
	Pairs       []QAPair `json:"qaPairs" yaml:"qaPairs"`
}

// Snapshot is an immutable view of everything the terminal reads. A new
// index produces a new Snapshot; existing ones are never modified.
type Snapshot struct {
	FS          *vfs.Tree
	Corpus      []Entry
	Knowledge   *KnowledgeBase
	QA          []QAPair
	GeneratedAt time.Time
	// Loaded is false for the built-in snapshot served before the index
	// arrives.
	Loaded bool
}

// DefaultSnapshot is what the terminal shows until the index loads.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{FS: vfs.Default()}
}

// Stats summarises a snapshot for logs and the index endpoint.
type Stats struct {
	Files       int       `json:"files" yaml:"files"`
	Directories int       `json:"directories" yaml:"directories"`
	Entries     int       `json:"entries" yaml:"entries"`
	Skills      int       `json:"skills" yaml:"skills"`
	Projects    int       `json:"projects" yaml:"projects"`
	QAPairs     int       `json:"qaPairs" yaml:"qaPairs"`
	Loaded      bool      `json:"loaded" yaml:"loaded"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
}

// Stats counts the snapshot's contents.
func (s *Snapshot) Stats() Stats {
	st := Stats{
		Entries:     len(s.Corpus),
		QAPairs:     len(s.QA),
		Loaded:      s.Loaded,
		GeneratedAt: s.GeneratedAt,
	}
	if s.FS != nil {
		st.Files, st.Directories = s.FS.Count()
	}
	if s.Knowledge != nil {
		st.Skills = len(s.Knowledge.Skills)
		st.Projects = len(s.Knowledge.Projects.Active)
	}
	return st
}
