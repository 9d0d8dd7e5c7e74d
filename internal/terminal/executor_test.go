package terminal

import (
	"strings"
	"testing"

	"swmterm/internal/content"
	"swmterm/internal/matcher"
	"swmterm/internal/vfs"
	"swmterm/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedSnapshot() *content.Snapshot {
	tree := vfs.NewTree(
		vfs.NewFile("about.md", "About Stephen"),
		vfs.NewDir("projects",
			vfs.NewFile("jotter.md", "Bookmark manager"),
			vfs.NewFile("empty.md", ""),
			vfs.NewDir("archive", vfs.NewFile("old.md", "old")),
		),
		vfs.NewDir("writing"),
	)
	corpus := []content.Entry{
		{Category: content.CategoryProjects, Title: "Building Jotter", Body: "Rails 8 and Hotwire", Tags: []string{"rails"}, URL: "/projects/building-jotter"},
	}
	return &content.Snapshot{
		FS:        tree,
		Corpus:    corpus,
		Knowledge: content.DeriveKnowledge(corpus, content.DefaultAbout(), content.DefaultSkills),
		QA:        content.DefaultQA(),
		Loaded:    true,
	}
}

func newExecutor(opts ...Option) *Executor {
	return NewExecutor(StaticSource(loadedSnapshot()), opts...)
}

func run(e *Executor, line, cwd string) Result {
	return e.Execute(Parse(line), cwd)
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{Args: []string{}}},
		{"   ", Command{Args: []string{}}},
		{"ls", Command{Name: "ls", Args: []string{}}},
		{"  LS   projects/  ", Command{Name: "LS", Args: []string{"projects/"}}},
		{"ask what\tabout  rails?", Command{Name: "ask", Args: []string{"what", "about", "rails?"}}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
	assert.Equal(t, "cat a b", Parse("cat   a b").Line())
}

func TestJotterScenario(t *testing.T) {
	e := newExecutor()

	res := run(e, "cd projects", "/")
	require.NotNil(t, res.Update)
	assert.Equal(t, "/projects", res.Update.CurrentPath)
	assert.Empty(t, res.Text)

	cwd := res.Update.CurrentPath
	assert.Equal(t, "Bookmark manager", run(e, "cat jotter.md", cwd).Text)
	assert.Equal(t, "cat: missing.md: No such file or directory", run(e, "cat missing.md", cwd).Text)
}

func TestLs(t *testing.T) {
	e := newExecutor()

	assert.Equal(t, "about.md\nprojects/\nwriting/", run(e, "ls", "/").Text)
	assert.Equal(t, "jotter.md\nempty.md\narchive/", run(e, "ls projects/", "/").Text)
	assert.Equal(t, "jotter.md\nempty.md\narchive/", run(e, "dir", "/projects").Text)
	assert.Equal(t, "", run(e, "ls writing", "/").Text)
	assert.Equal(t, "jotter.md", run(e, "ls jotter.md", "/projects").Text, "a file echoes its argument")

	res := run(e, "ls nosuchdir", "/")
	assert.Equal(t, "ls: cannot access 'nosuchdir': No such file or directory", res.Text)
	assert.Nil(t, res.Update)

	assert.Equal(t, "ls: cannot access '/gone': No such file or directory", run(e, "ls", "/gone").Text)
}

func TestCd(t *testing.T) {
	e := newExecutor()

	tests := []struct {
		line, cwd string
		wantPath  string
		wantText  string
	}{
		{"cd", "/projects", "/", ""},
		{"cd /", "/projects", "/", ""},
		{"cd ..", "/projects/archive", "/projects", ""},
		{"cd ..", "/", "/", ""},
		{"cd .", "/projects", "/projects", ""},
		{"cd archive", "/projects", "/projects/archive", ""},
		{"cd projects/", "/", "/projects", ""},
		{"cd /projects/archive", "/writing", "/projects/archive", ""},
		{"cd nope", "/", "", "cd: no such file or directory: nope"},
		{"cd about.md", "/", "", "cd: not a directory: about.md"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd+" "+tt.line, func(t *testing.T) {
			res := run(e, tt.line, tt.cwd)
			assert.Equal(t, tt.wantText, res.Text)
			if tt.wantPath == "" {
				assert.Nil(t, res.Update)
				return
			}
			require.NotNil(t, res.Update)
			assert.Equal(t, tt.wantPath, res.Update.CurrentPath)
		})
	}
}

func TestCdThenPwdAndRoundTrip(t *testing.T) {
	e := newExecutor()

	for _, dir := range []string{"/projects", "/projects/archive", "/writing", "/"} {
		res := run(e, "cd "+dir, "/")
		require.NotNil(t, res.Update)
		assert.Equal(t, dir, run(e, "pwd", res.Update.CurrentPath).Text)
	}

	for _, child := range []string{"projects", "writing"} {
		down := run(e, "cd "+child, "/")
		require.NotNil(t, down.Update)
		up := run(e, "cd ..", down.Update.CurrentPath)
		require.NotNil(t, up.Update)
		assert.Equal(t, "/", up.Update.CurrentPath)
	}
}

func TestCat(t *testing.T) {
	e := newExecutor()

	assert.Equal(t, "cat: missing file operand\nTry 'cat --help' for more information.", run(e, "cat", "/").Text)
	assert.Equal(t, "About Stephen", run(e, "cat about.md", "/").Text)
	assert.Equal(t, "Bookmark manager", run(e, "cat /projects/jotter.md", "/writing").Text)
	assert.Equal(t, "File is empty", run(e, "cat empty.md", "/projects").Text)

	// cat on a directory always errors
	for _, dir := range []string{"projects", "/", "/projects/archive", "writing", "."} {
		assert.Equal(t, "cat: "+dir+": Is a directory", run(e, "cat "+dir, "/").Text)
	}
}

func TestTree(t *testing.T) {
	e := newExecutor()

	want := strings.Join([]string{
		"projects",
		"├── jotter.md",
		"├── empty.md",
		"└── archive/",
		"    └── old.md",
	}, "\n")
	assert.Equal(t, want, run(e, "tree projects", "/").Text)
	assert.Equal(t, want, run(e, "tree", "/projects").Text)

	full := run(e, "tree", "/").Text
	assert.True(t, strings.HasPrefix(full, "/\n├── about.md\n"))
	assert.True(t, strings.HasSuffix(full, "└── writing/"))

	assert.Equal(t, "tree: nope: No such file or directory", run(e, "tree nope", "/").Text)
}

func TestLsAndTreeAgree(t *testing.T) {
	e := newExecutor()

	for _, dir := range []string{"/", "/projects", "/projects/archive"} {
		listing := run(e, "ls", dir).Text
		var fromTree []string
		for _, line := range strings.Split(run(e, "tree", dir).Text, "\n")[1:] {
			for _, prefix := range []string{"├── ", "└── "} {
				if strings.HasPrefix(line, prefix) {
					fromTree = append(fromTree, strings.TrimPrefix(line, prefix))
				}
			}
		}
		assert.Equal(t, listing, strings.Join(fromTree, "\n"), dir)
	}
}

func TestSpecialResults(t *testing.T) {
	e := newExecutor(WithProfileImage("/me.jpg"))

	assert.Equal(t, types.ResultClear, run(e, "clear", "/").Kind)
	assert.Equal(t, types.ResultClear, run(e, "CLS", "/").Kind)
	assert.Equal(t, types.ResultClose, run(e, "exit", "/").Kind)
	assert.Equal(t, types.ResultClose, run(e, "quit", "/").Kind)

	who := run(e, "whoami", "/")
	assert.Equal(t, types.ResultImage, who.Kind)
	assert.Equal(t, "/me.jpg", who.Image)
	assert.True(t, strings.HasPrefix(who.Text, "Stephen McCullough\n"))

	assert.Equal(t, "Stephen McCullough - Software Engineer\nView full bio: /about", run(e, "about", "/").Text)
	assert.Contains(t, run(e, "projects", "/").Text, "Jotter - Bookmark manager")
	assert.Contains(t, run(e, "swanson", "/").Text, "SWANSON")
	assert.Equal(t, "/projects", run(e, "pwd", "/projects").Text)
}

func TestHelp(t *testing.T) {
	e := newExecutor()

	assert.True(t, strings.HasPrefix(run(e, "help", "/").Text, "Available commands:"))
	assert.Equal(t, "ls [path] - List directory contents", run(e, "help ls", "/").Text)
	assert.Equal(t, "No help available for: frobnicate", run(e, "help frobnicate", "/").Text)
	assert.Equal(t, "Available commands:", strings.Split(run(e, "HELP", "/").Text, "\n")[0])
}

func TestEmptyInput(t *testing.T) {
	e := newExecutor()
	for _, line := range []string{"", "   ", "\t"} {
		res := run(e, line, "/projects")
		assert.Equal(t, types.ResultText, res.Kind)
		assert.Empty(t, res.Text)
		assert.Nil(t, res.Update)
	}
}

func TestUnknownCommand(t *testing.T) {
	e := newExecutor()
	assert.Equal(t, "Command not found: frobnicate\nType 'help' for available commands.", run(e, "frobnicate", "/").Text)
	assert.Equal(t, "Command not found: rails\nType 'help' for available commands.", run(e, "rails", "/").Text)
}

func TestQuestionFallback(t *testing.T) {
	e := newExecutor()

	res := run(e, "What about rails?", "/")
	assert.Equal(t, matcher.RuleSkill, res.Rule)
	assert.Contains(t, res.Text, "Building Jotter")

	res = run(e, "who is stephen", "/")
	assert.Equal(t, matcher.RuleIdentity, res.Rule)
}

func TestAsk(t *testing.T) {
	e := newExecutor()

	res := run(e, "ask What About RAILS", "/")
	assert.Equal(t, matcher.RuleSkill, res.Rule)

	assert.Equal(t, askUsage, run(e, "ask", "/").Text)

	res = run(e, "ask what experience does he have", "/")
	assert.Equal(t, matcher.RuleExperience, res.Rule)
}

func TestAskBeforeLoad(t *testing.T) {
	e := NewExecutor(StaticSource(content.DefaultSnapshot()))

	assert.Equal(t, stillLoading, run(e, "ask what about rails", "/").Text)
	assert.Equal(t, stillLoading, run(e, "what about rails?", "/").Text)

	// The built-in tree is browsable meanwhile
	assert.Contains(t, run(e, "cat projects/jotter.md", "/").Text, "Bookmark manager")
}

func TestNilSnapshotFallsBackToDefault(t *testing.T) {
	e := NewExecutor(StaticSource(nil))
	assert.Contains(t, run(e, "ls", "/").Text, "projects/")
}

func TestObserverSeesEveryCommand(t *testing.T) {
	var names []string
	e := newExecutor(WithObserver(func(name string, _ Result) { names = append(names, name) }))

	run(e, "LS", "/")
	run(e, "frobnicate", "/")
	run(e, "", "/")
	assert.Equal(t, []string{"ls", "frobnicate", ""}, names)
}

func TestCommands(t *testing.T) {
	names := newExecutor().Commands()
	assert.Contains(t, names, "ls")
	assert.Contains(t, names, "ask")
	assert.IsIncreasing(t, names)
}
