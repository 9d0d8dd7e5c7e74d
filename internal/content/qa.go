package content

import (
	"bytes"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"swmterm/internal/errors"
)

// ParseQA decodes a canned answers document. JSON documents (as written by
// the site build) and YAML documents share the same shape.
func ParseQA(data []byte) ([]QAPair, error) {
	var set QASet
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []QAPair{}, nil
	}

	var err error
	if trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &set)
	} else {
		err = yaml.Unmarshal(trimmed, &set)
	}
	if err != nil {
		return nil, errors.NewIndexError("malformed qa file", "qaPairs", err)
	}

	pairs := make([]QAPair, 0, len(set.Pairs))
	for _, p := range set.Pairs {
		if p.Answer == "" || len(p.Questions) == 0 {
			continue
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// LoadQAFile reads and parses a canned answers file.
func LoadQAFile(path string) ([]QAPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIndexError("failed to read qa file", path, err)
	}
	return ParseQA(data)
}

// DefaultQA is the built-in set of canned answers.
func DefaultQA() []QAPair {
	return []QAPair{
		{
			Questions: []string{"how does swanson work", "how does this work", "what are you", "are you real ai"},
			Answer: "I'm not \"real AI.\" I'm pattern matching and pre-written responses.\n\n" +
				"Ask something and I match it against known questions, then the knowledge base, then the content itself.\n\n" +
				"No API calls. No LLMs. Just an index of Stephen's writing and some opinions.",
			Tags: []string{"meta", "swanson", "how"},
		},
		{
			Questions: []string{"what does he think about microservices", "microservices opinion", "monolith vs microservices"},
			Answer: "Microservices are usually a mistake.\n\n" +
				"Most teams need a well-structured monolith, not a distributed system. Stephen builds monoliths. " +
				"One codebase, one server, no distributed tracing to find out why checkout is slow.\n\n" +
				"See one: cat projects/jotter.md",
			Tags: []string{"architecture", "microservices", "monolith", "opinion"},
		},
		{
			Questions: []string{"what does he think about ai", "ai opinions", "thoughts on ai"},
			Answer: "Stephen builds with AI tools (Ollama, FastMCP, RAG systems) but does not evangelise.\n\n" +
				"AI is a tool. Like a hammer. Useful for specific tasks. Not a religion.\n\n" +
				"More: ls thoughts/",
			Tags: []string{"ai", "opinion", "llm"},
		},
		{
			Questions: []string{"does he know react", "react experience", "what about react"},
			Answer: "React? He knows it. Doesn't use it much anymore.\n\n" +
				"Astro for content, Svelte for interactivity. Most personal sites don't need a framework runtime to show text.\n\n" +
				"Type: ls writing/",
			Tags: []string{"react", "javascript", "frontend"},
		},
		{
			Questions: []string{"what terminal commands can i use", "what can i do here", "how do i use this"},
			Answer: "You can use Unix-style commands: ls, cd, pwd, cat, tree.\n" +
				"Information: whoami, projects, help, clear, exit.\n\n" +
				"Or just type a question. I'll answer from what I know about Stephen's work.\n\n" +
				"Try: ls projects/",
			Tags: []string{"meta", "help", "commands"},
		},
	}
}
