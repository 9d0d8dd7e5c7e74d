package content

import (
	"bytes"
	"encoding/json"
	"time"

	"swmterm/internal/errors"
	"swmterm/internal/vfs"
)

// payload is the published terminal-index.json document.
type payload struct {
	FileSystem    json.RawMessage `json:"fileSystem"`
	SearchIndex   []Entry         `json:"searchIndex"`
	KnowledgeBase *KnowledgeBase  `json:"knowledgeBase"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// ParseIndex decodes an index document into a loaded snapshot. A document
// without a knowledge base gets one derived from its corpus.
func ParseIndex(data []byte) (*Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewIndexError("empty index", "", nil)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.NewIndexError("malformed index", "", err)
	}
	if len(bytes.TrimSpace(p.FileSystem)) == 0 {
		return nil, errors.NewIndexError("missing field", "fileSystem", nil)
	}

	tree, err := vfs.Decode(p.FileSystem)
	if err != nil {
		return nil, err
	}

	corpus := p.SearchIndex
	if corpus == nil {
		corpus = []Entry{}
	}

	kb := p.KnowledgeBase
	if kb == nil {
		kb = DeriveKnowledge(corpus, DefaultAbout(), DefaultSkills)
	}

	return &Snapshot{
		FS:          tree,
		Corpus:      corpus,
		Knowledge:   kb,
		GeneratedAt: p.GeneratedAt,
		Loaded:      true,
	}, nil
}

// BuildIndex assembles an index document from a tree and corpus, deriving
// the knowledge base. It is the inverse of ParseIndex and backs the
// "index" command.
func BuildIndex(tree *vfs.Tree, corpus []Entry, generatedAt time.Time) ([]byte, error) {
	fsDoc, err := encodeTree(tree)
	if err != nil {
		return nil, err
	}
	p := payload{
		FileSystem:    fsDoc,
		SearchIndex:   corpus,
		KnowledgeBase: DeriveKnowledge(corpus, DefaultAbout(), DefaultSkills),
		GeneratedAt:   generatedAt,
	}
	return json.MarshalIndent(p, "", "  ")
}

// encodeTree writes children in listing order; encoding a map would sort
// them.
func encodeTree(tree *vfs.Tree) (json.RawMessage, error) {
	if tree == nil {
		return json.RawMessage("{}"), nil
	}
	return encodeChildren(tree.Root().Children())
}

func encodeChildren(children []*vfs.Node) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, child := range children {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(child.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		node := map[string]interface{}{
			"type": "file",
			"name": child.Name,
		}
		if child.URL != "" {
			node["url"] = child.URL
		}
		if len(child.Metadata) > 0 {
			node["metadata"] = child.Metadata
		}
		if child.IsDir() {
			node["type"] = "directory"
			nested, err := encodeChildren(child.Children())
			if err != nil {
				return nil, err
			}
			node["children"] = nested
		} else {
			node["content"] = child.Content
		}

		value, err := json.Marshal(node)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
