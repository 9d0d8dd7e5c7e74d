package vfs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"swmterm/internal/errors"
)

// rawNode mirrors one node of the index's fileSystem object. The node's
// "name" field is ignored; the object key is the name.
type rawNode struct {
	Type     string                 `json:"type"`
	Content  string                 `json:"content"`
	URL      string                 `json:"url"`
	Metadata map[string]interface{} `json:"metadata"`
	Children json.RawMessage        `json:"children"`
}

// Decode builds a Tree from the index's fileSystem object, a JSON object of
// name → node. Key order in the document becomes listing order.
func Decode(data []byte) (*Tree, error) {
	top, err := decodeChildren(data, "fileSystem")
	if err != nil {
		return nil, err
	}
	return NewTree(top...), nil
}

func decodeChildren(data json.RawMessage, path string) ([]*Node, error) {
	keys, values, err := orderedObject(data)
	if err != nil {
		return nil, errors.NewIndexError("malformed directory", path, err)
	}

	nodes := make([]*Node, 0, len(keys))
	for i, key := range keys {
		n, err := decodeNode(key, values[i], path+"/"+key)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(key string, data json.RawMessage, path string) (*Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewIndexError("malformed node", path, err)
	}

	switch raw.Type {
	case "file":
		n := NewFile(key, raw.Content)
		n.URL = raw.URL
		n.Metadata = raw.Metadata
		return n, nil
	case "directory":
		children, err := decodeChildren(raw.Children, path)
		if err != nil {
			return nil, err
		}
		n := NewDir(key, children...)
		n.URL = raw.URL
		n.Metadata = raw.Metadata
		return n, nil
	default:
		return nil, errors.NewIndexError(fmt.Sprintf("unknown node type %q", raw.Type), path, nil)
	}
}

// orderedObject splits a JSON object into its keys and raw values, in
// document order. Absent or null input is an empty object.
func orderedObject(data json.RawMessage) ([]string, []json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected object, got %v", tok)
	}

	var (
		keys   []string
		values []json.RawMessage
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}
