package document

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/matzehuels/designlint/pkg/errors"
)

// Document is a named tree of nodes.
type Document struct {
	Name string `json:"name"`
	Root *Node  `json:"document"`
}

// Parse decodes a document export. The input is either a wrapper object with
// a "document" key holding the root node, or a bare node.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read document")
	}
	return ParseBytes(data)
}

// ParseBytes is Parse over an in-memory export.
func ParseBytes(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document is empty")
	}

	var wrapper struct {
		Name     string          `json:"name"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}

	body := data
	if len(wrapper.Document) > 0 {
		body = wrapper.Document
	}

	var root Node
	if err := json.Unmarshal(body, &root); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode node")
	}
	if root.Type == "" {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "root node has no type")
	}

	name := wrapper.Name
	if name == "" || len(wrapper.Document) == 0 {
		name = root.Name
	}
	return &Document{Name: name, Root: &root}, nil
}

// Load reads and parses a document export from fs.
func Load(fs billy.Filesystem, path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := util.ReadFile(fs, path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read %s", path)
	}
	doc, err := ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = path
	}
	return doc, nil
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	count := 0
	Walk(n, func(*Node) bool {
		count++
		return true
	})
	return count
}

// Find returns the first node with the given ID, or nil.
func Find(n *Node, id string) *Node {
	var found *Node
	Walk(n, func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}
