// Package treefile loads element trees from YAML descriptions.
//
// A tree file is a single node; element nodes carry a tag with optional
// props and children, text nodes carry a scalar under "text":
//
//	tag: div
//	props:
//	  id: main
//	children:
//	  - tag: h1
//	    children:
//	      - text: Hello
//	  - text: plain trailing text
package treefile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// Node is the YAML schema for one node in a tree file.
type Node struct {
	Tag      string         `yaml:"tag,omitempty"`
	Text     any            `yaml:"text,omitempty"`
	Props    map[string]any `yaml:"props,omitempty"`
	Children []Node         `yaml:"children,omitempty"`
}

// Load reads and builds the tree stored at path.
func Load(path string) (*vdom.VNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes one tree description from r.
func Parse(r io.Reader) (*vdom.VNode, error) {
	var root Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("treefile: decode: %w", err)
	}
	return root.Build()
}

// Build converts the decoded node into an element tree.
func (n Node) Build() (*vdom.VNode, error) {
	if n.Text != nil {
		if n.Tag != "" || len(n.Props) > 0 || len(n.Children) > 0 {
			return nil, fmt.Errorf("treefile: text node cannot carry tag, props, or children")
		}
		return vdom.Text(n.Text), nil
	}
	if n.Tag == "" {
		return nil, fmt.Errorf("treefile: node needs a tag or text")
	}

	children := make([]any, 0, len(n.Children))
	for i, child := range n.Children {
		built, err := child.Build()
		if err != nil {
			return nil, fmt.Errorf("treefile: child %d of %q: %w", i, n.Tag, err)
		}
		children = append(children, built)
	}

	return vdom.CreateElement(n.Tag, vdom.Props(n.Props), children...), nil
}
