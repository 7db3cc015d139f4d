package classif

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type nodeDef struct {
	Name     string    `yaml:"name"`
	Drawable *bool     `yaml:"drawable"`
	Types    []nodeDef `yaml:"types"`
}

type treeDef struct {
	Types []nodeDef `yaml:"types"`
}

// Load reads a classification tree definition from a YAML file.
func Load(filename string) (*Tree, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading classificator file")
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing classificator file %s", filename)
	}
	return tree, nil
}

// Parse builds a tree from a YAML definition. Nodes are drawable unless
// the definition says otherwise.
func Parse(data []byte) (*Tree, error) {
	def := treeDef{}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	root := &Node{name: ""}
	if err := buildChildren(root, def.Types, 1); err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

// MustParse is Parse for statically known definitions, e.g. in tests.
func MustParse(data string) *Tree {
	tree, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return tree
}

func buildChildren(parent *Node, defs []nodeDef, depth int) error {
	if len(defs) > MaxIndex+1 {
		return errors.Errorf("node %q has %d children, at most %d are encodable",
			parent.name, len(defs), MaxIndex+1)
	}
	for _, def := range defs {
		if def.Name == "" {
			return errors.Errorf("unnamed type below %q", parent.name)
		}
		if parent.Child(def.Name) != nil {
			return errors.Errorf("duplicate type %q below %q", def.Name, parent.name)
		}
		if len(def.Types) > 0 && depth >= MaxDepth {
			return errors.Errorf("type %q exceeds maximum depth %d", def.Name, MaxDepth)
		}
		node := &Node{name: def.Name, drawable: true}
		if def.Drawable != nil {
			node.drawable = *def.Drawable
		}
		parent.add(node)
		if err := buildChildren(node, def.Types, depth+1); err != nil {
			return err
		}
	}
	return nil
}
