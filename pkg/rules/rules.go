package rules

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"book-sorter/internal/match"
)

// StringList accepts either a scalar or a sequence of strings in YAML,
// so a single-pattern rule does not need list syntax.
type StringList []string

func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*s = StringList(items)
		return nil
	}
	return fmt.Errorf("line %d: expected string or list of strings", value.Line)
}

// Node is one rules entry before compilation into a match.Group.
type Node struct {
	Name    string     `yaml:"name"`
	Include StringList `yaml:"include,omitempty"`
	Exclude StringList `yaml:"exclude,omitempty"`
	Groups  []Node     `yaml:"groups,omitempty"`
}

// Document is the top-level rules file.
type Document struct {
	Groups []Node `yaml:"groups"`
}

// FromYAML parses a raw rules definition and compiles the group tree.
func FromYAML(data []byte) ([]*match.Group, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if len(doc.Groups) == 0 {
		return nil, errors.New("rules file defines no groups")
	}
	groups := make([]*match.Group, 0, len(doc.Groups))
	for i := range doc.Groups {
		g, err := compile(&doc.Groups[i])
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// LoadFile loads and compiles a rules file.
func LoadFile(path string) ([]*match.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return FromYAML(data)
}

func compile(node *Node) (*match.Group, error) {
	if node.Name == "" {
		return nil, errors.New("group without a name")
	}
	g := &match.Group{Name: node.Name}
	for _, raw := range node.Include {
		g.Include = append(g.Include, match.NewPattern(raw))
	}
	for _, raw := range node.Exclude {
		g.Exclude = append(g.Exclude, match.NewPattern(raw))
	}
	for i := range node.Groups {
		sub, err := compile(&node.Groups[i])
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", node.Name, err)
		}
		g.AddSubgroup(sub)
	}
	return g, nil
}

// DemoDocument is the built-in example rules tree covering a typical mixed
// book library: IT topics, sciences, children's content, arts, literature.
func DemoDocument() Document {
	return Document{Groups: []Node{
		{Name: "IT", Groups: []Node{
			{Name: "Programming", Groups: []Node{
				{Name: "Python", Include: StringList{"Python"}},
				{Name: "Rust", Include: StringList{"Rust"}},
				{Name: "Java", Include: StringList{"Java"}},
				{Name: "PHP", Include: StringList{"PHP*MySQL", "PHP"}},
				{Name: "JavaScript", Include: StringList{"JavaScript", "JS"}},
				{Name: "Go", Include: StringList{"GoLang", "Go"}},
				{Name: "C++", Include: StringList{`regex:C\+\+`, "Cplusplus"}},
				{Name: "C", Include: StringList{"C programming"}},
			}},
			{Name: "Systems", Groups: []Node{
				{Name: "Windows", Include: StringList{"Windows", "WinServer", "Windows10", "Windows11"}, Exclude: StringList{"Office"}},
				{Name: "Linux", Include: StringList{"Linux", "Ubuntu", "Debian", "Fedora"}},
				{Name: "macOS", Include: StringList{"macOS", "OSX", "Macintosh"}},
			}},
			{Name: "Applications", Groups: []Node{
				{Name: "Office", Include: StringList{"Office", "Office365", "Microsoft Word", "Excel", "PowerPoint"}, Exclude: StringList{"Linux", "macOS"}},
				{Name: "Adobe", Include: StringList{"Photoshop", "Illustrator", "Acrobat"}},
				{Name: "IDEs", Include: StringList{"PyCharm", "IntelliJ", "Visual Studio", "VSCode", "Eclipse"}},
			}},
		}},
		{Name: "Science", Groups: []Node{
			{Name: "Physics", Include: StringList{"Physics", "Quantum", "Mechanics"}},
			{Name: "Chemistry", Include: StringList{"Chemistry", "Organic", "Lab"}},
			{Name: "Biology", Include: StringList{"Biology"}, Groups: []Node{
				{Name: "For_Kids", Include: StringList{"for_kids", "kids"}},
			}},
			{Name: "Mathematics", Include: StringList{"Math", "Statistics", "Algebra"}},
			{Name: "Astronomy", Include: StringList{"Astronomy", "Stars", "Cosmos"}},
			{Name: "General", Include: StringList{"Science"}},
		}},
		{Name: "Kids", Include: StringList{"Fairy_tales", "Stories", "Children"}},
		{Name: "Arts", Include: StringList{"Art", "Painting", "Music"}},
		{Name: "Literature", Include: StringList{"Novel", "Poetry"}},
	}}
}

// WriteDemoRules writes the demo rules tree to path.
func WriteDemoRules(path string) error {
	data, err := yaml.Marshal(DemoDocument())
	if err != nil {
		return fmt.Errorf("failed to marshal demo rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write demo rules %s: %w", path, err)
	}
	return nil
}
