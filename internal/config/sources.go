package config

import "gopkg.in/yaml.v3"

type includeRef struct {
	Value  string
	Source Source
}

// documentRoot returns the top-level node of a parsed document.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc != nil && doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

func nodeSource(file string, n *yaml.Node) Source {
	return Source{Kind: SourceFile, File: file, Line: n.Line, Column: n.Column}
}

// fileSources maps every dotted key path set in a file to the position of
// its value. Sequences are recorded as a whole.
func fileSources(root *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	var walk func(n *yaml.Node, prefix string)
	walk = func(n *yaml.Node, prefix string) {
		if n == nil || n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			path, val := n.Content[i].Value, n.Content[i+1]
			if prefix != "" {
				path = prefix + "." + path
			}
			out[path] = nodeSource(file, val)
			walk(val, path)
		}
	}
	walk(root, "")
	return out
}

// includeRefs returns the entries of the top-level include key, which may
// be a single path or a list.
func includeRefs(root *yaml.Node, file string) []includeRef {
	if root == nil || root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "include" {
			continue
		}
		val := root.Content[i+1]
		items := []*yaml.Node{val}
		if val.Kind == yaml.SequenceNode {
			items = val.Content
		}
		var refs []includeRef
		for _, item := range items {
			if item.Kind == yaml.ScalarNode {
				refs = append(refs, includeRef{Value: item.Value, Source: nodeSource(file, item)})
			}
		}
		return refs
	}
	return nil
}
