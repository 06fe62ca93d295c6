package snapshot

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-canopy/canopy/pkg/state"
)

// EncodeYAML renders a state tree as YAML, preserving Object key order.
func EncodeYAML(v state.Value) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// DecodeYAML parses YAML into a normalized state tree, preserving document
// key order.
func DecodeYAML(data []byte) (state.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// empty document
		return nil, nil
	}
	return fromYAMLNode(&root)
}

func toYAMLNode(v state.Value) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(t, 10)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case string:
		n := &yaml.Node{}
		n.SetString(t)
		return n, nil
	case state.List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			child, err := toYAMLNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case *state.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var convErr error
		t.Range(func(k string, val state.Value) bool {
			key := &yaml.Node{}
			key.SetString(k)
			child, err := toYAMLNode(val)
			if err != nil {
				convErr = err
				return false
			}
			n.Content = append(n.Content, key, child)
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return n, nil
	default:
		return nil, fmt.Errorf("snapshot: cannot encode %T", v)
	}
}

func fromYAMLNode(n *yaml.Node) (state.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		obj := state.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		// normalization drops guarded keys from the decoded document
		return state.Normalize(obj)
	case yaml.SequenceNode:
		list := make(state.List, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		return list, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return nil, nil
		case "!!bool":
			return strconv.ParseBool(n.Value)
		case "!!int":
			return strconv.ParseInt(n.Value, 10, 64)
		case "!!float":
			return strconv.ParseFloat(n.Value, 64)
		default:
			return n.Value, nil
		}
	default:
		return nil, fmt.Errorf("snapshot: unexpected yaml node kind %d", n.Kind)
	}
}
