package parse

import (
	"github.com/dzjyyds666/inifix/parse/ini"
	"github.com/goccy/go-yaml"
)

// =========================
// Safe Access Helpers
// =========================

// Get walks path from the document root: at most a section name followed by
// a key. Empty path elements are skipped.
func Get(root *ini.Document, path ...string) (ini.Node, bool) {
	var cur ini.Node
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		if cur == nil {
			n, ok := root.Get(p)
			if !ok {
				return nil, false
			}
			cur = n
			continue
		}
		sec, ok := cur.(*ini.Section)
		if !ok {
			return nil, false
		}
		cur, ok = sec.Get(p)
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

func GetUntyped(root *ini.Document, path ...string) (any, bool) {
	n, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(n), true
}

// ToUntyped converts a node into plain Go values: scalars, []any and
// map[string]any. Key order is lost; use ToMapSlice to keep it.
func ToUntyped(n ini.Node) any {
	switch v := n.(type) {
	case *ini.Value:
		return v.V
	case *ini.List:
		return v.Value()
	case *ini.Section:
		m := make(map[string]any, v.Len())
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			m[k] = ToUntyped(child)
		}
		return m
	default:
		return nil
	}
}

// ToMapSlice converts a document into values the YAML encoder writes in key
// order.
func ToMapSlice(root *ini.Document) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, root.Len())
	for _, k := range root.Keys() {
		child, _ := root.Get(k)
		out = append(out, yaml.MapItem{Key: k, Value: ToOrdered(child)})
	}
	return out
}

// ToOrdered is ToUntyped with sections kept as yaml.MapSlice.
func ToOrdered(n ini.Node) any {
	sec, ok := n.(*ini.Section)
	if !ok {
		return ToUntyped(n)
	}
	out := make(yaml.MapSlice, 0, sec.Len())
	for _, k := range sec.Keys() {
		child, _ := sec.Get(k)
		out = append(out, yaml.MapItem{Key: k, Value: ToUntyped(child)})
	}
	return out
}

func MustString(n ini.Node) string {
	v := n.(*ini.Value)
	return v.V.(string)
}

func MustInt(n ini.Node) int64 {
	v := n.(*ini.Value)
	return v.V.(int64)
}

func MustFloat(n ini.Node) float64 {
	v := n.(*ini.Value)
	return v.V.(float64)
}

func MustBool(n ini.Node) bool {
	v := n.(*ini.Value)
	return v.V.(bool)
}
