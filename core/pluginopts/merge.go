// Package pluginopts merges compiler plugin option lists.
//
// An option has the form "plugin:<plugin id>:<key>=<value>" or the short form
// "<plugin id>:<key>=<value>". Values are opaque strings.
package pluginopts

import "strings"

const prefix = "plugin:"

// Option is a parsed plugin option. Raw is the original string.
type Option struct {
	Plugin string
	Key    string
	Value  string
	Raw    string
}

// Parse splits an option into plugin id, key and value. A string without ':'
// belongs to the empty plugin id; a string without '=' uses the whole
// remainder as key and an empty value.
func Parse(raw string) Option {
	opt := Option{Raw: raw}
	rest := strings.TrimPrefix(raw, prefix)

	if plugin, after, ok := strings.Cut(rest, ":"); ok {
		opt.Plugin = plugin
		rest = after
	}
	if key, value, ok := strings.Cut(rest, "="); ok {
		opt.Key = key
		opt.Value = value
	} else {
		opt.Key = rest
	}
	return opt
}

// Format renders an option in the long "plugin:" form.
func Format(plugin, key, value string) string {
	return prefix + plugin + ":" + key + "=" + value
}

type pairKey struct {
	plugin string
	key    string
}

// Merge unions two ordered option lists keyed by (plugin id, key).
//
// A pair defined by incoming replaces every occurrence of that pair in
// existing: incoming's options for the pair take the position of the first
// existing occurrence. Options of pairs only in incoming are appended in their
// incoming order. Repeated pairs are kept, since list-valued plugin options
// repeat their key. The result is never nil.
func Merge(existing, incoming []string) []string {
	overrides := make(map[pairKey][]string, len(incoming))
	for _, raw := range incoming {
		k := keyOf(raw)
		overrides[k] = append(overrides[k], raw)
	}

	merged := make([]string, 0, len(existing)+len(incoming))
	placed := make(map[pairKey]bool, len(overrides))
	for _, raw := range existing {
		k := keyOf(raw)
		over, ok := overrides[k]
		if !ok {
			merged = append(merged, raw)
			continue
		}
		if !placed[k] {
			merged = append(merged, over...)
			placed[k] = true
		}
	}
	for _, raw := range incoming {
		if !placed[keyOf(raw)] {
			merged = append(merged, raw)
		}
	}
	return merged
}

func keyOf(raw string) pairKey {
	opt := Parse(raw)
	return pairKey{plugin: opt.Plugin, key: opt.Key}
}

// Group returns the options of each plugin id in first-seen plugin order.
func Group(options []string) (plugins []string, byPlugin map[string][]Option) {
	byPlugin = make(map[string][]Option)
	for _, raw := range options {
		opt := Parse(raw)
		if _, seen := byPlugin[opt.Plugin]; !seen {
			plugins = append(plugins, opt.Plugin)
		}
		byPlugin[opt.Plugin] = append(byPlugin[opt.Plugin], opt)
	}
	return plugins, byPlugin
}
