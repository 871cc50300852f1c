package args

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath rewrites a path into its OS-independent form: backslashes
// become forward slashes and redundant separators and dot segments are
// removed. A leading "//" (UNC share) is kept. The empty string stays empty.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, "/")
	unc := strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "///")
	p = path.Clean(p)
	if unc && !strings.HasPrefix(p, "//") {
		p = "/" + p
	}
	return p
}

// Normalizer rewrites path-valued fields of a bucket.
type Normalizer struct {
	// ResolveSymlinks resolves symbolic links of paths that exist on the
	// local filesystem before normalizing. Paths that cannot be resolved are
	// only normalized.
	ResolveSymlinks bool
}

// Path normalizes one path.
func (n Normalizer) Path(p string) string {
	if n.ResolveSymlinks && p != "" {
		if resolved, err := filepath.EvalSymlinks(filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))); err == nil {
			p = filepath.ToSlash(resolved)
		}
	}
	return NormalizePath(p)
}

// Bucket returns a copy of b with every path field normalized. Non-path
// fields are copied unchanged and b is not modified.
func (n Normalizer) Bucket(b *Bucket) *Bucket {
	out := b.Clone()
	for _, id := range out.Fields() {
		spec := MustLookup(id)
		if !spec.Path {
			continue
		}
		v, _ := out.Get(id)
		switch v.Kind() {
		case KindSingle:
			if s := v.Str(); s != nil {
				v = Single(n.Path(*s))
			}
		case KindMulti:
			list := v.Strings()
			for i := range list {
				list[i] = n.Path(list[i])
			}
			v = Multi(list...)
		}
		out.values[id] = v
	}
	return out
}

// NormalizePaths normalizes the path fields of b without resolving symlinks.
func NormalizePaths(b *Bucket) *Bucket {
	return Normalizer{}.Bucket(b)
}
