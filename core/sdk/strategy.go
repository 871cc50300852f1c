package sdk

import (
	"strings"

	"facet-reconciler/core/args"
)

// Strategy is one step of the resolution chain. Resolve returns the selected
// candidate, and decided=true when the chain must stop at this step even if
// no candidate was found.
type Strategy struct {
	Name    string
	Resolve func(req Request, paths PathComparer) (c *Candidate, decided bool)
}

// PathComparer compares two home paths.
type PathComparer func(a, b string) bool

// ComparePaths compares paths after running both through n, optionally
// ignoring case.
func ComparePaths(n args.Normalizer, caseInsensitive bool) PathComparer {
	return func(a, b string) bool {
		a, b = n.Path(a), n.Path(b)
		if caseInsensitive {
			return strings.EqualFold(a, b)
		}
		return a == b
	}
}

var jdkHomeSpec = args.MustLookup(args.JdkHome)

func jdkHome(b *args.Bucket) *string {
	if b == nil {
		return nil
	}
	return b.Single(jdkHomeSpec)
}

func firstOfKind(candidates []Candidate, kind Kind) *Candidate {
	for i := range candidates {
		if candidates[i].Kind == kind {
			c := candidates[i]
			return &c
		}
	}
	return nil
}

// ExplicitHome selects the Java candidate whose home matches the bucket's
// jdkHome. It is decisive whenever jdkHome is set: an unmatched override does
// not fall back to other JDKs.
func ExplicitHome() Strategy {
	return Strategy{
		Name: "explicit-home",
		Resolve: func(req Request, paths PathComparer) (*Candidate, bool) {
			home := jdkHome(req.Bucket)
			if home == nil {
				return nil, false
			}
			for i := range req.Available {
				c := req.Available[i]
				if c.Kind == KindJava && paths(c.HomePath, *home) {
					return &c, true
				}
			}
			return nil, true
		},
	}
}

// ProjectDefault selects the project SDK when it is of the given kind.
func ProjectDefault(kind Kind) Strategy {
	return Strategy{
		Name: "project-default",
		Resolve: func(req Request, _ PathComparer) (*Candidate, bool) {
			if req.ProjectSdk != nil && req.ProjectSdk.Kind == kind {
				c := *req.ProjectSdk
				return &c, true
			}
			return nil, false
		},
	}
}

// FirstAvailable selects the first available candidate of the given kind.
func FirstAvailable(name string, kind Kind) Strategy {
	return Strategy{
		Name: name,
		Resolve: func(req Request, _ PathComparer) (*Candidate, bool) {
			c := firstOfKind(req.Available, kind)
			return c, c != nil
		},
	}
}

// FromSiblings adopts the SDK of the first sibling whose resolved SDK is of
// the given kind.
func FromSiblings(kind Kind) Strategy {
	return Strategy{
		Name: "sibling-" + string(kind),
		Resolve: func(req Request, _ PathComparer) (*Candidate, bool) {
			for _, s := range req.Siblings {
				if s.Sdk != nil && s.Sdk.Kind == kind {
					c := *s.Sdk
					return &c, true
				}
			}
			return nil, false
		},
	}
}

// JVMStrategies is the resolution chain for JVM modules.
func JVMStrategies() []Strategy {
	return []Strategy{
		ExplicitHome(),
		ProjectDefault(KindJava),
		FirstAvailable("first-java", KindJava),
	}
}

// NonJVMStrategies is the resolution chain for JS, native and metadata modules.
func NonJVMStrategies() []Strategy {
	return []Strategy{
		FirstAvailable("available-kotlin", KindKotlin),
		FromSiblings(KindKotlin),
	}
}
