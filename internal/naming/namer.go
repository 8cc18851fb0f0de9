package naming

import (
	"go.uber.org/multierr"
)

// Result is the outcome of resolving one incoming name.
type Result struct {
	Input    string
	Parsed   ParsedName
	Resolved string
	Err      error
}

// Changed reports whether the name had to be versioned.
func (r Result) Changed() bool {
	return r.Err == nil && r.Resolved != r.Parsed.Original
}

// Namer resolves names one at a time against a running set that starts
// with the existing names and gains every name it hands out.
type Namer struct {
	set *NameSet
}

func NewNamer(existing []string) *Namer {
	return &Namer{set: NewNameSet(existing)}
}

// Resolve returns a name for raw that is not yet taken and takes it.
func (n *Namer) Resolve(raw string) (string, error) {
	r := n.resolve(raw)
	return r.Resolved, r.Err
}

func (n *Namer) resolve(raw string) Result {
	r := Result{Input: raw}
	p, err := ParseName(raw)
	if err != nil {
		r.Err = err
		return r
	}
	r.Parsed = p
	resolved, err := n.set.Assign(p)
	if err != nil {
		r.Err = err
		return r
	}
	n.set.Add(resolved)
	r.Resolved = resolved
	return r
}

// Names returns every taken name, existing ones first.
func (n *Namer) Names() []string {
	return n.set.Names()
}

// ProcessNames resolves incoming in order against existing. There is one
// Result per incoming name. A name that cannot be resolved carries its
// error in Result.Err and does not take a slot; the returned error combines
// all such errors.
func ProcessNames(existing, incoming []string) ([]Result, error) {
	namer := NewNamer(existing)
	results := make([]Result, 0, len(incoming))
	var err error
	for _, raw := range incoming {
		r := namer.resolve(raw)
		err = multierr.Append(err, r.Err)
		results = append(results, r)
	}
	return results, err
}

// ResolvedNames returns the resolved names of results that succeeded.
func ResolvedNames(results []Result) []string {
	var out []string
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		out = append(out, r.Resolved)
	}
	return out
}
