package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// gojsonschema ranges over document objects when it checks
// additionalProperties, patternProperties, propertyNames and dependencies,
// so errors from those loops come out in random order. stabilize puts them
// in member name order and leaves everything else in engine order.
func stabilize(errs []gojsonschema.ResultError) []gojsonschema.ResultError {
	items := make([]located, len(errs))
	for i, re := range errs {
		items[i] = located{re: re, loc: pointer(re.Context())}
	}

	sortMemberBlocks(items)
	sortDependencyRuns(items)
	sortSiblingRuns(items)

	out := make([]gojsonschema.ResultError, len(items))
	for i, it := range items {
		out[i] = it.re
	}
	return out
}

type located struct {
	re  gojsonschema.ResultError
	loc string
}

const (
	typeAdditionalProperty = "additional_property_not_allowed"
	typePropertyName       = "invalid_property_name"
	typeMissingDependency  = "missing_dependency"
)

// memberAnchor reports the object member an additionalProperties or
// propertyNames error at location p is about.
func memberAnchor(it located, p string) (string, bool) {
	if it.loc != p {
		return "", false
	}
	switch it.re.Type() {
	case typeAdditionalProperty, typePropertyName:
		prop, ok := it.re.Details()["property"].(string)
		return prop, ok
	}
	return "", false
}

// sortMemberBlocks finds the errors of one pass over an object's members
// and orders them by member. A block holds the anchors at the object's
// location, errors below it, and the propertyNames sub-errors that follow
// their anchor.
func sortMemberBlocks(items []located) {
	for i := 0; i < len(items); {
		p := items[i].loc
		if _, ok := memberAnchor(items[i], p); !ok {
			i++
			continue
		}

		start := i
		for start > 0 && below(items[start-1].loc, p) {
			start--
		}

		var (
			members []string
			names   string
			end     = start
		)
		for ; end < len(items); end++ {
			it := items[end]
			if prop, ok := memberAnchor(it, p); ok {
				names = ""
				if it.re.Type() == typePropertyName {
					names = prop
				}
				members = append(members, prop)
				continue
			}
			if below(it.loc, p) {
				names = ""
				members = append(members, firstToken(it.loc, p))
				continue
			}
			if v, ok := it.re.Value().(string); ok && names != "" && it.loc == p && v == names {
				members = append(members, names)
				continue
			}
			break
		}

		sortStable(items[start:end], members, func(a, b string) bool { return a < b })
		i = end
	}
}

func sortDependencyRuns(items []located) {
	for i := 0; i < len(items); {
		end := i + 1
		if items[i].re.Type() == typeMissingDependency {
			for end < len(items) && items[end].re.Type() == typeMissingDependency && items[end].loc == items[i].loc {
				end++
			}
		}
		if end-i > 1 {
			keys := make([]string, 0, end-i)
			for _, it := range items[i:end] {
				keys = append(keys, fmt.Sprint(it.re.Details()["dependency"]))
			}
			sortStable(items[i:end], keys, func(a, b string) bool { return a < b })
		}
		i = end
	}
}

// sortSiblingRuns orders runs of same-type errors on members of one object,
// as emitted for patternProperties. Runs over array elements already follow
// index order and are left alone.
func sortSiblingRuns(items []located) {
	for i := 0; i < len(items); {
		if items[i].loc == "" {
			i++
			continue
		}
		q := parent(items[i].loc)
		end := i + 1
		for end < len(items) && items[end].re.Type() == items[i].re.Type() &&
			items[end].loc != "" && parent(items[end].loc) == q {
			end++
		}
		if end-i > 1 {
			keys := make([]string, 0, end-i)
			object := false
			for _, it := range items[i:end] {
				tok := firstToken(it.loc, q)
				if _, err := strconv.Atoi(tok); err != nil {
					object = true
				}
				keys = append(keys, tok)
			}
			if object {
				sortStable(items[i:end], keys, func(a, b string) bool { return a < b })
			}
		}
		i = end
	}
}

func sortStable(items []located, keys []string, less func(a, b string) bool) {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return less(keys[idx[a]], keys[idx[b]]) })

	sorted := make([]located, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

func below(loc, p string) bool {
	return strings.HasPrefix(loc, p+"/")
}

func firstToken(loc, p string) string {
	rest := loc[len(p)+1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

func parent(loc string) string {
	return loc[:strings.LastIndexByte(loc, '/')]
}
