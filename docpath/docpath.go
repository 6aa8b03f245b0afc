// Package docpath turns JSON pointers reported by schema validation into
// paths through the validated document.
package docpath

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Path is an ordered list of segments. Object members are strings and
// array elements are ints.
type Path []interface{}

// String renders the path as a JSON pointer.
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case int:
			b.WriteString(strconv.Itoa(s))
		case string:
			b.WriteString(escaper.Replace(s))
		}
	}
	return b.String()
}

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Tokens splits a JSON pointer into unescaped reference tokens. The empty
// pointer and "/" prefixed pointers are accepted; anything else is treated
// as a single token.
func Tokens(pointer string) []string {
	if pointer == "" {
		return nil
	}
	pointer = strings.TrimPrefix(pointer, "/")
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		parts[i] = unescaper.Replace(p)
	}
	return parts
}

// Resolve walks pointer through doc. Tokens that address an array element
// in doc become int segments. Once the pointer leaves the document the
// remaining tokens are kept as strings.
//
// doc may be a decoded JSON value, JSON text as json.RawMessage or []byte,
// or any value that encodes to JSON.
func Resolve(pointer string, doc interface{}) Path {
	tokens := Tokens(pointer)
	path := make(Path, 0, len(tokens))
	if len(tokens) == 0 {
		return path
	}

	switch d := doc.(type) {
	case json.RawMessage:
		return resolveJSON(path, tokens, gjson.ParseBytes(d))
	case []byte:
		return resolveJSON(path, tokens, gjson.ParseBytes(d))
	case map[string]interface{}, []interface{}, nil:
		return resolveValue(path, tokens, d)
	default:
		b, err := json.Marshal(doc)
		if err != nil {
			return appendStrings(path, tokens)
		}
		return resolveJSON(path, tokens, gjson.ParseBytes(b))
	}
}

func resolveValue(path Path, tokens []string, node interface{}) Path {
	for i, tok := range tokens {
		switch n := node.(type) {
		case map[string]interface{}:
			path = append(path, tok)
			node = n[tok]
		case []interface{}:
			idx, ok := index(tok, len(n))
			if !ok {
				return appendStrings(path, tokens[i:])
			}
			path = append(path, idx)
			node = n[idx]
		default:
			return appendStrings(path, tokens[i:])
		}
	}
	return path
}

func resolveJSON(path Path, tokens []string, node gjson.Result) Path {
	for i, tok := range tokens {
		switch {
		case node.IsObject():
			path = append(path, tok)
			node = node.Get(gjson.Escape(tok))
		case node.IsArray():
			idx, ok := index(tok, len(node.Array()))
			if !ok {
				return appendStrings(path, tokens[i:])
			}
			path = append(path, idx)
			node = node.Get(tok)
		default:
			return appendStrings(path, tokens[i:])
		}
	}
	return path
}

func index(tok string, n int) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	idx, err := strconv.Atoi(tok)
	if err != nil || idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

func appendStrings(path Path, tokens []string) Path {
	for _, tok := range tokens {
		path = append(path, tok)
	}
	return path
}
