package meshx

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection strings encode a mesh and a component together, e.g.
// "body.vtx[3]", "body.e[0:4]" or "body.f[1,7,9:12]". Ranges are
// inclusive on both ends. Kind tokens are vtx, e and f; face-vertex
// components have no single-index string form.

var kindTokens = map[string]ElementKind{
	"vtx": Vertex,
	"e":   Edge,
	"f":   Face,
}

// ParseSelection resolves a selection string into a component using the
// resolver for the mesh lookup.
func ParseSelection(r MeshResolver, s string) (*Component, error) {
	name, kind, indices, err := splitSelection(s)
	if err != nil {
		return nil, err
	}
	mesh, err := r.MeshByName(name)
	if err != nil {
		return nil, err
	}
	return NewComponent(mesh, kind, indices...)
}

func splitSelection(s string) (name string, kind ElementKind, indices []int, err error) {
	dot := strings.LastIndexByte(s, '.')
	open := strings.IndexByte(s, '[')
	if dot <= 0 || open < dot || !strings.HasSuffix(s, "]") {
		return "", 0, nil, fmt.Errorf("%w: malformed selection string %q", ErrKind, s)
	}
	name = s[:dot]
	token := s[dot+1 : open]
	kind, ok := kindTokens[token]
	if !ok {
		return "", 0, nil, fmt.Errorf("%w: unknown component token %q in %q", ErrKind, token, s)
	}
	body := s[open+1 : len(s)-1]
	if body == "" {
		return name, kind, nil, nil
	}
	for _, item := range strings.Split(body, ",") {
		lo, hi, ok := parseSpan(strings.TrimSpace(item))
		if !ok {
			return "", 0, nil, fmt.Errorf("%w: malformed index %q in %q", ErrKind, item, s)
		}
		for idx := lo; idx <= hi; idx++ {
			indices = append(indices, idx)
		}
	}
	return name, kind, indices, nil
}

func parseSpan(item string) (lo, hi int, ok bool) {
	if colon := strings.IndexByte(item, ':'); colon >= 0 {
		var err1, err2 error
		lo, err1 = strconv.Atoi(item[:colon])
		hi, err2 = strconv.Atoi(item[colon+1:])
		return lo, hi, err1 == nil && err2 == nil && lo >= 0 && hi >= lo
	}
	n, err := strconv.Atoi(item)
	return n, n, err == nil && n >= 0
}

// SelectionString returns the canonical string for the component, with
// consecutive sorted indices compressed into inclusive ranges.
func (c *Component) SelectionString() (string, error) {
	var token string
	switch c.kind {
	case Vertex:
		token = "vtx"
	case Edge:
		token = "e"
	case Face:
		token = "f"
	default:
		return "", fmt.Errorf("%w: no string form for %v components", ErrKind, c.kind)
	}
	var sb strings.Builder
	sb.WriteString(c.mesh.Name())
	sb.WriteByte('.')
	sb.WriteString(token)
	sb.WriteByte('[')
	sorted := c.Sorted()
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(sorted[i]))
		if j > i {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(sorted[j]))
		}
		i = j + 1
	}
	sb.WriteByte(']')
	return sb.String(), nil
}
