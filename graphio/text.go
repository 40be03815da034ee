package graphio

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmatch/labeled"
)

var (
	// ErrMalformed is returned for input that does not follow the format.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrInvalid is returned for well-formed input describing an invalid graph
	// (out-of-range child, label on a non-edge).
	ErrInvalid = errors.New("graphio: invalid graph")
)

// ParseInt parses a base-10 int label.
func ParseInt(s string) (int, error) { return strconv.Atoi(s) }

// ParseFloat parses a float64 label.
func ParseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// ParseString returns s unquoted if it is a Go-quoted string, else verbatim.
func ParseString(s string) (string, error) {
	if len(s) >= 2 && s[0] == '"' {
		return strconv.Unquote(s)
	}

	return s, nil
}

// Read parses one graph in the text format. opts are passed to labeled.New
// after the name and inverse-adjacency flag from the header.
func Read[L cmp.Ordered](r io.Reader, parse func(string) (L, error), opts ...labeled.GraphOption) (*labeled.Graph[L], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	p := &lineReader{sc: sc}

	// 1) Header.
	line, ok := p.next()
	if !ok {
		return nil, p.errf("missing Graph( header")
	}
	if !strings.HasPrefix(line, "Graph(") {
		return nil, p.errf("expected Graph( header, got %q", line)
	}
	head := splitFields(strings.TrimPrefix(line, "Graph("))
	if len(head) != 3 {
		return nil, p.errf("header wants name, hasInverseAdjacency, vertexCount")
	}
	name := head[0]
	inverse, err := strconv.ParseBool(head[1])
	if err != nil {
		return nil, p.errf("hasInverseAdjacency: %v", err)
	}
	n, err := strconv.Atoi(head[2])
	if err != nil || n < 0 {
		return nil, p.errf("vertexCount: %q", head[2])
	}

	// 2) Vertex lines.
	children := make([][]int, n)
	vlabels := make([]L, n)
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		line, ok = p.next()
		if !ok {
			return nil, p.errf("expected %d vertex lines, got %d", n, i)
		}
		f := splitFields(line)
		if len(f) < 2 {
			return nil, p.errf("vertex line wants id, label[, child...]")
		}
		if f[1] == "" {
			return nil, p.errf("vertex %s: empty label (write \"\" for an empty string)", f[0])
		}
		id, err := strconv.Atoi(f[0])
		if err != nil || id < 0 || id >= n {
			return nil, p.errf("vertex id %q not in [0,%d)", f[0], n)
		}
		if seen[id] {
			return nil, p.errf("duplicate vertex id %d", id)
		}
		seen[id] = true
		if vlabels[id], err = parse(f[1]); err != nil {
			return nil, p.errf("vertex %d label: %v", id, err)
		}
		for _, tok := range f[2:] {
			c, err := strconv.Atoi(tok)
			if err != nil {
				return nil, p.errf("vertex %d child %q: %v", id, tok, err)
			}
			children[id] = append(children[id], c)
		}
	}

	// 3) Edge-label lines up to the closing parenthesis.
	elabels := make(map[labeled.Edge]L)
	for {
		line, ok = p.next()
		if !ok {
			return nil, p.errf("missing closing )")
		}
		if line == ")" {
			break
		}
		e, l, err := parseEdgeLine(line, parse)
		if err != nil {
			return nil, p.errf("%v", err)
		}
		if _, dup := elabels[e]; dup {
			return nil, p.errf("duplicate label for (%d, %d)", e.From, e.To)
		}
		elabels[e] = l
	}

	// 4) Build unvalidated, then validate explicitly.
	gopts := append([]labeled.GraphOption{labeled.WithName(name), labeled.WithoutValidation()}, opts...)
	g, err := labeled.New(children, vlabels, elabels, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if ok, msg := g.ValidateEdges(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, msg)
	}
	if ok, msg := g.ValidateEdgeLabels(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, msg)
	}
	if inverse {
		g.BuildInverseAdjacency()
	}

	return g, nil
}

// parseEdgeLine parses "(u, v) -> label".
func parseEdgeLine[L cmp.Ordered](line string, parse func(string) (L, error)) (labeled.Edge, L, error) {
	var zero L
	lhs, rhs, ok := strings.Cut(line, "->")
	if !ok {
		return labeled.Edge{}, zero, fmt.Errorf("edge line wants (u, v) -> label, got %q", line)
	}
	lhs = strings.TrimSpace(lhs)
	if !strings.HasPrefix(lhs, "(") || !strings.HasSuffix(lhs, ")") {
		return labeled.Edge{}, zero, fmt.Errorf("edge %q is not parenthesized", lhs)
	}
	ends := splitFields(lhs[1 : len(lhs)-1])
	if len(ends) != 2 {
		return labeled.Edge{}, zero, fmt.Errorf("edge %q wants two endpoints", lhs)
	}
	u, err := strconv.Atoi(ends[0])
	if err != nil {
		return labeled.Edge{}, zero, fmt.Errorf("edge source %q: %v", ends[0], err)
	}
	v, err := strconv.Atoi(ends[1])
	if err != nil {
		return labeled.Edge{}, zero, fmt.Errorf("edge target %q: %v", ends[1], err)
	}
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return labeled.Edge{}, zero, fmt.Errorf("edge (%d, %d): empty label (write \"\" for an empty string)", u, v)
	}
	l, err := parse(rhs)
	if err != nil {
		return labeled.Edge{}, zero, fmt.Errorf("edge (%d, %d) label: %v", u, v, err)
	}

	return labeled.Edge{From: u, To: v}, l, nil
}

// Write emits g in the text format. format renders labels; nil uses fmt.Sprint.
// Every edge gets an explicit label line.
func Write[L cmp.Ordered](w io.Writer, g *labeled.Graph[L], format func(L) string) error {
	if format == nil {
		format = func(l L) string { return fmt.Sprint(l) }
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Graph(%s, %t, %d\n", g.Name(), g.HasInverseAdjacency(), g.Size())
	for v := 0; v < g.Size(); v++ {
		fmt.Fprintf(bw, "%d, %s", v, formatLabel(format, g.Label(v)))
		for _, c := range g.Children(v) {
			fmt.Fprintf(bw, ", %d", c)
		}
		bw.WriteByte('\n')
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "(%d, %d) -> %s\n", e.From, e.To, formatLabel(format, g.EdgeLabel(e.From, e.To)))
	}
	bw.WriteString(")\n")

	return bw.Flush()
}

// lineReader yields trimmed, non-empty, non-comment lines and tracks the
// line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (p *lineReader) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		s := strings.TrimSpace(p.sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		return s, true
	}

	return "", false
}

func (p *lineReader) errf(format string, args ...any) error {
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrMalformed, p.line, err)
	}

	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(format, args...))
}

// splitFields splits on commas and trims each field. Fields keep their
// position, so an empty field stays empty; only one trailing empty field
// (a line ending in a comma) is dropped.
func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}

	return parts
}

// formatLabel renders a label token; an empty rendering is written as "" so
// the field keeps its position and ParseString reads it back.
func formatLabel[L cmp.Ordered](format func(L) string, l L) string {
	if s := format(l); s != "" {
		return s
	}

	return `""`
}
