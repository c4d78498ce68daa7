package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultInputDomain is the label of the values listed on the seeds line.
const DefaultInputDomain = "seed"

const (
	_seedsPrefix = "seeds:"
	_mapSuffix   = " map:"
	_labelSep    = "-to-"
)

// Almanac is the parsed form of an almanac document.
type Almanac struct {
	Seeds  []int64      `yaml:"seeds,flow"`
	Stages []StageBlock `yaml:"stages"`
}

// Parse reads an almanac in its text form:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Stage blocks are returned in file order.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a       Almanac
		current *StageBlock
		seen    bool
		lineNo  int
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())

		switch {
		case line == "":
			current = nil

		case strings.HasPrefix(line, _seedsPrefix):
			if seen {
				return nil, syntaxErrorf(lineNo, "duplicate seeds line")
			}
			seen = true
			for _, f := range strings.Fields(strings.TrimPrefix(line, _seedsPrefix)) {
				v, err := parseInt(f)
				if err != nil {
					return nil, syntaxErrorf(lineNo, "bad seed %q", f)
				}
				a.Seeds = append(a.Seeds, v)
			}

		case strings.HasSuffix(line, _mapSuffix):
			from, to, err := parseHeader(strings.TrimSuffix(line, _mapSuffix))
			if err != nil {
				return nil, syntaxErrorf(lineNo, "%v", err)
			}
			a.Stages = append(a.Stages, StageBlock{From: from, To: to})
			current = &a.Stages[len(a.Stages)-1]

		default:
			if current == nil {
				return nil, syntaxErrorf(lineNo, "unexpected line %q", line)
			}
			spec, err := parseRule(line)
			if err != nil {
				return nil, syntaxErrorf(lineNo, "%v", err)
			}
			current.Rules = append(current.Rules, spec)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if !seen {
		return nil, syntaxErrorf(lineNo, "missing seeds line")
	}
	return &a, nil
}

func parseHeader(title string) (from, to string, err error) {
	i := strings.Index(title, _labelSep)
	if i < 0 {
		return "", "", errorf("bad map header %q", title)
	}
	from, to = strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+len(_labelSep):])
	if from == "" || to == "" {
		return "", "", errorf("bad map header %q", title)
	}
	return from, to, nil
}

func parseRule(line string) (RuleSpec, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return RuleSpec{}, errorf("want 3 numbers, got %q", line)
	}
	var v [3]int64
	for i, f := range fields {
		n, err := parseInt(f)
		if err != nil {
			return RuleSpec{}, errorf("bad number %q", f)
		}
		v[i] = n
	}
	return RuleSpec{Destination: v[0], Source: v[1], Length: v[2]}, nil
}

// EncodeText writes a in the form read by Parse.
func EncodeText(w io.Writer, a *Almanac) error {
	var b strings.Builder
	b.WriteString(_seedsPrefix)
	for _, v := range a.Seeds {
		fmt.Fprintf(&b, " %d", v)
	}
	b.WriteByte('\n')
	for _, st := range a.Stages {
		fmt.Fprintf(&b, "\n%s%s%s%s\n", st.From, _labelSep, st.To, _mapSuffix)
		for _, r := range st.Rules {
			fmt.Fprintf(&b, "%d %d %d\n", r.Destination, r.Source, r.Length)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Chain reorders blocks so that they form a chain starting at domain from,
// following each block's To label to the next block's From label. Every
// block must be reachable and no two blocks may share a From label.
func Chain(blocks []StageBlock, from string) ([]StageBlock, error) {
	index := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if _, dup := index[b.From]; dup {
			return nil, constructionErrorf(i, -1, "duplicate map from %q", b.From)
		}
		index[b.From] = i
	}

	chained := make([]StageBlock, 0, len(blocks))
	label := from
	for len(chained) < len(blocks) {
		i, ok := index[label]
		if !ok {
			return nil, constructionErrorf(-1, -1, "no map from %q (%v of %v maps chained)", label, len(chained), len(blocks))
		}
		delete(index, label)
		chained = append(chained, blocks[i])
		label = blocks[i].To
	}
	return chained, nil
}

// Pipeline builds a Pipeline from the almanac's stages in file order.
func (a *Almanac) Pipeline() (*Pipeline, error) {
	return BuildPipeline(a.Stages)
}

// Lowest returns the smallest value reachable from the almanac's seeds,
// read according to mode.
func (a *Almanac) Lowest(mode SeedMode) (int64, error) {
	p, err := a.Pipeline()
	if err != nil {
		return 0, err
	}
	initial, err := BuildInitialRangeSet(a.Seeds, mode)
	if err != nil {
		return 0, err
	}
	return p.MinimumValue(initial)
}
