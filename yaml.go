package almanac

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads an almanac in YAML form:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - {destination: 50, source: 98, length: 2}
func DecodeYAML(r io.Reader) (*Almanac, error) {
	var a Almanac
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return &a, nil
}

func EncodeYAML(w io.Writer, a *Almanac) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return err
	}
	return enc.Close()
}

// UnmarshalYAML accepts a rule either as a mapping or as a
// [destination, source, length] sequence.
func (r *RuleSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var v []int64
		if err := value.Decode(&v); err != nil {
			return err
		}
		if len(v) != 3 {
			return fmt.Errorf("line %d: want [destination, source, length], got %d values", value.Line, len(v))
		}
		*r = RuleSpec{Destination: v[0], Source: v[1], Length: v[2]}
		return nil
	}
	type plain RuleSpec
	return value.Decode((*plain)(r))
}
