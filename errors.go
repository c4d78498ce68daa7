package almanac

import (
	"errors"
	"fmt"
)

var (
	ErrConstruction = errors.New("invalid pipeline")
	ErrEmptyInput   = errors.New("no seed ranges")
	ErrInvalidSeeds = errors.New("invalid seeds")
	ErrSyntax       = errors.New("syntax error")
)

// ConstructionError reports a structural defect found while building a
// Stage or a Pipeline. Stage and Rule are -1 when not applicable.
type ConstructionError struct {
	Stage  int
	Rule   int
	Reason string
}

func (e *ConstructionError) Error() string {
	switch {
	case e.Stage >= 0 && e.Rule >= 0:
		return fmt.Sprintf("%v: stage %v: rule %v: %v", ErrConstruction, e.Stage, e.Rule, e.Reason)
	case e.Stage >= 0:
		return fmt.Sprintf("%v: stage %v: %v", ErrConstruction, e.Stage, e.Reason)
	case e.Rule >= 0:
		return fmt.Sprintf("%v: rule %v: %v", ErrConstruction, e.Rule, e.Reason)
	}
	return fmt.Sprintf("%v: %v", ErrConstruction, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return ErrConstruction
}

// SyntaxError is returned by Parse. Line is 1-based.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: line %v: %v", ErrSyntax, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
