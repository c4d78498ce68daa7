package almanac

import (
	"fmt"
	"strconv"
)

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func constructionErrorf(stage, rule int, format string, a ...interface{}) error {
	return &ConstructionError{stage, rule, fmt.Sprintf(format, a...)}
}

func syntaxErrorf(line int, format string, a ...interface{}) error {
	return &SyntaxError{line, fmt.Sprintf(format, a...)}
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
