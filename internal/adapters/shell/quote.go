package shell

import (
	"strings"

	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Quote quotes each argument so that a bash-compatible shell reads it back
// as a single word.
func Quote(args []string) ([]string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrQuoteFailed.Error()), "argument", arg)
		}
		quoted[i] = q
	}
	return quoted, nil
}

// Join quotes args and joins them with single spaces.
func Join(args []string) (string, error) {
	quoted, err := Quote(args)
	if err != nil {
		return "", err
	}
	return strings.Join(quoted, " "), nil
}
