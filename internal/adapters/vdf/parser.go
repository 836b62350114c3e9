// Package vdf reads Valve's nested key/value text format, as used by Steam's
// libraryfolders.vdf and appmanifest_<id>.acf files.
//
// The parser is line oriented and deliberately permissive. The files are
// written by Steam, so anything that does not match one of the four line
// shapes below is dropped instead of rejected:
//
//	"key"              announces a nested object
//	"key"	"value"     a leaf entry, value may be empty
//	{                  opens the announced object
//	}                  closes the current object
//
// Leading tabs are allowed on every line.
package vdf

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	keyLineRe      = regexp.MustCompile(`^\t*"(.+)"$`)
	keyValueLineRe = regexp.MustCompile(`^\t*"(.+)"[\t ]+"(.*)"$`)
	openLineRe     = regexp.MustCompile(`^\t*{$`)
	closeLineRe    = regexp.MustCompile(`^\t*}$`)
)

// Parse parses text into a tree. It never fails: unrecognized lines are
// skipped and an unterminated object keeps whatever it accumulated.
func Parse(text string) *domain.Node {
	// A strings.Reader never returns a read error.
	node, _ := ParseReader(strings.NewReader(text))
	return node
}

// ParseReader parses the document read from r. The only errors are those
// of the reader itself; the content is never rejected and lines of any
// length are accepted. On a read error the entries parsed so far are
// returned with it.
func ParseReader(r io.Reader) (*domain.Node, error) {
	c := &cursor{reader: bufio.NewReader(r)}
	root := c.parseObject()
	if c.err != nil {
		return root, zerr.Wrap(c.err, "failed to scan document")
	}
	return root, nil
}

// cursor is the single forward position in the input, shared by every level
// of the recursive descent: a nested call continues exactly where its caller
// stopped and the caller resumes after the nested object's closing line.
type cursor struct {
	reader *bufio.Reader
	done   bool
	err    error
}

func (c *cursor) next() (string, bool) {
	if c.done {
		return "", false
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		c.done = true
		if !errors.Is(err, io.EOF) {
			c.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// parseObject consumes lines until the closing line of the current level or
// the end of input and returns the entries collected on the way.
func (c *cursor) parseObject() *domain.Node {
	obj := domain.NewObject()
	for {
		line, ok := c.next()
		if !ok {
			return obj
		}

		switch {
		case openLineRe.MatchString(line):
			continue
		case closeLineRe.MatchString(line):
			return obj
		}

		if m := keyValueLineRe.FindStringSubmatch(line); m != nil {
			obj.Set(m[1], domain.NewLeaf(m[2]))
			continue
		}
		if m := keyLineRe.FindStringSubmatch(line); m != nil {
			obj.Set(m[1], c.parseObject())
		}
	}
}
