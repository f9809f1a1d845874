// Package memfile loads memory initialization images into word sequences
// that can seed a memory block. The memory core itself never touches the
// filesystem; this package is the collaborator that parses on-disk images.
//
// The supported format follows the Verilog $readmemh/$readmemb convention:
// one word per line, `//` comments and blank lines ignored, and optional
// `@hex` markers that reposition the load cursor. Locations that the image
// does not cover stay at zero.
package memfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A ParseError reports a malformed line in a memory image.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("memory image line %d: %s", e.Line, e.Msg)
}

// LoadHex reads a hexadecimal memory image and returns exactly depth words,
// each checked against wordWidth bits.
func LoadHex(r io.Reader, wordWidth, depth int) ([]uint64, error) {
	return load(r, 16, wordWidth, depth)
}

// LoadBin reads a binary memory image and returns exactly depth words, each
// checked against wordWidth bits.
func LoadBin(r io.Reader, wordWidth, depth int) ([]uint64, error) {
	return load(r, 2, wordWidth, depth)
}

// LoadFile reads a memory image from a file. Format is "hex" or "bin".
func LoadFile(path, format string, wordWidth, depth int) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "hex":
		return LoadHex(f, wordWidth, depth)
	case "bin":
		return LoadBin(f, wordWidth, depth)
	}

	return nil, fmt.Errorf("unknown memory image format %q", format)
}

func load(r io.Reader, base, wordWidth, depth int) ([]uint64, error) {
	words := make([]uint64, depth)
	cursor := 0
	lineNum := 0

	var mask uint64
	if wordWidth == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << wordWidth) - 1
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}

		for _, token := range strings.Fields(line) {
			if strings.HasPrefix(token, "@") {
				addr, err := strconv.ParseUint(token[1:], 16, 64)
				if err != nil {
					return nil, &ParseError{
						Line: lineNum,
						Msg: fmt.Sprintf(
							"bad address marker %q", token),
					}
				}
				if addr >= uint64(depth) {
					return nil, &ParseError{
						Line: lineNum,
						Msg: fmt.Sprintf(
							"address marker %q exceeds depth %d",
							token, depth),
					}
				}
				cursor = int(addr)
				continue
			}

			word, err := strconv.ParseUint(token, base, 64)
			if err != nil {
				return nil, &ParseError{
					Line: lineNum,
					Msg:  fmt.Sprintf("bad word %q", token),
				}
			}

			if word&^mask != 0 {
				return nil, &ParseError{
					Line: lineNum,
					Msg: fmt.Sprintf(
						"word %q does not fit in %d bits",
						token, wordWidth),
				}
			}

			if cursor >= depth {
				return nil, &ParseError{
					Line: lineNum,
					Msg: fmt.Sprintf(
						"image overruns depth %d", depth),
				}
			}

			words[cursor] = word
			cursor++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
