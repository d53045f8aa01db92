package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graeme-hill/exprlex/lib"
)

func main() {
	positions := flag.Bool("positions", false, "print line:col before each token")
	flag.Parse()

	var err error
	if flag.NArg() > 0 {
		err = printTokens(os.Stdout, strings.Join(flag.Args(), " "), *positions)
	} else {
		err = readLines(os.Stdin, os.Stdout, *positions)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readLines(in io.Reader, out io.Writer, positions bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := printTokens(out, line, positions); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printTokens(out io.Writer, input string, positions bool) error {
	return lib.Lex(input, func(tok lib.Token) {
		if positions {
			loc := tok.Location()
			fmt.Fprintf(out, "%d:%d -> %s\n", loc.Line, loc.Col, tok)
		} else {
			fmt.Fprintln(out, tok)
		}
	})
}
