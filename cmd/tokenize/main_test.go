package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTokens(t *testing.T) {
	var out bytes.Buffer
	err := printTokens(&out, "x = 1", true)
	require.NoError(t, err)
	require.Equal(t, "1:1 -> VAR 'x'\n1:3 -> ASSIGN '='\n1:5 -> NUMBER 1\n1:6 -> EOF\n", out.String())
}

func TestReadLines(t *testing.T) {
	var out bytes.Buffer
	err := readLines(strings.NewReader("1+2\n\n(a)\n"), &out, false)
	require.NoError(t, err)
	require.Equal(t, "NUMBER 1\nPLUS '+'\nNUMBER 2\nEOF\nLPAREN '('\nVAR 'a'\nRPAREN ')'\nEOF\n", out.String())
}

func TestReadLinesIllegal(t *testing.T) {
	var out bytes.Buffer
	err := readLines(strings.NewReader("1 & 2\n"), &out, false)
	require.Error(t, err)
	require.Equal(t, "NUMBER 1\n", out.String())
}
