/*
llccgen is a console utility exposing the grammar loader and source
tokenizer as two verbs:

	llccgen parse_grammar <file>
	llccgen parse_file <file>

parse_grammar loads <file> as a meta-grammar and prints its token and
rule counts. parse_file tokenizes <file> as target-language source and
prints one line per token. Running with no recognized verb, or omitting
the required <file> argument, prints usage to stderr and exits with a
non-zero status.
*/
package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/relang/llcc/grammar"
	"github.com/relang/llcc/lexer"
	"github.com/relang/llcc/source"
)

var (
	app = kingpin.New("llccgen", "Grammar-driven compiler front-end toolchain")

	parseGrammarCmd  = app.Command("parse_grammar", "Load a meta-grammar file and print its token and rule counts")
	parseGrammarFile = parseGrammarCmd.Arg("file", "grammar definition file name").Required().String()

	parseFileCmd  = app.Command("parse_file", "Tokenize a target-language source file")
	parseFileFile = parseFileCmd.Arg("file", "source file name").Required().String()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case parseGrammarCmd.FullCommand():
		runParseGrammar(*parseGrammarFile)
	case parseFileCmd.FullCommand():
		runParseFile(*parseFileFile)
	}
}

func runParseGrammar(name string) {
	content, err := os.ReadFile(name)
	kingpin.FatalIfError(err, "")

	report := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	rm := grammar.Parse(content, name, report)

	fmt.Fprintf(os.Stderr, "%d tokens, %d rules\n", grammar.TokenCount(content), rm.Len())
}

func runParseFile(name string) {
	content, err := os.ReadFile(name)
	kingpin.FatalIfError(err, "")

	src := source.New(name, content)
	toks, err := lexer.Tokenize(src)
	kingpin.FatalIfError(err, "")

	for _, tok := range toks {
		fmt.Printf("%s %s\n", tok.KindName(), tok.Text())
	}
}
