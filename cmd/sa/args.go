package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	suffixarray "github.com/6851-2021/suffix-array"
)

const usage = `Usage: sa [-text] <algorithm> [repeatCnt]

algorithm:  The algorithm to use. One of 'naive', 'nlogn', 'linear'
repeatCnt:  How many times to run the algorithm. Useful for benchmarking.
            Default is 1
`

// usageError marks an argument error that main should report with the usage
// banner and exit 1, as distinct from an I/O failure that aborts via log.Fatal.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

type options struct {
	algorithm  suffixarray.Algorithm
	repeatCnt  int
	textOutput bool
}

// parseArgs parses argv (conventionally os.Args[1:]) into options. -text may
// appear anywhere before the positional arguments; it does not count toward
// the 1-or-2 positional arity check.
func parseArgs(argv []string) (options, error) {
	fs := flag.NewFlagSet("sa", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	text := fs.Bool("text", false, "write the suffix array as whitespace-separated decimal text instead of binary")
	if err := fs.Parse(argv); err != nil {
		return options{}, &usageError{msg: err.Error()}
	}

	args := fs.Args()
	if len(args) < 1 || len(args) > 2 {
		return options{}, &usageError{msg: fmt.Sprintf("expected between 1 and 2 arguments, got %d", len(args))}
	}

	algo, err := suffixarray.ParseAlgorithm(args[0])
	if err != nil {
		return options{}, &usageError{msg: fmt.Sprintf("unrecognized algorithm %q", args[0])}
	}

	repeatCnt := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return options{}, &usageError{msg: fmt.Sprintf("cannot parse repeatCnt %q", args[1])}
		}
		repeatCnt = n
	}

	return options{algorithm: algo, repeatCnt: repeatCnt, textOutput: *text}, nil
}
