// Command sa builds the suffix array of standard input using one of three
// construction algorithms and writes it to standard output.
package main

import (
	"fmt"
	"log"
	"os"

	suffixarray "github.com/6851-2021/suffix-array"
)

func main() {
	opt, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	s, err := readInput(os.Stdin)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	var sa []int
	for i := 0; i < opt.repeatCnt; i++ {
		sa, err = suffixarray.Build(s, opt.algorithm)
		if err != nil {
			log.Fatalf("building suffix array: %v", err)
		}
	}

	if opt.textOutput {
		err = writeText(os.Stdout, sa)
	} else {
		err = writeBinary(os.Stdout, sa)
	}
	if err != nil {
		log.Fatalf("writing output: %v", err)
	}
}
