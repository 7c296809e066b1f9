// Command patternscan scans a file for occurrences of a masked byte pattern.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/greaka/patterns"
)

func main() {
	var (
		pattern     = flag.String("pattern", "", "masked byte pattern, e.g. \"4d 5a ?? ?? 00\"")
		alignment   = flag.Int("alignment", 1, "match alignment relative to the start of the file, 1-64")
		showVersion = flag.Bool("version", false, "show the scan implementation in use and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("patternscan implementation:", patterns.Implementation())
		return
	}

	if *pattern == "" || flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	compiled, err := patterns.Compile(*pattern, *alignment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "patternscan: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "patternscan: %v\n", err)
		os.Exit(1)
	}

	cursor := compiled.Scan(data)
	found := 0
	for {
		pos, ok := cursor.Next()
		if !ok {
			break
		}
		fmt.Printf("0x%08x\n", pos)
		found++
	}

	if found == 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: patternscan -pattern \"4d 5a ?? ?? 00\" [-alignment N] <file>")
	flag.PrintDefaults()
}
