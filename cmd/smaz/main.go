// Command smaz compresses or decompresses short strings with a fixed
// dictionary.
//
//	echo -n 'http://google.com' | smaz -c -x
//	smaz -d -x -table multilingual -i note.smz.hex
//	smaz -c -i note.txt -o note.smz
//	smaz -dump -table english
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/axiomhq/smaz"
)

var (
	compress   = flag.Bool("c", false, "compress input")
	decompress = flag.Bool("d", false, "decompress input")
	dump       = flag.Bool("dump", false, "print the dictionary, one entry per line")
	tableName  = flag.String("table", "english", "built-in dictionary: english or multilingual")
	dictPath   = flag.String("dict", "", "load a serialized dictionary instead of a built-in")
	asciiOnly  = flag.Bool("ascii", false, "reject non-ASCII input when compressing")
	hexIO      = flag.Bool("x", false, "hex-encode compressed output, hex-decode compressed input")
	inPath     = flag.String("i", "", "input file (default stdin)")
	outPath    = flag.String("o", "", "output file (default stdout)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	modes := 0
	for _, on := range []bool{*compress, *decompress, *dump} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of -c, -d or -dump is required")
		flag.Usage()
		os.Exit(2)
	}

	d, err := dictionary()
	if err != nil {
		return err
	}
	if *dump {
		return dumpDictionary(os.Stdout, d)
	}

	in, err := readInput()
	if err != nil {
		return err
	}

	var out []byte
	if *compress {
		if *asciiOnly {
			out, err = d.EncodeASCII(nil, in)
			if err != nil {
				return err
			}
		} else {
			out = d.Encode(nil, in)
		}
		if *hexIO {
			out = []byte(hex.EncodeToString(out) + "\n")
		}
	} else {
		if *hexIO {
			in, err = hex.DecodeString(strings.TrimSpace(string(in)))
			if err != nil {
				return err
			}
		}
		out, err = d.Decode(nil, in)
		if err != nil {
			return err
		}
	}
	return writeOutput(out)
}

func dictionary() (*smaz.Dictionary, error) {
	if *dictPath != "" {
		f, err := os.Open(*dictPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		var d smaz.Dictionary
		if _, err := d.ReadFrom(f); err != nil {
			return nil, fmt.Errorf("%s: %w", *dictPath, err)
		}
		return &d, nil
	}
	switch *tableName {
	case "english":
		return smaz.English(), nil
	case "multilingual":
		return smaz.Multilingual(), nil
	}
	return nil, fmt.Errorf("unknown table %q (want english or multilingual)", *tableName)
}

func readInput() ([]byte, error) {
	if *inPath == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(*inPath)
}

func writeOutput(out []byte) error {
	if *outPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(*outPath, out, 0o666)
}

func dumpDictionary(w io.Writer, d *smaz.Dictionary) error {
	for i, e := range d.Entries() {
		if _, err := fmt.Fprintf(w, "%3d %s\n", i, strconv.Quote(e)); err != nil {
			return err
		}
	}
	return nil
}
