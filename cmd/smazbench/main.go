// Command smazbench measures how the fixed-dictionary codec stacks up
// against general-purpose compressors on corpora of short strings, one
// string per line.
//
//	smazbench testdata/short_strings.txt
//	smazbench -table multilingual -chart ratios.svg testdata/*.txt
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/sync/errgroup"

	"github.com/axiomhq/smaz"
)

var (
	tableName = flag.String("table", "english", "smaz dictionary: english or multilingual")
	chartPath = flag.String("chart", "", "write an SVG scatter of line length vs encoded length")
	workers   = flag.Int("workers", runtime.NumCPU(), "parallel workers per corpus")
)

const (
	codecSmaz = iota
	codecZstd
	codecXz
	numCodecs
)

type point struct{ x, y float64 }

type fileReport struct {
	lines   int
	raw     int64
	encoded [numCodecs]int64
	points  [numCodecs][]point
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: smazbench [flags] corpus.txt...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(paths []string) error {
	var d *smaz.Dictionary
	switch *tableName {
	case "english":
		d = smaz.English()
	case "multilingual":
		d = smaz.Multilingual()
	default:
		return fmt.Errorf("unknown table %q (want english or multilingual)", *tableName)
	}

	// EncodeAll on a shared encoder is documented as concurrency-safe.
	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}
	defer zenc.Close()

	names := [numCodecs]string{"smaz/" + *tableName, "zstd", "xz"}
	var all [numCodecs][]point
	for _, path := range paths {
		rep, err := analyzeFile(path, d, zenc, max(*workers, 1), *chartPath != "")
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d lines, %d raw bytes\n", path, rep.lines, rep.raw)
		for c, name := range names {
			pct := 0.0
			if rep.raw > 0 {
				pct = 100 * float64(rep.encoded[c]) / float64(rep.raw)
			}
			fmt.Printf("  %-18s %9d bytes %7.1f%%\n", name, rep.encoded[c], pct)
		}
		for c := range all {
			all[c] = append(all[c], rep.points[c]...)
		}
	}

	if *chartPath != "" {
		if err := renderChart(*chartPath, names, all); err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", *chartPath)
	}
	return nil
}

// analyzeFile shards the corpus lines across workers and sums raw and
// per-codec encoded sizes.
func analyzeFile(path string, d *smaz.Dictionary, zenc *zstd.Encoder, workers int, wantPoints bool) (*fileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := bytes.Split(data, []byte("\n"))
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	results := make([]fileReport, workers)
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			res := &results[w]
			var sbuf, zbuf []byte
			var xzBuf bytes.Buffer
			for i := w; i < len(lines); i += workers {
				line := lines[i]
				res.raw += int64(len(line))

				sbuf = d.Encode(sbuf, line)
				res.record(codecSmaz, line, len(sbuf), wantPoints)

				zbuf = zenc.EncodeAll(line, zbuf[:0])
				res.record(codecZstd, line, len(zbuf), wantPoints)

				xzBuf.Reset()
				xw, err := xz.NewWriter(&xzBuf)
				if err != nil {
					return err
				}
				if _, err := xw.Write(line); err != nil {
					return err
				}
				if err := xw.Close(); err != nil {
					return err
				}
				res.record(codecXz, line, xzBuf.Len(), wantPoints)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &fileReport{lines: len(lines)}
	for i := range results {
		res := &results[i]
		rep.raw += res.raw
		for c := range rep.encoded {
			rep.encoded[c] += res.encoded[c]
			rep.points[c] = append(rep.points[c], res.points[c]...)
		}
	}
	return rep, nil
}

func (r *fileReport) record(codec int, line []byte, encoded int, wantPoints bool) {
	r.encoded[codec] += int64(encoded)
	if wantPoints {
		r.points[codec] = append(r.points[codec], point{float64(len(line)), float64(encoded)})
	}
}

// renderChart writes an SVG scatter of input length against encoded
// length, one series per codec, with the break-even diagonal for
// reference.
func renderChart(path string, names [numCodecs]string, pts [numCodecs][]point) error {
	series := make([]chart.Series, 0, numCodecs+1)
	var maxX float64
	for c, name := range names {
		xvals := make([]float64, len(pts[c]))
		yvals := make([]float64, len(pts[c]))
		for i, p := range pts[c] {
			xvals[i] = p.x
			yvals[i] = p.y
			maxX = max(maxX, p.x)
		}
		series = append(series, chart.ContinuousSeries{
			Name: name,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    3,
			},
			XValues: xvals,
			YValues: yvals,
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "break-even",
		XValues: []float64{0, maxX},
		YValues: []float64{0, maxX},
	})

	graph := chart.Chart{
		XAxis:  chart.XAxis{Name: "input bytes"},
		YAxis:  chart.YAxis{Name: "encoded bytes"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.SVG, fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
