// Command smoketest transliterates every text file under a directory and
// reports failures and round-trip mismatches.
//
// Usage:
//
//	smoketest [--direction latin-to-cyrillic] [--workers 4] [--ext .txt] [--roundtrip] <directory>
//
// With --direction auto each file is transliterated away from the alphabet
// it is mostly written in.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/filiparag/translit"
	"github.com/filiparag/translit/internal/script"
	"github.com/filiparag/translit/internal/srcase"
)

const (
	expectedArgs   = 1
	bytesToMBShift = 20
	autoDirection  = "auto"
)

type Stats struct {
	mu            sync.Mutex
	filesScanned  int
	totalBytes    int64
	writtenBytes  int64
	words         int
	failed        []string
	roundtripOK   int
	roundtripFail int
}

type fileState struct {
	path          string
	inBytes       int64
	outBytes      int64
	words         int
	err           error
	roundtripped  bool
	roundtripFail bool
}

type options struct {
	dir       translit.Direction
	auto      bool
	workers   int
	ext       string
	roundtrip bool
}

func main() {
	var (
		direction = pflag.StringP("direction", "d", translit.LatinToCyrillic.String(), "transliteration direction, or auto")
		workers   = pflag.IntP("workers", "w", 4, "number of files processed in parallel")
		ext       = pflag.String("ext", ".txt", "extension of the files to process")
		roundtrip = pflag.Bool("roundtrip", false, "transliterate back and compare with the input")
	)
	pflag.Parse()

	if pflag.NArg() != expectedArgs || *workers < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <directory>\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(1)
	}

	opts := options{workers: *workers, ext: *ext, roundtrip: *roundtrip}
	if *direction == autoDirection {
		opts.auto = true
	} else {
		dir, err := translit.ParseDirection(*direction)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.dir = dir
	}

	filePaths, err := collectFiles(pflag.Arg(0), opts.ext)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	stats, err := processAll(filePaths, opts)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats, opts)

	if err != nil {
		os.Exit(1)
	}
}

// processAll transliterates filePaths with at most opts.workers files in
// flight. Every file is processed; the returned error is the first file
// failure, if any.
func processAll(filePaths []string, opts options) (*Stats, error) {
	stats := &Stats{}
	var g errgroup.Group
	g.SetLimit(max(opts.workers, 1))
	for _, path := range filePaths {
		g.Go(func() error {
			state := processFile(path, opts)
			mergeFileState(state, stats)
			return state.err
		})
	}
	return stats, g.Wait()
}

func collectFiles(root, ext string) ([]string, error) {
	var filePaths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	return filePaths, err
}

func processFile(path string, opts options) *fileState {
	state := &fileState{path: path}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		state.err = errors.Wrapf(err, "reading %s", path)
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return state
	}
	state.inBytes = int64(len(data))
	state.words = len(bytes.Fields(data))

	dir := opts.dir
	if opts.auto {
		dir = detectDirection(data)
	}

	fmt.Fprintf(os.Stderr, "START %s %s (%d MB)\n", path, dir, state.inBytes>>bytesToMBShift)
	fileStart := time.Now()

	var out bytes.Buffer
	out.Grow(len(data) + len(data)/2)
	state.outBytes, err = translit.New(dir).Copy(&out, bytes.NewReader(data))
	if err != nil {
		state.err = err
		fmt.Fprintf(os.Stderr, "TRANSLIT_FAIL: %s: %v\n", path, err)
		return state
	}

	if opts.roundtrip {
		state.roundtripped = true
		if err := checkRoundtrip(data, out.Bytes(), dir); err != nil {
			state.roundtripFail = true
			fmt.Fprintf(os.Stderr, "ROUNDTRIP_FAIL: %s: %v\n", path, err)
		}
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.inBytes>>bytesToMBShift)
	return state
}

// detectDirection picks the direction that converts away from the dominant
// script of data. Text without enough letters is treated as Latin.
func detectDirection(data []byte) translit.Direction {
	if script.Detect(string(data)) == script.Cyrillic {
		return translit.CyrillicToLatin
	}
	return translit.LatinToCyrillic
}

// reverse returns the opposite direction.
func reverse(d translit.Direction) translit.Direction {
	if d == translit.LatinToCyrillic {
		return translit.CyrillicToLatin
	}
	return translit.LatinToCyrillic
}

// checkRoundtrip transliterates out back and compares it with the
// whitespace-normalized, composed original.
func checkRoundtrip(original, out []byte, d translit.Direction) error {
	var back bytes.Buffer
	if _, err := translit.New(reverse(d)).Copy(&back, bytes.NewReader(out)); err != nil {
		return errors.Wrap(err, "transliterating back")
	}

	want := srcase.ComposeNFC(strings.Join(strings.Fields(string(original)), " "))
	got := srcase.ComposeNFC(back.String())
	if got != want {
		pos, g, w := firstDivergence(want, got)
		return errors.Newf("first divergence at byte %d (got 0x%02x, want 0x%02x)", pos, g, w)
	}
	return nil
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.inBytes
	stats.writtenBytes += fs.outBytes
	stats.words += fs.words

	if fs.err != nil {
		stats.failed = append(stats.failed, fs.path)
	}
	if fs.roundtripped {
		if fs.roundtripFail {
			stats.roundtripFail++
		} else {
			stats.roundtripOK++
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats, opts options) {
	printStatsTo(os.Stdout, stats, opts)
}

func printStatsTo(w io.Writer, stats *Stats, opts options) {
	if opts.auto {
		fmt.Fprintf(w, "Direction:               %s\n", autoDirection)
	} else {
		fmt.Fprintf(w, "Direction:               %s\n", opts.dir)
	}
	fmt.Fprintf(w, "Files scanned:           %d\n", stats.filesScanned)
	fmt.Fprintf(w, "Total bytes:             %d\n", stats.totalBytes)
	fmt.Fprintf(w, "Written bytes:           %d\n", stats.writtenBytes)
	fmt.Fprintf(w, "Words:                   %d\n", stats.words)
	fmt.Fprintf(w, "Translit FAIL:           %d\n", len(stats.failed))
	if opts.roundtrip {
		fmt.Fprintf(w, "Roundtrip OK:            %d\n", stats.roundtripOK)
		fmt.Fprintf(w, "Roundtrip FAIL:          %d\n", stats.roundtripFail)
	}

	if len(stats.failed) > 0 {
		sort.Strings(stats.failed)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed files:")
		for _, path := range stats.failed {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
}
