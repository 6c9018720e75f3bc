package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/fumin/huf"
	"github.com/pkg/errors"
)

var (
	flagConfig  = flag.String("c", "", "path to a YAML or JSON manifest of decode jobs; -container and -j override it when set")
	container   = flag.String("container", string(huf.ContainerRaw), "input container: raw, auto, zstd, gzip or s2")
	concurrency = flag.Int("j", runtime.NumCPU(), "maximum number of files decoded at once")
	codes       = flag.Bool("codes", false, "print the code table of each input instead of decoding it")
	verbose     = flag.Bool("verbose", false, "verbosity")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [in out]...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	m, err := manifest(*flagConfig, flag.Args())
	if err != nil {
		flag.Usage()
		log.Fatalf("%+v", err)
	}
	if err := run(context.Background(), os.Stdout, os.Stdin, m); err != nil {
		log.Fatalf("%+v", err)
	}
}

// manifest builds the jobs to run from the -c file or the command line pairs.
func manifest(path string, args []string) (huf.Manifest, error) {
	if len(args)%2 != 0 {
		return huf.Manifest{}, errors.Errorf("odd number of arguments %d", len(args))
	}

	m := huf.Manifest{
		Config:      huf.Config{Container: huf.Container(*container)},
		Concurrency: *concurrency,
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return huf.Manifest{}, errors.Wrap(err, "")
		}
		if m, err = huf.ParseManifest(b); err != nil {
			return huf.Manifest{}, errors.Wrap(err, path)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "container":
			m.Container = huf.Container(*container)
		case "j":
			m.Concurrency = *concurrency
		}
	})
	for i := 0; i < len(args); i += 2 {
		m.Jobs = append(m.Jobs, huf.Job{In: args[i], Out: args[i+1]})
	}
	if err := m.Config.Validate(); err != nil {
		return huf.Manifest{}, errors.Wrap(err, "")
	}
	if *verbose {
		log.Printf("config: %+v", m)
	}
	return m, nil
}

// run decodes stdin to stdout when m has no jobs.
func run(ctx context.Context, stdout io.Writer, stdin io.Reader, m huf.Manifest) error {
	if *codes {
		return printCodes(stdout, stdin, m)
	}

	if len(m.Jobs) == 0 {
		stats, err := huf.Decompress(stdout, stdin, m.Config)
		if err != nil {
			return errors.Wrap(err, "")
		}
		if *verbose {
			log.Printf("%+v", stats)
		}
		return nil
	}

	var failed int
	for _, res := range huf.DecompressFiles(ctx, m.Jobs, m.Config, m.Concurrency) {
		if res.Err != nil {
			failed++
			log.Printf("%s: %+v", res.Job.In, res.Err)
			continue
		}
		if *verbose {
			log.Printf("%s -> %s %+v", res.Job.In, res.Job.Out, res.Stats)
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(m.Jobs))
	}
	return nil
}

func printCodes(stdout io.Writer, stdin io.Reader, m huf.Manifest) error {
	if len(m.Jobs) == 0 {
		return writeCodes(stdout, stdin, m.Config)
	}
	for _, job := range m.Jobs {
		f, err := os.Open(job.In)
		if err != nil {
			return errors.Wrap(err, "")
		}
		fmt.Fprintf(stdout, "# %s\n", job.In)
		err = writeCodes(stdout, f, m.Config)
		f.Close()
		if err != nil {
			return errors.Wrap(err, job.In)
		}
	}
	return nil
}

func writeCodes(w io.Writer, r io.Reader, cfg huf.Config) error {
	tree, err := huf.Inspect(r, cfg)
	if err != nil {
		return errors.Wrap(err, "")
	}
	for _, c := range tree.Codes() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return errors.Wrap(err, "")
		}
	}
	if *verbose {
		log.Printf("leaves %d depth %d", tree.Leaves(), tree.Depth())
	}
	return nil
}
