package huf

import (
	"io"
	"log"
	"os"

	"github.com/fumin/huf/bitio"
	"github.com/pkg/errors"
)

// Decompress reads an encoded stream from src until EOF, decodes it,
// and writes the result to dst.
func Decompress(dst io.Writer, src io.Reader, cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	cfg = cfg.withDefaults()
	data, err := readInput(src, cfg.Container)
	if err != nil {
		return Stats{}, err
	}
	return Decode(dst, data, cfg)
}

// DecompressFile decodes the file inPath into outPath.
// The input is loaded before outPath is created, so an unreadable input
// leaves no output behind. On a decode failure outPath holds a partial result.
func DecompressFile(inPath, outPath string, cfg Config) (stats Stats, err error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	cfg = cfg.withDefaults()

	data, err := readFile(inPath, cfg.Container)
	if err != nil {
		return Stats{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, newIOError("create", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = newIOError("close", cerr)
		}
	}()
	stats, err = Decode(out, data, cfg)
	if err != nil {
		return stats, errors.Wrap(err, inPath)
	}
	return stats, nil
}

func readFile(name string, c Container) ([]byte, error) {
	in, err := os.Open(name)
	if err != nil {
		return nil, newIOError("open", err)
	}
	defer in.Close()
	data, err := readInput(in, c)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return data, nil
}

// DecodeFile decodes the raw stream in inPath into outPath and reports
// whether it succeeded. The cause of a failure is logged.
func DecodeFile(inPath, outPath string) bool {
	if _, err := DecompressFile(inPath, outPath, DefaultConfig()); err != nil {
		log.Printf("%+v", err)
		return false
	}
	return true
}

// Inspect reads the code tree at the head of the encoded stream in src.
// The chunks following the tree are not read.
func Inspect(src io.Reader, cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	data, err := readInput(src, cfg.Container)
	if err != nil {
		return nil, err
	}
	r := bitio.NewReader(data)
	if r.RestZero() {
		return nil, errors.Wrap(ErrInvalidEncoding, "input has no set bits")
	}
	return ReadTree(r, cfg.MaxTreeDepth)
}
