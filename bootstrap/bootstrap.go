package bootstrap

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fulldump/mds/configuration"
	"github.com/fulldump/mds/driver"
	"github.com/fulldump/mds/store"
)

var VERSION = "dev"

// Bootstrap runs the command file configured in c against a fresh store.
func Bootstrap(c *configuration.Configuration) (err error) {

	logger := log.New(io.Discard, "MDS: ", log.Lshortfile)
	if c.Verbose {
		logger.SetOutput(os.Stderr)
	}

	in, closeIn, err := openInput(c.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := closeOut()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	w, err := driver.NewWriter(c.Format, out)
	if err != nil {
		return err
	}

	s := store.New()
	d := driver.New(s, w)

	logger.Println("running", c.Input, "version", VERSION)
	err = d.Run(in)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Println("done,", s.Len(), "products, checksum", d.Checksum())

	return nil
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, f.Close, nil
}
