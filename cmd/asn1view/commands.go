package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/asn1view/asn1view/internal/asn1"
	"github.com/asn1view/asn1view/internal/config"
	"github.com/asn1view/asn1view/internal/logging"
)

// inputOptions are the flags shared by commands that consume DER/BER bytes.
type inputOptions struct {
	File       string
	Hex        string
	ConfigPath string
}

func addInputFlags(fs *flag.FlagSet, opts *inputOptions) {
	fs.StringVar(&opts.File, "f", "", "Read input bytes from file")
	fs.StringVar(&opts.Hex, "x", "", "Read input bytes from a hex string")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to YAML config file")
}

// readInput resolves the input flags to raw bytes. Exactly one of -f and -x
// must be given.
func readInput(opts *inputOptions) ([]byte, error) {
	switch {
	case opts.File != "" && opts.Hex != "":
		return nil, fmt.Errorf("use either -f or -x, not both")
	case opts.File != "":
		return os.ReadFile(opts.File)
	case opts.Hex != "":
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, opts.Hex)
		return hex.DecodeString(clean)
	default:
		return nil, fmt.Errorf("no input: use -f <file> or -x <hexstring>")
	}
}

// setup loads configuration and builds the logger for a command.
func setup(opts *inputOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// dumpCmd pretty-prints the input as an ASN.1 tag tree.
func dumpCmd(args []string) int {
	fs := flag.NewFlagSet("asn1view dump", flag.ContinueOnError)
	var opts inputOptions
	addInputFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, logger, err := setup(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	data, err := readInput(&opts)
	if err != nil {
		logger.Error("cannot read input", zap.Error(err))
		return 1
	}

	d := asn1.NewDumper(os.Stdout)
	d.IndentWidth = cfg.Dump.IndentWidth
	d.HexWidth = cfg.Dump.HexWidth

	if err := d.Print(data); err != nil {
		logger.Error("dump failed", zap.Error(err), zap.Int("input_bytes", len(data)))
		return 1
	}

	return 0
}

// sigCmd splits a DER ECDSA signature into its r and s components.
func sigCmd(args []string) int {
	fs := flag.NewFlagSet("asn1view sig", flag.ContinueOnError)
	var opts inputOptions
	addInputFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	_, logger, err := setup(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	data, err := readInput(&opts)
	if err != nil {
		logger.Error("cannot read input", zap.Error(err))
		return 1
	}

	var r, s [asn1.SignatureComponentSize]byte
	if err := asn1.DecomposeSignature(data, &r, &s); err != nil {
		logger.Error("signature decomposition failed", zap.Error(err))
		return 1
	}

	fmt.Printf("r: %x\n", r)
	fmt.Printf("s: %x\n", s)
	return 0
}
