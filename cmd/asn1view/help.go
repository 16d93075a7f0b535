package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `asn1view - DER/BER TLV inspection tool

Usage:
  asn1view <command> [options]

Commands:
  dump        Pretty-print a DER/BER buffer as a tag tree
  sig         Split a DER ECDSA signature into r and s
  version     Show version information

Common options:
  -f string
        Read input bytes from file
  -x string
        Read input bytes from a hex string
  -c string
        Path to YAML config file

Environment Variables:
  ASN1VIEW_LOG_LEVEL        Override log level
  ASN1VIEW_DUMP_HEX_WIDTH   Override raw dump bytes per line

Use "asn1view <command> -h" for more information about a command.
`)
}
