// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command idna2ace converts internationalized domain names given on the
// command line, or one per line on stdin, to their ASCII-Compatible
// Encoding.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gopunycode/idna"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [domain ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "converts UTF-8 domain names to xn-- ACE form; reads stdin if no arguments are given\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		status := 0
		for _, domain := range args {
			if err := convertAndPrint(os.Stdout, domain); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", domain, err)
				status = 1
			}
		}
		os.Exit(status)
	}

	if err := convertStdin(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertAndPrint(w io.Writer, domain string) error {
	ace, err := idna.ToASCIIString(domain)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, ace)
	return err
}

func convertStdin(r io.Reader, w io.Writer) error {
	status := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := convertAndPrint(w, sc.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", sc.Text(), err)
			status = 1
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}
