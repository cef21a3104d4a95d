// Copyright 2026 The algorithms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// topk reads newline-separated numbers from stdin, describes their
// center, and lists the highest of them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nlagrow/algorithms/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	k := flag.Int("k", stats.DefaultTopK, "Number of highest values to report")
	seed := flag.Uint64("seed", 0, "Seed for pivot selection (0 for unseeded)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatal("Invalid log level")
	}
	logrus.SetLevel(level)

	s, err := readInput(os.Stdin)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read input")
	}
	logrus.WithField("n", len(s.Xs)).Debug("Read sample")

	var src stats.Source
	if *seed != 0 {
		src = rand.New(rand.NewPCG(*seed, *seed))
		logrus.WithField("seed", *seed).Debug("Seeded pivot selection")
	}

	if err := report(os.Stdout, s, *k, src); err != nil {
		logrus.WithError(err).Fatal("Failed to describe input")
	}
}

// report writes the summary of s followed by its k highest values.
func report(w io.Writer, s stats.Sample, k int, src stats.Source) error {
	sum, err := s.Describe()
	if err != nil {
		return err
	}
	top, err := s.Top(k, src)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "N %d  mean %s  median %s  mode %s\n",
		sum.N, formatFloat(sum.Mean), formatFloat(sum.Median), formatFloat(sum.Mode))
	fmt.Fprintln(w)
	for i, x := range top {
		fmt.Fprintf(w, "%s highest: %s\n", humanize.Ordinal(i+1), formatFloat(x))
	}
	return nil
}

// formatFloat prints x in full, without an exponent.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func readInput(r io.Reader) (stats.Sample, error) {
	var sample stats.Sample
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return sample, errors.Wrapf(err, "line %d", line)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return sample, errors.WithStack(err)
	}

	return sample, nil
}
