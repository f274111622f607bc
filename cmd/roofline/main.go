// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Roofline computes and visualizes roofline performance models.
//
// Usage:
//
//	roofline -mem NAME=PEAK:MEASURED [-mem ...] -compute NAME=PEAK[:MEASURED] [-compute ...] [options]
//
// Each -mem flag declares a memory level with its peak and measured
// bandwidth in bytes/sec, and each -compute flag declares a compute
// unit with its peak and optionally measured throughput in ops/sec.
// Values accept SI suffixes, so "-mem DRAM=204.8G:180.5G" and
// "-compute DP=2.15T:1.245T" read naturally.
//
// A compute unit without an individual measured value can receive one
// from -combined (a single value shared by all unmeasured units) or
// from a -group flag naming several units that were measured
// together, e.g. "-group DP,SP=720G".
//
// The command prints a performance table to standard output (-table
// selects ascii, markdown, org, csv, or html) and writes a chart to
// the -o file, whose extension selects png, pdf, or svg. With several
// memory levels the chart uses log-log axes; -simple forces the
// linear single-level style.
//
// For example, analyzing one application on a two-level memory
// hierarchy:
//
//	roofline -app STREAM -cpu "AMD EPYC 7713" -cores 64 \
//		-mem DRAM=204.8G:180.5G -mem L3=1.4T:950G \
//		-compute DP=2.15T -compute SP=4.3T -combined 720G \
//		-table markdown -o stream.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/roofline/roofmodel"
	"golang.org/x/roofline/roofplot"
	"golang.org/x/roofline/roofspec"
	"golang.org/x/roofline/rooftab"
	"golang.org/x/roofline/roofunit"
)

var exit = os.Exit // for testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: roofline -mem NAME=PEAK:MEASURED -compute NAME=PEAK[:MEASURED] [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

// specFlag collects repeated NAME=PEAK[:MEASURED] flags.
type specFlag map[string]roofspec.TypeSpec

func (f specFlag) String() string { return "" }

func (f specFlag) Set(s string) error {
	name, spec, err := roofspec.ParseTypeSpec(s)
	if err != nil {
		return err
	}
	f[name] = spec
	return nil
}

// groupFlag collects repeated A,B,...=MEASURED flags.
type groupFlag []roofspec.Group

func (f *groupFlag) String() string { return "" }

func (f *groupFlag) Set(s string) error {
	g, err := roofspec.ParseGroup(s)
	if err != nil {
		return err
	}
	*f = append(*f, g)
	return nil
}

// valueFlag is an optional SI-suffixed value flag.
type valueFlag roofspec.Value

func (f *valueFlag) String() string { return "" }

func (f *valueFlag) Set(s string) error {
	v, err := roofunit.ParseValue(s)
	if err != nil {
		return fmt.Errorf("malformed value %q", s)
	}
	*f = valueFlag(roofspec.Some(v))
	return nil
}

var (
	flagMem           = make(specFlag)
	flagCompute       = make(specFlag)
	flagCombined      valueFlag
	flagGroups        groupFlag
	flagCores         = flag.Int("cores", 1, "number of `cores`")
	flagCPU           = flag.String("cpu", "", "CPU or accelerator `name`")
	flagApp           = flag.String("app", "", "application `name`")
	flagTopology      = flag.String("topology", "Dual Socket", "system topology `description`")
	flagSimple        = flag.Bool("simple", false, "force simple (linear, single-level) rendering")
	flagTable         = flag.String("table", "ascii", "table `format`: ascii, markdown, org, csv, or html")
	flagOut           = flag.String("o", "roofline.png", "write the chart to `file` (.png, .pdf, or .svg); empty to skip")
	flagNoTable       = flag.Bool("no-table", false, "suppress the performance table")
	flagMemColors     = flag.String("mem-colors", "", "comma-separated `colors` for memory levels")
	flagComputeColors = flag.String("compute-colors", "", "comma-separated `colors` for compute units")
)

func main() {
	log.SetPrefix("roofline: ")
	log.SetFlags(0)
	flag.Var(flagMem, "mem", "add memory level `NAME=PEAK:MEASURED` (bytes/sec; may be repeated)")
	flag.Var(flagCompute, "compute", "add compute unit `NAME=PEAK[:MEASURED]` (ops/sec; may be repeated)")
	flag.Var(&flagCombined, "combined", "measured `value` shared by all compute units lacking their own")
	flag.Var(&flagGroups, "group", "combined group `A,B,...=MEASURED` (may be repeated)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}

	format, err := roofspec.ParseFormat(*flagTable)
	if err != nil {
		log.Print(err)
		flag.Usage()
	}
	opts := roofspec.Options{
		ForceSimple: *flagSimple,
		TableFormat: format,
	}
	if *flagMemColors != "" {
		if opts.MemoryColors, err = roofspec.ParseColors(*flagMemColors); err != nil {
			log.Fatal(err)
		}
	}
	if *flagComputeColors != "" {
		if opts.ComputeColors, err = roofspec.ParseColors(*flagComputeColors); err != nil {
			log.Fatal(err)
		}
	}

	cfg, warnings, err := roofmodel.Build(roofspec.Params{
		Memory:   flagMem,
		Compute:  flagCompute,
		Combined: roofspec.Value(flagCombined),
		Groups:   flagGroups,
		NumCores: *flagCores,
		Topology: *flagTopology,
		CPUName:  *flagCPU,
		AppName:  *flagApp,
	}, opts)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range warnings {
		log.Print("warning: ", w)
	}

	if !*flagNoTable {
		if err := rooftab.Write(os.Stdout, cfg, format); err != nil {
			log.Fatal(err)
		}
	}
	if *flagOut != "" {
		if err := roofplot.Save(cfg, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}
