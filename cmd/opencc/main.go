/*
 * Open Chinese Convert
 *
 * Copyright 2010-2014 Carbo Kuo <byvoid@byvoid.com>
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	opencc "github.com/gocconv/opencc-go"
)

const version = "2.0.0-go"

func main() {
	var (
		configFile  = flag.String("c", "", "Conversion config file (JSON)")
		configLong  = flag.String("config", "", "Conversion config file (JSON)")
		inputFile   = flag.String("i", "", "Input file (default: stdin)")
		inputLong   = flag.String("input", "", "Input file (default: stdin)")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
		outputLong  = flag.String("output", "", "Output file (default: stdout)")
		showVersion = flag.Bool("v", false, "Show version")
		versionLong = flag.Bool("version", false, "Show version")
		showHelp    = flag.Bool("h", false, "Show help")
		helpLong    = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "OpenCC-Go %s - Chinese Conversion Tool\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: opencc -c <config-file> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  -c, --config <file>   Conversion config file (JSON)\n")
		fmt.Fprintf(os.Stderr, "  -i, --input <file>    Input file (default: stdin)\n")
		fmt.Fprintf(os.Stderr, "  -o, --output <file>   Output file (default: stdout)\n")
		fmt.Fprintf(os.Stderr, "  -v, --version         Show version\n")
		fmt.Fprintf(os.Stderr, "  -h, --help            Show this help\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  opencc -c s2t.json -i input.txt -o output.txt\n")
		fmt.Fprintf(os.Stderr, "  echo \"汉字\" | opencc -c s2t.json\n")
	}

	flag.Parse()

	if *versionLong {
		*showVersion = true
	}
	if *helpLong {
		*showHelp = true
	}
	if *configLong != "" {
		*configFile = *configLong
	}
	if *inputLong != "" {
		*inputFile = *inputLong
	}
	if *outputLong != "" {
		*outputFile = *outputLong
	}

	if *showVersion {
		fmt.Printf("OpenCC-Go %s\n", version)
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *configFile == "" {
		fmt.Fprintf(os.Stderr, "Error: a config file is required (-c or --config)\n\n")
		flag.Usage()
		os.Exit(1)
	}

	converter, err := opencc.NewSimpleConverter(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create converter: %v\n", err)
		os.Exit(1)
	}

	var input io.Reader
	if *inputFile == "" {
		input = os.Stdin
	} else {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open input file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}

	var output io.Writer
	if *outputFile == "" {
		output = os.Stdout
	} else {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		output = file
	}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	writer := bufio.NewWriter(output)
	defer writer.Flush()

	for scanner.Scan() {
		converted, err := converter.Convert(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: conversion failed: %v\n", err)
			os.Exit(1)
		}
		writer.WriteString(converted)
		writer.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
