// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	gerbex "github.com/gerbex-go/gerbex"
)

var (
	wantObjects  bool
	wantWarnings bool
	wantBox      bool
	wantAll      bool
)

func prettyPrint(v any) string {
	buff, _ := json.Marshal(v)
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buff, "", "\t"); err != nil {
		log.Printf("JSON parse error: %v", err)
		return string(buff)
	}
	return pretty.String()
}

func runDump(cmd *cobra.Command, args []string) {
	input := args[0]

	doc, err := gerbex.Open(input, &gerbex.Options{})
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", input, err)
		os.Exit(1)
	}
	defer doc.Close()

	if err := doc.Parse(); err != nil {
		log.Printf("Error while parsing file: %s, reason: %s", input, err)
		os.Exit(1)
	}

	out := os.Stdout
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			log.Printf("Error while creating output file: %s, reason: %s", args[1], err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if wantObjects || wantAll {
		fmt.Fprintln(out, prettyPrint(doc.Objects))
	}
	if wantWarnings || wantAll {
		fmt.Fprintln(out, prettyPrint(doc.Warnings))
	}
	if wantBox || wantAll {
		var box gerbex.Box
		first := true
		format := doc.State().Format
		if format != nil {
			for _, o := range doc.Objects {
				b := o.Box(*format)
				if first {
					box = b
					first = false
				} else {
					box = box.Extend(b)
				}
			}
		}
		fmt.Fprintln(out, prettyPrint(box))
	}
}

func main() {
	dumpCmd := &cobra.Command{
		Use:   "dump <input> [output]",
		Short: "Parse a Gerber file and print its resolved scene as JSON",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runDump,
	}
	dumpCmd.Flags().BoolVar(&wantObjects, "objects", false, "print the resolved object list")
	dumpCmd.Flags().BoolVar(&wantWarnings, "warnings", false, "print recoverable parse warnings")
	dumpCmd.Flags().BoolVar(&wantBox, "box", false, "print the overall bounding box")
	dumpCmd.Flags().BoolVar(&wantAll, "all", false, "print everything")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the gerbex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gerbex.Version)
		},
	}

	root := &cobra.Command{Use: "gerbex"}
	root.AddCommand(dumpCmd, versionCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
