package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/xsltview/internal/cli"
	"github.com/arthur-debert/xsltview/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "XSLTVIEW",
		Section: "1",
		Source:  "xsltview " + version.Version,
		Manual:  "xsltview manual",
	}

	if err := doc.GenMan(cli.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
