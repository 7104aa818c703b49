package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"property-data-pipeline/internal/model"
	"property-data-pipeline/internal/pipeline"
)

func main() {
	codeA := flag.String("code-a", "", "first Mail_CallRail code")
	codeB := flag.String("code-b", "", "second Mail_CallRail code")
	outPath := flag.String("out", "", "output file name (.csv enforced; defaults to a timestamped name)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pipeline-cli -code-a CODE -code-b CODE [-out FILE] input.csv [input2.csv ...]")
		os.Exit(2)
	}

	inputs := make([]pipeline.Input, 0, len(files))
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("failed to open %s: %v", path, err)
		}
		defer f.Close()
		inputs = append(inputs, pipeline.Input{Name: path, Reader: f})
	}

	cfg := model.RunConfig{CodeA: *codeA, CodeB: *codeB}
	result, err := pipeline.New(cfg).Run(inputs)
	if err != nil {
		log.Fatalf("pipeline aborted: %v", err)
	}

	name := pipeline.EnsureCSVName(*outPath, time.Now())
	out, err := os.Create(name)
	if err != nil {
		log.Fatalf("failed to create %s: %v", name, err)
	}
	rows, err := pipeline.WriteCSV(out, result.Table)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("failed to write %s: %v", name, err)
	}

	fmt.Println("\n📊 Processing Summary")
	for _, m := range result.Metrics {
		fmt.Printf("  %-16s rows %d → %d, columns %d → %d", m.Step, m.RowsBefore, m.RowsAfter, m.ColumnsBefore, m.ColumnsAfter)
		if m.Note != "" {
			fmt.Printf("  (%s)", m.Note)
		}
		fmt.Println()
	}
	fmt.Printf("📄 Wrote %d rows to %s\n", rows, name)
}
