package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"options-builder/internal/config"
	"options-builder/internal/payoff"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "payoff":
		cmdPayoff(os.Args[2:])
	case "catalog":
		cmdCatalog()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli payoff --config examples/scenarios/covered_call.yaml --out results/curve.csv")
	fmt.Println("  cli catalog")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - payoff writes the strategy's (price, pnl) curve as CSV")
	fmt.Println("  - catalog lists supported strategies and their parameter defaults")
}

func cmdPayoff(args []string) {
	fs := flag.NewFlagSet("payoff", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to a scenario YAML")
	outPath := fs.String("out", "results/curve.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "payoff: --config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "payoff: load config: %v\n", err)
		os.Exit(1)
	}

	points, err := cfg.Calculate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "payoff: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "payoff: %v\n", err)
		os.Exit(1)
	}
	if err := payoff.WriteCurveCSV(*outPath, points); err != nil {
		fmt.Fprintf(os.Stderr, "payoff: write csv: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: wrote %d points (%s", *outPath, len(points), cfg.Strategy.Type)
	if len(points) > 0 {
		fmt.Printf(", price %.2f..%.2f", points[0].Price, points[len(points)-1].Price)
	}
	fmt.Println(")")
}

func cmdCatalog() {
	for _, info := range payoff.Catalog() {
		fmt.Printf("%s\n  %s\n", info.Type, info.Description)
		for _, p := range info.Parameters {
			fmt.Printf("    %-18s default: %v\n", p.Name, p.Default)
		}
		fmt.Println()
	}
	fmt.Println("custom-strategy")
	fmt.Println("  Arbitrary FUT/CE/PE legs supplied in the scenario's legs list.")
}
