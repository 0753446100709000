package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zephyrtronium/ifparse"
	// import for side effects
	_ "github.com/zephyrtronium/ifparse/coreext"
)

func main() {
	var (
		width = flag.Int("width", 0, "wrap output at `columns` (0 detects the terminal width)")
		plain = flag.Bool("plain", false, "disable emphasis escapes")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [adventure.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	path := "adventure.yaml"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	m, err := ifparse.LoadManifest(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cols, tty := terminal(os.Stdout.Fd())
	if *width > 0 {
		cols = *width
	}
	out := ifparse.NewTextOutput(os.Stdout, cols, tty && !*plain)
	g, err := m.Open(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m.Title != "" {
		out.EmphasisOn()
		out.Write(m.Title)
		out.EmphasisOff()
		out.Write("\n\n")
	}
	if err := g.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	stdin := bufio.NewScanner(os.Stdin)
	for !g.Done() {
		fmt.Print("\n> ")
		if !stdin.Scan() {
			break
		}
		line := stdin.Text()
		if strings.HasPrefix(line, ":eval ") {
			r, err := g.Eval(strings.TrimPrefix(line, ":eval "))
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(r)
			continue
		}
		g.Step(line)
	}
	if err := stdin.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
