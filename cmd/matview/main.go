// Package main provides the matview CLI.
package main

import (
	"fmt"
	"os"

	"github.com/matview-go/matview/mat"
	"github.com/matview-go/matview/matplot"
	"github.com/matview-go/matview/mmdense"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("matview %s\n", version)
	case "inspect":
		err = inspect(os.Args[2:])
	case "heatmap":
		err = heatmap(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "matview:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("matview - dense matrices and zero-copy views")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                      Show version")
	fmt.Println("  inspect <file>               Describe a matrix file")
	fmt.Println("  heatmap <file> <out.png>     Render a matrix file as a heat map")
}

func inspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: matview inspect <file>")
	}
	m, err := mmdense.OpenRO(args[0])
	if err != nil {
		return err
	}
	defer m.Close()

	den := m.Mat()
	ld, _ := mat.LeadingDimension(den)
	fmt.Printf("shape:       %dx%d\n", den.Rows(), den.Cols())
	fmt.Printf("kind:        %s\n", den.Kind())
	fmt.Printf("orientation: %s\n", den.Orientation())
	fmt.Printf("leading dim: %d\n", ld)
	fmt.Printf("elements:    %d\n", den.NumElements())
	return nil
}

func heatmap(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: matview heatmap <file> <out.png>")
	}
	m, err := mmdense.OpenRO(args[0])
	if err != nil {
		return err
	}
	defer m.Close()

	return matplot.Heatmap(m.Mat(), args[0], args[1])
}
