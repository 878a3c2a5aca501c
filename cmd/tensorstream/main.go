// Package main provides the tensorstream CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensorstream/internal/dataset"
	"github.com/born-ml/tensorstream/internal/serialization"
	"github.com/born-ml/tensorstream/internal/viz"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()

	err := run(flag.Args(), os.Stdout)
	klog.Flush()

	if errors.Is(err, errUsage) {
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tensorstream: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "tensorstream %s - tensor stream corpus tool\n\n", version)
	fmt.Fprintln(w, "Usage: tensorstream [flags] <command> [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                     Show version")
	fmt.Fprintln(w, "  inspect <config>            Load a corpus and print its geometry and statistics")
	fmt.Fprintln(w, "  weights <config> <out.png>  Render the error-weight cache")
	fmt.Fprintln(w, "  verify <stream>             Count records and check data/label pairing")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	flag.PrintDefaults()
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "tensorstream %s\n", version)
		return nil
	case "inspect":
		if len(args) != 2 {
			return errUsage
		}
		return inspect(args[1], out)
	case "weights":
		if len(args) != 3 {
			return errUsage
		}
		return weights(args[1], args[2], out)
	case "verify":
		if len(args) != 2 {
			return errUsage
		}
		return verify(args[1], out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func inspect(path string, out io.Writer) error {
	cfg, err := dataset.LoadConfigFile(path)
	if err != nil {
		return err
	}
	d, err := cfg.Open()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Task:        %s\n", d.Task())
	fmt.Fprintf(out, "Geometry:    %dx%d, %d input maps, %d label maps\n",
		d.Width(), d.Height(), d.InputMaps(), d.LabelMaps())
	fmt.Fprintf(out, "Classes:     %d [%s]\n", d.Classes(), strings.Join(d.ClassNames(), ", "))
	fmt.Fprintf(out, "Weighting:   %s\n", cfg.ErrorFunction)
	fmt.Fprintf(out, "Training:    %d samples  %s\n", d.TrainingSamples(), cfg.TrainingPath)
	if d.SupportsTesting() {
		fmt.Fprintf(out, "Testing:     %d samples  %s\n", d.TestingSamples(), cfg.TestingPath)
	} else {
		fmt.Fprintln(out, "Testing:     none")
	}

	for _, p := range []string{cfg.TrainingPath, cfg.TestingPath} {
		if p == "" {
			continue
		}
		sum, err := fingerprint(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "SHA-256:     %s  %s\n", sum, p)
	}

	for m, s := range d.InputStats(dataset.PartitionTraining) {
		fmt.Fprintf(out, "Map %d:       mean %.4f  std %.4f  min %.4f  max %.4f\n",
			m, s.Mean, s.StdDev, s.Min, s.Max)
	}
	return nil
}

func fingerprint(path string) (string, error) {
	s, err := serialization.OpenStream(path)
	if err != nil {
		return "", err
	}
	defer s.Close()
	return serialization.Fingerprint(s)
}

func weights(configPath, outPath string, out io.Writer) error {
	d, err := dataset.FromConfiguration(configPath)
	if err != nil {
		return err
	}
	if err := viz.SaveWeightHeatmap(d.ErrorCache(), outPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %dx%d error weights to %s\n", d.Width(), d.Height(), outPath)
	return nil
}

func verify(path string, out io.Writer) error {
	s, err := serialization.OpenStream(path)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := serialization.CountRecords(s)
	if err != nil {
		return err
	}
	if n%2 != 0 {
		return &dataset.FormatError{Stream: path, Records: n}
	}
	fmt.Fprintf(out, "%s: %d records, %d pairs\n", path, n, n/2)
	return nil
}
