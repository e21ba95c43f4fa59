// Package main provides the nanograd CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Printf("nanograd %s\n", version)
		return nil
	case "train":
		return runTrain(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Println("nanograd - scalar autodiff and tiny neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Fit an MLP to a generated two-moons dataset")
}

func runTrain(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	lr := fs.Float64("lr", 1.0, "Initial learning rate (decays linearly to 10%)")
	alpha := fs.Float64("alpha", 1e-4, "L2 regularization strength")
	hidden := fs.String("hidden", "16,16", "Comma-separated hidden layer sizes")
	samples := fs.Int("samples", 100, "Number of generated samples")
	noise := fs.Float64("noise", 0.1, "Gaussian noise added to the dataset")
	seed := fs.Int64("seed", 1337, "Random seed for data and weights")
	quiet := fs.Bool("quiet", false, "Only log the final result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseSizes(*hidden)
	if err != nil {
		return err
	}

	cfg := TrainConfig{
		Epochs:  *epochs,
		LR:      *lr,
		Alpha:   *alpha,
		Hidden:  sizes,
		Samples: *samples,
		Noise:   *noise,
		Seed:    *seed,
	}
	if !*quiet {
		cfg.Logger = log.New(os.Stdout, "", log.LstdFlags)
	}

	res, err := Train(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("model: %s (%d parameters)\n", res.Model, res.NumParams)
	fmt.Printf("final loss %.4f, accuracy %.1f%%\n", res.Loss, res.Accuracy*100)
	return nil
}

// parseSizes parses "16,16" into []int{16, 16}. An empty string means no
// hidden layers.
func parseSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", p, err)
		}
		if n <= 0 {
			return nil, errors.New("layer sizes must be positive")
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
