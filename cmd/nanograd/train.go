package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/born-ml/nanograd/engine"
	"github.com/born-ml/nanograd/nn"
)

// TrainConfig holds configuration for the moons training demo.
type TrainConfig struct {
	Epochs  int     // Training epochs (default: 100)
	LR      float64 // Initial learning rate (default: 1.0)
	Alpha   float64 // L2 regularization strength (default: 0)
	Hidden  []int   // Hidden layer sizes (default: none, a linear model)
	Samples int     // Generated samples (default: 100)
	Noise   float64 // Dataset noise (default: 0)
	Seed    int64   // Random seed for data and weights

	Logger *log.Logger // Per-epoch progress; nil disables logging
}

// Result summarizes a finished training run.
type Result struct {
	Model     *nn.MLP
	NumParams int
	Loss      float64
	Accuracy  float64
	Epochs    int // epochs actually run
}

func (c *TrainConfig) setDefaults() {
	if c.Epochs == 0 {
		c.Epochs = 100
	}
	if c.LR == 0 {
		c.LR = 1.0
	}
	if c.Samples == 0 {
		c.Samples = 100
	}
}

func (c *TrainConfig) validate() error {
	if c.Epochs < 0 {
		return errors.New("epochs must not be negative")
	}
	if c.Samples < 2 {
		return errors.New("at least two samples are required")
	}
	if c.LR < 0 || c.Alpha < 0 || c.Noise < 0 {
		return errors.New("lr, alpha and noise must not be negative")
	}
	return nil
}

// Train fits an MLP with a max-margin loss and plain gradient descent.
//
// The loss is mean(relu(1 - yᵢ·scoreᵢ)) + alpha·Σ p², computed over the whole
// dataset every epoch. Training stops early when ctx is cancelled.
func Train(ctx context.Context, cfg TrainConfig) (*Result, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	//nolint:gosec // reproducible demo data, not security-critical
	rng := rand.New(rand.NewSource(cfg.Seed))
	data := MakeMoons(cfg.Samples, cfg.Noise, rng)

	model := nn.NewMLP(2, append(append([]int{}, cfg.Hidden...), 1), nn.WithRand(rng))
	params := model.Parameters()

	res := &Result{Model: model, NumParams: len(params)}

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		loss, acc, err := evaluate(model, data, cfg.Alpha)
		if err != nil {
			return nil, err
		}

		nn.ZeroGrad(model)
		loss.Backward()

		lr := cfg.LR * (1 - 0.9*float64(epoch)/float64(cfg.Epochs))
		for _, p := range params {
			if err := p.SetData(p.Data() - lr*p.Grad()); err != nil {
				return nil, err
			}
		}

		res.Loss, res.Accuracy, res.Epochs = loss.Data(), acc, epoch+1
		if cfg.Logger != nil && (epoch%10 == 0 || epoch == cfg.Epochs-1) {
			cfg.Logger.Printf("epoch %3d: loss %.4f, accuracy %.1f%%", epoch, loss.Data(), acc*100)
		}
	}

	// Report the metrics of the final weights.
	loss, acc, err := evaluate(model, data, cfg.Alpha)
	if err != nil {
		return nil, err
	}
	res.Loss, res.Accuracy = loss.Data(), acc
	return res, nil
}

// evaluate builds the loss graph over the full dataset and returns it with
// the classification accuracy.
func evaluate(model *nn.MLP, data *Dataset, alpha float64) (*engine.Value, float64, error) {
	margins := make([]*engine.Value, data.Len())
	correct := 0

	for i, x := range data.X {
		out, err := model.Call([]*engine.Value{engine.New(x[0]), engine.New(x[1])})
		if err != nil {
			return nil, 0, err
		}
		score := out[0]
		y := data.Y[i]

		margins[i] = score.MulScalar(-y).AddScalar(1).ReLU()
		if (y > 0) == (score.Data() > 0) {
			correct++
		}
	}

	dataLoss := engine.Sum(margins...).DivScalar(float64(len(margins)))

	params := model.Parameters()
	squares := make([]*engine.Value, len(params))
	for i, p := range params {
		squares[i] = p.Mul(p)
	}
	regLoss := engine.Sum(squares...).MulScalar(alpha)

	return dataLoss.Add(regLoss), float64(correct) / float64(data.Len()), nil
}
