// Package linreg fits a univariate linear model y = θ0 + θ1·x by batch
// gradient descent on the mean squared error.
package linreg

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyData is returned when there are no points to fit.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidInput is returned for mismatched slices, negative iteration
	// counts and non-finite parameters.
	ErrInvalidInput = errors.New("invalid input")
)

// Point is one (x, y) observation.
type Point struct {
	X, Y float64
}

// Param selects which parameter a gradient is taken with respect to.
type Param int

const (
	// Intercept is θ0.
	Intercept Param = iota
	// Slope is θ1.
	Slope
)

func (p Param) String() string {
	switch p {
	case Intercept:
		return "intercept"
	case Slope:
		return "slope"
	default:
		return fmt.Sprintf("Param(%d)", int(p))
	}
}

// Split returns the x and y columns of data.
func Split(data []Point) (xs, ys []float64) {
	xs = make([]float64, len(data))
	ys = make([]float64, len(data))
	for i, p := range data {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Predict returns θ0 + θ1·x for every x.
func Predict(theta0, theta1 float64, xs []float64) []float64 {
	predicted := make([]float64, len(xs))
	for i, x := range xs {
		predicted[i] = theta0 + theta1*x
	}
	return predicted
}

// ComputeMSE returns the mean squared error of the line on data.
func ComputeMSE(theta0, theta1 float64, data []Point) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	xs, ys := Split(data)
	residuals := Predict(theta0, theta1, xs)
	floats.Sub(residuals, ys)
	return floats.Dot(residuals, residuals) / float64(len(residuals)), nil
}

// Gradient returns the partial derivative of the MSE with respect to param,
// given the observed ys, the current predictions and the xs.
func Gradient(param Param, ys, predicted, xs []float64) (float64, error) {
	if len(ys) == 0 {
		return 0, ErrEmptyData
	}
	if len(predicted) != len(ys) || len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: got %d observations, %d predictions and %d inputs", ErrInvalidInput, len(ys), len(predicted), len(xs))
	}

	differences := make([]float64, len(ys))
	floats.SubTo(differences, predicted, ys)
	switch param {
	case Intercept:
	case Slope:
		floats.Mul(differences, xs)
	default:
		return 0, fmt.Errorf("%w: unknown parameter %v", ErrInvalidInput, param)
	}
	return 2 * stat.Mean(differences, nil), nil
}

// StepGradient performs one simultaneous gradient-descent update of both parameters.
func StepGradient(theta0, theta1 float64, data []Point, alpha float64) (float64, float64, error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyData
	}
	xs, ys := Split(data)
	predicted := Predict(theta0, theta1, xs)

	d0, err := Gradient(Intercept, ys, predicted, xs)
	if err != nil {
		return 0, 0, err
	}
	d1, err := Gradient(Slope, ys, predicted, xs)
	if err != nil {
		return 0, 0, err
	}
	return theta0 - alpha*d0, theta1 - alpha*d1, nil
}

// Fit runs numIterations gradient-descent steps from (theta0, theta1) and returns
// the history of each parameter. Both histories have numIterations+1 entries:
// the starting value first and the final value last.
func Fit(data []Point, theta0, theta1, alpha float64, numIterations int) ([]float64, []float64, error) {
	return NewFitter(nil).Fit(data, theta0, theta1, alpha, numIterations)
}

// Fitter runs gradient descent and logs its progress.
type Fitter struct {
	logger *zap.Logger
}

// NewFitter creates a Fitter. A nil logger disables logging.
func NewFitter(logger *zap.Logger) *Fitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fitter{logger: logger}
}

// Fit is the logging counterpart of the package-level Fit.
func (f *Fitter) Fit(data []Point, theta0, theta1, alpha float64, numIterations int) ([]float64, []float64, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyData
	}
	if numIterations < 0 {
		return nil, nil, fmt.Errorf("%w: num_iterations cannot be negative, got %d", ErrInvalidInput, numIterations)
	}
	for _, v := range []float64{theta0, theta1, alpha} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("%w: parameters must be finite", ErrInvalidInput)
		}
	}

	theta0History := make([]float64, 0, numIterations+1)
	theta1History := make([]float64, 0, numIterations+1)
	theta0History = append(theta0History, theta0)
	theta1History = append(theta1History, theta1)

	debug := f.logger.Core().Enabled(zap.DebugLevel)
	for i := 0; i < numIterations; i++ {
		var err error
		theta0, theta1, err = StepGradient(theta0, theta1, data, alpha)
		if err != nil {
			return nil, nil, fmt.Errorf("gradient step %d failed: %w", i+1, err)
		}
		theta0History = append(theta0History, theta0)
		theta1History = append(theta1History, theta1)

		if debug {
			mse, _ := ComputeMSE(theta0, theta1, data)
			f.logger.Debug("gradient step",
				zap.Int("iteration", i+1),
				zap.Float64("theta_0", theta0),
				zap.Float64("theta_1", theta1),
				zap.Float64("mse", mse))
		}
	}

	mse, err := ComputeMSE(theta0, theta1, data)
	if err != nil {
		return nil, nil, err
	}
	if math.IsNaN(mse) || math.IsInf(mse, 0) {
		f.logger.Warn("gradient descent diverged, try a smaller learning rate", zap.Float64("alpha", alpha))
	}
	f.logger.Info("fit finished",
		zap.Int("iterations", numIterations),
		zap.Float64("theta_0", theta0),
		zap.Float64("theta_1", theta1),
		zap.Float64("mse", mse))
	return theta0History, theta1History, nil
}
