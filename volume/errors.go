package volume

import "errors"

// ErrEmptyVolume indicates a volume with zero size along some axis.
var ErrEmptyVolume = errors.New("volume: shape must have at least one sample per axis")

// ErrRaggedVolume indicates nested-slice input whose rows/planes disagree in length.
var ErrRaggedVolume = errors.New("volume: nested input is not rectangular")

// ErrShapeMismatch indicates a flat data slice whose length does not match its shape.
var ErrShapeMismatch = errors.New("volume: data length does not match shape")

// ErrIndexOutOfRange indicates a coordinate outside [0, shape[k]) on some axis.
var ErrIndexOutOfRange = errors.New("volume: index out of range")

// ErrTooFewSamples indicates a shape with fewer than 2 samples along some axis,
// the minimum needed for a volume to contain any cell.
var ErrTooFewSamples = errors.New("volume: every axis needs at least 2 samples")

// ErrInvalidStep indicates a non-positive stride step.
var ErrInvalidStep = errors.New("volume: step size must be >= 1")
