package perceptron

import (
	"math"
)

// Connection is a weighted link to a unit of the previous layer. The source is referenced by its
// index in that layer; the Connection never holds the unit itself.
type Connection struct {
	source int
	weight float64
}

// Source returns the index of the source unit within the previous layer
func (c Connection) Source() int {
	return c.source
}

// Weight returns the current weight of the Connection
func (c Connection) Weight() float64 {
	return c.weight
}

// SetWeight replaces the weight of the Connection
func (c *Connection) SetWeight(w float64) {
	c.weight = w
}

// Activation returns the current activation of the source unit, given the previous layer.
func (c Connection) Activation(prev []Unit) float64 {
	return prev[c.source].activation
}

// Unit is a single node of the Network. Output units carry a target; input units have no
// connections.
type Unit struct {
	activation float64
	target     float64
	isOutput   bool

	// the back-propagated error signal
	gradient float64

	connections []Connection
}

// Activation returns the current activation of the Unit, on [0, 1]
func (u *Unit) Activation() float64 {
	return u.activation
}

// Target returns the target of the Unit, and whether or not it has one. Only output units have
// targets.
func (u *Unit) Target() (float64, bool) {
	return u.target, u.isOutput
}

// Gradient returns the gradient calculated by the most recent backward pass
func (u *Unit) Gradient() float64 {
	return u.gradient
}

// Connections returns a copy of the Unit's connections, ordered by source index
func (u *Unit) Connections() []Connection {
	cs := make([]Connection, len(u.connections))
	copy(cs, u.connections)
	return cs
}

// SetActivation stores v, clamped to [0, 1]
func (u *Unit) SetActivation(v float64) {
	u.activation = clamp(v)
}

// SetTarget stores v, clamped to [0, 1], and marks the Unit as an output unit
func (u *Unit) SetTarget(v float64) {
	u.target = clamp(v)
	u.isOutput = true
}

// connect gives the Unit one connection to every unit of a layer with the given size, with
// weights drawn from gen
func (u *Unit) connect(size int, gen func() float64) {
	u.connections = make([]Connection, size)
	for i := range u.connections {
		u.connections[i] = Connection{source: i, weight: gen()}
	}
}

// recompute sets the activation to the logistic function of the weighted sum of the previous
// layer's activations. It must not be called on input units.
func (u *Unit) recompute(prev []Unit) {
	var sum float64
	for _, c := range u.connections {
		sum += c.weight * c.Activation(prev)
	}

	u.activation = sigmoid(sum)
}

// outputGradient sets the gradient of an output unit. It does nothing for units without a
// target.
func (u *Unit) outputGradient() {
	if !u.isOutput {
		return
	}

	a := u.activation
	u.gradient = a * (1 - a) * (u.target - a)
}

// hiddenGradient sets the gradient of a hidden unit from the sum of the next layer's gradients,
// weighted by the connections from this unit. It does nothing for output units.
//
// The derivative is taken of the weighted sum itself rather than of the unit's activation.
func (u *Unit) hiddenGradient(weightedSum float64) {
	if u.isOutput {
		return
	}

	u.gradient = weightedSum * (1 - weightedSum)
}

// adjust moves every incoming weight by rate * gradient * source activation
func (u *Unit) adjust(rate float64, prev []Unit) {
	for i := range u.connections {
		c := &u.connections[i]
		c.weight += rate * u.gradient * c.Activation(prev)
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	} else if v >= 0 {
		return v
	}

	// also catches NaN
	return 0
}
