package coord

import "math"

// Continuous is a float64-backed coordinate for 2D games that move freely.
type Continuous float64

func (c Continuous) Add(o Continuous) Continuous { return c + o }
func (c Continuous) Sub(o Continuous) Continuous { return c - o }
func (c Continuous) Mul(o Continuous) Continuous { return c * o }
func (c Continuous) Div(o Continuous) Continuous { return c / o }
func (c Continuous) Mod(o Continuous) Continuous { return Continuous(math.Mod(float64(c), float64(o))) }
func (c Continuous) Less(o Continuous) bool      { return c < o }

func (c Continuous) Transform() float64 { return float64(c) }

func (Continuous) FromTransform(f float64) Continuous { return Continuous(f) }
