// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_wheel.go - Wheel(hub, rim, n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): a rim cycle of n-1 ≥ 3 vertices plus a hub.
//   • The rim is built by Cycle (ids base..base+n-2, label rim); the hub
//     (label hub) is appended last and points at every rim vertex.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor adding the wheel W_n: a directed rim cycle and
// spokes from the hub.
func Wheel(hub, rim, n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := d.Size()
		rims := make([]int, n-1)
		for i := range rims {
			rims[i] = rim
		}
		if err := Cycle(rims...)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		h := d.AddVertex(hub)
		for i := 0; i < n-1; i++ {
			if _, err := d.AddEdge(h, base+i, 0); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
