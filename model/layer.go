package model

import "fmt"

type LockState byte

const (
	LockUnlocked LockState = 0
	LockLocked   LockState = 1
)

func (s LockState) String() string {
	switch s {
	case LockLocked:
		return "locked"
	default:
		return "unlocked"
	}
}

// Color is a layer override color, written as whitespace separated
// components.
type Color struct {
	R float32
	G float32
	B float32
}

func (c Color) String() string {
	return fmt.Sprintf("%v %v %v", c.R, c.G, c.B)
}
