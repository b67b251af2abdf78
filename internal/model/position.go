package model

// Position says which scenario is ahead in a given month.
// Keep these values stable; they are written to CSV and stored by the recorder.
type Position string

const (
	PositionProperty Position = "PROPERTY"
	PositionEven     Position = "EVEN"
	PositionFund     Position = "FUND"
)

func PositionFromDelta(delta float64) Position {
	switch {
	case delta > 0:
		return PositionProperty
	case delta < 0:
		return PositionFund
	default:
		return PositionEven
	}
}
