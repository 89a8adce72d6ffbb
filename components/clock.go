package components

import "github.com/yohamta/donburi"

// ClockData is the session clock. Now advances by Step once per frame.
type ClockData struct {
	Now  float64
	Tick int
	Step float64
}

var Clock = donburi.NewComponentType[ClockData]()
