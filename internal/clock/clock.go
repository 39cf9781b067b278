package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts the evaluation instant so derived views can be tested
// against a fixed date.
type Clock interface {
	Now() time.Time
}

var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
