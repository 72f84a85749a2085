package shifty

import (
	fease "github.com/fogleman/ease"
	"github.com/tanema/gween/ease"
)

// Easing functions follow the gween contract: ease.TweenFunc takes the
// elapsed time, the start value, the total delta, and the duration, and
// returns the interpolated value. Elapsed and duration only ever appear as
// a ratio, so any consistent unit works.
//
// The registry is process-wide and preloaded with the gween curve set plus
// the square family from fogleman/ease. Register custom curves during
// setup, before any tween is started.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

func init() {
	// gween has no square-wave family; fogleman/ease does.
	easings["inSquare"] = FromUnit(fease.InSquare)
	easings["outSquare"] = FromUnit(fease.OutSquare)
	easings["inOutSquare"] = FromUnit(fease.InOutSquare)
}

// RegisterEasing adds fn to the easing registry under name, replacing any
// existing curve with that name.
func RegisterEasing(name string, fn ease.TweenFunc) {
	easings[name] = fn
}

// LookupEasing returns the easing curve registered under name, or linear
// if the name is unknown.
func LookupEasing(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

// FromUnit adapts a normalized curve (mapping [0, 1] to [0, 1], the
// fogleman/ease shape) into an ease.TweenFunc.
func FromUnit(fn func(float64) float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(fn(float64(t/d)))
	}
}
