package scorepadtypes

const (
	SliderMin   = 0
	SliderMax   = 120
	SliderStep  = 30
	SliderStart = SliderMax
)

// SliderOptions returns the selectable slider values in ascending order.
func SliderOptions() []int {
	out := make([]int, 0, (SliderMax-SliderMin)/SliderStep+1)
	for v := SliderMin; v <= SliderMax; v += SliderStep {
		out = append(out, v)
	}
	return out
}

// OnSliderStep reports whether v is a value a slider can hold.
func OnSliderStep(v int) bool {
	return v >= SliderMin && v <= SliderMax && (v-SliderMin)%SliderStep == 0
}

// Snap clamps v to the slider range and rounds it to the nearest step.
func Snap(v int) int {
	switch {
	case v <= SliderMin:
		return SliderMin
	case v >= SliderMax:
		return SliderMax
	}
	steps := (v - SliderMin + SliderStep/2) / SliderStep
	return SliderMin + steps*SliderStep
}

// SliderPair couples the points and bidding sliders so that bidding never
// drops below points.
type SliderPair struct {
	points  int
	bidding int
}

// NewSliderPair returns a pair with both sliders at the start value.
func NewSliderPair() *SliderPair {
	p := &SliderPair{}
	p.Reset()
	return p
}

func (p *SliderPair) Points() int  { return p.points }
func (p *SliderPair) Bidding() int { return p.bidding }

// SlidePoints moves the points slider; bidding follows when it would fall behind.
func (p *SliderPair) SlidePoints(v int) {
	p.points = Snap(v)
	if p.points > p.bidding {
		p.bidding = p.points
	}
}

// SlideBidding moves the bidding slider; points follow when they would lead.
func (p *SliderPair) SlideBidding(v int) {
	p.bidding = Snap(v)
	if p.bidding < p.points {
		p.points = p.bidding
	}
}

// Reset returns both sliders to the start value.
func (p *SliderPair) Reset() {
	p.points = SliderStart
	p.bidding = SliderStart
}
