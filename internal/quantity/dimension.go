package quantity

// Dimension is the closed set of dimension tags a Quantity can carry.
type Dimension interface {
	DistanceDim | SpeedDim | AccelerationDim | TimeDim
	Name() string
	Symbol() string
}

type DistanceDim struct{}

func (DistanceDim) Name() string   { return "distance" }
func (DistanceDim) Symbol() string { return "m" }

type SpeedDim struct{}

func (SpeedDim) Name() string   { return "speed" }
func (SpeedDim) Symbol() string { return "m/s" }

type AccelerationDim struct{}

func (AccelerationDim) Name() string   { return "acceleration" }
func (AccelerationDim) Symbol() string { return "m/s²" }

type TimeDim struct{}

func (TimeDim) Name() string   { return "time" }
func (TimeDim) Symbol() string { return "s" }

type (
	Distance     = Quantity[DistanceDim]
	Speed        = Quantity[SpeedDim]
	Acceleration = Quantity[AccelerationDim]
	Time         = Quantity[TimeDim]
)

func NewDistance(v float64) Distance         { return Distance{value: v} }
func NewSpeed(v float64) Speed               { return Speed{value: v} }
func NewAcceleration(v float64) Acceleration { return Acceleration{value: v} }
func NewTime(v float64) Time                 { return Time{value: v} }

