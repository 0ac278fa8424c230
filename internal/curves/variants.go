package curves

// Curve variants for the supported hardware classes. The tables only
// differ in how early and how steeply they ramp up: desktop class boards
// stay quiet until 45 degrees, while the high-core-count platforms need
// airflow much earlier and reach full duty at lower temperatures.

// StandardSmooth is the low-noise curve used on consumer class boards.
func StandardSmooth() FanCurve {
	return NewFanCurve("standard_smooth", []Breakpoint{
		{Temp: 4500, Duty: 3000},
		{Temp: 5000, Duty: 3500},
		{Temp: 5500, Duty: 4000},
		{Temp: 6000, Duty: 4500},
		{Temp: 6500, Duty: 5000},
		{Temp: 7000, Duty: 6000},
		{Temp: 7500, Duty: 7000},
		{Temp: 8000, Duty: 8500},
		{Temp: 8500, Duty: MaxDuty},
	})
}

// Threadripper2 is the curve used on second generation Threadripper
// boards, which run hot under all-core load.
func Threadripper2() FanCurve {
	return NewFanCurve("threadripper2", []Breakpoint{
		{Temp: 4000, Duty: 3500},
		{Temp: 5000, Duty: 4500},
		{Temp: 6000, Duty: 5500},
		{Temp: 7000, Duty: 7000},
		{Temp: 7500, Duty: 8000},
		{Temp: 8000, Duty: MaxDuty},
	})
}

// Hedt is the curve used on high-end-desktop class boards.
func Hedt() FanCurve {
	return NewFanCurve("hedt", []Breakpoint{
		{Temp: 4000, Duty: 4000},
		{Temp: 5000, Duty: 5000},
		{Temp: 6000, Duty: 6500},
		{Temp: 7000, Duty: 8000},
		{Temp: 7500, Duty: 9000},
		{Temp: 8000, Duty: MaxDuty},
	})
}

// Xeon is the curve used on dual socket Xeon boards.
func Xeon() FanCurve {
	return NewFanCurve("xeon", []Breakpoint{
		{Temp: 3500, Duty: 4000},
		{Temp: 4500, Duty: 5000},
		{Temp: 5500, Duty: 6500},
		{Temp: 6500, Duty: 8000},
		{Temp: 7500, Duty: 9000},
		{Temp: 8000, Duty: MaxDuty},
	})
}

// Registry maps curve names to their constructors, used by the CLI to
// list and plot all known variants.
var Registry = map[string]func() FanCurve{
	"standard_smooth": StandardSmooth,
	"threadripper2":   Threadripper2,
	"hedt":            Hedt,
	"xeon":            Xeon,
}
