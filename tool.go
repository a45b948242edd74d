package fpidioms

// Tool classification labels.
const (
	FastDrill   = "Fast Drill"
	NewHammer   = "New Hammer"
	InvalidTool = "Invalid tool"
)

const (
	fastDrillMinRPM   = 10 // exclusive
	newHammerMaxWhack = 5  // exclusive
)

// Tool is a closed set of shapes: Drill and Hammer. The unexported marker
// method keeps other packages from adding variants. *Drill and *Hammer
// classify the same as the values they point to; a nil pointer is invalid.
type Tool interface {
	isTool()
}

// Drill is a rotational tool.
type Drill struct {
	RPM int
}

// Hammer is an impact tool.
type Hammer struct {
	Whacks int
}

func (Drill) isTool() {}
func (Hammer) isTool() {}

// ToolCases holds one handler per Tool variant. Default handles nil and any
// variant without a handler.
type ToolCases[R any] struct {
	Drill   func(Drill) R
	Hammer  func(Hammer) R
	Default func(Tool) R
}

// MatchTool dispatches tool to the handler for its variant.
func MatchTool[R any](tool Tool, cases ToolCases[R]) R {
	switch t := variant(tool).(type) {
	case Drill:
		if cases.Drill != nil {
			return cases.Drill(t)
		}
	case Hammer:
		if cases.Hammer != nil {
			return cases.Hammer(t)
		}
	}
	if cases.Default != nil {
		return cases.Default(tool)
	}
	var zero R
	return zero
}

// ClassifyToolImperative reassigns a result variable through an if/else
// chain.
func ClassifyToolImperative(tool Tool) string {
	var result string
	tool = variant(tool)

	if drill, ok := tool.(Drill); ok && drill.RPM > fastDrillMinRPM {
		result = FastDrill
	} else if hammer, ok := tool.(Hammer); ok && hammer.Whacks < newHammerMaxWhack {
		result = NewHammer
	} else {
		result = InvalidTool
	}

	return result
}

// ClassifyToolTernary is the nearest Go gets to a nested conditional
// expression. Go has no ternary operator, so cond stands in for one.
func ClassifyToolTernary(tool Tool) string {
	return cond(isFastDrill(tool), FastDrill,
		cond(isNewHammer(tool), NewHammer, InvalidTool))
}

// ClassifyToolMatch classifies with a type switch and guard conditions.
func ClassifyToolMatch(tool Tool) string {
	return MatchTool(tool, ToolCases[string]{
		Drill: func(d Drill) string {
			if d.RPM > fastDrillMinRPM {
				return FastDrill
			}
			return InvalidTool
		},
		Hammer: func(h Hammer) string {
			if h.Whacks < newHammerMaxWhack {
				return NewHammer
			}
			return InvalidTool
		},
		Default: func(Tool) string { return InvalidTool },
	})
}

// variant dereferences pointer variants.
func variant(tool Tool) Tool {
	switch t := tool.(type) {
	case *Drill:
		if t == nil {
			return nil
		}
		return *t
	case *Hammer:
		if t == nil {
			return nil
		}
		return *t
	}
	return tool
}

func isFastDrill(tool Tool) bool {
	d, ok := variant(tool).(Drill)
	return ok && d.RPM > fastDrillMinRPM
}

func isNewHammer(tool Tool) bool {
	h, ok := variant(tool).(Hammer)
	return ok && h.Whacks < newHammerMaxWhack
}

// cond evaluates both branches eagerly, which is fine for constants.
func cond[T any](ok bool, then, otherwise T) T {
	if ok {
		return then
	}
	return otherwise
}
