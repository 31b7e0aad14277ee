package habit

// Action describes a known low-carbon action with its display metadata.
type Action struct {
	Title    string `json:"title"`
	Quantity string `json:"quantity"` // CO2e saved per completion, display string
	Points   string `json:"points"`   // streak points, display string
}

// The actions shipped with the app. Completions are not limited to these;
// any title is accepted by the ledger.
var (
	ShortWalk = Action{
		Title:    "Walk for short distances",
		Quantity: "400g",
		Points:   "5",
	}
	TapWater = Action{
		Title:    "Drink Tap water instead of bottled",
		Quantity: "200g",
		Points:   "+5",
	}
	ReduceFoodWaste = Action{
		Title:    "Reduce Food Waste",
		Quantity: "400g",
		Points:   "25",
	}
)

// KnownActions returns the built-in action catalog in display order.
func KnownActions() []Action {
	return []Action{ShortWalk, TapWater, ReduceFoodWaste}
}
