// Package factor holds the immutable emission factor tables that map each
// survey question's answer to a weekly kg-CO2e contribution.
//
// The tables are fixed at build time and never mutated. Lookup is a total
// function: an answer outside the declared domain yields a zero contribution
// and a false flag so callers can surface the table gap without failing.
package factor

import "github.com/okian/ecotrace/internal/domain/model"

// Choice pairs an answer token with its weekly contribution.
type Choice struct {
	Token    string
	WeeklyKg float64
}

// QuestionSpec declares one survey question and its answer domain.
type QuestionSpec struct {
	Name    string
	Choices []Choice
}

// Home factors follow the original home calculator, with each signed
// question shifted so its lowest-impact answer sits at 0 kg/week. The
// relative ordering between answers is unchanged.
var homeQuestions = []QuestionSpec{
	{Name: "homeSize", Choices: []Choice{
		{"small", 2.0}, {"medium", 4.0}, {"large", 6.0},
	}},
	{Name: "heating", Choices: []Choice{
		{"electric", 3.0}, {"gas", 2.5}, {"oil", 4.0}, {"heatPump", 1.0}, {"none", 0},
	}},
	{Name: "acUsage", Choices: []Choice{
		{"heavy", 3.0}, {"moderate", 1.5}, {"light", 0.5}, {"none", 0},
	}},
	{Name: "energyEfficiency", Choices: []Choice{
		{"very", 0}, {"somewhat", 1.0}, {"not", 3.0},
	}},
	{Name: "renewableEnergy", Choices: []Choice{
		{"solar", 0}, {"wind", 0}, {"green", 1.0}, {"none", 2.0},
	}},
	{Name: "waterUsage", Choices: []Choice{
		{"conservative", 0}, {"average", 0.5}, {"high", 1.5},
	}},
}

var travelQuestions = []QuestionSpec{
	{Name: "distance", Choices: []Choice{
		{"noDrive", 0}, {"low", 2.0}, {"medium", 5.0}, {"high", 12.0},
	}},
	{Name: "transport", Choices: []Choice{
		{"walk", 0}, {"bicycle", 0.1}, {"publicTransport", 1.2}, {"motorcycle", 3.5}, {"car", 8.0},
	}},
	{Name: "vehicleType", Choices: []Choice{
		{"electric", 3.0}, {"hybrid", 5.5}, {"petrol", 8.0}, {"diesel", 7.2}, {"noVehicle", 0},
	}},
	{Name: "flights", Choices: []Choice{
		{"noFlights", 0}, {"few", 2.0}, {"moderate", 5.0}, {"many", 10.0},
	}},
	{Name: "carpool", Choices: []Choice{
		{"always", 0.3}, {"sometimes", 0.6}, {"rarely", 0.9}, {"never", 1.0},
	}},
	{Name: "rideHailing", Choices: []Choice{
		{"never", 0}, {"occasionally", 0.8}, {"weekly", 2.5}, {"daily", 6.0},
	}},
	{Name: "routePlanning", Choices: []Choice{
		{"yes", 0.9}, {"sometimes", 1.0}, {"no", 1.1},
	}},
}

// Food factors follow the original food calculator with the same
// minimum-at-zero shift as the home table.
var foodQuestions = []QuestionSpec{
	{Name: "meatFrequency", Choices: []Choice{
		{"never", 0}, {"onceTwice", 1.0}, {"threeFour", 2.5}, {"daily", 4.0},
	}},
	{Name: "vegetarianDays", Choices: []Choice{
		{"none", 2.0}, {"oneTwo", 1.5}, {"threeFive", 0.8}, {"sixSeven", 0.2},
	}},
	{Name: "foodPurchase", Choices: []Choice{
		{"local", 0.5}, {"supermarket", 1.0}, {"imported", 2.0}, {"online", 1.5},
	}},
	{Name: "organicProduce", Choices: []Choice{
		{"always", 0}, {"sometimes", 0.3}, {"rarely", 0.5}, {"never", 1.0},
	}},
	{Name: "eatOutFrequency", Choices: []Choice{
		{"never", 0}, {"rarely", 0.5}, {"sometimes", 1.0}, {"frequently", 2.0},
	}},
	{Name: "foodWaste", Choices: []Choice{
		{"none", 0}, {"little", 0.3}, {"some", 1.0}, {"lots", 1.5},
	}},
	{Name: "reusableItems", Choices: []Choice{
		{"always", 0}, {"mostly", 0.2}, {"sometimes", 0.4}, {"rarely", 1.0},
	}},
}

var othersQuestions = []QuestionSpec{
	{Name: "screenHours", Choices: []Choice{
		{"0", 0}, {"1", 0}, {"2", 0.3}, {"3", 0.3}, {"4", 0.6}, {"5", 0.6},
		{"6", 1.0}, {"7", 1.0}, {"8", 1.5}, {"9", 1.5}, {"10", 2.0}, {"11", 2.0},
		{"12", 3.0},
	}},
	{Name: "ecoBrands", Choices: []Choice{
		{"yes", 0}, {"no", 1.0}, {"sometimes", 0.5},
	}},
	{Name: "shoppingFrequency", Choices: []Choice{
		{"rarely", 0.5}, {"monthly", 1.5}, {"weekly", 4.0}, {"frequently", 8.0},
	}},
	{Name: "recycling", Choices: []Choice{
		{"always", 0}, {"often", 0.3}, {"sometimes", 0.7}, {"never", 1.5},
	}},
	{Name: "plasticUsage", Choices: []Choice{
		{"always", 1.5}, {"often", 0.8}, {"sometimes", 0.2}, {"never", 0},
	}},
	{Name: "composting", Choices: []Choice{
		{"yes", 0}, {"planning", 0.5}, {"no", 0.2},
	}},
	{Name: "disposalMethod", Choices: []Choice{
		{"donate", 0.1}, {"recycle", 0.2}, {"throw", 1.0}, {"sale", 0.1},
	}},
}

var specs = map[model.Category][]QuestionSpec{
	model.Home:   homeQuestions,
	model.Travel: travelQuestions,
	model.Food:   foodQuestions,
	model.Others: othersQuestions,
}

// lookup index built once from the declared specs.
var index = buildIndex()

func buildIndex() map[model.Category]map[string]map[string]float64 {
	idx := make(map[model.Category]map[string]map[string]float64, len(specs))
	for cat, questions := range specs {
		byQuestion := make(map[string]map[string]float64, len(questions))
		for _, q := range questions {
			byAnswer := make(map[string]float64, len(q.Choices))
			for _, c := range q.Choices {
				byAnswer[c.Token] = c.WeeklyKg
			}
			byQuestion[q.Name] = byAnswer
		}
		idx[cat] = byQuestion
	}
	return idx
}

// Lookup returns the weekly kg-CO2e contribution for one answer.
// The second return reports whether (category, question, answer) is inside
// the declared domain; outside it the contribution is 0.
func Lookup(cat model.Category, question, answer string) (float64, bool) {
	byQuestion, ok := index[cat]
	if !ok {
		return 0, false
	}
	byAnswer, ok := byQuestion[question]
	if !ok {
		return 0, false
	}
	v, ok := byAnswer[answer]
	if !ok {
		return 0, false
	}
	return v, true
}

// Questions returns the required question names for a category in their
// declared order.
func Questions(cat model.Category) []string {
	qs := specs[cat]
	names := make([]string, len(qs))
	for i, q := range qs {
		names[i] = q.Name
	}
	return names
}

// Answers returns the declared answer tokens for a question in their
// declared order. Returns nil for an unknown question.
func Answers(cat model.Category, question string) []string {
	for _, q := range specs[cat] {
		if q.Name != question {
			continue
		}
		tokens := make([]string, len(q.Choices))
		for i, c := range q.Choices {
			tokens[i] = c.Token
		}
		return tokens
	}
	return nil
}
