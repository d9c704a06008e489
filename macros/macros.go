// Package macros tracks the four running nutrient totals for the day.
package macros

import "macrolog/catalog"

// Totals accumulates calories, carbs, fat and protein. The zero value is
// ready to use. There is no subtraction; totals only grow.
type Totals struct {
	Calories float64
	Carbs    float64
	Fat      float64
	Protein  float64
}

// AddScaled multiplies each nutrient of f by quantity and adds it in.
func (t *Totals) AddScaled(f catalog.Food, quantity float64) {
	t.Calories += f.Calories * quantity
	t.Carbs += f.Carbs * quantity
	t.Fat += f.Fat * quantity
	t.Protein += f.Protein * quantity
}
