package ui

import (
	"fmt"
	"strconv"

	"macrolog/catalog"
)

// Field indices in display order on the entry form.
const (
	fieldName = iota
	fieldCalories
	fieldProtein
	fieldCarbs
	fieldFat
	fieldUnit
	fieldQuantity
	fieldCount
)

// Labels are right-aligned to the shared label column.
var fieldLabels = [fieldCount]string{
	"Food Name:",
	" Calories:",
	"  Protein:",
	"    Carbs:",
	"      Fat:",
	"    Units:",
	" Quantity:",
}

// form holds the text buffers for the add-food screen. Exactly one field is
// active at a time; the index never leaves [0, fieldCount).
type form struct {
	fields [fieldCount][]rune
	active int
}

func (f *form) clear() {
	for i := range f.fields {
		f.fields[i] = nil
	}
	f.active = 0
}

// next advances the active field. No wrap at the last field.
func (f *form) next() bool {
	if f.active < fieldCount-1 {
		f.active++
		return true
	}
	return false
}

// prev moves back one field. No wrap at the first field.
func (f *form) prev() bool {
	if f.active > 0 {
		f.active--
		return true
	}
	return false
}

func (f *form) insert(r rune) {
	f.fields[f.active] = append(f.fields[f.active], r)
}

// deleteBackward removes the last character of the active field. No-op on
// an empty buffer.
func (f *form) deleteBackward() bool {
	buf := f.fields[f.active]
	if len(buf) == 0 {
		return false
	}
	f.fields[f.active] = buf[:len(buf)-1]
	return true
}

func (f *form) value(i int) string {
	return string(f.fields[i])
}

// entry is a parsed form submission.
type entry struct {
	food     catalog.Food
	quantity float64
}

// submit parses the buffers into a food plus quantity. The error carries
// which field failed; callers decide whether to surface it.
func (f *form) submit() (entry, error) {
	calories, err := strconv.ParseFloat(f.value(fieldCalories), 64)
	if err != nil {
		return entry{}, fmt.Errorf("parsing calories %q: %w", f.value(fieldCalories), err)
	}
	protein, err := strconv.ParseFloat(f.value(fieldProtein), 64)
	if err != nil {
		return entry{}, fmt.Errorf("parsing protein %q: %w", f.value(fieldProtein), err)
	}
	carbs, err := strconv.ParseFloat(f.value(fieldCarbs), 64)
	if err != nil {
		return entry{}, fmt.Errorf("parsing carbs %q: %w", f.value(fieldCarbs), err)
	}
	fat, err := strconv.ParseFloat(f.value(fieldFat), 64)
	if err != nil {
		return entry{}, fmt.Errorf("parsing fat %q: %w", f.value(fieldFat), err)
	}
	quantity, err := strconv.ParseFloat(f.value(fieldQuantity), 64)
	if err != nil {
		return entry{}, fmt.Errorf("parsing quantity %q: %w", f.value(fieldQuantity), err)
	}

	return entry{
		food: catalog.Food{
			Name:     f.value(fieldName),
			Calories: calories,
			Carbs:    carbs,
			Fat:      fat,
			Protein:  protein,
			Unit:     f.value(fieldUnit),
		},
		quantity: quantity,
	}, nil
}
