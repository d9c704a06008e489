// Package catalog loads the food catalog: a UTF-8 text file with one record
// per line, fields tab-separated in the order name, calories, carbs, fat,
// protein, unit. Lines starting with '#' are comments.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"macrolog/logging"
)

// Food is one catalog record. Nutrient values are per the declared unit.
// Records are immutable once loaded; Name is a loose identity, uniqueness
// is not enforced.
type Food struct {
	Name     string
	Calories float64
	Carbs    float64
	Fat      float64
	Protein  float64
	Unit     string
}

const fieldCount = 6

// ErrFieldCount reports a line that does not split into exactly six fields.
var ErrFieldCount = errors.New("invalid field number")

// ParseLine parses one tab-separated catalog line into a Food.
func ParseLine(line string) (Food, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount {
		return Food{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount)
	}

	calories, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Food{}, fmt.Errorf("parsing calories %q: %w", fields[1], err)
	}
	carbs, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Food{}, fmt.Errorf("parsing carbs %q: %w", fields[2], err)
	}
	fat, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Food{}, fmt.Errorf("parsing fat %q: %w", fields[3], err)
	}
	protein, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Food{}, fmt.Errorf("parsing protein %q: %w", fields[4], err)
	}

	return Food{
		Name:     fields[0],
		Calories: calories,
		Carbs:    carbs,
		Fat:      fat,
		Protein:  protein,
		Unit:     fields[5],
	}, nil
}

// Load reads the catalog at path. Comment and blank lines are skipped.
// Malformed lines are dropped and logged; loading continues with the rest.
// A read failure on the file itself is returned as an error.
func Load(path string) ([]Food, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	var foods []Food
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		food, err := ParseLine(line)
		if err != nil {
			logging.Warn("dropping catalog line",
				zap.Int("line", lineNo),
				zap.Error(err),
			)
			continue
		}
		foods = append(foods, food)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return foods, nil
}
