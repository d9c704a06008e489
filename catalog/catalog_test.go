package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Food
		wantErr bool
	}{
		{
			name: "valid record",
			line: "Egg\t70\t1\t5\t6\teach",
			want: Food{Name: "Egg", Calories: 70, Carbs: 1, Fat: 5, Protein: 6, Unit: "each"},
		},
		{
			name: "fractional values",
			line: "Olive Oil\t119.3\t0\t13.5\t0\ttbsp",
			want: Food{Name: "Olive Oil", Calories: 119.3, Fat: 13.5, Unit: "tbsp"},
		},
		{
			name:    "too few fields",
			line:    "Egg\t70\t1\t5\t6",
			wantErr: true,
		},
		{
			name:    "too many fields",
			line:    "Egg\t70\t1\t5\t6\teach\textra",
			wantErr: true,
		},
		{
			name:    "non-numeric calories",
			line:    "Egg\tseventy\t1\t5\t6\teach",
			wantErr: true,
		},
		{
			name:    "non-numeric protein",
			line:    "Egg\t70\t1\t5\tsix\teach",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for line %q, got none", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	line := "Chicken Breast\t165\t0\t3.6\t31\t100g"
	first, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	rebuilt := fmt.Sprintf("%s\t%g\t%g\t%g\t%g\t%s",
		first.Name, first.Calories, first.Carbs, first.Fat, first.Protein, first.Unit)
	second, err := ParseLine(rebuilt)
	if err != nil {
		t.Fatalf("ParseLine on rebuilt line failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected round-trip to reproduce %+v, got %+v", first, second)
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, "# staples\n"+
		"Egg\t70\t1\t5\t6\teach\n"+
		"broken line without tabs\n"+
		"Rice\t205\t45\t0.4\t4.3\tcup\n"+
		"Bad\tNaN-ish\tx\ty\tz\tcup\textra\n"+
		"Milk\t103\t12\t2.4\t8\tcup\n")

	foods, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"Egg", "Rice", "Milk"}
	if len(foods) != len(want) {
		t.Fatalf("Expected %d foods, got %d", len(want), len(foods))
	}
	for i, name := range want {
		if foods[i].Name != name {
			t.Errorf("Expected food %d to be %q, got %q", i, name, foods[i].Name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("Expected error for missing catalog file, got none")
	}
}

func TestLoadAllMalformed(t *testing.T) {
	path := writeCatalog(t, "not\ta\tvalid\trecord\n#comment\n")
	foods, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(foods) != 0 {
		t.Errorf("Expected no foods, got %d", len(foods))
	}
}
