package dictionary

import (
	"reflect"
	"testing"
)

func TestWordTableAdd(t *testing.T) {
	table := NewWordTable()

	table.Add("run", nil)
	if rec := table.Lookup("run"); rec.Kind != Flagless {
		t.Fatalf("expected flagless, got %v", rec.Kind)
	}

	table.Add("run", []string{"A"})
	table.Add("run", nil)
	table.Add("run", []string{"B"})

	rec := table.Lookup("run")
	if rec.Kind != Flagged || !reflect.DeepEqual(rec.Flags, []string{"A", "B"}) {
		t.Errorf("unexpected record: %+v", rec)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 word, got %d", table.Len())
	}
}

func TestWordTableCopiesFlags(t *testing.T) {
	table := NewWordTable()
	flags := []string{"A"}
	table.Add("walk", flags)
	flags[0] = "Z"

	if got := table.Lookup("walk").Flags; got[0] != "A" {
		t.Errorf("table shares caller slice: %v", got)
	}
}

func TestWordTableLookupMissing(t *testing.T) {
	rec := NewWordTable().Lookup("nope")
	if rec.Present() || rec.Kind.String() != "none" {
		t.Errorf("unexpected record for missing word: %+v", rec)
	}
}

func TestWordTableRangeStops(t *testing.T) {
	table := NewWordTable()
	for _, w := range []string{"a", "b", "c"} {
		table.Add(w, nil)
	}
	visited := 0
	table.Range(func(string, Record) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("expected Range to stop after 1 word, visited %d", visited)
	}
}
