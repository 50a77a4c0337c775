package aggregate

import (
	"reflect"
	"testing"

	"github.com/maciejzgadzaj/commit-block/commit"
)

func TestMerge_SortsByTimestampDescending(t *testing.T) {
	tracker := []commit.Commit{
		{Hash: "a", Timestamp: 100, Source: commit.Tracker},
		{Hash: "b", Timestamp: 300, Source: commit.Tracker},
	}
	activity := []commit.Commit{
		{Hash: "c", Timestamp: 200, Source: commit.Activity},
	}

	merged := Merge([][]commit.Commit{tracker, activity}, 10)

	want := []string{"b", "c", "a"}
	got := hashes(merged)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Order: got %v, want %v", got, want)
	}
}

func TestMerge_EqualTimestampsKeepConcatenationOrder(t *testing.T) {
	c1 := commit.Commit{Hash: "first", Timestamp: 100, Source: commit.Tracker}
	c2 := commit.Commit{Hash: "second", Timestamp: 100, Source: commit.Activity}

	merged := Merge([][]commit.Commit{{c1}, {c2}}, 10)

	want := []string{"first", "second"}
	if got := hashes(merged); !reflect.DeepEqual(got, want) {
		t.Errorf("Tie-break order: got %v, want %v", got, want)
	}

	// Within-list order also survives ties
	merged = Merge([][]commit.Commit{{c1, c2}, nil}, 10)
	if got := hashes(merged); !reflect.DeepEqual(got, want) {
		t.Errorf("Within-list tie-break order: got %v, want %v", got, want)
	}
}

func TestMerge_SentinelTimestampSortsLast(t *testing.T) {
	lists := [][]commit.Commit{{
		{Hash: "unparseable", Timestamp: commit.UnknownTimestamp},
		{Hash: "old", Timestamp: 1},
		{Hash: "new", Timestamp: 999},
	}}

	merged := Merge(lists, 10)

	want := []string{"new", "old", "unparseable"}
	if got := hashes(merged); !reflect.DeepEqual(got, want) {
		t.Errorf("Order: got %v, want %v", got, want)
	}
}

func TestMerge_Truncation(t *testing.T) {
	lists := [][]commit.Commit{{
		{Hash: "a", Timestamp: 3},
		{Hash: "b", Timestamp: 2},
		{Hash: "c", Timestamp: 1},
	}}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"limit below length", 2, 2},
		{"limit equals length", 3, 3},
		{"limit above length", 10, 3},
		{"zero limit", 0, 0},
		{"negative limit treated as zero", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(lists, tt.limit)
			if len(merged) != tt.want {
				t.Errorf("Length: got %d, want %d", len(merged), tt.want)
			}
			if tt.limit >= 0 && len(merged) > tt.limit {
				t.Errorf("Returned more than limit: %d > %d", len(merged), tt.limit)
			}
		})
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	if merged := Merge([][]commit.Commit{nil, nil}, 10); len(merged) != 0 {
		t.Errorf("Expected empty result from empty lists, got %d", len(merged))
	}
	if merged := Merge(nil, 10); len(merged) != 0 {
		t.Errorf("Expected empty result from no lists, got %d", len(merged))
	}
}

func TestMerge_IdempotentUnderResorting(t *testing.T) {
	lists := [][]commit.Commit{
		{
			{Hash: "a", Timestamp: 100},
			{Hash: "b", Timestamp: 100},
			{Hash: "c", Timestamp: 50},
		},
		{
			{Hash: "d", Timestamp: 100},
			{Hash: "e", Timestamp: 200},
		},
	}

	once := Merge(lists, 10)
	twice := Merge([][]commit.Commit{once}, 10)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Re-sorting changed the result:\nonce:  %v\ntwice: %v", hashes(once), hashes(twice))
	}
}

func hashes(commits []commit.Commit) []string {
	out := make([]string, 0, len(commits))
	for _, c := range commits {
		out = append(out, c.Hash)
	}
	return out
}
