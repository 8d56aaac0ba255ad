package model

import "testing"

func TestPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		part     int
		total    int
		expected int
	}{
		{"no votes", 0, 0, 0},
		{"negative total", 1, -1, 0},
		{"three of four", 3, 4, 75},
		{"all yes", 5, 5, 100},
		{"none yes", 0, 7, 0},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"exact half", 1, 2, 50},
		{"half rounds away from zero", 1, 8, 13},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Percentage(tc.part, tc.total)
			if result != tc.expected {
				t.Errorf("Percentage(%d, %d) = %d; want %d", tc.part, tc.total, result, tc.expected)
			}
		})
	}
}

func TestPercentageBounds(t *testing.T) {
	for total := 0; total <= 20; total++ {
		for part := 0; part <= total; part++ {
			p := Percentage(part, total)
			if p < 0 || p > 100 {
				t.Fatalf("Percentage(%d, %d) = %d out of [0, 100]", part, total, p)
			}
		}
	}
}

func TestImageStats(t *testing.T) {
	img := Image{YesCount: 3, NoCount: 1}

	stats := img.Stats()
	if stats.TotalVotes != 4 {
		t.Errorf("TotalVotes = %d; want 4", stats.TotalVotes)
	}
	if stats.YesPercentage != 75 {
		t.Errorf("YesPercentage = %d; want 75", stats.YesPercentage)
	}

	// Pure derivation: calling twice yields the same result.
	again := img.Stats()
	if stats != again {
		t.Errorf("Stats not stable: %+v vs %+v", stats, again)
	}
}

func TestImageStatsEmpty(t *testing.T) {
	img := Image{}
	if img.TotalVotes() != 0 {
		t.Errorf("TotalVotes = %d; want 0", img.TotalVotes())
	}
	if img.YesPercentage() != 0 {
		t.Errorf("YesPercentage = %d; want 0", img.YesPercentage())
	}
}

func TestNewUserVoteStats(t *testing.T) {
	stats := NewUserVoteStats(7, 3)
	if stats.TotalVotes != 10 {
		t.Errorf("TotalVotes = %d; want 10", stats.TotalVotes)
	}
	if stats.YesVotes != 7 || stats.NoVotes != 3 {
		t.Errorf("split = %d/%d; want 7/3", stats.YesVotes, stats.NoVotes)
	}
	if stats.YesPercentage != 70 {
		t.Errorf("YesPercentage = %d; want 70", stats.YesPercentage)
	}

	empty := NewUserVoteStats(0, 0)
	if empty.YesPercentage != 0 {
		t.Errorf("empty YesPercentage = %d; want 0", empty.YesPercentage)
	}
}
