package task_test

import (
	"testing"

	"dotask-bot/internal/task"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{11, 5, 3},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := task.TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestClampPageOffsetInRange(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for size := 1; size <= 7; size++ {
			for page := -2; page <= 12; page++ {
				got := task.ClampPage(page, total, size)
				if got < 1 {
					t.Fatalf("ClampPage(%d, %d, %d) = %d < 1", page, total, size, got)
				}
				off := task.Offset(got, size)
				if total > 0 && off >= total {
					t.Fatalf("ClampPage(%d, %d, %d) = %d gives offset %d beyond total", page, total, size, got, off)
				}
				if total == 0 && got != 1 {
					t.Fatalf("empty listing must clamp to page 1, got %d", got)
				}
			}
		}
	}
}
