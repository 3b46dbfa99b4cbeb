package terminal

import "testing"

func TestEnvIntFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 80},
		{"valid", "120", 120},
		{"garbage", "wide", 80},
		{"negative", "-3", 80},
		{"zero", "0", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERMPLOT_TEST_COLS", tt.value)
			if got := envInt("TERMPLOT_TEST_COLS", 80); got != tt.want {
				t.Errorf("envInt(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetSizeFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	s := getSizeFromEnv()
	if s.Cols != 132 || s.Rows != 43 {
		t.Errorf("getSizeFromEnv() = %+v, want 132x43", s)
	}
}

func TestPlotSizeNeverZero(t *testing.T) {
	w, h := PlotSize()
	if w < 1 || h < 1 {
		t.Errorf("PlotSize() = %dx%d, want at least 1x1", w, h)
	}
}
