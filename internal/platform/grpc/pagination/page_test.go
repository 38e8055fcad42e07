package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	cfg := PageSizeConfig{Default: 10, Max: 50}

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{name: "zero uses default", value: 0, want: 10},
		{name: "negative uses default", value: -3, want: 10},
		{name: "within bounds", value: 25, want: 25},
		{name: "above max clamps", value: 80, want: 50},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := ClampPageSize(test.value, cfg); got != test.want {
				t.Fatalf("ClampPageSize(%d) = %d, want %d", test.value, got, test.want)
			}
		})
	}
}

func TestClampPageSizeFallsBackToOne(t *testing.T) {
	t.Parallel()
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		page      int
		pageSize  int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", n: 10, page: 1, pageSize: 4, wantStart: 0, wantEnd: 4},
		{name: "middle page", n: 10, page: 2, pageSize: 4, wantStart: 4, wantEnd: 8},
		{name: "short final page", n: 10, page: 3, pageSize: 4, wantStart: 8, wantEnd: 10},
		{name: "page past end is empty", n: 10, page: 4, pageSize: 4, wantStart: 10, wantEnd: 10},
		{name: "page below one clamps", n: 10, page: 0, pageSize: 4, wantStart: 0, wantEnd: 4},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			start, end := Slice(test.n, test.page, test.pageSize)
			if start != test.wantStart || end != test.wantEnd {
				t.Fatalf("Slice(%d, %d, %d) = (%d, %d), want (%d, %d)",
					test.n, test.page, test.pageSize, start, end, test.wantStart, test.wantEnd)
			}
		})
	}
}
