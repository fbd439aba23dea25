package render

import "testing"

func TestResolveColumnsCeiling(t *testing.T) {
	if got := ResolveColumns(5000, 5000, 900); got != MaxColumns {
		t.Fatalf("ResolveColumns(5000,5000,900) = %d, want %d", got, MaxColumns)
	}
}

func TestResolveColumnsTinyImage(t *testing.T) {
	got := ResolveColumns(10, 10, 300)
	if got >= 300 {
		t.Fatalf("10x10 image must resolve below 300, got %d", got)
	}
	if got != 10 {
		t.Fatalf("ResolveColumns(10,10,300) = %d, want 10", got)
	}
}

func TestResolveColumnsRowFloor(t *testing.T) {
	sizes := [][2]int{{10, 10}, {100, 50}, {37, 91}, {1000, 1000}, {3, 200}, {200, 3}, {640, 480}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		for requested := 1; requested <= 300; requested++ {
			cols := ResolveColumns(w, h, requested)
			if cols < 1 || cols > MaxColumns {
				t.Fatalf("ResolveColumns(%d,%d,%d) = %d out of range", w, h, requested, cols)
			}
			g := FitGrid(w, h, cols)
			if g.Rows < 1 || g.Cols < 1 {
				t.Fatalf("FitGrid(%d,%d,%d) produced empty grid %+v", w, h, cols, g)
			}
		}
	}
}

func TestFitGridTallAspect(t *testing.T) {
	// 1:2 source aspect with 2x cell height: rows come out equal to columns.
	g := FitGrid(200, 400, 50)
	if g.Rows != 50 {
		t.Fatalf("FitGrid(200,400,50).Rows = %d, want 50", g.Rows)
	}
}

func TestGridCoversEveryPixelOnce(t *testing.T) {
	const w, h = 103, 57
	cols := ResolveColumns(w, h, 30)
	g := FitGrid(w, h, cols)

	counts := make([]int, w*h)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x0, y0, x1, y1 := g.cellRect(row, col, w, h)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					counts[y*w+x]++
				}
			}
		}
	}
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("pixel (%d,%d) covered %d times, want exactly once", i%w, i/w, c)
		}
	}
}
