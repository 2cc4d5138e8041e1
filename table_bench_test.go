package table

import (
	"fmt"
	"testing"
)

type benchPosition struct {
	X, Y float32
}

type benchVelocity struct {
	DX, DY float32
}

var benchSizes = []int{1000, 10000, 100000, 1000000}

func sizeName(size int) string {
	if size == 1000000 {
		return "1M"
	}
	return fmt.Sprintf("%dK", size/1000)
}

// Construction Benchmarks
func BenchmarkNew(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = New[benchPosition](size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkNewFunc(b *testing.B) {
	def := func() benchVelocity { return benchVelocity{DX: 1, DY: 1} }
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = NewFunc(size, def)
			}
			b.ReportAllocs()
		})
	}
}

// Slot Access Benchmarks
func BenchmarkGet(b *testing.B) {
	tbl := New[benchPosition](1024)
	for b.Loop() {
		for i := range 1024 {
			_ = tbl.Get(i)
		}
	}
	b.ReportAllocs()
}

func BenchmarkSet(b *testing.B) {
	tbl := New[benchPosition](1024)
	for b.Loop() {
		for i := range 1024 {
			tbl.Set(i, benchPosition{X: 1, Y: 2})
		}
	}
	b.ReportAllocs()
}

func BenchmarkZero(b *testing.B) {
	tbl := New[benchPosition](1024)
	tbl.Fill(benchPosition{X: 1, Y: 2})
	for b.Loop() {
		for i := range 1024 {
			tbl.Zero(i)
		}
	}
	b.ReportAllocs()
}

func BenchmarkZeroAll(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := New[benchPosition](size)
			for b.Loop() {
				tbl.ZeroAll()
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkFindLast(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := New[benchPosition](size)
			tbl.Set(size-1, benchPosition{X: 1})
			for b.Loop() {
				_, _ = tbl.Find(func(p *benchPosition) bool { return p.X == 1 })
			}
			b.ReportAllocs()
		})
	}
}

// Iteration Benchmarks
func BenchmarkAll(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := New[benchPosition](size)
			for b.Loop() {
				for _, p := range tbl.All() {
					_ = p
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAllMut(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			pos := New[benchPosition](size)
			vel := NewFunc(size, func() benchVelocity { return benchVelocity{DX: 1, DY: 1} })
			for b.Loop() {
				for i, p := range pos.AllMut() {
					v := vel.GetMut(i)
					p.X += v.DX
					p.Y += v.DY
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkCursor(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := New[benchPosition](size)
			c := tbl.NewCursor()
			for b.Loop() {
				c.Reset()
				for c.Next() {
					c.Get().X++
				}
			}
			b.ReportAllocs()
		})
	}
}
