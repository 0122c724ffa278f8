package fenwick

import (
	"testing"
)

const benchSize = 1000

func BenchmarkNew(b *testing.B) {
	a := make([]int64, benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(a...)
	}
}

func BenchmarkBuildByAdding(b *testing.B) {
	a := make([]int64, benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buildByAdding(a)
	}
}

func BenchmarkAdd(b *testing.B) {
	t := Make[int64](benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 1; j <= benchSize; j++ {
			t.Add(j, int64(j))
		}
	}
}

func BenchmarkSum(b *testing.B) {
	t := Make[int64](benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 1; j <= benchSize; j++ {
			_ = t.Sum(j)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	t := Make[int64](benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 1; j <= benchSize; j++ {
			_ = t.Get(j)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	a := make([]int64, benchSize)
	for i := range a {
		a[i] = 1
	}
	t := New(a...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := int64(1); j <= benchSize; j++ {
			_ = t.Search(j)
		}
	}
}
