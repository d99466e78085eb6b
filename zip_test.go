package itertools

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/jake-scott/go-itertools/option"
	"github.com/jake-scott/go-itertools/pair"
)

func TestZipLengthIsMinimum(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []string
	}{
		{name: "same length", a: []int{1, 2, 3}, b: []string{"a", "b", "c"}},
		{name: "first shorter", a: []int{1}, b: []string{"a", "b", "c"}},
		{name: "second shorter", a: []int{1, 2, 3, 4}, b: []string{"a", "b"}},
		{name: "first empty", a: []int{}, b: []string{"a"}},
		{name: "second empty", a: []int{1}, b: nil},
		{name: "both empty", a: nil, b: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			got := Zip(From(tt.a), From(tt.b), WithTracing(true), testTracer(t)).Collect()

			assert.Len(got, min(len(tt.a), len(tt.b)))
			for i, p := range got {
				assert.Equal(tt.a[i], p.First)
				assert.Equal(tt.b[i], p.Second)
			}
		})
	}
}

func TestZipThenFilterEqual(t *testing.T) {
	assert := assert.New(t)

	v2 := []rune("ABCDEFG")
	v3 := []rune("AXCXEXG")

	got := Zip(From(v2), From(v3)).Filter(func(p pair.Pair[rune, rune]) bool {
		return p.First == p.Second
	}).Collect()

	assert.Equal([]pair.Pair[rune, rune]{
		pair.New('A', 'A'),
		pair.New('C', 'C'),
		pair.New('E', 'E'),
		pair.New('G', 'G'),
	}, got)
}

func TestZipNested(t *testing.T) {
	v1 := []rune("ABC")
	v2 := []rune("abc")
	v3 := []int{1, 2, 3}

	got := Zip(Zip(From(v1), From(v2)), From(v3)).Collect()

	want := []pair.Pair[pair.Pair[rune, rune], int]{
		pair.New(pair.New('A', 'a'), 1),
		pair.New(pair.New('B', 'b'), 2),
		pair.New(pair.New('C', 'c'), 3),
	}

	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

// The classic pipeline: double, keep evens,
// zip with letters and render
func TestZipMapRender(t *testing.T) {
	assert := assert.New(t)

	v2 := []int{0x41, 0x42, 0x43, 0x44, 0x45, 0x46}
	v3 := []rune("abcdefg")

	zipped := Zip(From(v2).Map(double).Filter(isEven), From(v3))
	got := Map(zipped, func(p pair.Pair[int, rune]) string {
		return fmt.Sprintf("{ %d, %c }", p.First, p.Second)
	}).Collect()

	assert.Equal([]string{
		"{ 130, a }", "{ 132, b }", "{ 134, c }",
		"{ 136, d }", "{ 138, e }", "{ 140, f }",
	}, got)
}

func TestZipShortCircuitsSecond(t *testing.T) {
	assert := assert.New(t)

	second, calls := naturals()
	z := ZipIter(sliceIter([]string{"a", "b"}), second)

	assert.Equal(pair.New("a", 0), z.Next().Get())
	assert.Equal(pair.New("b", 1), z.Next().Get())
	assert.Equal(2, *calls)

	// first is exhausted, second must not be polled
	assert.True(z.Next().IsNone())
	assert.Equal(2, *calls)

	assert.True(z.Next().IsNone())
	assert.Equal(2, *calls)
}

func TestZipDropsFirstWhenSecondEnds(t *testing.T) {
	assert := assert.New(t)

	first, calls := naturals()
	z := ZipIter(first, sliceIter([]string{"a"}))

	assert.Equal(pair.New(0, "a"), z.Next().Get())
	assert.True(z.Next().IsNone())

	// element 1 was pulled from first and dropped; nothing more after that
	assert.Equal(2, *calls)
	assert.True(z.Next().IsNone())
	assert.Equal(2, *calls)
}

func TestZipExhaustionIsPermanent(t *testing.T) {
	assert := assert.New(t)

	first := &rewindingIter[int]{items: []int{1, 2}}
	second := &rewindingIter[int]{items: []int{1, 2, 3}}
	z := ZipIter[int, int](first, second)

	assert.Len(drain(z), 2)
	c1, c2 := first.calls, second.calls

	for i := 0; i < 3; i++ {
		assert.Equal(option.None[pair.Pair[int, int]](), z.Next())
	}
	assert.Equal(c1, first.calls)
	assert.Equal(c2, second.calls)
}

func TestZipSize(t *testing.T) {
	assert := assert.New(t)

	z := ZipIter(sliceIter([]int{1, 2, 3}), sliceIter([]int{1, 2}))
	n, ok := sizeOf(z)
	assert.True(ok)
	assert.Equal(uint(2), n)

	inf, _ := naturals()
	z2 := ZipIter(sliceIter([]int{1, 2, 3}), inf)
	_, ok = sizeOf(z2)
	assert.False(ok)
}

func TestZipSameStagePanics(t *testing.T) {
	s := From([]int{1, 2, 3})

	assert.PanicsWithError(t, ErrStageConsumed.Error(), func() {
		Zip(s, s)
	})
}

func TestZipStopsLongerSeqSource(t *testing.T) {
	defer goleak.VerifyNone(t)

	got := Zip(From([]int{1}), NewSeqStage(slices.Values([]int{1, 2, 3}))).Collect()
	assert.Equal(t, []pair.Pair[int, int]{pair.New(1, 1)}, got)

	got = Zip(NewSeqStage(slices.Values([]int{1, 2, 3})), From([]int{4})).Collect()
	assert.Equal(t, []pair.Pair[int, int]{pair.New(1, 4)}, got)
}

func TestZipStopsBothInputs(t *testing.T) {
	assert := assert.New(t)

	a, b := &stoppingIter{}, &stoppingIter{limit: 1}
	it := ZipIter[int, int](a, b)

	assert.True(it.Next().IsSome())
	assert.True(it.Next().IsNone())
	assert.True(a.stopped)
	assert.True(b.stopped)
}

func TestZipTracing(t *testing.T) {
	assert := assert.New(t)

	lines := []string{}
	tf := func(format string, v ...any) {
		lines = append(lines, fmt.Sprintf(format, v...))
	}

	// second's tracing is not inherited
	Zip(From([]int{1}), From([]int{2}, WithTracing(true), WithTraceFunc(tf), InheritOptions(true))).Collect()
	assert.Len(lines, 2)
	lines = lines[:0]

	second := From([]string{"a"})
	Zip(From([]int{1}, WithTracing(true), WithTraceFunc(tf), InheritOptions(true)), second).Collect()
	assert.Contains(strings.Join(lines, "\n"), fmt.Sprintf("Zip with stage #%d", second.id))
}
