package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment(t *testing.T) {
	a := NewAssignment(3)
	a.Add(0, 0, Pt(1, 1))
	a.Add(2, 1, Pt(4, 3))
	a.Add(0, 2, Pt(2, 1))

	require.Equal(t, 3, a.K())
	assert.Equal(t, 3, a.Total())
	assert.Equal(t, []Point{Pt(1, 1), Pt(2, 1)}, a.Cluster(0))
	assert.Empty(t, a.Cluster(1))
	assert.Equal(t, []int{1}, a.Empty())

	assert.Equal(t, []uint32{0, 2}, a.Members(0).ToArray())
	assert.Equal(t, 2, a.ClusterOf(1))
	assert.Equal(t, -1, a.ClusterOf(7))
}

func TestAssignmentMembersIsCopy(t *testing.T) {
	a := NewAssignment(1)
	a.Add(0, 0, Pt(0, 0))

	m := a.Members(0)
	m.Add(42)

	assert.False(t, a.Members(0).Contains(42))
}

func TestAssignmentString(t *testing.T) {
	a := NewAssignment(2)
	a.Add(0, 0, Pt(1, 1))
	a.Add(0, 1, Pt(2, 1))
	a.Add(1, 2, Pt(4.5, 3.5))

	assert.Equal(t, "{0: [(1, 1), (2, 1)], 1: [(4.5, 3.5)]}", a.String())
	assert.Equal(t, "{0: []}", NewAssignment(1).String())
}

func TestPointString(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want string
	}{
		{"Integral", Pt(1, 1), "(1, 1)"},
		{"Fraction", Pt(1.5, -0.25), "(1.5, -0.25)"},
		{"Zero", Point{}, "(0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.String())
		})
	}

	assert.Equal(t, "[(1, 1), (2, 1)]", FormatPoints([]Point{Pt(1, 1), Pt(2, 1)}))
	assert.Equal(t, "[]", FormatPoints(nil))
}
