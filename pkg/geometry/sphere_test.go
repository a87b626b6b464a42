package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-caster/pkg/core"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSphere_Intersect(t *testing.T) {
	purple := core.NewColor(136, 47, 164, 255)
	origin := core.NewVec3(0.0, 0.0, 0.0)

	tests := []struct {
		name       string
		sphere     Sphere
		direction  core.Vec3[float64]
		origin     core.Vec3[float64]
		expectedT1 float64
		expectedT2 float64
	}{
		{
			name:       "Ray through center",
			sphere:     NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, purple),
			direction:  core.NewVec3(0.0, 0.0, 1.0),
			origin:     origin,
			expectedT1: 35,
			expectedT2: 25,
		},
		{
			name:       "Scaled direction scales parameters",
			sphere:     NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, purple),
			direction:  core.NewVec3(0.0, 0.0, 2.0),
			origin:     origin,
			expectedT1: 17.5,
			expectedT2: 12.5,
		},
		{
			name:       "Tangent ray",
			sphere:     NewSphere(core.NewVec3(5.0, 0.0, 10.0), 5, purple),
			direction:  core.NewVec3(0.0, 0.0, 1.0),
			origin:     origin,
			expectedT1: 10,
			expectedT2: 10,
		},
		{
			name:       "Origin inside sphere",
			sphere:     NewSphere(core.NewVec3(0.0, 0.0, 1.0), 5, purple),
			direction:  core.NewVec3(0.0, 0.0, 1.0),
			origin:     origin,
			expectedT1: 6,
			expectedT2: -4,
		},
		{
			name:       "Sphere behind the origin",
			sphere:     NewSphere(core.NewVec3(0.0, 0.0, -30.0), 5, purple),
			direction:  core.NewVec3(0.0, 0.0, 1.0),
			origin:     origin,
			expectedT1: -25,
			expectedT2: -35,
		},
		{
			name:       "Offset origin",
			sphere:     NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, purple),
			direction:  core.NewVec3(0.0, 0.0, 1.0),
			origin:     core.NewVec3(0.0, 0.0, 10.0),
			expectedT1: 25,
			expectedT2: 15,
		},
		{
			name:       "Miss",
			sphere:     NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, purple),
			direction:  core.NewVec3(1.0, 0.0, 0.0),
			origin:     origin,
			expectedT1: math.Inf(1),
			expectedT2: math.Inf(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2 := tt.sphere.Intersect(core.NewRay(tt.direction), tt.origin)
			if !scalar.Same(t1, tt.expectedT1) && !scalar.EqualWithinAbs(t1, tt.expectedT1, 1e-9) {
				t.Errorf("Expected t1 = %v, got %v", tt.expectedT1, t1)
			}
			if !scalar.Same(t2, tt.expectedT2) && !scalar.EqualWithinAbs(t2, tt.expectedT2, 1e-9) {
				t.Errorf("Expected t2 = %v, got %v", tt.expectedT2, t2)
			}
		})
	}
}

func TestSphere_IntersectDegenerate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, core.White)

	// Zero direction: a = b = 0, so both roots are 0/0 = NaN
	t1, t2 := sphere.Intersect(core.NewRay(core.Vec3[float64]{}), core.Vec3[float64]{})
	for _, root := range []float64{t1, t2} {
		if 1.0 <= root && root < math.Inf(1) {
			t.Errorf("Expected degenerate ray to never produce an accepted root, got %v", root)
		}
	}

	// Zero radius sphere is only touched by the ray through its center
	point := NewSphere(core.NewVec3(0.0, 0.0, 30.0), 0, core.White)
	t1, t2 = point.Intersect(core.NewRay(core.NewVec3(0.0, 0.0, 1.0)), core.Vec3[float64]{})
	if t1 != 30 || t2 != 30 {
		t.Errorf("Expected (30, 30), got (%v, %v)", t1, t2)
	}
}
