package frame

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(5, 10, 20, 30)

	type tc struct {
		got  float64
		want float64
	}

	tests := map[string]tc{
		"left":    {got: r.Left(), want: 5},
		"right":   {got: r.Right(), want: 25},
		"top":     {got: r.Top(), want: 10},
		"bottom":  {got: r.Bottom(), want: 40},
		"centerX": {got: r.CenterX(), want: 15},
		"centerY": {got: r.CenterY(), want: 25},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", name, tt.got, tt.want)
			}
		})
	}
}
