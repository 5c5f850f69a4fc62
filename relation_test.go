package anchor

import "testing"

func TestRelation_Holds(t *testing.T) {
	type tc struct {
		rel      Relation
		lhs, rhs float64
		want     bool
	}

	tests := map[string]tc{
		"equal exact":      {rel: Equal, lhs: 5, rhs: 5, want: true},
		"equal within":     {rel: Equal, lhs: 5, rhs: 5.05, want: true},
		"equal off":        {rel: Equal, lhs: 5, rhs: 6, want: false},
		"greater holds":    {rel: GreaterThanOrEqual, lhs: 7, rhs: 5, want: true},
		"greater boundary": {rel: GreaterThanOrEqual, lhs: 4.95, rhs: 5, want: true},
		"greater fails":    {rel: GreaterThanOrEqual, lhs: 4, rhs: 5, want: false},
		"less holds":       {rel: LessThanOrEqual, lhs: 3, rhs: 5, want: true},
		"less fails":       {rel: LessThanOrEqual, lhs: 6, rhs: 5, want: false},
		"unknown relation": {rel: Relation(9), lhs: 1, rhs: 1, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rel.Holds(tt.lhs, tt.rhs, 0.1); got != tt.want {
				t.Errorf("%s.Holds(%v, %v) = %v, want %v", tt.rel, tt.lhs, tt.rhs, got, tt.want)
			}
		})
	}
}

func TestRelation_String(t *testing.T) {
	want := map[Relation]string{Equal: "==", GreaterThanOrEqual: ">=", LessThanOrEqual: "<="}
	for rel, s := range want {
		if rel.String() != s {
			t.Errorf("String() = %q, want %q", rel.String(), s)
		}
	}
}
