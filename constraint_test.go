package anchor

import "testing"

type stringerView struct{}

func (s stringerView) String() string { return "stringer" }

type namedView struct{}

func (namedView) Name() string { return "named" }

func TestConstraint_String(t *testing.T) {
	second := PositionAnchor(Top, "b")
	height := HeightAnchor(namedView{})

	type tc struct {
		c    Constraint
		want string
	}

	tests := map[string]tc{
		"relation with offset": {
			c:    Constraint{First: PositionAnchor(Bottom, "a"), Relation: GreaterThanOrEqual, Second: &second, Multiplier: 1, Constant: 12},
			want: "string(a).bottom >= string(b).top + 12",
		},
		"negative offset": {
			c:    Constraint{First: PositionAnchor(Bottom, "a"), Relation: LessThanOrEqual, Second: &second, Multiplier: 1, Constant: -2.5},
			want: "string(a).bottom <= string(b).top - 2.5",
		},
		"constant": {
			c:    Constraint{First: WidthAnchor(stringerView{}), Relation: Equal, Multiplier: 1, Constant: 30},
			want: "stringer.width == 30",
		},
		"multiplier": {
			c:    Constraint{First: WidthAnchor(namedView{}), Relation: Equal, Second: &height, Multiplier: 2},
			want: "named.width == named.height * 2 + 0",
		},
		"nil element": {
			c:    Constraint{First: PositionAnchor(Top, nil), Relation: Equal, Constant: 1},
			want: "<nil>.top == 1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
