package anchor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-anchor/internal/debug"
)

func TestRelate_WritesDebugLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anchor.log")
	if err := debug.Init(path); err != nil {
		t.Fatalf("debug.Init() error = %v", err)
	}
	t.Cleanup(func() { debug.Close() })

	var accepted []Constraint
	host := HostFunc(func(c Constraint) error {
		accepted = append(accepted, c)
		return nil
	})
	refuse := HostFunc(func(Constraint) error { return errors.New("engine refused") })

	if err := Relate(host, Equal, Top, "a", "b"); err != nil {
		t.Fatalf("Relate() error = %v", err)
	}
	if err := Relate(host, Equal, Top, "a", "b", To(Leading)); !errors.Is(err, ErrContractViolation) {
		t.Fatalf("cross-axis Relate() error = %v, want contract violation", err)
	}
	if err := Relate(refuse, Equal, Left, "a", "b"); err == nil {
		t.Fatal("Relate() on refusing host error = nil")
	}
	if len(accepted) != 1 {
		t.Errorf("host accepted %d constraints, want 1", len(accepted))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)

	wants := []string{
		"anchor: activate string(a).top == string(b).top + 0",
		"anchor: reject string(a).top == string(b).leading",
		"anchor: host rejected string(a).left == string(b).left + 0: engine refused",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q\nlog:\n%s", want, got)
		}
	}
}
