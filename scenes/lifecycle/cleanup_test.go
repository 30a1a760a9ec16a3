package lifecycle

import (
	"reflect"
	"testing"
)

func TestCleanupRun(t *testing.T) {
	tests := []struct {
		name  string
		adds  []string
		runs  int
		wants []string
	}{
		{"reverse order", []string{"a", "b", "c"}, 1, []string{"c", "b", "a"}},
		{"second run is a no-op", []string{"a", "b"}, 2, []string{"b", "a"}},
		{"empty", nil, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cleanup
			var got []string
			for _, name := range tt.adds {
				name := name
				c.Add(func() { got = append(got, name) })
			}
			for i := 0; i < tt.runs; i++ {
				c.Run()
			}
			if !reflect.DeepEqual(got, tt.wants) {
				t.Errorf("calls = %v, want %v", got, tt.wants)
			}
			if !c.Done() {
				t.Error("Done() = false after Run")
			}
		})
	}
}

func TestCleanupAddAfterRun(t *testing.T) {
	var c Cleanup
	c.Run()

	called := false
	c.Add(func() { called = true })
	if !called {
		t.Error("function added after Run was not called")
	}
}
