package lumen

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if _, ok := o.hook.(nopHook); !ok {
		t.Errorf("default hook = %T, want nopHook", o.hook)
	}
}

func TestWithHook(t *testing.T) {
	o := defaultOptions()
	WithHook(LogHook{})(&o)
	if _, ok := o.hook.(LogHook); !ok {
		t.Errorf("hook = %T, want LogHook", o.hook)
	}

	WithHook(nil)(&o)
	if _, ok := o.hook.(nopHook); !ok {
		t.Errorf("WithHook(nil) hook = %T, want nopHook", o.hook)
	}
}
