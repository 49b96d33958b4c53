package ebitenhost

import "testing"

func TestHost_InputSuppressedIsOneShot(t *testing.T) {
	h := &Host{}
	if h.InputSuppressed() {
		t.Fatal("No reset pending yet")
	}

	h.ResetInputAxes()
	if !h.InputSuppressed() {
		t.Error("Reset should suppress the next read")
	}
	if h.InputSuppressed() {
		t.Error("Suppression should clear after one read")
	}
}

func TestHost_PreviewIsEditor(t *testing.T) {
	h := &Host{preview: true}
	if !h.IsEditor() {
		t.Error("Preview host should report editor")
	}
}
