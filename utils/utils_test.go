package utils

import "testing"

func TestDescriptorCodecRoundTrip(t *testing.T) {
	fa := []float32{0.1, -0.2, 0.3, 1.5, 0}
	got := ByteArrayToFloat32Array(Float32ArrayToByteArray(fa))
	if len(got) != len(fa) {
		t.Fatalf("length = %d, want %d", len(got), len(fa))
	}
	for i := range fa {
		if got[i] != fa[i] {
			t.Errorf("index %d = %v, want %v", i, got[i], fa[i])
		}
	}
}

func TestByteArrayToFloat32ArrayTruncatedInput(t *testing.T) {
	b := Float32ArrayToByteArray([]float32{1, 2})
	got := ByteArrayToFloat32Array(b[:len(b)-1]) // last value incomplete
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("got %v, want [1]", got)
	}
}
