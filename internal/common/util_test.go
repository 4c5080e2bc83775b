package common

import (
	"bytes"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("s3cret-password")
	WipeByteArray(buf)
	if !bytes.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("buffer not wiped: %q", buf)
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
