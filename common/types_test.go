package common

import (
	"bytes"
	"testing"
)

func TestHex2Address_RoundTrip(t *testing.T) {
	hexstr := "0x00000000000000000000000000000000000000ff"
	addr := Hex2Address(hexstr)
	if addr.Hex() != hexstr {
		t.Fatalf("want=%s, got=%s", hexstr, addr.Hex())
	}
}

func TestAddress_SetBytesPadsLeft(t *testing.T) {
	var addr Address
	addr.SetBytes([]byte{0x01, 0x02})
	want := make([]byte, AddrLen)
	want[AddrLen-2] = 0x01
	want[AddrLen-1] = 0x02
	if !bytes.Equal(addr[:], want) {
		t.Fatalf("want=%x, got=%x", want, addr[:])
	}
}

func TestAddress_SetBytesKeepsTail(t *testing.T) {
	long := make([]byte, AddrLen+5)
	for i := range long {
		long[i] = byte(i)
	}
	var addr Address
	addr.SetBytes(long)
	if !bytes.Equal(addr[:], long[5:]) {
		t.Fatalf("want tail bytes, got=%x", addr[:])
	}
}

func TestAddress_Equals(t *testing.T) {
	a := Bytes2Address([]byte{0xaa})
	b := Bytes2Address([]byte{0xaa})
	c := Bytes2Address([]byte{0xbb})
	if !a.Equals(b) {
		t.Fatal("equal addresses reported unequal")
	}
	if a.Equals(c) {
		t.Fatal("unequal addresses reported equal")
	}
}

func TestAddrCalibrator(t *testing.T) {
	if err := AddrCalibrator("0x00000000000000000000000000000000000000ff"); err != nil {
		t.Fatal(err)
	}
	if err := AddrCalibrator("0xff"); err == nil {
		t.Fatal("short address passed calibration")
	}
}

func TestAddress_JSON(t *testing.T) {
	addr := Bytes2Address([]byte{0x12, 0x34})
	data, err := addr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var back Address
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if !back.Equals(addr) {
		t.Fatalf("round trip mismatch: %s != %s", back.Hex(), addr.Hex())
	}
}
