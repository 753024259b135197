package tokensafe

import (
	"bytes"
	"math/big"
	"testing"
	"tokensafe/common"
)

func addrN(n byte) common.Address {
	return common.Bytes2Address([]byte{n})
}

func paddedAddr(a common.Address) []byte {
	var w [WordLen]byte
	copy(w[WordLen-common.AddrLen:], a[:])
	return w[:]
}

func TestPackTransferFrom_ByteExact(t *testing.T) {
	from := addrN(0x01)
	to := addrN(0x02)
	data, err := PackTransferFrom(from, to, big.NewInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 100 {
		t.Fatalf("want 100 bytes, got=%d", len(data))
	}
	if !bytes.Equal(data[:4], []byte{0x23, 0xb8, 0x72, 0xdd}) {
		t.Fatalf("bad selector: %x", data[:4])
	}
	if !bytes.Equal(data[4:36], paddedAddr(from)) {
		t.Fatalf("bad from word: %x", data[4:36])
	}
	if !bytes.Equal(data[36:68], paddedAddr(to)) {
		t.Fatalf("bad to word: %x", data[36:68])
	}
	wantAmount := make([]byte, WordLen)
	wantAmount[WordLen-1] = 3
	if !bytes.Equal(data[68:100], wantAmount) {
		t.Fatalf("bad amount word: %x", data[68:100])
	}
}

func TestPackTransfer_Layout(t *testing.T) {
	to := addrN(0x7f)
	amount, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2^128
	data, err := PackTransfer(to, amount)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 68 {
		t.Fatalf("want 68 bytes, got=%d", len(data))
	}
	if !bytes.Equal(data[:4], []byte{0xa9, 0x05, 0x9c, 0xbb}) {
		t.Fatalf("bad selector: %x", data[:4])
	}
	if !bytes.Equal(data[4:36], paddedAddr(to)) {
		t.Fatalf("bad to word: %x", data[4:36])
	}
	if !bytes.Equal(data[36:68], amount.FillBytes(make([]byte, WordLen))) {
		t.Fatalf("bad amount word: %x", data[36:68])
	}
}

func TestPackApprove_Layout(t *testing.T) {
	spender := addrN(0x11)
	data, err := PackApprove(spender, big.NewInt(42))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 68 {
		t.Fatalf("want 68 bytes, got=%d", len(data))
	}
	if !bytes.Equal(data[:4], []byte{0x09, 0x5e, 0xa7, 0xb3}) {
		t.Fatalf("bad selector: %x", data[:4])
	}
}

func TestPack_ArgumentOverflow(t *testing.T) {
	wide := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := PackTransfer(addrN(1), wide); err != ErrArgumentOverflow {
		t.Fatalf("want ErrArgumentOverflow, got=%v", err)
	}
	if _, err := PackTransferFrom(addrN(1), addrN(2), wide); err != ErrArgumentOverflow {
		t.Fatalf("want ErrArgumentOverflow, got=%v", err)
	}
	if _, err := PackApprove(addrN(1), wide); err != ErrArgumentOverflow {
		t.Fatalf("want ErrArgumentOverflow, got=%v", err)
	}
	if _, err := PackTransfer(addrN(1), big.NewInt(-1)); err != ErrArgumentOverflow {
		t.Fatalf("want ErrArgumentOverflow for negative, got=%v", err)
	}
	if _, err := PackTransfer(addrN(1), nil); err != ErrArgumentOverflow {
		t.Fatalf("want ErrArgumentOverflow for nil, got=%v", err)
	}
}

func TestPack_MaxWidthAmount(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	data, err := PackTransfer(addrN(1), max)
	if err != nil {
		t.Fatal(err)
	}
	for i := 36; i < 68; i++ {
		if data[i] != 0xff {
			t.Fatalf("max amount word not saturated at byte %d: %x", i, data[36:68])
		}
	}
}
