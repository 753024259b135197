package tokensafe

import (
	"errors"
	"math/big"
	"testing"
	"tokensafe/common"

	"github.com/holiman/uint256"
)

type stubBackend struct {
	ok  bool
	ret []byte

	calls      int
	lastTarget common.Address
	lastValue  *uint256.Int
	lastInput  []byte
}

func (b *stubBackend) Call(target common.Address, value *uint256.Int, input []byte) (bool, []byte) {
	b.calls++
	b.lastTarget = target
	b.lastValue = value
	b.lastInput = input
	return b.ok, b.ret
}

func TestSafeCaller_TransferVerdicts(t *testing.T) {
	token := addrN(0xaa)
	to := addrN(0xbb)
	cases := []struct {
		name    string
		ok      bool
		ret     []byte
		wantErr bool
	}{
		{"compliant-true", true, retWord(1), false},
		{"legacy-no-return", true, nil, false},
		{"compliant-false", true, retWord(0), true},
		{"garbage-word", true, retWord(2), true},
		{"short-return", true, []byte{0xff}, true},
		{"reverted", false, nil, true},
	}
	for _, c := range cases {
		backend := &stubBackend{ok: c.ok, ret: c.ret}
		caller := NewSafeCaller(backend)
		err := caller.Transfer(token, to, big.NewInt(5))
		if c.wantErr {
			if !errors.Is(err, ErrTransferFailed) {
				t.Fatalf("%s: want ErrTransferFailed, got=%v", c.name, err)
			}
		} else if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if backend.calls != 1 {
			t.Fatalf("%s: want exactly one call, got=%d", c.name, backend.calls)
		}
	}
}

func TestSafeCaller_DistinctFailureKinds(t *testing.T) {
	token := addrN(0xaa)
	backend := &stubBackend{ok: true, ret: retWord(0)}
	caller := NewSafeCaller(backend)

	if err := caller.Transfer(token, addrN(1), big.NewInt(1)); !errors.Is(err, ErrTransferFailed) {
		t.Fatalf("transfer: want ErrTransferFailed, got=%v", err)
	}
	if err := caller.TransferFrom(token, addrN(1), addrN(2), big.NewInt(1)); !errors.Is(err, ErrTransferFromFailed) {
		t.Fatalf("transferFrom: want ErrTransferFromFailed, got=%v", err)
	}
	if err := caller.Approve(token, addrN(1), big.NewInt(1)); !errors.Is(err, ErrApproveFailed) {
		t.Fatalf("approve: want ErrApproveFailed, got=%v", err)
	}
	failing := &stubBackend{ok: false}
	if err := NewSafeCaller(failing).SendValue(addrN(3), big.NewInt(1)); !errors.Is(err, ErrNativeTransferFailed) {
		t.Fatalf("send: want ErrNativeTransferFailed, got=%v", err)
	}
}

func TestSafeCaller_SendValue(t *testing.T) {
	backend := &stubBackend{ok: true}
	caller := NewSafeCaller(backend)
	if err := caller.SendValue(addrN(0x09), big.NewInt(777)); err != nil {
		t.Fatal(err)
	}
	if len(backend.lastInput) != 0 {
		t.Fatalf("native send must carry zero-length data, got=%d bytes", len(backend.lastInput))
	}
	if backend.lastValue == nil || backend.lastValue.Uint64() != 777 {
		t.Fatalf("amount must travel in the value field, got=%v", backend.lastValue)
	}
}

func TestSafeCaller_TokenCallsCarryNoValue(t *testing.T) {
	backend := &stubBackend{ok: true, ret: retWord(1)}
	caller := NewSafeCaller(backend)
	if err := caller.Transfer(addrN(0xaa), addrN(1), big.NewInt(9)); err != nil {
		t.Fatal(err)
	}
	if backend.lastValue != nil {
		t.Fatalf("token transfer must not carry native value, got=%v", backend.lastValue)
	}
	if len(backend.lastInput) != 68 {
		t.Fatalf("want 68-byte payload, got=%d", len(backend.lastInput))
	}
}

func TestSafeCaller_ArgumentOverflowBeforeCall(t *testing.T) {
	backend := &stubBackend{ok: true, ret: retWord(1)}
	caller := NewSafeCaller(backend)
	wide := new(big.Int).Lsh(big.NewInt(1), 300)
	if err := caller.Transfer(addrN(0xaa), addrN(1), wide); err != ErrArgumentOverflow {
		t.Fatalf("want ErrArgumentOverflow, got=%v", err)
	}
	if backend.calls != 0 {
		t.Fatalf("overflowing argument must never reach the wire, calls=%d", backend.calls)
	}
}

// A codeless target reports normal termination with no return data under the
// raw call primitive. That is a success verdict here - telling it apart from
// a legacy counterpart is the caller's job, via CodeChecker, before invoking.
func TestSafeCaller_CodelessTargetGap(t *testing.T) {
	backend := &stubBackend{ok: true, ret: nil}
	caller := NewSafeCaller(backend)
	if err := caller.Transfer(addrN(0xEE), addrN(1), big.NewInt(1)); err != nil {
		t.Fatalf("codeless target must classify as success at this layer: %v", err)
	}
}
