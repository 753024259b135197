package tokensafe

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestEventBus_PublishToTypedSubscribers(t *testing.T) {
	bus := NewEventBus()
	transfers := bus.Subscribe(TransferEvent{})
	approvals := bus.Subscribe(ApprovalEvent{})
	defer transfers.Unsubscribe()
	defer approvals.Unsubscribe()

	bus.Publish(TransferEvent{From: addrN(1), To: addrN(2), Amount: uint256.NewInt(7)})

	select {
	case ev := <-transfers.Chan():
		te := ev.(TransferEvent)
		if !te.Amount.Eq(uint256.NewInt(7)) {
			t.Fatalf("bad amount: %s", te.Amount)
		}
	default:
		t.Fatal("transfer subscriber got nothing")
	}
	select {
	case ev := <-approvals.Chan():
		t.Fatalf("approval subscriber got foreign event: %T", ev)
	default:
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := bus.Subscribe(DebitEvent{})
	sub.Unsubscribe()
	// Publishing after unsubscribe must not panic or deliver.
	bus.Publish(DebitEvent{Account: addrN(1), Amount: uint256.NewInt(1)})
	if _, open := <-sub.Chan(); open {
		t.Fatal("channel still open after unsubscribe")
	}
}

func TestEventBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewEventBus()
	sub := bus.Subscribe(CreditEvent{})
	defer sub.Unsubscribe()
	// Never drained: publishing past the buffer must still return.
	for i := 0; i < subscriptionBuffer+10; i++ {
		bus.Publish(CreditEvent{Account: addrN(1), Amount: uint256.NewInt(uint64(i))})
	}
}
