package domain

import "testing"

func TestParseAuctionType(t *testing.T) {
	tests := []struct {
		in      string
		want    AuctionType
		wantErr bool
	}{
		{"FORWARD", AuctionForward, false},
		{"DUTCH", AuctionDutch, false},
		{"dutch", AuctionDutch, false},
		{"", AuctionForward, false}, // default mechanism
		{"ENGLISH", "", true},
		{"forward ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAuctionType(tt.in)
		if tt.wantErr {
			if !IsInvalid(err) {
				t.Errorf("ParseAuctionType(%q) err = %v, want invalid-request", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAuctionType(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAuctionType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseItemStatus(t *testing.T) {
	if got, err := ParseItemStatus("active"); err != nil || got != StatusActive {
		t.Errorf("ParseItemStatus(active) = %s, %v", got, err)
	}
	if got, err := ParseItemStatus("ENDED"); err != nil || got != StatusEnded {
		t.Errorf("ParseItemStatus(ENDED) = %s, %v", got, err)
	}
	if _, err := ParseItemStatus("PENDING"); !IsInvalid(err) {
		t.Errorf("ParseItemStatus(PENDING) err = %v, want invalid-request", err)
	}
	if _, err := ParseItemStatus(""); !IsInvalid(err) {
		t.Errorf("ParseItemStatus(\"\") err = %v, want invalid-request", err)
	}
}

func TestParsePaymentStatus(t *testing.T) {
	if got, err := ParsePaymentStatus("unpaid"); err != nil || got != PaymentUnpaid {
		t.Errorf("ParsePaymentStatus(unpaid) = %s, %v", got, err)
	}
	if got, err := ParsePaymentStatus("PAID"); err != nil || got != PaymentPaid {
		t.Errorf("ParsePaymentStatus(PAID) = %s, %v", got, err)
	}
	if _, err := ParsePaymentStatus("REFUNDED"); !IsInvalid(err) {
		t.Errorf("ParsePaymentStatus(REFUNDED) err = %v, want invalid-request", err)
	}
}

func TestItemCloneIsDeep(t *testing.T) {
	winner := "u1"
	item := &Item{ID: "i1", CurrentWinnerID: &winner}

	clone := item.Clone()
	*clone.CurrentWinnerID = "u2"

	if *item.CurrentWinnerID != "u1" {
		t.Error("mutating a clone leaked into the original")
	}
}
