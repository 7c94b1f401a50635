package folio

import (
	"encoding/json"
	"testing"
)

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(0, "EUR"), "-"},
		{M(1.5, "EUR"), "+€1.50"},
		{M(-1.5, "EUR"), "-€1.50"},
	}
	for _, tc := range testCases {
		if got := tc.m.SignedString(); got != tc.want {
			t.Errorf("SignedString(%v) = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestMoney_PercentOf(t *testing.T) {
	part := M(25, "EUR")
	total := M(200, "EUR")
	if got := part.PercentOf(total); !got.Equal(12.5) {
		t.Errorf("PercentOf = %s, want 12.50%%", got)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(M(12.345, "EUR"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// rounded to the currency's fraction
	want := `{"currency":"EUR","amount":12.35}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	// a nil *Money stands for an unknown value
	b, err = json.Marshal(struct {
		Price *Money `json:"price"`
	}{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `{"price":null}` {
		t.Errorf("nil Money = %s, want null", b)
	}
}
