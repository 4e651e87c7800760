package entity

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	text := `This agreement dated 01/04/2026 is between Employer Acme Industries and
Employee Ravi Kumar. The monthly salary is ₹50,000 with a deposit of $1,200
(Rs. 95,000). Disputes fall under the courts of Chennai, Tamil Nadu.`

	got := Extract(text)

	if want := []string{"01/04/2026"}; !reflect.DeepEqual(got.Dates, want) {
		t.Errorf("Dates = %v, want %v", got.Dates, want)
	}
	if want := []string{"$1,200", "Rs. 95,000", "₹50,000"}; !reflect.DeepEqual(got.Amounts, want) {
		t.Errorf("Amounts = %v, want %v", got.Amounts, want)
	}
	if want := []string{"Chennai", "Tamil Nadu"}; !reflect.DeepEqual(got.Jurisdictions, want) {
		t.Errorf("Jurisdictions = %v, want %v", got.Jurisdictions, want)
	}
	if len(got.Parties) != 2 {
		t.Errorf("Parties = %v, want employer and employee mentions", got.Parties)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	text := "Rent of $500 is due monthly. A late fee of $500 applies in Mumbai or Mumbai."
	got := Extract(text)

	if want := []string{"$500"}; !reflect.DeepEqual(got.Amounts, want) {
		t.Errorf("Amounts = %v, want %v", got.Amounts, want)
	}
	if want := []string{"Mumbai"}; !reflect.DeepEqual(got.Jurisdictions, want) {
		t.Errorf("Jurisdictions = %v, want %v", got.Jurisdictions, want)
	}
}

func TestExtractEmpty(t *testing.T) {
	got := Extract("Nothing of interest here.")
	if got.Parties != nil || got.Dates != nil || got.Amounts != nil || got.Jurisdictions != nil {
		t.Errorf("Extract on plain text = %+v, want all nil", got)
	}
}
