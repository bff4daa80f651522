package core

import "testing"

func TestIncomeNetAmount(t *testing.T) {
	cases := []struct {
		name string
		in   Income
		want string
	}{
		{
			name: "net income passes through",
			in:   Income{Amount: dec("100"), IsGross: false, TaxRate: decPtr("50")},
			want: "100",
		},
		{
			name: "gross with tax and fees",
			in:   Income{Amount: dec("100"), IsGross: true, TaxRate: decPtr("10"), OtherFees: decPtr("5")},
			want: "85",
		},
		{
			name: "gross without deductions",
			in:   Income{Amount: dec("100"), IsGross: true},
			want: "100",
		},
		{
			name: "fractional tax rate",
			in:   Income{Amount: dec("1000"), IsGross: true, TaxRate: decPtr("12.5")},
			want: "875",
		},
		{
			name: "deductions exceeding amount floor at zero",
			in:   Income{Amount: dec("100"), IsGross: true, TaxRate: decPtr("90"), OtherFees: decPtr("50")},
			want: "0",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.NetAmount(); !got.Equal(dec(tc.want)) {
				t.Fatalf("net amount = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSupportedCodes(t *testing.T) {
	if len(SupportedCurrencies) != 10 {
		t.Fatalf("expected 10 supported currencies, got %d", len(SupportedCurrencies))
	}
	if len(SupportedLanguages) != 2 {
		t.Fatalf("expected 2 supported languages, got %d", len(SupportedLanguages))
	}
	if !ValidCurrencyCode("USD") || !ValidCurrencyCode("BRL") {
		t.Fatal("expected USD and BRL to be valid")
	}
	if ValidCurrencyCode("XXX") {
		t.Fatal("XXX should not be a valid currency")
	}
	if !ValidLanguageCode("pt-BR") {
		t.Fatal("pt-BR should be a valid language")
	}
	if ValidLanguageCode("fr") {
		t.Fatal("fr should not be a valid language")
	}
}
