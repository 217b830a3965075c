package bc7

import "testing"

func TestParametersValidateClampsShortlistSize(t *testing.T) {
	p := &Parameters{ShortlistSize: 0}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.ShortlistSize != 1 {
		t.Fatalf("ShortlistSize = %d, want clamped to 1", p.ShortlistSize)
	}

	p2 := &Parameters{ShortlistSize: 100}
	if err := p2.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p2.ShortlistSize != 16 {
		t.Fatalf("ShortlistSize = %d, want clamped to 16", p2.ShortlistSize)
	}
}

func TestParametersValidateRejectsNegativePerturbBudget(t *testing.T) {
	p := &Parameters{ShortlistSize: 4, MaxPerturbSteps: -1}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for negative MaxPerturbSteps")
	}
}

func TestParametersGetSetParameter(t *testing.T) {
	p := DefaultParameters()
	p.SetParameter("shortlistSize", 7)
	if v := p.GetParameter("shortlistSize"); v != 7 {
		t.Fatalf("GetParameter(shortlistSize) = %v, want 7", v)
	}
	p.SetParameter("shortlistSize", "not an int")
	if v := p.GetParameter("shortlistSize"); v != 7 {
		t.Fatalf("SetParameter with wrong type should be ignored, got %v", v)
	}
	if v := p.GetParameter("unknown"); v != nil {
		t.Fatalf("GetParameter(unknown) = %v, want nil", v)
	}
}
