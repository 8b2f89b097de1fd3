package project

import (
	"testing"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

func TestSummarizePayments(t *testing.T) {
	items := []PaymentScheduleItem{
		{AmountUSD: 1000, Status: PaymentPaid, Concept: ConceptInitial},
		{AmountUSD: 2000, Status: PaymentPending, Concept: ConceptMonthly},
		{AmountUSD: 500, Status: PaymentOverdue, Concept: ConceptMonthly},
	}

	s := SummarizePayments(items)
	if s.Total != 3500 {
		t.Errorf("Total = %v, want 3500", s.Total)
	}
	if s.Paid != 1000 {
		t.Errorf("Paid = %v, want 1000", s.Paid)
	}
	if s.Remaining != 2500 {
		t.Errorf("Remaining = %v, want 2500", s.Remaining)
	}
}

func TestSummarizePaymentsEmpty(t *testing.T) {
	s := SummarizePayments(nil)
	if s.Total != 0 || s.Paid != 0 || s.Remaining != 0 {
		t.Errorf("summary of empty schedule = %+v", s)
	}
}

func TestSummarizePaymentsWaivedStaysOutstanding(t *testing.T) {
	items := []PaymentScheduleItem{
		{AmountUSD: 100, Status: PaymentPaid},
		{AmountUSD: 50, Status: PaymentWaived},
	}
	s := SummarizePayments(items)
	if s.Remaining != 50 {
		t.Errorf("Remaining = %v, want 50", s.Remaining)
	}
}

func TestPaymentLabels(t *testing.T) {
	if got := PaymentOverdue.Label(i18n.Spanish); got != "Vencido" {
		t.Errorf("Label = %q", got)
	}
	if got := ConceptMilestone.Label(i18n.Spanish); got != "Hito" {
		t.Errorf("Label = %q", got)
	}
	if got := PaymentStatus("mystery").Label(i18n.English); got != "mystery" {
		t.Errorf("Label = %q, want passthrough", got)
	}
}
