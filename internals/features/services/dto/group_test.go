// file: internals/features/services/dto/group_test.go
package dto

import (
	"testing"

	model "bhanjyang_backend/internals/features/services/model"
)

func TestGroupFixedDeposits(t *testing.T) {
	rows := []model.FixedDepositModel{
		{FixedDepositDurationMonths: 3, FixedDepositPaymentFrequency: model.PaymentMonthly},
		{FixedDepositDurationMonths: 3, FixedDepositPaymentFrequency: model.PaymentLumpSum},
		{FixedDepositDurationMonths: 12, FixedDepositPaymentFrequency: model.PaymentQuarterly},
		{FixedDepositDurationMonths: 24, FixedDepositPaymentFrequency: model.PaymentLumpSum},
	}
	groups := GroupFixedDeposits(rows)

	wantLabels := []string{"3 Months", "1 Year", "2 Years"}
	if len(groups) != len(wantLabels) {
		t.Fatalf("groups = %d, want %d", len(groups), len(wantLabels))
	}
	for i, label := range wantLabels {
		if groups[i].DurationLabel != label {
			t.Fatalf("group[%d] label = %q, want %q", i, groups[i].DurationLabel, label)
		}
	}
	if len(groups[0].Deposits) != 2 {
		t.Fatalf("3-month bucket has %d deposits, want 2", len(groups[0].Deposits))
	}
}

func TestGroupFixedDepositsEmpty(t *testing.T) {
	if groups := GroupFixedDeposits(nil); groups == nil || len(groups) != 0 {
		t.Fatalf("empty input must yield an empty, non-nil slice: %#v", groups)
	}
}

func TestGroupMemberReliefs(t *testing.T) {
	rows := []model.MemberReliefModel{
		{MemberReliefType: model.ReliefMedical, MemberReliefTitle: "Hospital Support"},
		{MemberReliefType: model.ReliefDisaster, MemberReliefTitle: "Flood Relief"},
		{MemberReliefType: model.ReliefMedical, MemberReliefTitle: "Surgery Fund"},
	}
	groups := GroupMemberReliefs(rows)

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].TypeLabel != "Medical Relief" {
		t.Fatalf("first group = %q, want Medical Relief", groups[0].TypeLabel)
	}
	if len(groups[0].Programs) != 2 {
		t.Fatalf("medical bucket has %d programs, want 2", len(groups[0].Programs))
	}
	if groups[1].TypeLabel != "Disaster Relief" {
		t.Fatalf("second group = %q, want Disaster Relief", groups[1].TypeLabel)
	}
}

func TestCreateFixedDepositRejectsUnofferedTerm(t *testing.T) {
	req := CreateFixedDepositRequest{
		FixedDepositDurationMonths:   7,
		FixedDepositPaymentFrequency: model.PaymentMonthly,
		FixedDepositInterestRate:     9.5,
	}
	if _, err := req.ToModel(); err == nil {
		t.Fatal("7 months is not an offered term and must be rejected")
	}

	req.FixedDepositDurationMonths = 12
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("12 months must be accepted: %v", err)
	}
	if m.FixedDepositIcon == "" || !m.FixedDepositIsActive {
		t.Fatalf("defaults not applied: %+v", m)
	}
}
