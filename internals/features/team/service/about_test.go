// file: internals/features/team/service/about_test.go
package service

import (
	"testing"

	model "bhanjyang_backend/internals/features/team/model"
)

func TestClassifyCommittee(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   CommitteeBucket
		wantOK bool
	}{
		{"english board", "Board of Directors 2080-2083", BucketBoard, true},
		{"nepali board", "सञ्चालक समिति", BucketBoard, true},
		{"account supervisor", "Account Supervisor Committee", BucketAccountSupervisor, true},
		{"nepali account", "लेखा समिति", BucketAccountSupervisor, true},
		{"branch", "Branch Management Committee", BucketBranchManagement, true},
		{"nepali branch", "सेवा केन्द्र व्यवस्थापन", BucketBranchManagement, true},
		{"loan sub", "Loan Subcommittee", BucketLoanSubcommittee, true},
		{"advisory", "Advisory Committee", BucketAdvisory, true},
		{"nepali advisory", "सल्लाहकार समिति", BucketAdvisory, true},
		{"management team", "Management Team", BucketManagement, true},
		{"nepali staff", "कर्मचारी", BucketManagement, true},
		{"case insensitive", "bOaRd Of DiReCtOrS", BucketBoard, true},
		{"no match", "Festival Organizing Group", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifyCommittee(tc.in)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("ClassifyCommittee(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func member(name, position string, order int) model.MembershipModel {
	return model.MembershipModel{
		MembershipPosition: position,
		MembershipOrder:    order,
		Person:             &model.PersonModel{PersonFullName: name},
	}
}

func TestFillBuckets(t *testing.T) {
	ctx := NewAboutContext()
	ctx.FillBuckets([]model.CommitteeModel{
		{
			CommitteeName: "Board of Directors",
			Memberships: []model.MembershipModel{
				member("Hari Sharma", "Member", 2),
				member("Sita Gurung", "Chairman", 1),
			},
		},
		{
			CommitteeName: "Management Team",
			Memberships: []model.MembershipModel{
				member("Ram Thapa", "General Manager", 1),
			},
		},
		{
			CommitteeName: "Festival Organizing Group",
			Memberships: []model.MembershipModel{
				member("Gita Rai", "Coordinator", 1),
			},
		},
	})

	if len(ctx.BoardMembers) != 2 {
		t.Fatalf("board members = %d, want 2", len(ctx.BoardMembers))
	}
	if ctx.BoardMembers[0].PersonFullName != "Sita Gurung" {
		t.Fatalf("board not ordered by membership order, first = %q", ctx.BoardMembers[0].PersonFullName)
	}
	if ctx.Chairman == nil || ctx.Chairman.PersonFullName != "Sita Gurung" {
		t.Fatalf("chairman not resolved from board positions: %+v", ctx.Chairman)
	}
	if ctx.Manager == nil || ctx.Manager.PersonFullName != "Ram Thapa" {
		t.Fatalf("manager not resolved from management positions: %+v", ctx.Manager)
	}

	// Unmatched committee members appear nowhere.
	total := len(ctx.BoardMembers) + len(ctx.AccountSupervisorMembers) +
		len(ctx.BranchManagementMembers) + len(ctx.LoanSubcommitteeMembers) +
		len(ctx.AdvisoryMembers) + len(ctx.ManagementMembers)
	if total != 3 {
		t.Fatalf("bucketed members = %d, want 3 (unmatched committee dropped)", total)
	}
}

func TestFillBucketsNepaliRoleKeywords(t *testing.T) {
	ctx := NewAboutContext()
	ctx.FillBuckets([]model.CommitteeModel{
		{
			CommitteeName: "सञ्चालक समिति",
			Memberships: []model.MembershipModel{
				member("Krishna KC", "अध्यक्ष", 1),
			},
		},
	})
	if ctx.Chairman == nil || ctx.Chairman.PersonFullName != "Krishna KC" {
		t.Fatalf("chairman not matched via Nepali position keyword: %+v", ctx.Chairman)
	}
}

func TestFillBucketsNoHighlights(t *testing.T) {
	ctx := NewAboutContext()
	ctx.FillBuckets([]model.CommitteeModel{
		{
			CommitteeName: "Board of Directors",
			Memberships: []model.MembershipModel{
				member("Hari Sharma", "Member", 1),
			},
		},
	})
	if ctx.Chairman != nil {
		t.Fatalf("chairman should be nil when no position matches, got %+v", ctx.Chairman)
	}
	if ctx.Manager != nil {
		t.Fatalf("manager should be nil without a management bucket, got %+v", ctx.Manager)
	}
}

func TestFillFormerNewestTenureFirst(t *testing.T) {
	ctx := NewAboutContext()
	ctx.FillFormer([]model.CommitteeModel{
		{CommitteeName: "सञ्चालक समिति (२०७१-२०७४)", CommitteeTenure: "2071-2074"},
		{CommitteeName: "सञ्चालक समिति (२०७७-२०८०)", CommitteeTenure: "2077-2080"},
		{CommitteeName: "सञ्चालक समिति (२०७४-२०७७)", CommitteeTenure: "2074-2077"},
	})
	want := []string{
		"सञ्चालक समिति (२०७७-२०८०)",
		"सञ्चालक समिति (२०७४-२०७७)",
		"सञ्चालक समिति (२०७१-२०७४)",
	}
	if len(ctx.FormerCommittees) != len(want) {
		t.Fatalf("former committees = %d, want %d", len(ctx.FormerCommittees), len(want))
	}
	for i := range want {
		if ctx.FormerCommittees[i] != want[i] {
			t.Fatalf("former[%d] = %q, want %q", i, ctx.FormerCommittees[i], want[i])
		}
	}
}
