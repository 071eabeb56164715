// file: internals/features/team/service/about.go
package service

import (
	"sort"
	"strings"

	dto "bhanjyang_backend/internals/features/team/dto"
	model "bhanjyang_backend/internals/features/team/model"
)

/* =========================================================
   About page aggregation
   ========================================================= */

// Bucket keys for the About page. Committee names are written in English or
// Nepali depending on who entered them, so each bucket matches on both.
type CommitteeBucket string

const (
	BucketBoard             CommitteeBucket = "board"
	BucketAccountSupervisor CommitteeBucket = "account_supervisor"
	BucketBranchManagement  CommitteeBucket = "branch_management"
	BucketLoanSubcommittee  CommitteeBucket = "loan_subcommittee"
	BucketAdvisory          CommitteeBucket = "advisory"
	BucketManagement        CommitteeBucket = "management"
)

type bucketRule struct {
	keyword string
	bucket  CommitteeBucket
}

// Rules are checked in order; the first keyword contained in the committee
// name wins. Committees matching no rule are left out of the page.
var bucketRules = []bucketRule{
	{"board of directors", BucketBoard},
	{"सञ्चालक समिति", BucketBoard},
	{"account supervisor", BucketAccountSupervisor},
	{"लेखा समिति", BucketAccountSupervisor},
	{"branch management", BucketBranchManagement},
	{"सेवा केन्द्र", BucketBranchManagement},
	{"loan subcommittee", BucketLoanSubcommittee},
	{"ऋण उपसमिति", BucketLoanSubcommittee},
	{"advisory", BucketAdvisory},
	{"सल्लाहकार", BucketAdvisory},
	{"management team", BucketManagement},
	{"कर्मचारी", BucketManagement},
}

// ClassifyCommittee maps a committee name onto its About-page bucket.
func ClassifyCommittee(name string) (CommitteeBucket, bool) {
	lower := strings.ToLower(name)
	for _, rule := range bucketRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.bucket, true
		}
	}
	return "", false
}

type AboutContext struct {
	BoardMembers             []dto.MembershipResponse `json:"board_members"`
	AccountSupervisorMembers []dto.MembershipResponse `json:"account_supervisor_members"`
	BranchManagementMembers  []dto.MembershipResponse `json:"branch_management_members"`
	LoanSubcommitteeMembers  []dto.MembershipResponse `json:"loan_subcommittee_members"`
	AdvisoryMembers          []dto.MembershipResponse `json:"advisory_members"`
	ManagementMembers        []dto.MembershipResponse `json:"management_members"`

	Chairman *dto.MembershipResponse `json:"chairman,omitempty"`
	Manager  *dto.MembershipResponse `json:"manager,omitempty"`

	FormerCommittees []string `json:"former_committees"`
}

// NewAboutContext returns a context with every bucket allocated, so a partial
// build after a query failure still serialises with empty lists.
func NewAboutContext() AboutContext {
	return AboutContext{
		BoardMembers:             []dto.MembershipResponse{},
		AccountSupervisorMembers: []dto.MembershipResponse{},
		BranchManagementMembers:  []dto.MembershipResponse{},
		LoanSubcommitteeMembers:  []dto.MembershipResponse{},
		AdvisoryMembers:          []dto.MembershipResponse{},
		ManagementMembers:        []dto.MembershipResponse{},
		FormerCommittees:         []string{},
	}
}

// FillBuckets distributes the active committees' members into the context
// buckets and resolves the chairman and manager highlights.
func (ctx *AboutContext) FillBuckets(active []model.CommitteeModel) {
	for i := range active {
		bucket, ok := ClassifyCommittee(active[i].CommitteeName)
		if !ok {
			continue
		}
		members := sortedMembers(active[i].Memberships)
		switch bucket {
		case BucketBoard:
			ctx.BoardMembers = append(ctx.BoardMembers, members...)
		case BucketAccountSupervisor:
			ctx.AccountSupervisorMembers = append(ctx.AccountSupervisorMembers, members...)
		case BucketBranchManagement:
			ctx.BranchManagementMembers = append(ctx.BranchManagementMembers, members...)
		case BucketLoanSubcommittee:
			ctx.LoanSubcommitteeMembers = append(ctx.LoanSubcommitteeMembers, members...)
		case BucketAdvisory:
			ctx.AdvisoryMembers = append(ctx.AdvisoryMembers, members...)
		case BucketManagement:
			ctx.ManagementMembers = append(ctx.ManagementMembers, members...)
		}
	}
	ctx.Chairman = findRoleHolder(ctx.BoardMembers, "chairman", "अध्यक्ष")
	ctx.Manager = findRoleHolder(ctx.ManagementMembers, "manager", "व्यवस्थापक")
}

// FillFormer records the names of inactive committees, newest tenure first.
func (ctx *AboutContext) FillFormer(former []model.CommitteeModel) {
	rows := make([]model.CommitteeModel, len(former))
	copy(rows, former)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CommitteeTenure > rows[j].CommitteeTenure
	})
	for i := range rows {
		ctx.FormerCommittees = append(ctx.FormerCommittees, rows[i].CommitteeName)
	}
}

func sortedMembers(rows []model.MembershipModel) []dto.MembershipResponse {
	sorted := make([]model.MembershipModel, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MembershipOrder < sorted[j].MembershipOrder
	})
	return dto.FromModelMemberships(sorted)
}

// findRoleHolder returns the first member whose position contains any of the
// keywords, case-insensitively.
func findRoleHolder(members []dto.MembershipResponse, keywords ...string) *dto.MembershipResponse {
	for i := range members {
		pos := strings.ToLower(members[i].MembershipPosition)
		for _, kw := range keywords {
			if strings.Contains(pos, kw) {
				found := members[i]
				return &found
			}
		}
	}
	return nil
}
