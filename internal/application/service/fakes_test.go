package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
)

// fakeTransactor runs the callback directly. Rollback semantics are
// approximated by the fakes handing out copies on reads.
type fakeTransactor struct{}

func (fakeTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeadRepo struct {
	leads map[uuid.UUID]*entity.Lead
	order []uuid.UUID
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[uuid.UUID]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	stored := *lead
	r.leads[lead.ID] = &stored
	r.order = append(r.order, lead.ID)
	return nil
}

func (r *fakeLeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	copied := *lead
	return &copied, nil
}

func (r *fakeLeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	stored := *lead
	r.leads[lead.ID] = &stored
	return nil
}

func (r *fakeLeadRepo) ExistsByContact(ctx context.Context, contact string, exclude uuid.UUID) (bool, error) {
	for id, lead := range r.leads {
		if id != exclude && lead.Contact == contact {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeadRepo) all() []entity.Lead {
	leads := make([]entity.Lead, 0, len(r.order))
	for _, id := range r.order {
		if lead, ok := r.leads[id]; ok {
			leads = append(leads, *lead)
		}
	}
	return leads
}

func (r *fakeLeadRepo) List(ctx context.Context, filter *repository.LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	leads := r.all()
	return leads, int64(len(leads)), nil
}

func (r *fakeLeadRepo) ListWithCursor(ctx context.Context, filter *repository.LeadFilter, params *pagination.CursorParams) ([]entity.Lead, error) {
	return r.all(), nil
}

func (r *fakeLeadRepo) ListBucket(ctx context.Context, bucket enum.LeadBucket, filter *repository.LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	var matched []entity.Lead
	for _, lead := range r.all() {
		if enum.MatchesBucket(bucket, lead.LeadType) {
			matched = append(matched, lead)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeLeadRepo) ListCustomers(ctx context.Context, filter *repository.LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	var matched []entity.Lead
	for _, lead := range r.all() {
		if lead.IsCustomer {
			matched = append(matched, lead)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeLeadRepo) ListByAssignee(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	var matched []entity.Lead
	for _, lead := range r.all() {
		if lead.AssignToID != nil && *lead.AssignToID == userID {
			matched = append(matched, lead)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeLeadRepo) ListForExport(ctx context.Context, filter *repository.LeadFilter) ([]entity.Lead, error) {
	if filter == nil {
		return r.all(), nil
	}
	var matched []entity.Lead
	for _, lead := range r.all() {
		if filter.IsCustomer != nil && lead.IsCustomer != *filter.IsCustomer {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(lead.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.VisitFrom != nil &&
			(lead.TentetiveVisitDate == nil || lead.TentetiveVisitDate.Before(*filter.VisitFrom)) {
			continue
		}
		if filter.VisitTo != nil &&
			(lead.TentetiveVisitDate == nil || lead.TentetiveVisitDate.After(*filter.VisitTo)) {
			continue
		}
		matched = append(matched, lead)
	}
	return matched, nil
}

type fakeFollowupRepo struct {
	followups []entity.Followup
}

func (r *fakeFollowupRepo) Create(ctx context.Context, followup *entity.Followup) error {
	if followup.ID == uuid.Nil {
		followup.ID = uuid.New()
	}
	if followup.EntryDate.IsZero() {
		followup.EntryDate = time.Now()
	}
	r.followups = append(r.followups, *followup)
	return nil
}

func (r *fakeFollowupRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Followup, error) {
	for i := range r.followups {
		if r.followups[i].ID == id {
			copied := r.followups[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeFollowupRepo) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Followup, error) {
	var matched []entity.Followup
	for _, f := range r.followups {
		if f.LeadID == leadID {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

func (r *fakeFollowupRepo) ListByType(ctx context.Context, followupType *enum.FollowupType) ([]entity.Followup, error) {
	if followupType == nil {
		return append([]entity.Followup(nil), r.followups...), nil
	}
	var matched []entity.Followup
	for _, f := range r.followups {
		if f.FollowupType == *followupType {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

type fakeLeadLogRepo struct {
	logs []entity.LeadLog
}

func (r *fakeLeadLogRepo) Create(ctx context.Context, log *entity.LeadLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.EntryDate.IsZero() {
		log.EntryDate = time.Now()
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeLeadLogRepo) Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadLog, error) {
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].LeadID == leadID {
			copied := r.logs[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeLeadLogRepo) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.LeadLog, error) {
	var matched []entity.LeadLog
	for _, l := range r.logs {
		if l.LeadID == leadID {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (r *fakeLeadLogRepo) List(ctx context.Context, filter *repository.LeadLogFilter, params *pagination.PaginationParams) ([]entity.LeadLog, int64, error) {
	var matched []entity.LeadLog
	for _, l := range r.logs {
		if filter != nil && filter.LeadID != nil && l.LeadID != *filter.LeadID {
			continue
		}
		if filter != nil && filter.UserID != nil && (l.UserID == nil || *l.UserID != *filter.UserID) {
			continue
		}
		matched = append(matched, l)
	}
	return matched, int64(len(matched)), nil
}

type fakeAssignRepo struct {
	records []entity.AssignToUser
}

func (r *fakeAssignRepo) Create(ctx context.Context, record *entity.AssignToUser) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeAssignRepo) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.AssignToUser, error) {
	var matched []entity.AssignToUser
	for _, rec := range r.records {
		if rec.LeadID == leadID {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (r *fakeAssignRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AssignToUser, error) {
	var matched []entity.AssignToUser
	for _, rec := range r.records {
		if rec.UserID == userID {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

type fakeDivisionRepo struct {
	divisions map[uuid.UUID]*entity.Division
}

func newFakeDivisionRepo(divisions ...*entity.Division) *fakeDivisionRepo {
	r := &fakeDivisionRepo{divisions: make(map[uuid.UUID]*entity.Division)}
	for _, d := range divisions {
		r.divisions[d.ID] = d
	}
	return r
}

func (r *fakeDivisionRepo) Create(ctx context.Context, division *entity.Division) error {
	if division.ID == uuid.Nil {
		division.ID = uuid.New()
	}
	r.divisions[division.ID] = division
	return nil
}

func (r *fakeDivisionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Division, error) {
	division, ok := r.divisions[id]
	if !ok {
		return nil, nil
	}
	return division, nil
}

func (r *fakeDivisionRepo) List(ctx context.Context) ([]entity.Division, error) {
	divisions := make([]entity.Division, 0, len(r.divisions))
	for _, d := range r.divisions {
		divisions = append(divisions, *d)
	}
	return divisions, nil
}

type fakeSubDivisionRepo struct {
	subDivisions map[uuid.UUID]*entity.SubDivision
}

func newFakeSubDivisionRepo(subDivisions ...*entity.SubDivision) *fakeSubDivisionRepo {
	r := &fakeSubDivisionRepo{subDivisions: make(map[uuid.UUID]*entity.SubDivision)}
	for _, s := range subDivisions {
		r.subDivisions[s.ID] = s
	}
	return r
}

func (r *fakeSubDivisionRepo) Create(ctx context.Context, subDivision *entity.SubDivision) error {
	if subDivision.ID == uuid.Nil {
		subDivision.ID = uuid.New()
	}
	r.subDivisions[subDivision.ID] = subDivision
	return nil
}

func (r *fakeSubDivisionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SubDivision, error) {
	subDivision, ok := r.subDivisions[id]
	if !ok {
		return nil, nil
	}
	return subDivision, nil
}

func (r *fakeSubDivisionRepo) List(ctx context.Context, divisionID *uuid.UUID) ([]entity.SubDivision, error) {
	var subDivisions []entity.SubDivision
	for _, s := range r.subDivisions {
		if divisionID != nil && (s.DivisionID == nil || *s.DivisionID != *divisionID) {
			continue
		}
		subDivisions = append(subDivisions, *s)
	}
	return subDivisions, nil
}

type fakeBranchRepo struct {
	branches map[uuid.UUID]*entity.Branch
}

func newFakeBranchRepo(branches ...*entity.Branch) *fakeBranchRepo {
	r := &fakeBranchRepo{branches: make(map[uuid.UUID]*entity.Branch)}
	for _, b := range branches {
		r.branches[b.ID] = b
	}
	return r
}

func (r *fakeBranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	r.branches[branch.ID] = branch
	return nil
}

func (r *fakeBranchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, ok := r.branches[id]
	if !ok {
		return nil, nil
	}
	return branch, nil
}

func (r *fakeBranchRepo) List(ctx context.Context) ([]entity.Branch, error) {
	branches := make([]entity.Branch, 0, len(r.branches))
	for _, b := range r.branches {
		branches = append(branches, *b)
	}
	return branches, nil
}

type fakeRoleRepo struct {
	roles []*entity.Role
}

func newFakeRoleRepo(roles ...*entity.Role) *fakeRoleRepo {
	return &fakeRoleRepo{roles: roles}
}

func (r *fakeRoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List(ctx context.Context) ([]entity.Role, error) {
	roles := make([]entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		roles = append(roles, *role)
	}
	return roles, nil
}

type fakeDealerRepo struct {
	dealers map[uuid.UUID]*entity.Dealer
}

func newFakeDealerRepo(dealers ...*entity.Dealer) *fakeDealerRepo {
	r := &fakeDealerRepo{dealers: make(map[uuid.UUID]*entity.Dealer)}
	for _, d := range dealers {
		r.dealers[d.ID] = d
	}
	return r
}

func (r *fakeDealerRepo) Create(ctx context.Context, dealer *entity.Dealer) error {
	if dealer.ID == uuid.Nil {
		dealer.ID = uuid.New()
	}
	r.dealers[dealer.ID] = dealer
	return nil
}

func (r *fakeDealerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	dealer, ok := r.dealers[id]
	if !ok {
		return nil, nil
	}
	return dealer, nil
}

func (r *fakeDealerRepo) List(ctx context.Context) ([]entity.Dealer, error) {
	dealers := make([]entity.Dealer, 0, len(r.dealers))
	for _, d := range r.dealers {
		dealers = append(dealers, *d)
	}
	return dealers, nil
}

// leadServiceFixture wires a LeadService over in-memory fakes
type leadServiceFixture struct {
	leads     *fakeLeadRepo
	followups *fakeFollowupRepo
	logs      *fakeLeadLogRepo
	assigns   *fakeAssignRepo
	users     *fakeUserRepo
	divisions *fakeDivisionRepo
	svc       *LeadService
}

func newLeadServiceFixture(users ...*entity.User) *leadServiceFixture {
	f := &leadServiceFixture{
		leads:     newFakeLeadRepo(),
		followups: &fakeFollowupRepo{},
		logs:      &fakeLeadLogRepo{},
		assigns:   &fakeAssignRepo{},
		users:     newFakeUserRepo(users...),
		divisions: newFakeDivisionRepo(),
	}
	refs := NewReferenceService(f.divisions, newFakeSubDivisionRepo(), newFakeBranchRepo(), newFakeDealerRepo(), f.users, newFakeRoleRepo())
	f.svc = NewLeadService(f.leads, f.followups, f.logs, f.assigns, refs, fakeTransactor{})
	return f
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
