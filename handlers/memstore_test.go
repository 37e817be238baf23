package handlers_test

// In-memory store fakes backing the handler tests. Each fake mirrors the
// sentinel-error contract of the Mongo repositories.

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"soulfinder/models"
	"soulfinder/store"
)

type memBiodata struct {
	records []models.Biodata
	seq     int
	calls   int // how many times any method ran; used to assert gates short-circuit
}

func (m *memBiodata) matches(b models.Biodata, f store.BiodataFilter) bool {
	if f.Type != "" && b.BiodataType != f.Type {
		return false
	}
	if f.Division != "" && b.PermanentDivision != f.Division {
		return false
	}
	if f.MinAge != nil && b.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && b.Age > *f.MaxAge {
		return false
	}
	return true
}

func (m *memBiodata) filtered(f store.BiodataFilter) []models.Biodata {
	out := []models.Biodata{}
	for _, b := range m.records {
		if m.matches(b, f) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BiodataID < out[j].BiodataID })
	return out
}

func (m *memBiodata) List(_ context.Context, f store.BiodataFilter, skip, limit int64) ([]models.Biodata, error) {
	m.calls++
	all := m.filtered(f)
	if skip >= int64(len(all)) {
		return []models.Biodata{}, nil
	}
	all = all[skip:]
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memBiodata) Count(_ context.Context, f store.BiodataFilter) (int64, error) {
	m.calls++
	return int64(len(m.filtered(f))), nil
}

func (m *memBiodata) GetByID(_ context.Context, id string) (models.Biodata, error) {
	m.calls++
	for _, b := range m.records {
		if b.ID.Hex() == id {
			return b, nil
		}
	}
	return models.Biodata{}, store.ErrNotFound
}

func (m *memBiodata) GetByEmail(_ context.Context, email string) (models.Biodata, error) {
	m.calls++
	for _, b := range m.records {
		if b.Email == email {
			return b, nil
		}
	}
	return models.Biodata{}, store.ErrNotFound
}

func (m *memBiodata) Similar(_ context.Context, biodataType string, excludeBiodataID int, limit int64) ([]models.Biodata, error) {
	m.calls++
	out := []models.Biodata{}
	for _, b := range m.records {
		if b.BiodataType == biodataType && b.BiodataID != excludeBiodataID {
			out = append(out, b)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memBiodata) NextBiodataID(_ context.Context) (int, error) {
	m.calls++
	m.seq++
	return m.seq, nil
}

func (m *memBiodata) Insert(_ context.Context, b models.Biodata) error {
	m.calls++
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.records = append(m.records, b)
	return nil
}

func (m *memBiodata) UpdateByEmail(_ context.Context, email string, b models.Biodata) error {
	m.calls++
	for i := range m.records {
		if m.records[i].Email == email {
			id, domainID := m.records[i].ID, m.records[i].BiodataID
			b.ID, b.BiodataID, b.Email = id, domainID, email
			m.records[i] = b
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memBiodata) SetTypeByEmail(_ context.Context, email, biodataType string) error {
	m.calls++
	for i := range m.records {
		if m.records[i].Email == email {
			m.records[i].BiodataType = biodataType
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memBiodata) TotalCount(_ context.Context) (int64, error) {
	m.calls++
	return int64(len(m.records)), nil
}

func (m *memBiodata) CountByType(_ context.Context) (map[string]int64, error) {
	m.calls++
	counts := map[string]int64{}
	for _, b := range m.records {
		counts[b.BiodataType]++
	}
	return counts, nil
}

type memUsers struct {
	users map[string]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]models.User{}}
}

func (m *memUsers) CreateOrTouch(_ context.Context, u models.User) (bool, error) {
	if existing, ok := m.users[u.Email]; ok {
		existing.LastLoggedIn = u.LastLoggedIn
		m.users[u.Email] = existing
		return false, nil
	}
	u.ID = primitive.NewObjectID()
	m.users[u.Email] = u
	return true, nil
}

func (m *memUsers) List(_ context.Context, search string) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		if search == "" || containsFold(u.Name, search) || containsFold(u.Email, search) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) SetRole(_ context.Context, email, role string) error {
	u, ok := m.users[email]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	m.users[email] = u
	return nil
}

func (m *memUsers) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memFavorites struct {
	sets map[int][]string
}

func newMemFavorites() *memFavorites {
	return &memFavorites{sets: map[int][]string{}}
}

func (m *memFavorites) Add(_ context.Context, biodataID int, email string) error {
	for _, e := range m.sets[biodataID] {
		if e == email {
			return store.ErrDuplicate
		}
	}
	m.sets[biodataID] = append(m.sets[biodataID], email)
	return nil
}

func (m *memFavorites) Remove(_ context.Context, biodataID int, email string) error {
	set, ok := m.sets[biodataID]
	if !ok {
		return store.ErrNotFound
	}
	for i, e := range set {
		if e == email {
			set = append(set[:i], set[i+1:]...)
			if len(set) == 0 {
				delete(m.sets, biodataID)
			} else {
				m.sets[biodataID] = set
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memFavorites) Get(_ context.Context, biodataID int) (models.Favorite, error) {
	set, ok := m.sets[biodataID]
	if !ok {
		return models.Favorite{}, store.ErrNotFound
	}
	return models.Favorite{BiodataID: biodataID, Requesters: append([]string{}, set...)}, nil
}

func (m *memFavorites) IsFavorite(_ context.Context, biodataID int, email string) (bool, error) {
	for _, e := range m.sets[biodataID] {
		if e == email {
			return true, nil
		}
	}
	return false, nil
}

type memContacts struct {
	requests []models.ContactRequest
}

func (m *memContacts) Create(_ context.Context, cr models.ContactRequest) error {
	for _, r := range m.requests {
		if r.BiodataID == cr.BiodataID && r.Email == cr.Email {
			return store.ErrDuplicate
		}
	}
	cr.ID = primitive.NewObjectID()
	m.requests = append(m.requests, cr)
	return nil
}

func (m *memContacts) ListByEmail(_ context.Context, email string) ([]models.ContactRequest, error) {
	out := []models.ContactRequest{}
	for _, r := range m.requests {
		if r.Email == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memContacts) Delete(_ context.Context, biodataID int, email string) error {
	for i, r := range m.requests {
		if r.BiodataID == biodataID && r.Email == email {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memContacts) SumFees(_ context.Context) (int64, error) {
	var total int64
	for _, r := range m.requests {
		total += r.Fee
	}
	return total, nil
}

type memPremium struct {
	requests map[string]models.PremiumRequest
}

func newMemPremium() *memPremium {
	return &memPremium{requests: map[string]models.PremiumRequest{}}
}

func (m *memPremium) Create(_ context.Context, pr models.PremiumRequest) error {
	if _, ok := m.requests[pr.Email]; ok {
		return store.ErrDuplicate
	}
	pr.ID = primitive.NewObjectID()
	m.requests[pr.Email] = pr
	return nil
}

func (m *memPremium) List(_ context.Context) ([]models.PremiumRequest, error) {
	out := []models.PremiumRequest{}
	for _, pr := range m.requests {
		out = append(out, pr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memPremium) GetByEmail(_ context.Context, email string) (models.PremiumRequest, error) {
	pr, ok := m.requests[email]
	if !ok {
		return models.PremiumRequest{}, store.ErrNotFound
	}
	return pr, nil
}

func (m *memPremium) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := m.requests[email]; !ok {
		return store.ErrNotFound
	}
	delete(m.requests, email)
	return nil
}

type memStories struct {
	stories map[string]models.SuccessStory
}

func newMemStories() *memStories {
	return &memStories{stories: map[string]models.SuccessStory{}}
}

func (m *memStories) Create(_ context.Context, s models.SuccessStory) error {
	if _, ok := m.stories[s.Email]; ok {
		return store.ErrDuplicate
	}
	m.stories[s.Email] = s
	return nil
}

func (m *memStories) List(_ context.Context) ([]models.SuccessStory, error) {
	out := []models.SuccessStory{}
	for _, s := range m.stories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MarriageDate > out[j].MarriageDate })
	return out, nil
}

type fakePayments struct {
	lastAmount int64
	err        error
}

func (p *fakePayments) CreateIntent(_ context.Context, amount int64) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.lastAmount = amount
	return "cs_test_secret", nil
}

func containsFold(haystack, needle string) bool {
	h, n := []rune(haystack), []rune(needle)
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
