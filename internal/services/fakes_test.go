package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/geo"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
)

// ----------------------------------------------------------------
// In-memory repository fakes with call counters, so tests can assert not
// just outcomes but that short-circuited paths performed zero writes.
// ----------------------------------------------------------------

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User

	createCalls int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	f.createCalls++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByMobile(ctx context.Context, mobile string) (*models.User, error) {
	for _, u := range f.users {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	if u := f.users[id]; u != nil {
		u.EmailVerified = &at
	}
	return nil
}

func (f *fakeUserRepo) SetMobileVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	if u := f.users[id]; u != nil {
		u.MobileVerified = &at
	}
	return nil
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*models.Property
	ownerRows  []*repositories.OwnerPropertyRow

	searchCalls int
	lastLimit   int
	lastOffset  int
	lastFilter  repositories.PropertyFilter
	total       int64
}

func newFakePropertyRepo(props ...*models.Property) *fakePropertyRepo {
	f := &fakePropertyRepo{properties: make(map[uuid.UUID]*models.Property)}
	for _, p := range props {
		f.properties[p.ID] = p
	}
	return f
}

func (f *fakePropertyRepo) Create(ctx context.Context, p *models.Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) GetOwnership(ctx context.Context, id uuid.UUID) (*repositories.PropertyOwnership, error) {
	p := f.properties[id]
	if p == nil {
		return nil, nil
	}
	return &repositories.PropertyOwnership{ID: p.ID, UserID: p.UserID, ListingStatus: p.ListingStatus}, nil
}

func (f *fakePropertyRepo) Search(ctx context.Context, filter repositories.PropertyFilter, limit, offset int) ([]*models.Property, error) {
	f.searchCalls++
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset
	return nil, nil
}

func (f *fakePropertyRepo) CountSearch(ctx context.Context, filter repositories.PropertyFilter) (int64, error) {
	return f.total, nil
}

func (f *fakePropertyRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*repositories.OwnerPropertyRow, error) {
	return f.ownerRows, nil
}

func (f *fakePropertyRepo) SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*models.Property, error) {
	p := f.properties[id]
	if archived {
		p.ListingStatus = models.ListingArchived
	} else {
		p.ListingStatus = models.ListingActive
	}
	return p, nil
}

func (f *fakePropertyRepo) MarkSold(ctx context.Context, id uuid.UUID, soldTo uuid.UUID, soldDate time.Time) (*models.Property, error) {
	p := f.properties[id]
	p.ListingStatus = models.ListingSold
	p.SoldTo = &soldTo
	p.SoldDate = &soldDate
	return p, nil
}

func (f *fakePropertyRepo) Reactivate(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p := f.properties[id]
	p.ListingStatus = models.ListingActive
	p.SoldTo = nil
	p.SoldDate = nil
	return p, nil
}

type fakeSavedRepo struct {
	saved map[[2]uuid.UUID]*models.SavedProperty

	createCalls int
	deleteCalls int
}

func newFakeSavedRepo() *fakeSavedRepo {
	return &fakeSavedRepo{saved: make(map[[2]uuid.UUID]*models.SavedProperty)}
}

func (f *fakeSavedRepo) Get(ctx context.Context, userID, propertyID uuid.UUID) (*models.SavedProperty, error) {
	return f.saved[[2]uuid.UUID{userID, propertyID}], nil
}

func (f *fakeSavedRepo) Create(ctx context.Context, s *models.SavedProperty) error {
	f.createCalls++
	f.saved[[2]uuid.UUID{s.UserID, s.PropertyID}] = s
	return nil
}

func (f *fakeSavedRepo) Delete(ctx context.Context, userID, propertyID uuid.UUID) error {
	f.deleteCalls++
	delete(f.saved, [2]uuid.UUID{userID, propertyID})
	return nil
}

func (f *fakeSavedRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	return nil, nil
}

type fakeInterestRepo struct {
	interests []*models.Interest
	withUser  []*repositories.InterestWithUser

	createCalls int
}

func (f *fakeInterestRepo) Create(ctx context.Context, i *models.Interest) error {
	f.createCalls++
	f.interests = append(f.interests, i)
	return nil
}

func (f *fakeInterestRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*repositories.InterestWithUser, error) {
	return f.withUser, nil
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*models.Project

	listLimit  int
	listOffset int
	total      int64
}

func newFakeProjectRepo(projects ...*models.Project) *fakeProjectRepo {
	f := &fakeProjectRepo{projects: make(map[uuid.UUID]*models.Project)}
	for _, p := range projects {
		f.projects[p.ID] = p
	}
	return f
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectRepo) List(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	f.listLimit = limit
	f.listOffset = offset
	return nil, nil
}

func (f *fakeProjectRepo) Count(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*models.Project, error) {
	p := f.projects[id]
	p.IsArchived = archived
	return p, nil
}

type fakeForumRepo struct {
	categories map[string]*models.ForumCategory
	posts      map[uuid.UUID]*models.ForumPost
	replies    []*models.ForumReply
}

func newFakeForumRepo() *fakeForumRepo {
	return &fakeForumRepo{
		categories: make(map[string]*models.ForumCategory),
		posts:      make(map[uuid.UUID]*models.ForumPost),
	}
}

func (f *fakeForumRepo) ListCategories(ctx context.Context) ([]*models.ForumCategory, error) {
	out := make([]*models.ForumCategory, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeForumRepo) GetCategoryBySlug(ctx context.Context, slug string) (*models.ForumCategory, error) {
	return f.categories[slug], nil
}

func (f *fakeForumRepo) CreateCategory(ctx context.Context, c *models.ForumCategory) error {
	f.categories[c.Slug] = c
	return nil
}

func (f *fakeForumRepo) CreatePost(ctx context.Context, p *models.ForumPost) error {
	f.posts[p.ID] = p
	return nil
}

func (f *fakeForumRepo) ListPostsByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	var out []*models.ForumPost
	for _, p := range f.posts {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeForumRepo) CountPostsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	posts, _ := f.ListPostsByCategory(ctx, categoryID, 0, 0)
	return int64(len(posts)), nil
}

func (f *fakeForumRepo) CreateReply(ctx context.Context, r *models.ForumReply) error {
	f.replies = append(f.replies, r)
	return nil
}

func (f *fakeForumRepo) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	return f.posts[id], nil
}

func (f *fakeForumRepo) ListPostsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	var out []*models.ForumPost
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeForumRepo) CountPostsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	posts, _ := f.ListPostsByUser(ctx, userID, 0, 0)
	return int64(len(posts)), nil
}

func (f *fakeForumRepo) ListRepliesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ForumReply, error) {
	var out []*models.ForumReply
	for _, r := range f.replies {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeForumRepo) CountRepliesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	replies, _ := f.ListRepliesByUser(ctx, userID, 0, 0)
	return int64(len(replies)), nil
}

type fakeCodeRepo struct {
	codes       []*models.VerificationCode
	createCalls int
}

func (f *fakeCodeRepo) Create(ctx context.Context, c *models.VerificationCode) error {
	f.createCalls++
	f.codes = append(f.codes, c)
	return nil
}

func (f *fakeCodeRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

// ----------------------------------------------------------------
// Collaborator fakes
// ----------------------------------------------------------------

type fakeSender struct {
	emails []string
	sms    []string
}

func (f *fakeSender) SendEmailCode(ctx context.Context, email, code string) error {
	f.emails = append(f.emails, email)
	return nil
}

func (f *fakeSender) SendSMSCode(ctx context.Context, mobile, code string) error {
	f.sms = append(f.sms, mobile)
	return nil
}

type fakeGeocoder struct {
	loc *geo.Location
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*geo.Location, error) {
	if f.loc != nil {
		return f.loc, nil
	}
	return &geo.Location{FormattedAddress: address}, nil
}

type fakeUploader struct {
	uploadErr error
}

func (f *fakeUploader) UploadImages(ctx context.Context, images []string) ([]string, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	urls := make([]string, len(images))
	for i := range images {
		urls[i] = "/uploads/img-" + uuid.New().String() + ".jpg"
	}
	return urls, nil
}

func (f *fakeUploader) UploadPDF(ctx context.Context, pdf string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "/uploads/doc-" + uuid.New().String() + ".pdf", nil
}
