package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/utils"
)

func devConfig() *config.Config {
	return &config.Config{Env: "development"}
}

func prodConfig() *config.Config {
	return &config.Config{Env: "production"}
}

// authed attaches a user ID the way the auth middleware does.
func authed(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUserID, userID.String()))
}

func muxVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

func record(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

// ----------------------------------------------------------------
// Function-field service stubs. Unset fields panic, which makes any
// unexpected service call an immediate test failure.
// ----------------------------------------------------------------

type stubPropertyService struct {
	search       func(ctx context.Context, f repositories.PropertyFilter, page, limit int) ([]*models.Property, utils.Pagination, error)
	get          func(ctx context.Context, id uuid.UUID) (*models.Property, error)
	create       func(ctx context.Context, userID uuid.UUID, req dtos.CreatePropertyRequest) (*models.Property, error)
	toggle       func(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	favorites    func(ctx context.Context, userID uuid.UUID) ([]*models.Property, error)
	archive      func(ctx context.Context, userID, propertyID uuid.UUID, archived bool) (*models.Property, error)
	markSold     func(ctx context.Context, userID, propertyID, soldTo uuid.UUID) (*models.Property, error)
	reactivate   func(ctx context.Context, userID, propertyID uuid.UUID) (*models.Property, error)
	interest     func(ctx context.Context, userID, propertyID uuid.UUID, message *string) (*models.Interest, error)
	ownerListing func(ctx context.Context, ownerID uuid.UUID) ([]dtos.UserProperty, error)
}

func (s *stubPropertyService) Search(ctx context.Context, f repositories.PropertyFilter, page, limit int) ([]*models.Property, utils.Pagination, error) {
	return s.search(ctx, f, page, limit)
}

func (s *stubPropertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return s.get(ctx, id)
}

func (s *stubPropertyService) Create(ctx context.Context, userID uuid.UUID, req dtos.CreatePropertyRequest) (*models.Property, error) {
	return s.create(ctx, userID, req)
}

func (s *stubPropertyService) ToggleFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	return s.toggle(ctx, userID, propertyID)
}

func (s *stubPropertyService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	return s.favorites(ctx, userID)
}

func (s *stubPropertyService) Archive(ctx context.Context, userID, propertyID uuid.UUID, archived bool) (*models.Property, error) {
	return s.archive(ctx, userID, propertyID, archived)
}

func (s *stubPropertyService) MarkSold(ctx context.Context, userID, propertyID, soldTo uuid.UUID) (*models.Property, error) {
	return s.markSold(ctx, userID, propertyID, soldTo)
}

func (s *stubPropertyService) Reactivate(ctx context.Context, userID, propertyID uuid.UUID) (*models.Property, error) {
	return s.reactivate(ctx, userID, propertyID)
}

func (s *stubPropertyService) RecordInterest(ctx context.Context, userID, propertyID uuid.UUID, message *string) (*models.Interest, error) {
	return s.interest(ctx, userID, propertyID, message)
}

func (s *stubPropertyService) ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]dtos.UserProperty, error) {
	return s.ownerListing(ctx, ownerID)
}

type stubProjectService struct {
	list        func(ctx context.Context, page, limit int) ([]*models.Project, utils.ProjectPagination, error)
	setArchived func(ctx context.Context, userID, projectID uuid.UUID, archived bool) (*models.Project, error)
	update      func(ctx context.Context, userID uuid.UUID, req dtos.UpdateProjectRequest) (*models.Project, error)
}

func (s *stubProjectService) List(ctx context.Context, page, limit int) ([]*models.Project, utils.ProjectPagination, error) {
	return s.list(ctx, page, limit)
}

func (s *stubProjectService) SetArchived(ctx context.Context, userID, projectID uuid.UUID, archived bool) (*models.Project, error) {
	return s.setArchived(ctx, userID, projectID, archived)
}

func (s *stubProjectService) Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateProjectRequest) (*models.Project, error) {
	return s.update(ctx, userID, req)
}

type stubUserService struct {
	getInfo      func(ctx context.Context, userID uuid.UUID) (*dtos.UserInfo, error)
	verifyMobile func(ctx context.Context, userID uuid.UUID, otp string) error
	verifyEmail  func(ctx context.Context, userID uuid.UUID, otp string) error
	requestCode  func(ctx context.Context, userID uuid.UUID, channel string) error
	password     func(ctx context.Context, userID uuid.UUID, plaintext *string) (*dtos.GetPasswordResponse, error)
}

func (s *stubUserService) GetInfo(ctx context.Context, userID uuid.UUID) (*dtos.UserInfo, error) {
	return s.getInfo(ctx, userID)
}

func (s *stubUserService) VerifyMobile(ctx context.Context, userID uuid.UUID, otp string) error {
	return s.verifyMobile(ctx, userID, otp)
}

func (s *stubUserService) VerifyEmail(ctx context.Context, userID uuid.UUID, otp string) error {
	return s.verifyEmail(ctx, userID, otp)
}

func (s *stubUserService) RequestCode(ctx context.Context, userID uuid.UUID, channel string) error {
	return s.requestCode(ctx, userID, channel)
}

func (s *stubUserService) PasswordDisplay(ctx context.Context, userID uuid.UUID, plaintext *string) (*dtos.GetPasswordResponse, error) {
	return s.password(ctx, userID, plaintext)
}

type stubAuthService struct {
	signup func(ctx context.Context, req dtos.SignupRequest) (*models.User, error)
	login  func(ctx context.Context, identifier, password string) (*models.User, string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, req dtos.SignupRequest) (*models.User, error) {
	return s.signup(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	return s.login(ctx, identifier, password)
}

func (s *stubAuthService) IssueAccessToken(userID uuid.UUID) (string, error) {
	return "stub-token", nil
}

type stubForumService struct {
	categories func(ctx context.Context) ([]*models.ForumCategory, error)
	initCities func(ctx context.Context) (int, []string, error)
	listPosts  func(ctx context.Context, categorySlug string, page, limit int) ([]*models.ForumPost, utils.Pagination, error)
	createPost func(ctx context.Context, userID uuid.UUID, req dtos.CreatePostRequest) (*models.ForumPost, error)
	reply      func(ctx context.Context, userID uuid.UUID, req dtos.CreateReplyRequest) (*models.ForumReply, error)
	activity   func(ctx context.Context, userID uuid.UUID, page, limit int) (*dtos.ForumUserActivityResponse, error)
}

func (s *stubForumService) ListCategories(ctx context.Context) ([]*models.ForumCategory, error) {
	return s.categories(ctx)
}

func (s *stubForumService) InitCities(ctx context.Context) (int, []string, error) {
	return s.initCities(ctx)
}

func (s *stubForumService) ListPosts(ctx context.Context, categorySlug string, page, limit int) ([]*models.ForumPost, utils.Pagination, error) {
	return s.listPosts(ctx, categorySlug, page, limit)
}

func (s *stubForumService) CreatePost(ctx context.Context, userID uuid.UUID, req dtos.CreatePostRequest) (*models.ForumPost, error) {
	return s.createPost(ctx, userID, req)
}

func (s *stubForumService) CreateReply(ctx context.Context, userID uuid.UUID, req dtos.CreateReplyRequest) (*models.ForumReply, error) {
	return s.reply(ctx, userID, req)
}

func (s *stubForumService) UserActivity(ctx context.Context, userID uuid.UUID, page, limit int) (*dtos.ForumUserActivityResponse, error) {
	return s.activity(ctx, userID, page, limit)
}
