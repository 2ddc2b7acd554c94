package routes

const (
	// Health + metrics
	Health  = "/health"
	Metrics = "/metrics"

	// Auth
	AuthSignup = "/api/auth/signup"
	AuthLogin  = "/api/auth/login"

	// User
	UserInfo         = "/api/user/info"
	UserVerifyMobile = "/api/user/verify-mobile"
	UserVerifyEmail  = "/api/user/verify-email"
	UserRequestOTP   = "/api/user/request-otp"
	UserGetPassword  = "/api/user/get-password"
	UserProperties   = "/api/user/properties"

	// Properties
	PropertiesSearch         = "/api/properties/search"
	PropertyByID             = "/api/properties/{id}"
	PropertiesCreate         = "/api/properties/create"
	PropertiesToggleFavorite = "/api/properties/toggle-favorite"
	PropertiesFavorites      = "/api/properties/favorites"
	PropertiesArchive        = "/api/properties/archive"
	PropertiesMarkSold       = "/api/properties/mark-sold"
	PropertiesReactivate     = "/api/properties/reactivate"
	PropertiesInterest       = "/api/properties/interest"

	// Projects
	Projects        = "/api/projects"
	ProjectsArchive = "/api/projects/archive"
	ProjectsUpdate  = "/api/projects/update"

	// Forum
	ForumCategories = "/api/forum/categories"
	ForumPosts      = "/api/forum/posts"
	ForumReplies    = "/api/forum/replies"
	ForumUserPosts  = "/api/forum/user/{userId}/posts"
	ForumInitCities = "/api/forum/init-cities"
)
