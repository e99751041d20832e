package constants

// Centralized constants for env keys, routes, the OpenAI integration and
// shared error messages.
const (
	// Environment variable keys
	EnvSessionSecret = "SESSION_SECRET"
	EnvAdminPassword = "ADMIN_PASSWORD"
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvConfigPath    = "MINUS_CONFIG"
	EnvDBPath        = "MINUS_DB"
	EnvSecureCookie  = "SESSION_SECURE_COOKIE"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	BearerPrefix = "Bearer "

	// OpenAI API endpoints
	OpenAIBaseURL               = "https://api.openai.com"
	OpenAIChatCompletionsPath   = "/v1/chat/completions"
	OpenAIImagesGenerationsPath = "/v1/images/generations"

	OpenAIChatModel           = "gpt-5-nano"
	OpenAIImageModel          = "gpt-image-1"
	OpenAIImageSizeDefault    = "1024x1024"
	OpenAIImageQualityDefault = "low"

	// Session cookie
	CookieSessionName = "m_session"
)

// Routes used by the backend router
const (
	RouteAPIPrefix  = "/api"
	RouteVersion    = "/version"
	RouteHealthz    = "/healthz"
	RouteAdminLogin  = "/auth/admin-login"
	RouteAdminLogout = "/auth/admin-logout"
	RouteRooms      = "/rooms"
	RouteRoomsJoin  = "/rooms/join"
	RouteRoomByCode = "/rooms/:roomCode"
	RouteRoomStart  = "/rooms/:roomCode/start"
	RouteRoomReset  = "/rooms/:roomCode/reset"
	RouteRoomAction = "/rooms/:roomCode/action"
	RouteRoomAdvice = "/rooms/:roomCode/advice"
	RouteRoomRecap  = "/rooms/:roomCode/recap"
	RouteRoomPoster = "/rooms/:roomCode/poster"
	RouteRoomStream = "/rooms/:roomCode/stream"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidRoomCode   = "Invalid room code"
	ErrRoomNotFound      = "Room not found"
	ErrFailedCreateRoom  = "Failed to create room"
	ErrFailedFetchRooms  = "Failed to fetch rooms"
	ErrFailedUpdateRoom  = "Failed to update room"
	ErrRoomNameExceeds   = "Room name exceeds 32 characters"
	ErrRoomFull          = "Room is full (max teams reached)"
	ErrTeamFull          = "Team is full"
	ErrNotEnoughTeams    = "Not enough teams to start the game"
	ErrTooManyTeams      = "Too many teams to start the game"
	ErrGameAlreadyActive = "Game is already in progress"
	ErrGameNotActive     = "Game is not in progress"
	ErrGameNotFinished   = "Game is not finished yet"
	ErrNotYourTurn       = "It is not your team's turn"
	ErrNoChipsToPass     = "Cannot pass with zero chips"
	ErrUnknownAction     = "Unknown action"
	ErrUnknownTeam       = "Unknown team"
	ErrMemberNotInRoom   = "Member not part of this room"
	ErrAdviceLimit       = "Advice limit reached for this team"
	ErrAdviceFailed      = "Failed to generate advice"
	ErrRecapFailed       = "Failed to generate recap"
	ErrFailedStoreAction = "Failed to store action"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
	ErrWrongPassword  = "Wrong admin password"
)

// Logging field names
const (
	LogFieldRoomID   = "room_id"
	LogFieldRoomCode = "room_code"
	LogFieldTeamID   = "team_id"
	LogFieldMemberID = "member_id"
	LogFieldAction   = "action"
	LogFieldTurn     = "turn"
	LogFieldAddr     = "addr"
	LogFieldKey      = "key"
)
