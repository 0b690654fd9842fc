package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldUserID    = "user_id"
	FieldUsername  = "username"
	FieldCurrency  = "currency"
	FieldRoute     = "route"
	FieldStateKey  = "key"
	FieldBackend   = "backend"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentSession   = "session"
	ComponentCurrency  = "currency"
	ComponentAPI       = "api"
	ComponentGuard     = "guard"
	ComponentStore     = "store"
	ComponentCLI       = "cli"
	ComponentDashboard = "dashboard"
)

// Operations defines standard operation names
const (
	OpInitialize = "initialize"
	OpLogin      = "login"
	OpLogout     = "logout"
	OpUpdate     = "update"
	OpCreate     = "create"
	OpRead       = "read"
	OpDelete     = "delete"
	OpList       = "list"
	OpNavigate   = "navigate"
	OpRequest    = "request"
)
