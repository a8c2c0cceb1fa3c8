// file:fpgrowth/constant/constant.go
package constant

import "errors"

// ----------------------------------------------------
// Standard errors
// ----------------------------------------------------

var (
	ErrBadRequest    = errors.New("invalid request")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoInput       = errors.New("no transactions given")
)

// ----------------------------------------------------
// Config paths & env
// ----------------------------------------------------

const (
	AppName           = "fpgrowth"
	EnvPrefix         = "FPG_"
	EnvConfigPath     = "FPG_CONFIG"
	DefaultConfigFile = "fpgrowth.json"
	DefaultHTTPAddr   = "127.0.0.1:8080"
	DefaultDSN        = "fpgrowth.db"
	DefaultMinSupport = 2
	MaxUploadSize     = 32 << 20 // 32MB
	DefaultRunsLimit  = 20
)

// ----------------------------------------------------
// Output formats
// ----------------------------------------------------

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// Outputs lists every known output format.
var Outputs = []string{OutputTable, OutputJSON, OutputPlain}

// ----------------------------------------------------
// Store dialects
// ----------------------------------------------------

const (
	DialectSqlite   = "sqlite"
	DialectPostgres = "postgres"
)

// ----------------------------------------------------
// Body keys
// ----------------------------------------------------

const (
	BodyKeyError  = "error"
	BodyKeyResult = "result"
)
