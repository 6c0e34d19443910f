package config

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "gasinv"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "GASINV_APP_ENV"
	EnvPort       = "GASINV_APP_PORT"
	EnvDBDSN      = "GASINV_DB_DSN"
	EnvDBHost     = "GASINV_DB_HOST"
	EnvDBUser     = "GASINV_DB_USER"
	EnvDBName     = "GASINV_DB_NAME"
	EnvRedisURL   = "GASINV_REDIS_URL"
	EnvJWTSecret  = "GASINV_JWT_SECRET"
	EnvJWTIssuer  = "GASINV_JWT_ISSUER"
	EnvJWTExpMins = "GASINV_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
