package config

const (
	EnvPrefix = "voicecart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	DefaultSQLiteDSN = "file:voicecart.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	EnvDBDSN  = "VOICECART_DB_DSN"
	EnvDBHost = "VOICECART_DB_HOST"
	EnvDBUser = "VOICECART_DB_USER"
	EnvDBName = "VOICECART_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
