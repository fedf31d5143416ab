package config

const (
	// EnvPrefix is empty because every variable already carries the NASHWA_ prefix
	// in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)
