/*
Package config loads the register function's configuration.

Values are layered: built-in defaults, then an optional YAML file named by
CLIENTREGISTRY_CONFIG, then environment variables. Load also reads a .env
file from the working directory when one exists, which is how local runs
supply AWS credentials:

	AWS_REGION=us-east-1
	AWS_ACCESS_KEY=...
	AWS_SECRET_KEY=...
	AWS_DDB_TABLE=Client
	AWS_DDB_ENDPOINT=http://localhost:8000

CLIENTREGISTRY_LEGACY_RESPONSES=true switches the handler to the legacy
always-200 response contract.
*/
package config
