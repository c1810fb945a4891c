// Package config handles configuration loading for the myFlix API server.
//
// # Overview
//
// Configuration is loaded from a YAML file with environment variable
// expansion. The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${MYFLIX_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: ":8080"
//
// Database:
//
//	database:
//	  path: "/var/lib/myflix/myflix.db"
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${MYFLIX_JWT_SECRET}"  # required, min 32 chars
//	  token_ttl: "168h"                   # default 7 days
//	  bcrypt_cost: 10                     # default 10
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - JWT secret presence and minimum length (32 bytes); a missing secret
//     prevents startup entirely
//   - Database path presence
//   - Duration format validity
//   - Logging level and format values
package config
