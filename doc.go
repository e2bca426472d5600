// Package collaborationservice is the seller collaboration service: seller
// partnerships, B2B contracts, shared inventory agreements and
// proximity-based partner suggestions.
//
// Project structure:
//
//	collaboration-service/
//	├── cmd/
//	│   └── server/
//	│       └── main.go
//	└── internal/
//	    ├── apperror/      sentinel errors and their HTTP mapping
//	    ├── config/        environment configuration
//	    ├── database/      connection, migrations, demo seed
//	    ├── handlers/      gin handlers
//	    ├── middleware/    request id, logging, audit, cors, rate limit
//	    ├── models/        gorm models and patch types
//	    ├── repository/    gorm-backed stores
//	    ├── router/        route table
//	    ├── services/      business logic and brand/category registries
//	    ├── tests/         API tests
//	    └── utils/         geo math, validation, responses, pagination
//
// The server entry point lives in cmd/server.
package collaborationservice
