package client

import "github.com/tidwall/gjson"

const (
	// DefaultBaseURL - Baby Care API root used when nothing else is configured
	DefaultBaseURL = "http://localhost:8080/api"

	// RegisterPath - user registration endpoint
	RegisterPath = "/auth/register"
	// LoginPath - user login endpoint, returns data.token
	LoginPath = "/auth/login"
	// FamilyCreatePath - family creation endpoint, returns data.id
	FamilyCreatePath = "/family/create"
	// BabyAddPath - adds a baby to a family, returns data.id
	BabyAddPath = "/family/baby/add"
	// GrowthRecordCreatePath - growth record creation endpoint
	GrowthRecordCreatePath = "/growth-record/create"

	// TokenField - location of the session token in the login response
	TokenField = "data.token"
	// IDField - location of the created entity id in create responses
	IDField = "data.id"
)

var (
	// TokenTypes - accepted JSON types of the session token
	TokenTypes = []gjson.Type{gjson.String}
	// IDTypes - accepted JSON types of a created entity id
	IDTypes = []gjson.Type{gjson.String, gjson.Number}
)
