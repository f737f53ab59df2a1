package models

// ScopeSet describes what a capability token permits. The wildcard "*"
// inside any list means "everything" for that dimension and intersects as
// identity. The zero value permits nothing.
type ScopeSet struct {
	Rooms         []string    `json:"rooms,omitempty"`
	Tools         []string    `json:"tools,omitempty"`
	EgressDomains []string    `json:"egress_domains,omitempty"`
	ActionTypes   []string    `json:"action_types,omitempty"`
	DataAccess    *DataAccess `json:"data_access,omitempty"`
}

// DataAccess splits data scopes into read and write collections.
type DataAccess struct {
	Read  []string `json:"read,omitempty"`
	Write []string `json:"write,omitempty"`
}

// Wildcard is the scope entry that matches every member of its dimension.
const Wildcard = "*"
