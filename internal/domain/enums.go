package domain

// RegionLevel is the depth of a region in the country hierarchy.
type RegionLevel string

const (
	RegionLevelBroad     RegionLevel = "broad"
	RegionLevelSubregion RegionLevel = "subregion"
	RegionLevelProvince  RegionLevel = "province"
)

func (l RegionLevel) String() string { return string(l) }

func (l RegionLevel) IsValid() bool {
	switch l {
	case RegionLevelBroad, RegionLevelSubregion, RegionLevelProvince:
		return true
	}
	return false
}

// Depth returns 1 for broad, 2 for subregion, 3 for province and 0 for unknown levels.
func (l RegionLevel) Depth() int {
	switch l {
	case RegionLevelBroad:
		return 1
	case RegionLevelSubregion:
		return 2
	case RegionLevelProvince:
		return 3
	}
	return 0
}

// DialectType is the broad dialect group a word belongs to.
type DialectType string

const (
	DialectNorth   DialectType = "North"
	DialectCentral DialectType = "Central"
	DialectSouth   DialectType = "South"
)

func (d DialectType) String() string { return string(d) }

func (d DialectType) IsValid() bool {
	switch d {
	case DialectNorth, DialectCentral, DialectSouth:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeWord       EntityType = "WORD"
	EntityTypeWordRegion EntityType = "WORD_REGION"
	EntityTypeUser       EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeWord, EntityTypeWordRegion, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction is the kind of change recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
