package model

// State is a Brazilian federative unit a court district belongs to.
// UserID is the owning account; the users table protects it from
// deletion while states reference it.
type State struct {
	StateID  int64  `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	UserID   int64  `json:"-"`
}

// CourtDistrict (comarca) belongs to exactly one state and is removed
// together with it.
type CourtDistrict struct {
	DistrictID int64  `json:"id"`
	Name       string `json:"name"`
	StateID    int64  `json:"state"`
	UserID     int64  `json:"-"`
}
