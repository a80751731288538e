package model

// Table describes a dining table on the floor. A table is occupied
// exactly when ReservationID is non-nil; the referenced reservation is
// then in the seated state. The table never owns guest data, it only
// tracks occupancy.
//
// Fields:
//  ID            – primary key identifier.
//  TableName     – label shown to staff, at least two characters.
//  Capacity      – number of guests the table can hold, at least 1.
//  ReservationID – reservation currently seated here (nil when free).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Table struct {
    ID            uint64  `json:"table_id"`       // tables.table_id
    TableName     string  `json:"table_name"`     // tables.table_name
    Capacity      int     `json:"capacity"`       // tables.capacity
    ReservationID *uint64 `json:"reservation_id"` // tables.reservation_id (nullable)
    CreatedAt     string  `json:"created_at"`     // tables.created_at
    UpdatedAt     string  `json:"updated_at"`     // tables.updated_at
}

// Occupied reports whether a reservation is currently seated at the table.
func (t *Table) Occupied() bool { return t.ReservationID != nil }
