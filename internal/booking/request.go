package booking

// Request structs give each operation an explicit shape instead of a
// loose field map. Handlers bind JSON into these and pass them to the
// validation and workflow functions untouched.

// CreateReservationRequest carries a new booking. Every field is
// required except Status, which, when present, must not pre-seat or
// pre-finish the reservation.
type CreateReservationRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MobileNumber    string `json:"mobile_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	People          int    `json:"people"`
	Status          string `json:"status,omitempty"`
}

// EditReservationRequest carries a partial update: a nil field is
// skipped, a present field must hold a valid value. Status is not
// editable here; status changes go through the state machine.
type EditReservationRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	MobileNumber    *string `json:"mobile_number"`
	ReservationDate *string `json:"reservation_date"`
	ReservationTime *string `json:"reservation_time"`
	People          *int    `json:"people"`
}

// CreateTableRequest carries a new dining table.
type CreateTableRequest struct {
	TableName string `json:"table_name"`
	Capacity  int    `json:"capacity"`
}
