package model

// Reservation statuses. A reservation always starts life as booked and
// only moves along booked -> seated -> finished, or is cancelled from
// booked or seated. finished and cancelled are terminal.
const (
    StatusBooked    = "booked"
    StatusSeated    = "seated"
    StatusFinished  = "finished"
    StatusCancelled = "cancelled"
)

// KnownStatus reports whether s is one of the four reservation statuses.
func KnownStatus(s string) bool {
    switch s {
    case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
        return true
    }
    return false
}

// Reservation records a party's booking at the restaurant.
//
// ReservationDate and ReservationTime are kept as the strings the client
// sent ("2006-01-02" and "15:04") so that reading a reservation back
// returns exactly what was stored.
//
// Fields:
//  ID              – primary key identifier.
//  FirstName       – guest first name.
//  LastName        – guest last name.
//  MobileNumber    – contact phone; punctuation is preserved as entered.
//  ReservationDate – calendar date of the booking (YYYY-MM-DD).
//  ReservationTime – time of day of the booking (HH:MM, 24h).
//  People          – party size, at least 1.
//  Status          – lifecycle state (booked, seated, finished, cancelled).
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
    ID              uint64 `json:"reservation_id"`   // reservations.reservation_id
    FirstName       string `json:"first_name"`       // reservations.first_name
    LastName        string `json:"last_name"`        // reservations.last_name
    MobileNumber    string `json:"mobile_number"`    // reservations.mobile_number
    ReservationDate string `json:"reservation_date"` // reservations.reservation_date
    ReservationTime string `json:"reservation_time"` // reservations.reservation_time
    People          int    `json:"people"`           // reservations.people
    Status          string `json:"status"`           // reservations.status
    CreatedAt       string `json:"created_at"`       // reservations.created_at
    UpdatedAt       string `json:"updated_at"`       // reservations.updated_at
}
