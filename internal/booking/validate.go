package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

const dateLayout = "2006-01-02"

// timePattern accepts 24-hour HH:MM with an optional seconds part.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)(:[0-5]\d)?$`)

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validTime(s string) bool { return timePattern.MatchString(s) }

// ValidateCreate checks a full reservation payload. It trims string
// fields in place so the workflow stores canonical values.
func ValidateCreate(req *CreateReservationRequest) error {
	if req == nil {
		return invalid("data is required")
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)
	req.ReservationDate = strings.TrimSpace(req.ReservationDate)
	req.ReservationTime = strings.TrimSpace(req.ReservationTime)

	if req.FirstName == "" {
		return invalid("reservation must include a first_name")
	}
	if req.LastName == "" {
		return invalid("reservation must include a last_name")
	}
	if req.MobileNumber == "" {
		return invalid("reservation must include a mobile_number")
	}
	if req.ReservationDate == "" || !validDate(req.ReservationDate) {
		return invalid("reservation must include a valid reservation_date")
	}
	if req.ReservationTime == "" || !validTime(req.ReservationTime) {
		return invalid("reservation must include a valid reservation_time")
	}
	if req.People < 1 {
		return invalid("reservation number of people must be 1 or above")
	}
	// A new reservation may carry status "booked" explicitly, nothing else.
	switch req.Status {
	case "", model.StatusBooked:
	case model.StatusSeated, model.StatusFinished:
		return invalid("status cannot be " + req.Status + " for a new reservation")
	default:
		return invalid("unknown status: " + req.Status)
	}
	return nil
}

// ValidateEdit checks a partial reservation payload: absent fields are
// skipped, present fields must be valid. A payload with no fields at
// all is rejected.
func ValidateEdit(req *EditReservationRequest) error {
	if req == nil {
		return invalid("data is required")
	}
	if req.FirstName == nil && req.LastName == nil && req.MobileNumber == nil &&
		req.ReservationDate == nil && req.ReservationTime == nil && req.People == nil {
		return invalid("data is required")
	}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		return invalid("first_name cannot be blank")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		return invalid("last_name cannot be blank")
	}
	if req.MobileNumber != nil && strings.TrimSpace(*req.MobileNumber) == "" {
		return invalid("mobile_number cannot be blank")
	}
	if req.ReservationDate != nil && !validDate(strings.TrimSpace(*req.ReservationDate)) {
		return invalid("reservation_date must be a valid date")
	}
	if req.ReservationTime != nil && !validTime(strings.TrimSpace(*req.ReservationTime)) {
		return invalid("reservation_time must be a valid time")
	}
	if req.People != nil && *req.People < 1 {
		return invalid("reservation number of people must be 1 or above")
	}
	return nil
}

// ValidateTable checks a new table payload.
func ValidateTable(req *CreateTableRequest) error {
	if req == nil {
		return invalid("data is required")
	}
	req.TableName = strings.TrimSpace(req.TableName)
	if len(req.TableName) < 2 {
		return invalid("table_name must be at least 2 characters")
	}
	if req.Capacity < 1 {
		return invalid("table capacity must be 1 or above")
	}
	return nil
}
