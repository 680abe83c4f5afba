package roster

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DutyType is the short duty-type code served in the DutyID field.
type DutyType string

const (
	DutyFlight  DutyType = "FLT"
	DutyDayOff  DutyType = "DO"
	DutyStandby DutyType = "SBY"
	DutyOffDuty DutyType = "OFD"
)

// DutyLabel is the human-readable duty type served in the DutyCode field.
// Display rules switch on this value.
type DutyLabel string

const (
	LabelFlight  DutyLabel = "FLIGHT"
	LabelOff     DutyLabel = "OFF"
	LabelStandby DutyLabel = "Standby"
	LabelLayover DutyLabel = "LAYOVER"
)

// Field names a DutyRecord field by its wire key.
type Field string

const (
	FieldFlightNumber    Field = "Flightnr"
	FieldDate            Field = "Date"
	FieldAircraftType    Field = "Aircraft Type"
	FieldTail            Field = "Tail"
	FieldDeparture       Field = "Departure"
	FieldDestination     Field = "Destination"
	FieldTimeDepart      Field = "Time_Depart"
	FieldTimeArrive      Field = "Time_Arrive"
	FieldDutyID          Field = "DutyID"
	FieldDutyCode        Field = "DutyCode"
	FieldCaptain         Field = "Captain"
	FieldFirstOfficer    Field = "First Officer"
	FieldFlightAttendant Field = "Flight Attendant"
)

// DutyRecord is one roster entry as served by the roster endpoint.
// Dates and times are opaque display strings.
type DutyRecord struct {
	FlightNumber    string
	Date            string
	AircraftType    string
	Tail            string
	Departure       string
	Destination     string
	TimeDepart      string
	TimeArrive      string
	DutyID          DutyType
	DutyCode        DutyLabel
	Captain         string
	FirstOfficer    string
	FlightAttendant string

	// missing holds fields that were absent or null on the wire.
	missing map[Field]bool
}

// Field returns the value of f and whether it was present on the wire.
// Unknown fields report ("", false).
func (r DutyRecord) Field(f Field) (string, bool) {
	var v string
	switch f {
	case FieldFlightNumber:
		v = r.FlightNumber
	case FieldDate:
		v = r.Date
	case FieldAircraftType:
		v = r.AircraftType
	case FieldTail:
		v = r.Tail
	case FieldDeparture:
		v = r.Departure
	case FieldDestination:
		v = r.Destination
	case FieldTimeDepart:
		v = r.TimeDepart
	case FieldTimeArrive:
		v = r.TimeArrive
	case FieldDutyID:
		v = string(r.DutyID)
	case FieldDutyCode:
		v = string(r.DutyCode)
	case FieldCaptain:
		v = r.Captain
	case FieldFirstOfficer:
		v = r.FirstOfficer
	case FieldFlightAttendant:
		v = r.FlightAttendant
	default:
		return "", false
	}
	return v, !r.missing[f]
}

// WithMissing returns a copy of r with the given fields marked absent.
// Records built in code are fully present unless marked otherwise.
func (r DutyRecord) WithMissing(fields ...Field) DutyRecord {
	m := make(map[Field]bool, len(r.missing)+len(fields))
	for f := range r.missing {
		m[f] = true
	}
	for _, f := range fields {
		m[f] = true
	}
	r.missing = m
	return r
}

// wireRecord mirrors the endpoint's JSON shape. Pointers distinguish a
// missing or null key from an empty string.
type wireRecord struct {
	FlightNumber    *string `json:"Flightnr"`
	Date            *string `json:"Date"`
	AircraftType    *string `json:"Aircraft Type"`
	Tail            *string `json:"Tail"`
	Departure       *string `json:"Departure"`
	Destination     *string `json:"Destination"`
	TimeDepart      *string `json:"Time_Depart"`
	TimeArrive      *string `json:"Time_Arrive"`
	DutyID          *string `json:"DutyID"`
	DutyCode        *string `json:"DutyCode"`
	Captain         *string `json:"Captain"`
	FirstOfficer    *string `json:"First Officer"`
	FlightAttendant *string `json:"Flight Attendant"`
}

// UnmarshalJSON implements json.Unmarshaler. Null records and non-string
// values are rejected; a null value marks its field missing.
func (r *DutyRecord) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("duty record is null")
	}
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	missing := make(map[Field]bool)
	take := func(f Field, p *string) string {
		if p == nil {
			missing[f] = true
			return ""
		}
		return *p
	}
	*r = DutyRecord{
		FlightNumber:    take(FieldFlightNumber, w.FlightNumber),
		Date:            take(FieldDate, w.Date),
		AircraftType:    take(FieldAircraftType, w.AircraftType),
		Tail:            take(FieldTail, w.Tail),
		Departure:       take(FieldDeparture, w.Departure),
		Destination:     take(FieldDestination, w.Destination),
		TimeDepart:      take(FieldTimeDepart, w.TimeDepart),
		TimeArrive:      take(FieldTimeArrive, w.TimeArrive),
		DutyID:          DutyType(take(FieldDutyID, w.DutyID)),
		DutyCode:        DutyLabel(take(FieldDutyCode, w.DutyCode)),
		Captain:         take(FieldCaptain, w.Captain),
		FirstOfficer:    take(FieldFirstOfficer, w.FirstOfficer),
		FlightAttendant: take(FieldFlightAttendant, w.FlightAttendant),
	}
	if len(missing) > 0 {
		r.missing = missing
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Missing fields are omitted.
func (r DutyRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, 13)
	for _, f := range allFields {
		if v, ok := r.Field(f); ok {
			out[string(f)] = v
		}
	}
	return json.Marshal(out)
}

var allFields = []Field{
	FieldFlightNumber,
	FieldDate,
	FieldAircraftType,
	FieldTail,
	FieldDeparture,
	FieldDestination,
	FieldTimeDepart,
	FieldTimeArrive,
	FieldDutyID,
	FieldDutyCode,
	FieldCaptain,
	FieldFirstOfficer,
	FieldFlightAttendant,
}
