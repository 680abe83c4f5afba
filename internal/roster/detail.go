package roster

// DetailRow is one label/value line of the duty detail view.
type DetailRow struct {
	Label string
	Value string
}

// DetailRows lists the rows shown for rec. Duty code, duty id, departure and
// destination are always present; the remaining rows appear only when their
// value is non-empty. A nil rec yields the four fixed rows with empty values.
func DetailRows(rec *DutyRecord) []DetailRow {
	var r DutyRecord
	if rec != nil {
		r = *rec
	}
	rows := []DetailRow{
		{Label: "Duty Code", Value: string(r.DutyCode)},
		{Label: "Duty Id", Value: string(r.DutyID)},
		{Label: "Departure", Value: r.Departure},
		{Label: "Destination", Value: r.Destination},
	}
	optional := []DetailRow{
		{Label: "Flight No", Value: r.FlightNumber},
		{Label: "Departure Time", Value: r.TimeDepart},
		{Label: "Arrival Time", Value: r.TimeArrive},
		{Label: "Captain", Value: r.Captain},
		{Label: "First Officer", Value: r.FirstOfficer},
		{Label: "Flight Attendant", Value: r.FlightAttendant},
	}
	for _, row := range optional {
		if row.Value != "" {
			rows = append(rows, row)
		}
	}
	return rows
}
