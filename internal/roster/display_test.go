package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		name string
		rec  DutyRecord
		want Display
	}{
		{
			name: "flight shows route and no secondary line",
			rec:  DutyRecord{DutyCode: LabelFlight, Departure: "JFK", Destination: "LAX", TimeDepart: "08:00", TimeArrive: "11:30"},
			want: Display{Icon: IconPlane, Primary: "JFK - LAX", Times: "08:00 - 11:30"},
		},
		{
			name: "layover",
			rec:  DutyRecord{DutyCode: LabelLayover, Destination: "ORD"},
			want: Display{Icon: IconSuitcase, Primary: "Layover", HasSecondary: true, Secondary: "ORD", Times: " - "},
		},
		{
			name: "off",
			rec:  DutyRecord{DutyCode: LabelOff, Destination: "AMS"},
			want: Display{Icon: IconPowerOff, Primary: "OFF", HasSecondary: true, Secondary: "AMS", Times: " - "},
		},
		{
			name: "standby takes the default branch with match crew",
			rec:  DutyRecord{DutyCode: LabelStandby, Destination: "AMS", TimeDepart: "04:00", TimeArrive: "16:00"},
			want: Display{Icon: IconClipboard, Primary: "Standby", HasSecondary: true, Secondary: "AMS", MatchCrew: true, Times: "04:00 - 16:00"},
		},
		{
			name: "unknown label falls back to clipboard and raw text",
			rec:  DutyRecord{DutyCode: DutyLabel("TRAINING"), Destination: "SIM"},
			want: Display{Icon: IconClipboard, Primary: "TRAINING", HasSecondary: true, Secondary: "SIM", Times: " - "},
		},
		{
			name: "label match is case sensitive",
			rec:  DutyRecord{DutyCode: DutyLabel("flight"), Departure: "A", Destination: "B"},
			want: Display{Icon: IconClipboard, Primary: "flight", HasSecondary: true, Secondary: "B", Times: " - "},
		},
		{
			name: "layover with empty destination still has a secondary line",
			rec:  DutyRecord{DutyCode: LabelLayover},
			want: Display{Icon: IconSuitcase, Primary: "Layover", HasSecondary: true, Times: " - "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Present(tt.rec))
		})
	}
}

func TestPresent_IgnoresDutyID(t *testing.T) {
	a := Present(DutyRecord{DutyCode: LabelFlight, DutyID: DutyFlight, Departure: "A", Destination: "B"})
	b := Present(DutyRecord{DutyCode: LabelFlight, DutyID: DutyStandby, Departure: "A", Destination: "B"})
	assert.Equal(t, a, b)
}

func TestPresent_MatchCrewOnlyForStandby(t *testing.T) {
	for _, label := range []DutyLabel{LabelFlight, LabelOff, LabelLayover, "standby", "SBY", ""} {
		assert.False(t, Present(DutyRecord{DutyCode: label}).MatchCrew, "label %q", label)
	}
	assert.True(t, Present(DutyRecord{DutyCode: LabelStandby}).MatchCrew)
}
