package roster

import "fmt"

// Icon identifies the glyph shown next to a duty row.
type Icon string

const (
	IconPlane     Icon = "plane"
	IconSuitcase  Icon = "suitcase"
	IconPowerOff  Icon = "power-off"
	IconClipboard Icon = "paste"
)

// Display is the list-row presentation of one duty.
type Display struct {
	Icon    Icon
	Primary string
	// HasSecondary is false only for flights; the line may still be empty.
	HasSecondary bool
	Secondary    string
	MatchCrew    bool
	Times        string
}

// Present maps a duty to its row presentation. The choice depends only on
// the duty-type label; unrecognized labels share the standby icon and show
// the raw label text.
func Present(rec DutyRecord) Display {
	d := Display{
		Times:     fmt.Sprintf("%s - %s", rec.TimeDepart, rec.TimeArrive),
		MatchCrew: rec.DutyCode == LabelStandby,
	}
	switch rec.DutyCode {
	case LabelFlight:
		d.Icon = IconPlane
		d.Primary = fmt.Sprintf("%s - %s", rec.Departure, rec.Destination)
		return d
	case LabelLayover:
		d.Icon = IconSuitcase
		d.Primary = "Layover"
	case LabelOff:
		d.Icon = IconPowerOff
		d.Primary = string(rec.DutyCode)
	default:
		d.Icon = IconClipboard
		d.Primary = string(rec.DutyCode)
	}
	d.HasSecondary = true
	d.Secondary = rec.Destination
	return d
}
