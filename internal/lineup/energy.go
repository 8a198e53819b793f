package lineup

// EnergyZone describes the recommended energy arc for a stretch of the
// night: the role a set in that window plays, the tempo band that fits it
// and the genres that usually live there. Zones are advisory labels shown
// next to slots; they never constrain which DJ can be booked.
type EnergyZone struct {
	Start  Clock  `json:"start"`
	End    Clock  `json:"end"`
	Role   string `json:"role"`
	BPM    string `json:"bpm"`
	Genres string `json:"genres"`
}

// energyArc is the night's tempo guide, from warm-up through peak time
// into the after-hours comedown.
var energyArc = []EnergyZone{
	{Start: 0, End: 3 * 60, Role: "High Octane", BPM: "132-145", Genres: "Hard Tech, D&B"},
	{Start: 3 * 60, End: 6 * 60, Role: "Afterhours", BPM: "115-125", Genres: "Melodic, Minimal"},
	{Start: 18 * 60, End: 22 * 60, Role: "Warm-up", BPM: "110-120", Genres: "Deep House, Disco"},
	{Start: 22 * 60, End: 23*60 + 59, Role: "Peak Time", BPM: "126-132", Genres: "Tech House, Mainstage"},
}

// ZoneFor returns the energy zone covering the given start time. Zone
// ends are exclusive, so a 22:00 start opens peak time instead of closing
// the warm-up; the guide's last minute still counts as peak time. Times
// in a gap of the guide (06:00-18:00, when no club night is running)
// fall back to the warm-up zone.
func ZoneFor(start Clock) EnergyZone {
	for _, z := range energyArc {
		if start >= z.Start && start < z.End {
			return z
		}
	}
	if last := energyArc[len(energyArc)-1]; start >= last.Start {
		return last
	}
	return energyArc[2]
}
