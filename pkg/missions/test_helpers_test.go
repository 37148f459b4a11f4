package missions

// rec builds a Record for tests. Tests set only the fields the view reads.
func rec(year int, org, location string, status Status) Record {
	return Record{
		Year:         year,
		Organization: org,
		Location:     location,
		Status:       status,
	}
}
