package directory

// Static facility catalog. Reference data loaded at process start; in a
// horizontally scaled deployment this would move to a read-mostly table,
// but at eleven records the compiled-in list is the source of truth.
var catalog = []Facility{
	// Kigali City - Gasabo District
	{
		ID:             1,
		Name:           "King Faisal Hospital",
		District:       "Gasabo",
		Sector:         "Kacyiru",
		Location:       "Kacyiru, Kigali",
		Phone:          "3939",
		EmergencyPhone: "+250 788 309 000",
		Hours:          "24/7 Emergency Services",
		Rating:         4.8,
		Services:       []string{"Emergency", "Maternity", "Pediatrics", "Surgery"},
		Coordinates:    Coordinates{Lat: -1.9536, Lng: 30.0906},
	},
	{
		ID:             2,
		Name:           "Kibagabaga District Hospital",
		District:       "Gasabo",
		Sector:         "Remera",
		Location:       "Remera, Kigali",
		Phone:          "+250 252 586 555",
		EmergencyPhone: "+250 788 309 001",
		Hours:          "24/7 Emergency Services",
		Rating:         4.5,
		Services:       []string{"Emergency", "Maternity", "General Medicine"},
		Coordinates:    Coordinates{Lat: -1.9442, Lng: 30.0946},
	},
	{
		ID:             3,
		Name:           "Kigali University Teaching Hospital (CHUK)",
		District:       "Gasabo",
		Sector:         "Kacyiru",
		Location:       "Kacyiru, Kigali",
		Phone:          "+250 788 309 002",
		EmergencyPhone: "+250 788 309 002",
		Hours:          "24/7 Emergency Services",
		Rating:         4.7,
		Services:       []string{"Emergency", "Maternity", "Pediatrics", "Surgery", "ICU"},
		Coordinates:    Coordinates{Lat: -1.9536, Lng: 30.0906},
	},

	// Kigali City - Kicukiro District
	{
		ID:             4,
		Name:           "Rwanda Military Hospital (RMH)",
		District:       "Kicukiro",
		Sector:         "Kanombe",
		Location:       "Kanombe, Kigali",
		Phone:          "4060",
		EmergencyPhone: "+250 788 309 003",
		Hours:          "24/7 Emergency Services",
		Rating:         4.6,
		Services:       []string{"Emergency", "Maternity", "Surgery", "ICU"},
		Coordinates:    Coordinates{Lat: -1.9833, Lng: 30.1167},
	},
	{
		ID:             5,
		Name:           "Masaka District Hospital",
		District:       "Kicukiro",
		Sector:         "Masaka",
		Location:       "Masaka, Kigali",
		Phone:          "+250 788 309 004",
		EmergencyPhone: "+250 788 309 004",
		Hours:          "24/7 Emergency Services",
		Rating:         4.3,
		Services:       []string{"Emergency", "Maternity", "General Medicine"},
		Coordinates:    Coordinates{Lat: -2.0167, Lng: 30.1000},
	},

	// Kigali City - Nyarugenge District
	{
		ID:             6,
		Name:           "Kigali Central Hospital (CHK)",
		District:       "Nyarugenge",
		Sector:         "Nyarugenge",
		Location:       "Nyarugenge, Kigali",
		Phone:          "+250 782 749 660",
		EmergencyPhone: "+250 788 309 005",
		Hours:          "24/7 Emergency Services",
		Rating:         4.5,
		Services:       []string{"Emergency", "Maternity", "Pediatrics", "Surgery"},
		Coordinates:    Coordinates{Lat: -1.9536, Lng: 30.0588},
	},
	{
		ID:             7,
		Name:           "Muhima District Hospital",
		District:       "Nyarugenge",
		Sector:         "Muhima",
		Location:       "Muhima, Kigali",
		Phone:          "+250 788 309 006",
		EmergencyPhone: "+250 788 309 006",
		Hours:          "24/7 Emergency Services",
		Rating:         4.4,
		Services:       []string{"Emergency", "Maternity", "General Medicine"},
		Coordinates:    Coordinates{Lat: -1.9536, Lng: 30.0588},
	},

	// Southern Province - Huye District
	{
		ID:             8,
		Name:           "Butare University Teaching Hospital (CHUB)",
		District:       "Huye",
		Sector:         "Huye",
		Location:       "Huye, Southern Province",
		Phone:          "+250 788 309 007",
		EmergencyPhone: "+250 788 309 007",
		Hours:          "24/7 Emergency Services",
		Rating:         4.6,
		Services:       []string{"Emergency", "Maternity", "Pediatrics", "Surgery", "ICU"},
		Coordinates:    Coordinates{Lat: -2.5967, Lng: 29.7400},
	},

	// Western Province - Rubavu District
	{
		ID:             9,
		Name:           "Gisenyi District Hospital",
		District:       "Rubavu",
		Sector:         "Gisenyi",
		Location:       "Gisenyi, Western Province",
		Phone:          "+250 788 309 008",
		EmergencyPhone: "+250 788 309 008",
		Hours:          "24/7 Emergency Services",
		Rating:         4.4,
		Services:       []string{"Emergency", "Maternity", "General Medicine"},
		Coordinates:    Coordinates{Lat: -1.7025, Lng: 29.2569},
	},

	// Northern Province - Musanze District
	{
		ID:             10,
		Name:           "Ruhengeri District Hospital",
		District:       "Musanze",
		Sector:         "Muhoza",
		Location:       "Musanze, Northern Province",
		Phone:          "+250 788 309 009",
		EmergencyPhone: "+250 788 309 009",
		Hours:          "24/7 Emergency Services",
		Rating:         4.5,
		Services:       []string{"Emergency", "Maternity", "Pediatrics", "Surgery"},
		Coordinates:    Coordinates{Lat: -1.4992, Lng: 29.6344},
	},

	// Eastern Province - Rwamagana District
	{
		ID:             11,
		Name:           "Rwamagana District Hospital",
		District:       "Rwamagana",
		Sector:         "Rwamagana",
		Location:       "Rwamagana, Eastern Province",
		Phone:          "+250 788 309 010",
		EmergencyPhone: "+250 788 309 010",
		Hours:          "24/7 Emergency Services",
		Rating:         4.3,
		Services:       []string{"Emergency", "Maternity", "General Medicine"},
		Coordinates:    Coordinates{Lat: -1.9486, Lng: 30.4347},
	},
}
